// Package order provides the domain entity for customer orders in the food
// delivery system.
//
// An Order is a placed customer purchase: an item summary, a delivery address,
// a total price, and the name of the customer who placed it. Orders are
// append-only: they are created once by the ordering flow and never mutated
// afterwards. Lifecycle state lives entirely in the assignment aggregate,
// which references orders by id.
//
// Key business rules:
//   - Orders must have a customer name, item summary, address, and positive total price
//   - The order id is assigned by the store at insert time and is immutable afterwards
//   - Orders can only be created through the NewOrder constructor
package order
