// Package kernel provides core domain primitives and utilities for the food
// delivery system. It implements fundamental building blocks following
// Domain-Driven Design principles that are used throughout the domain model.
//
// The package includes:
//   - UUID: A value object for record identifiers with validation and comparison capabilities
//   - OrderID: A stable numeric reference to an order in the order store
//   - AgentID: A stable numeric reference to a delivery agent
//
// Cross-entity references use the numeric ID types rather than denormalized
// display names, so ledger rows always join by identity. Display names appear
// only at the presentation boundary.
//
// These primitives enforce domain invariants and validation rules, ensuring that
// domain objects are always in a valid state. They are designed to be immutable
// and thread-safe, making them suitable for concurrent use.
package kernel
