package order

import (
	"errors"
	"fmt"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder or RestoreOrder factory methods.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrCustomerNameIsRequired is returned when attempting to create an order without a customer name.
	ErrCustomerNameIsRequired = errs.NewValueIsRequiredError("customer name")
	// ErrItemsAreRequired is returned when attempting to create an order with no item summary.
	ErrItemsAreRequired = errs.NewValueIsRequiredError("items")
	// ErrAddressIsRequired is returned when attempting to create an order without a delivery address.
	ErrAddressIsRequired = errs.NewValueIsRequiredError("address")

	// ErrIDAlreadyAssigned is returned when attempting to attach a store id to an order
	// that already has one.
	ErrIDAlreadyAssigned = errors.New("order id is already assigned")
)

// Order represents a placed customer purchase. It is an append-only entity:
// once created it never changes, and downstream ledgers reference it by id
// without ever owning it.
//
// Order follows these invariants:
//   - Customer name, item summary, and delivery address are non-empty
//   - Total price is positive
//   - The id is zero until the store assigns one at insert time, then immutable
//   - Can only be created through NewOrder or RestoreOrder
type Order struct {
	// id is the store-assigned identifier; zero until persisted
	id kernel.OrderID

	// customerName is the name of the customer who placed the order
	customerName string

	// items is the human-readable summary of ordered items
	items string

	// address is the delivery destination
	address string

	// totalPrice is the order total (must be positive)
	totalPrice float64

	// createdAt is when the order was placed
	createdAt time.Time

	// isConstructed ensures the order was created via a factory method
	isConstructed bool
}

// NewOrder creates a new Order ready to be appended to the order store.
// The id is left unset; the store assigns it at insert time via AttachID.
//
// Returns a validation error if any field is invalid. Multiple validation
// failures are joined into a single error.
func NewOrder(customerName, items, address string, totalPrice float64, createdAt time.Time) (*Order, error) {
	o := &Order{
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setCustomerName(customerName),
		o.setItems(items),
		o.setAddress(address),
		o.setTotalPrice(totalPrice),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an Order from persistent storage, including its
// store-assigned id. The restored order behaves identically to one created
// through NewOrder.
func RestoreOrder(
	id kernel.OrderID,
	customerName, items, address string,
	totalPrice float64,
	createdAt time.Time,
) (*Order, error) {
	o, err := NewOrder(customerName, items, address, totalPrice, createdAt)
	if err != nil {
		return nil, err
	}

	if err = id.Validate(); err != nil {
		return nil, err
	}
	o.id = id

	return o, nil
}

// Validate ensures the Order instance was properly constructed through a factory method.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// AttachID records the store-assigned identifier on a freshly created order.
// Called by the repository after the insert generated the id.
// Returns ErrIDAlreadyAssigned if the order already carries an id.
func (o *Order) AttachID(id kernel.OrderID) error {
	if o.id != 0 {
		return ErrIDAlreadyAssigned
	}
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

// ID returns the store-assigned order identifier. Zero until persisted.
func (o *Order) ID() kernel.OrderID {
	return o.id
}

// CustomerName returns the name of the customer who placed the order.
func (o *Order) CustomerName() string {
	return o.customerName
}

// Items returns the human-readable item summary.
func (o *Order) Items() string {
	return o.items
}

// Address returns the delivery destination address.
func (o *Order) Address() string {
	return o.address
}

// TotalPrice returns the order total.
func (o *Order) TotalPrice() float64 {
	return o.totalPrice
}

// CreatedAt returns when the order was placed.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

func (o *Order) setCustomerName(name string) error {
	if name == "" {
		return ErrCustomerNameIsRequired
	}
	o.customerName = name
	return nil
}

func (o *Order) setItems(items string) error {
	if items == "" {
		return ErrItemsAreRequired
	}
	o.items = items
	return nil
}

func (o *Order) setAddress(address string) error {
	if address == "" {
		return ErrAddressIsRequired
	}
	o.address = address
	return nil
}

func (o *Order) setTotalPrice(totalPrice float64) error {
	if totalPrice <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("total price is invalid",
			fmt.Errorf("%g is not greater than 0", totalPrice))
	}
	o.totalPrice = totalPrice
	return nil
}
