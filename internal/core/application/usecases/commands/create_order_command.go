package commands

import (
	"errors"

	"fooddelivery/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrCustomerNameIsRequired = errors.New("customer name is required")
	ErrItemsAreRequired       = errors.New("items are required")
	ErrAddressIsRequired      = errors.New("address is required")
	ErrTotalPriceIsInvalid    = errors.New("total price must be greater than 0")
)

// CreateOrderCommand represents a request to place a new customer order.
// Encapsulates the order details captured at checkout.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand("John Doe", "2x Margherita", "123 Main Street", 18.50)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	orderID, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
//	fmt.Printf("Order %s placed and awaiting assignment", orderID)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	customerName string
	items        string
	address      string
	totalPrice   float64

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place a new customer order.
// Validates that the customer name, items, and address are not empty and the
// total price is positive. Returns an error if any validation fails.
func NewCreateOrderCommand(customerName, items, address string, totalPrice float64) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setCustomerName(customerName),
		orderCommand.setItems(items),
		orderCommand.setAddress(address),
		orderCommand.setTotalPrice(totalPrice),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// CustomerName returns the name of the ordering customer.
func (c CreateOrderCommand) CustomerName() string {
	return c.customerName
}

// Items returns the ordered items description.
func (c CreateOrderCommand) Items() string {
	return c.items
}

// Address returns the delivery address.
func (c CreateOrderCommand) Address() string {
	return c.address
}

// TotalPrice returns the order total.
func (c CreateOrderCommand) TotalPrice() float64 {
	return c.totalPrice
}

func (c *CreateOrderCommand) setCustomerName(customerName string) error {
	if customerName == "" {
		return ErrCustomerNameIsRequired
	}

	c.customerName = customerName
	return nil
}

func (c *CreateOrderCommand) setItems(items string) error {
	if items == "" {
		return ErrItemsAreRequired
	}

	c.items = items
	return nil
}

func (c *CreateOrderCommand) setAddress(address string) error {
	if address == "" {
		return ErrAddressIsRequired
	}

	c.address = address
	return nil
}

func (c *CreateOrderCommand) setTotalPrice(totalPrice float64) error {
	if totalPrice <= 0 {
		return ErrTotalPriceIsInvalid
	}

	c.totalPrice = totalPrice
	return nil
}
