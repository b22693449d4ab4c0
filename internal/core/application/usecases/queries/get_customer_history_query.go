package queries

import (
	"errors"
	"time"

	"fooddelivery/internal/pkg/guard"
)

var (
	ErrGetCustomerHistoryQueryIsNotConstructed = errors.New(
		"GetCustomerHistoryQuery must be created via NewGetCustomerHistoryQuery constructor",
	)
	ErrCustomerNameIsRequired = errors.New("customer name is required")
)

// GetCustomerHistoryQuery retrieves a customer's orders together with the
// workflow status of each order's assignment, if one exists.
type GetCustomerHistoryQuery struct { //nolint:recvcheck //using for validation
	customerName string

	guard guard.ConstructorGuard
}

// NewGetCustomerHistoryQuery creates a query for a customer's order history.
// Validates that the customer name is not empty.
func NewGetCustomerHistoryQuery(customerName string) (GetCustomerHistoryQuery, error) {
	query := GetCustomerHistoryQuery{
		guard: guard.NewConstructorGuard(),
	}

	if customerName == "" {
		return GetCustomerHistoryQuery{}, ErrCustomerNameIsRequired
	}
	query.customerName = customerName

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetCustomerHistoryQueryIsNotConstructed if validation fails.
func (q GetCustomerHistoryQuery) Validate() error {
	return q.guard.Validate(ErrGetCustomerHistoryQueryIsNotConstructed)
}

// CustomerName returns the name of the customer whose history is requested.
func (q GetCustomerHistoryQuery) CustomerName() string {
	return q.customerName
}

// GetCustomerHistoryQueryResponse represents one order in a customer's history.
// AssignmentStatus is empty for orders still in the backlog.
type GetCustomerHistoryQueryResponse struct {
	OrderID          int64
	Items            string
	Address          string
	TotalPrice       float64
	CreatedAt        time.Time
	AssignmentStatus string
}
