// Package queries contains read-only operations for the food delivery system.
// Implements the Query side of the CQRS architecture: handlers read the
// projection tables directly and return plain response structs, bypassing the
// domain aggregates.
package queries

import (
	"errors"
	"time"

	"fooddelivery/internal/pkg/guard"
)

var ErrGetBacklogQueryIsNotConstructed = errors.New(
	"GetBacklogQuery must be created via NewGetBacklogQuery constructor",
)

// GetBacklogQuery retrieves all orders that have no delivery scheduled yet.
// These are the orders a dispatcher still needs to hand to an agent.
//
// Example:
//
//	query := NewGetBacklogQuery()
//	handler := NewGetBacklogQueryHandler(db)
//
//	backlog, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get backlog: %w", err)
//	}
//	fmt.Printf("%d orders awaiting assignment\n", len(backlog))
type GetBacklogQuery struct {
	guard guard.ConstructorGuard
}

// NewGetBacklogQuery creates a query to retrieve unassigned orders.
// This is a parameterless query.
func NewGetBacklogQuery() GetBacklogQuery {
	return GetBacklogQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetBacklogQueryIsNotConstructed if validation fails.
func (q GetBacklogQuery) Validate() error {
	return q.guard.Validate(ErrGetBacklogQueryIsNotConstructed)
}

// GetBacklogQueryResponse represents one order awaiting assignment.
type GetBacklogQueryResponse struct {
	OrderID      int64
	CustomerName string
	Items        string
	Address      string
	TotalPrice   float64
	CreatedAt    time.Time
}
