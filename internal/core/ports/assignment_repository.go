package ports

import (
	"context"

	"fooddelivery/internal/core/domain/model/assignment"
	"fooddelivery/internal/core/domain/model/kernel"
)

// AssignmentRepository defines the persistence contract for assignment
// aggregates. An assignment is stored as two projection rows sharing one id:
// the agent-facing assignment record and the delivery tracking record. The
// repository writes both rows for every operation so they cannot drift apart.
//
// Update and Delete take the status the caller observed when it loaded the
// aggregate and apply the change only if the stored row still matches. When a
// concurrent writer got there first the operation reports
// assignment.ErrInvalidTransition, which surfaces to the loser of the race as
// a rejected precondition.
type AssignmentRepository interface {
	// Add persists a new assignment. Returns assignment.ErrAlreadyAssigned
	// when the order already has an assignment record.
	Add(ctx context.Context, aggregate *assignment.Assignment) error

	// Update persists the aggregate's current state guarded by the statuses
	// the caller observed. Both projection rows are written in one step.
	// Returns assignment.ErrInvalidTransition when the stored statuses no
	// longer match the expected ones.
	Update(ctx context.Context, aggregate *assignment.Assignment,
		expectedWorkflow assignment.WorkflowStatus, expectedTransit assignment.TransitStatus) error

	// Delete removes both projection rows, guarded by the observed workflow
	// status. Used for rejection and for clearing a cancelled assignment
	// before re-assigning the order.
	// Returns assignment.ErrInvalidTransition when the stored status no
	// longer matches the expected one.
	Delete(ctx context.Context, aggregate *assignment.Assignment,
		expectedWorkflow assignment.WorkflowStatus) error

	// GetByID retrieves an assignment by its record identifier.
	// Returns errs.ObjectNotFoundError when no such assignment exists.
	GetByID(ctx context.Context, id kernel.UUID) (*assignment.Assignment, error)

	// GetByOrderID retrieves the assignment for an order.
	// Returns errs.ObjectNotFoundError when the order has no assignment.
	GetByOrderID(ctx context.Context, orderID kernel.OrderID) (*assignment.Assignment, error)
}
