package commands

import (
	"context"
	"time"

	"fooddelivery/internal/core/domain/model/assignment"
)

// CompleteOrderCommandHandler handles the business logic for marking an order
// as delivered. The workflow record and the delivery tracking record are
// updated together, so a completed assignment always carries a delivery time.
type CompleteOrderCommandHandler struct {
	uowFactory AssignmentUoWFactory
}

// NewCompleteOrderCommandHandler creates a handler for order completion operations.
// Requires an AssignmentUoWFactory for transactional persistence.
func NewCompleteOrderCommandHandler(uowFactory AssignmentUoWFactory) CompleteOrderCommandHandler {
	return CompleteOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order completion command.
// Returns errs.ObjectNotFoundError when the order has no assignment,
// assignment.ErrNotAssignedAgent when a different agent tries to complete,
// and assignment.ErrInvalidTransition when the assignment was never accepted
// or is already terminal.
// Transient storage contention is retried once before the error surfaces.
func (h CompleteOrderCommandHandler) Handle(ctx context.Context, command CompleteOrderCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	return retryTransient(ctx, func() error {
		return h.handle(ctx, command)
	})
}

func (h CompleteOrderCommandHandler) handle(ctx context.Context, command CompleteOrderCommand) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	assignmentRepo := uow.AssignmentRepository()

	aggregate, err := assignmentRepo.GetByOrderID(ctx, command.OrderID())
	if err != nil {
		return err
	}

	if command.AgentID() != aggregate.AgentID() {
		return assignment.ErrNotAssignedAgent
	}

	observedWorkflow := aggregate.WorkflowStatus()
	observedTransit := aggregate.TransitStatus()

	if err = aggregate.Complete(time.Now().UTC()); err != nil {
		return err
	}

	if err = assignmentRepo.Update(ctx, aggregate, observedWorkflow, observedTransit); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
