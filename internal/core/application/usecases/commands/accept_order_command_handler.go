package commands

import (
	"context"

	"fooddelivery/internal/core/domain/model/assignment"
)

// AcceptOrderCommandHandler handles the business logic for an agent accepting
// an assigned order. The workflow moves to In Progress and the delivery
// tracking record to In Transit in the same transaction.
//
// The update is guarded by the statuses the handler observed when it loaded
// the assignment. If a concurrent writer changed the assignment in between,
// the guarded update misses and the agent receives
// assignment.ErrInvalidTransition instead of silently overwriting.
type AcceptOrderCommandHandler struct {
	uowFactory AssignmentUoWFactory
}

// NewAcceptOrderCommandHandler creates a handler for order acceptance operations.
// Requires an AssignmentUoWFactory for transactional persistence.
func NewAcceptOrderCommandHandler(uowFactory AssignmentUoWFactory) AcceptOrderCommandHandler {
	return AcceptOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order acceptance command.
// Returns errs.ObjectNotFoundError when the order has no assignment,
// assignment.ErrNotAssignedAgent when a different agent tries to accept, and
// assignment.ErrInvalidTransition when the assignment is no longer waiting.
// Transient storage contention is retried once before the error surfaces.
func (h AcceptOrderCommandHandler) Handle(ctx context.Context, command AcceptOrderCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	return retryTransient(ctx, func() error {
		return h.handle(ctx, command)
	})
}

func (h AcceptOrderCommandHandler) handle(ctx context.Context, command AcceptOrderCommand) error {
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

	if err = aggregate.Accept(); err != nil {
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
