package commands

import (
	"context"

	"fooddelivery/internal/core/domain/model/assignment"
)

// RejectOrderCommandHandler handles the business logic for an agent rejecting
// an assigned order. Both projection rows are deleted in one transaction, so
// rejection can never leave an orphaned delivery tracking record behind.
type RejectOrderCommandHandler struct {
	uowFactory AssignmentUoWFactory
}

// NewRejectOrderCommandHandler creates a handler for order rejection operations.
// Requires an AssignmentUoWFactory for transactional persistence.
func NewRejectOrderCommandHandler(uowFactory AssignmentUoWFactory) RejectOrderCommandHandler {
	return RejectOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order rejection command.
// Returns errs.ObjectNotFoundError when the order has no assignment,
// assignment.ErrNotAssignedAgent when a different agent tries to reject, and
// assignment.ErrInvalidTransition when the assignment was already accepted.
// Transient storage contention is retried once before the error surfaces.
func (h RejectOrderCommandHandler) Handle(ctx context.Context, command RejectOrderCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	return retryTransient(ctx, func() error {
		return h.handle(ctx, command)
	})
}

func (h RejectOrderCommandHandler) handle(ctx context.Context, command RejectOrderCommand) error {
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

	if err = aggregate.ValidateReject(); err != nil {
		return err
	}

	if err = assignmentRepo.Delete(ctx, aggregate, assignment.New); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
