package commands

import (
	"context"
	"errors"
	"time"

	"fooddelivery/internal/core/domain/model/assignment"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
)

// AssignOrderCommandHandler orchestrates handing an order to a delivery agent.
// Resolves the customer name from the order store, enforces the one active
// assignment per order rule, and writes both assignment projections in a
// single transaction.
//
// Example:
//
//	handler := NewAssignOrderCommandHandler(uowFactory)
//	assignmentID, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, assignment.ErrAlreadyAssigned):
//	    log.Println("Order is already being fulfilled")
//	case err != nil:
//	    log.Printf("Assignment failed: %v", err)
//	default:
//	    log.Printf("Assignment %s created", assignmentID)
//	}
type AssignOrderCommandHandler struct {
	uowFactory UoWFactory
}

// NewAssignOrderCommandHandler creates a handler for order assignment operations.
// Requires a UoWFactory for coordinating transactional updates across repositories.
func NewAssignOrderCommandHandler(uowFactory UoWFactory) AssignOrderCommandHandler {
	return AssignOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order assignment command.
//
// A missing customer name does not block assignment: the record is created
// with the unknown-customer sentinel instead. An existing active assignment
// for the order yields assignment.ErrAlreadyAssigned; a cancelled one is
// cleared and replaced. The unique index on the order id backstops the rare
// race where two assignments for the same order commit concurrently, so the
// loser also observes ErrAlreadyAssigned. Transient storage contention is
// retried once before the error surfaces.
func (h AssignOrderCommandHandler) Handle(ctx context.Context, command AssignOrderCommand) (kernel.UUID, error) {
	if err := command.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	return retryTransientData(ctx, func() (kernel.UUID, error) {
		return h.handle(ctx, command)
	})
}

func (h AssignOrderCommandHandler) handle(ctx context.Context, command AssignOrderCommand) (kernel.UUID, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return kernel.UUID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	assignmentRepo := uow.AssignmentRepository()

	customerName, err := orderRepo.LookupCustomerName(ctx, command.OrderID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		customerName = assignment.UnknownCustomerName
	} else if err != nil {
		return kernel.UUID{}, err
	}

	existing, err := assignmentRepo.GetByOrderID(ctx, command.OrderID())
	switch {
	case err == nil && existing.TransitStatus() == assignment.Cancelled:
		// A cancelled assignment frees the order; clear it before re-assigning.
		if err = assignmentRepo.Delete(ctx, existing, existing.WorkflowStatus()); err != nil {
			return kernel.UUID{}, err
		}
	case err == nil:
		return kernel.UUID{}, assignment.ErrAlreadyAssigned
	case !errors.Is(err, errs.ErrObjectNotFound):
		return kernel.UUID{}, err
	}

	aggregate, err := assignment.NewAssignment(
		kernel.NewUUID(),
		command.OrderID(),
		command.AgentID(),
		customerName,
		time.Now().UTC(),
		command.ScheduledDeliveryTime(),
	)
	if err != nil {
		return kernel.UUID{}, err
	}

	if err = assignmentRepo.Add(ctx, aggregate); err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.UUID{}, err
	}

	return aggregate.ID(), nil
}
