package commands

import (
	"context"
	"time"
)

// ReportTransitStatusCommandHandler handles agent-reported transit status
// changes. The aggregate authorizes the reporting agent, validates the move
// against the transit state machine, and re-derives the workflow status, so
// a report through this channel can never leave the two records disagreeing.
type ReportTransitStatusCommandHandler struct {
	uowFactory AssignmentUoWFactory
}

// NewReportTransitStatusCommandHandler creates a handler for transit status reports.
// Requires an AssignmentUoWFactory for transactional persistence.
func NewReportTransitStatusCommandHandler(uowFactory AssignmentUoWFactory) ReportTransitStatusCommandHandler {
	return ReportTransitStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the transit status report.
// Returns errs.ObjectNotFoundError when no delivery record carries the id,
// assignment.ErrNotAssignedAgent when the reporter is not the assigned agent,
// and assignment.ErrInvalidTransition when the move is not allowed from the
// current transit status.
// Transient storage contention is retried once before the error surfaces.
func (h ReportTransitStatusCommandHandler) Handle(ctx context.Context, command ReportTransitStatusCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	return retryTransient(ctx, func() error {
		return h.handle(ctx, command)
	})
}

func (h ReportTransitStatusCommandHandler) handle(ctx context.Context, command ReportTransitStatusCommand) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	assignmentRepo := uow.AssignmentRepository()

	aggregate, err := assignmentRepo.GetByID(ctx, command.DeliveryID())
	if err != nil {
		return err
	}

	observedWorkflow := aggregate.WorkflowStatus()
	observedTransit := aggregate.TransitStatus()

	if err = aggregate.ReportTransit(command.AgentID(), command.Target(), time.Now().UTC()); err != nil {
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
