package commands

import (
	"context"
)

// RefreshAgentPerformanceCommandHandler handles performance rollup refreshes.
// Delegates the recomputation to the performance repository and commits the
// replaced snapshot as one transaction.
type RefreshAgentPerformanceCommandHandler struct {
	uowFactory PerformanceUoWFactory
}

// NewRefreshAgentPerformanceCommandHandler creates a handler for rollup refreshes.
// Requires a PerformanceUoWFactory for transactional persistence.
func NewRefreshAgentPerformanceCommandHandler(
	uowFactory PerformanceUoWFactory,
) RefreshAgentPerformanceCommandHandler {
	return RefreshAgentPerformanceCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the rollup refresh command.
// The previous snapshot stays visible until the replacing transaction commits.
// Transient storage contention is retried once before the error surfaces.
func (h RefreshAgentPerformanceCommandHandler) Handle(
	ctx context.Context, command RefreshAgentPerformanceCommand,
) error {
	if err := command.Validate(); err != nil {
		return err
	}

	return retryTransient(ctx, func() error {
		return h.handle(ctx, command)
	})
}

func (h RefreshAgentPerformanceCommandHandler) handle(ctx context.Context, command RefreshAgentPerformanceCommand) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.PerformanceRepository().Refresh(ctx); err != nil {
		return err
	}

	if err := uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
