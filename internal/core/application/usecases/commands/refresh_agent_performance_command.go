package commands

import (
	"errors"

	"fooddelivery/internal/pkg/guard"
)

var ErrRefreshAgentPerformanceCommandIsNotConstructed = errors.New(
	"RefreshAgentPerformanceCommand must be created via NewRefreshAgentPerformanceCommand constructor",
)

// RefreshAgentPerformanceCommand triggers a recomputation of the per-agent
// monthly performance rollups from the delivery tracking records.
// Runs on a schedule and can also be invoked on demand.
//
// Example:
//
//	cmd := NewRefreshAgentPerformanceCommand()
//	handler := NewRefreshAgentPerformanceCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    log.Printf("Rollup refresh failed: %v", err)
//	}
type RefreshAgentPerformanceCommand struct {
	guard guard.ConstructorGuard
}

// NewRefreshAgentPerformanceCommand creates a new command to refresh the rollups.
// This is a parameterless command: the refresh always covers all agents.
func NewRefreshAgentPerformanceCommand() RefreshAgentPerformanceCommand {
	return RefreshAgentPerformanceCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
// Returns ErrRefreshAgentPerformanceCommandIsNotConstructed if validation fails.
func (c *RefreshAgentPerformanceCommand) Validate() error {
	return c.guard.Validate(
		ErrRefreshAgentPerformanceCommandIsNotConstructed,
	)
}
