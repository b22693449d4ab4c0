package commands

import (
	"errors"

	"fooddelivery/internal/core/domain/model/assignment"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/guard"
)

var ErrReportTransitStatusCommandIsNotConstructed = errors.New(
	"ReportTransitStatusCommand must be created via NewReportTransitStatusCommand constructor",
)

// ReportTransitStatusCommand represents an agent reporting the physical
// fulfilment state of a delivery: picked up, delivered, or cancelled.
// This is the free-form status channel of the agent dashboard, keyed by the
// delivery record id rather than the order; the workflow status is re-derived
// from the reported transit status so the two records stay consistent.
type ReportTransitStatusCommand struct { //nolint:recvcheck //using for validation
	deliveryID kernel.UUID
	agentID    kernel.AgentID
	target     assignment.TransitStatus

	guard guard.ConstructorGuard
}

// NewReportTransitStatusCommand creates a command for an agent to report a
// transit status. Validates the ids and that the target is a valid transit
// status. Returns an error if any validation fails.
func NewReportTransitStatusCommand(
	deliveryID kernel.UUID,
	agentID kernel.AgentID,
	target assignment.TransitStatus,
) (ReportTransitStatusCommand, error) {
	reportCommand := ReportTransitStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		reportCommand.setDeliveryID(deliveryID),
		reportCommand.setAgentID(agentID),
		reportCommand.setTarget(target),
	); err != nil {
		return ReportTransitStatusCommand{}, err
	}

	return reportCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrReportTransitStatusCommandIsNotConstructed if validation fails.
func (c ReportTransitStatusCommand) Validate() error {
	return c.guard.Validate(ErrReportTransitStatusCommandIsNotConstructed)
}

// DeliveryID returns the id of the delivery record being reported on.
func (c ReportTransitStatusCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

// AgentID returns the id of the reporting agent.
func (c ReportTransitStatusCommand) AgentID() kernel.AgentID {
	return c.agentID
}

// Target returns the reported transit status.
func (c ReportTransitStatusCommand) Target() assignment.TransitStatus {
	return c.target
}

func (c *ReportTransitStatusCommand) setDeliveryID(deliveryID kernel.UUID) error {
	if err := deliveryID.Validate(); err != nil {
		return err
	}

	c.deliveryID = deliveryID
	return nil
}

func (c *ReportTransitStatusCommand) setAgentID(agentID kernel.AgentID) error {
	if err := agentID.Validate(); err != nil {
		return err
	}

	c.agentID = agentID
	return nil
}

func (c *ReportTransitStatusCommand) setTarget(target assignment.TransitStatus) error {
	if err := target.Validate(); err != nil {
		return err
	}

	c.target = target
	return nil
}
