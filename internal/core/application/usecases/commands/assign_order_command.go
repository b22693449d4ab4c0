package commands

import (
	"errors"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/guard"
)

var (
	ErrAssignOrderCommandIsNotConstructed = errors.New(
		"AssignOrderCommand must be created via NewAssignOrderCommand constructor",
	)
	ErrScheduledDeliveryTimeIsRequired = errors.New("scheduled delivery time is required")
)

// AssignOrderCommand represents a request to hand an order to a delivery agent.
// Carries the order, the chosen agent, and the promised delivery deadline.
//
// Example:
//
//	orderID, _ := kernel.NewOrderID(42)
//	agentID, _ := kernel.NewAgentID(7)
//	cmd, err := NewAssignOrderCommand(orderID, agentID, deadline)
//	if err != nil {
//	    return fmt.Errorf("invalid assignment data: %w", err)
//	}
//
//	handler := NewAssignOrderCommandHandler(uowFactory)
//	assignmentID, err := handler.Handle(ctx, cmd)
type AssignOrderCommand struct { //nolint:recvcheck //using for validation
	orderID               kernel.OrderID
	agentID               kernel.AgentID
	scheduledDeliveryTime time.Time

	guard guard.ConstructorGuard
}

// NewAssignOrderCommand creates a command to assign an order to an agent.
// Validates that both ids are valid and the deadline is set.
// Returns an error if any validation fails.
func NewAssignOrderCommand(
	orderID kernel.OrderID,
	agentID kernel.AgentID,
	scheduledDeliveryTime time.Time,
) (AssignOrderCommand, error) {
	assignCommand := AssignOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		assignCommand.setOrderID(orderID),
		assignCommand.setAgentID(agentID),
		assignCommand.setScheduledDeliveryTime(scheduledDeliveryTime),
	); err != nil {
		return AssignOrderCommand{}, err
	}

	return assignCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAssignOrderCommandIsNotConstructed if validation fails.
func (c AssignOrderCommand) Validate() error {
	return c.guard.Validate(ErrAssignOrderCommandIsNotConstructed)
}

// OrderID returns the id of the order to assign.
func (c AssignOrderCommand) OrderID() kernel.OrderID {
	return c.orderID
}

// AgentID returns the id of the receiving delivery agent.
func (c AssignOrderCommand) AgentID() kernel.AgentID {
	return c.agentID
}

// ScheduledDeliveryTime returns the promised delivery deadline.
func (c AssignOrderCommand) ScheduledDeliveryTime() time.Time {
	return c.scheduledDeliveryTime
}

func (c *AssignOrderCommand) setOrderID(orderID kernel.OrderID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AssignOrderCommand) setAgentID(agentID kernel.AgentID) error {
	if err := agentID.Validate(); err != nil {
		return err
	}

	c.agentID = agentID
	return nil
}

func (c *AssignOrderCommand) setScheduledDeliveryTime(scheduledDeliveryTime time.Time) error {
	if scheduledDeliveryTime.IsZero() {
		return ErrScheduledDeliveryTimeIsRequired
	}

	c.scheduledDeliveryTime = scheduledDeliveryTime
	return nil
}
