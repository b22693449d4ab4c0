package commands

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/guard"
)

var ErrCompleteOrderCommandIsNotConstructed = errors.New(
	"CompleteOrderCommand must be created via NewCompleteOrderCommand constructor",
)

// CompleteOrderCommand represents an agent marking an accepted order as
// delivered. The workflow moves to Completed and the delivery tracking record
// to Delivered with the delivery time stamped.
type CompleteOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.OrderID
	agentID kernel.AgentID

	guard guard.ConstructorGuard
}

// NewCompleteOrderCommand creates a command for an agent to complete an order.
// Validates that both ids are valid. Returns an error if any validation fails.
func NewCompleteOrderCommand(orderID kernel.OrderID, agentID kernel.AgentID) (CompleteOrderCommand, error) {
	completeCommand := CompleteOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		completeCommand.setOrderID(orderID),
		completeCommand.setAgentID(agentID),
	); err != nil {
		return CompleteOrderCommand{}, err
	}

	return completeCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCompleteOrderCommandIsNotConstructed if validation fails.
func (c CompleteOrderCommand) Validate() error {
	return c.guard.Validate(ErrCompleteOrderCommandIsNotConstructed)
}

// OrderID returns the id of the order being completed.
func (c CompleteOrderCommand) OrderID() kernel.OrderID {
	return c.orderID
}

// AgentID returns the id of the completing agent.
func (c CompleteOrderCommand) AgentID() kernel.AgentID {
	return c.agentID
}

func (c *CompleteOrderCommand) setOrderID(orderID kernel.OrderID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CompleteOrderCommand) setAgentID(agentID kernel.AgentID) error {
	if err := agentID.Validate(); err != nil {
		return err
	}

	c.agentID = agentID
	return nil
}
