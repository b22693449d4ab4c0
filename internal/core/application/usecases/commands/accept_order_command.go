package commands

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/guard"
)

var ErrAcceptOrderCommandIsNotConstructed = errors.New(
	"AcceptOrderCommand must be created via NewAcceptOrderCommand constructor",
)

// AcceptOrderCommand represents an agent taking responsibility for an
// assigned order. Only the assigned agent may accept, and only while the
// assignment is still waiting.
type AcceptOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.OrderID
	agentID kernel.AgentID

	guard guard.ConstructorGuard
}

// NewAcceptOrderCommand creates a command for an agent to accept an order.
// Validates that both ids are valid. Returns an error if any validation fails.
func NewAcceptOrderCommand(orderID kernel.OrderID, agentID kernel.AgentID) (AcceptOrderCommand, error) {
	acceptCommand := AcceptOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		acceptCommand.setOrderID(orderID),
		acceptCommand.setAgentID(agentID),
	); err != nil {
		return AcceptOrderCommand{}, err
	}

	return acceptCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAcceptOrderCommandIsNotConstructed if validation fails.
func (c AcceptOrderCommand) Validate() error {
	return c.guard.Validate(ErrAcceptOrderCommandIsNotConstructed)
}

// OrderID returns the id of the order being accepted.
func (c AcceptOrderCommand) OrderID() kernel.OrderID {
	return c.orderID
}

// AgentID returns the id of the accepting agent.
func (c AcceptOrderCommand) AgentID() kernel.AgentID {
	return c.agentID
}

func (c *AcceptOrderCommand) setOrderID(orderID kernel.OrderID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AcceptOrderCommand) setAgentID(agentID kernel.AgentID) error {
	if err := agentID.Validate(); err != nil {
		return err
	}

	c.agentID = agentID
	return nil
}
