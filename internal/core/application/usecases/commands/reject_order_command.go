package commands

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/guard"
)

var ErrRejectOrderCommandIsNotConstructed = errors.New(
	"RejectOrderCommand must be created via NewRejectOrderCommand constructor",
)

// RejectOrderCommand represents an agent declining an assigned order before
// accepting it. Rejection removes the assignment entirely, both the agent
// record and the delivery tracking record, freeing the order for re-assignment.
type RejectOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.OrderID
	agentID kernel.AgentID

	guard guard.ConstructorGuard
}

// NewRejectOrderCommand creates a command for an agent to reject an order.
// Validates that both ids are valid. Returns an error if any validation fails.
func NewRejectOrderCommand(orderID kernel.OrderID, agentID kernel.AgentID) (RejectOrderCommand, error) {
	rejectCommand := RejectOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		rejectCommand.setOrderID(orderID),
		rejectCommand.setAgentID(agentID),
	); err != nil {
		return RejectOrderCommand{}, err
	}

	return rejectCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrRejectOrderCommandIsNotConstructed if validation fails.
func (c RejectOrderCommand) Validate() error {
	return c.guard.Validate(ErrRejectOrderCommandIsNotConstructed)
}

// OrderID returns the id of the order being rejected.
func (c RejectOrderCommand) OrderID() kernel.OrderID {
	return c.orderID
}

// AgentID returns the id of the rejecting agent.
func (c RejectOrderCommand) AgentID() kernel.AgentID {
	return c.agentID
}

func (c *RejectOrderCommand) setOrderID(orderID kernel.OrderID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *RejectOrderCommand) setAgentID(agentID kernel.AgentID) error {
	if err := agentID.Validate(); err != nil {
		return err
	}

	c.agentID = agentID
	return nil
}
