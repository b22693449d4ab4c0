package kernel

import (
	"fmt"
	"strconv"

	"fooddelivery/internal/pkg/errs"
)

// OrderID is a stable numeric identifier referencing an order in the order store.
// Order ids are assigned by the store at creation time and never reused.
// The zero value is invalid; construct via NewOrderID or receive one from the store.
//
// Example:
//
//	id, err := kernel.NewOrderID(42)
//	if err != nil {
//	    // handle invalid id
//	}
type OrderID int64

// NewOrderID creates an OrderID from a raw value, validating that it is positive.
func NewOrderID(v int64) (OrderID, error) {
	id := OrderID(v)
	if err := id.Validate(); err != nil {
		return 0, err
	}
	return id, nil
}

// Validate checks that the OrderID is a positive identifier.
// Returns a value-is-invalid error for zero or negative values.
func (id OrderID) Validate() error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("order id is invalid",
			fmt.Errorf("%d is not greater than 0", id))
	}
	return nil
}

// Int64 returns the raw numeric value for persistence and transport.
func (id OrderID) Int64() int64 {
	return int64(id)
}

// String returns the decimal representation of the OrderID.
func (id OrderID) String() string {
	return strconv.FormatInt(int64(id), 10)
}

// AgentID is a stable numeric identifier referencing a delivery agent.
// Agents are managed by the registration flow outside this service; the core
// only references them by id. The zero value is invalid.
type AgentID int64

// NewAgentID creates an AgentID from a raw value, validating that it is positive.
func NewAgentID(v int64) (AgentID, error) {
	id := AgentID(v)
	if err := id.Validate(); err != nil {
		return 0, err
	}
	return id, nil
}

// Validate checks that the AgentID is a positive identifier.
// Returns a value-is-invalid error for zero or negative values.
func (id AgentID) Validate() error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("agent id is invalid",
			fmt.Errorf("%d is not greater than 0", id))
	}
	return nil
}

// Int64 returns the raw numeric value for persistence and transport.
func (id AgentID) Int64() int64 {
	return int64(id)
}

// String returns the decimal representation of the AgentID.
func (id AgentID) String() string {
	return strconv.FormatInt(int64(id), 10)
}
