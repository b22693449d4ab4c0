package queries

import (
	"errors"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/guard"
)

var ErrGetAgentDeliveriesQueryIsNotConstructed = errors.New(
	"GetAgentDeliveriesQuery must be created via NewGetAgentDeliveriesQuery constructor",
)

// GetAgentDeliveriesQuery retrieves the delivery tracking records for one
// agent, including finished ones. This is the transit-side view of the
// agent's work with pickup and delivery timestamps.
type GetAgentDeliveriesQuery struct { //nolint:recvcheck //using for validation
	agentID kernel.AgentID

	guard guard.ConstructorGuard
}

// NewGetAgentDeliveriesQuery creates a query for an agent's deliveries.
// Validates that the agent id is valid.
func NewGetAgentDeliveriesQuery(agentID kernel.AgentID) (GetAgentDeliveriesQuery, error) {
	query := GetAgentDeliveriesQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := agentID.Validate(); err != nil {
		return GetAgentDeliveriesQuery{}, err
	}
	query.agentID = agentID

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetAgentDeliveriesQueryIsNotConstructed if validation fails.
func (q GetAgentDeliveriesQuery) Validate() error {
	return q.guard.Validate(ErrGetAgentDeliveriesQueryIsNotConstructed)
}

// AgentID returns the id of the agent whose deliveries are requested.
func (q GetAgentDeliveriesQuery) AgentID() kernel.AgentID {
	return q.agentID
}

// GetAgentDeliveriesQueryResponse represents one delivery tracking record.
// DeliveryTime is nil until the order is delivered.
type GetAgentDeliveriesQueryResponse struct {
	OrderID               int64
	Status                string
	PickupTime            time.Time
	ScheduledDeliveryTime time.Time
	DeliveryTime          *time.Time
}
