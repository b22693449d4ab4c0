package queries

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/guard"
)

var ErrGetAgentQueueQueryIsNotConstructed = errors.New(
	"GetAgentQueueQuery must be created via NewGetAgentQueueQuery constructor",
)

// GetAgentQueueQuery retrieves the assignments waiting on one delivery agent:
// the orders handed to the agent that have not been accepted or rejected yet.
// This is what the agent's dashboard polls.
type GetAgentQueueQuery struct { //nolint:recvcheck //using for validation
	agentID kernel.AgentID

	guard guard.ConstructorGuard
}

// NewGetAgentQueueQuery creates a query for an agent's open assignments.
// Validates that the agent id is valid.
func NewGetAgentQueueQuery(agentID kernel.AgentID) (GetAgentQueueQuery, error) {
	query := GetAgentQueueQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := agentID.Validate(); err != nil {
		return GetAgentQueueQuery{}, err
	}
	query.agentID = agentID

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetAgentQueueQueryIsNotConstructed if validation fails.
func (q GetAgentQueueQuery) Validate() error {
	return q.guard.Validate(ErrGetAgentQueueQueryIsNotConstructed)
}

// AgentID returns the id of the agent whose queue is requested.
func (q GetAgentQueueQuery) AgentID() kernel.AgentID {
	return q.agentID
}

// GetAgentQueueQueryResponse represents one waiting assignment on the agent dashboard.
type GetAgentQueueQueryResponse struct {
	OrderID      int64
	CustomerName string
	Note         string
	Status       string
}
