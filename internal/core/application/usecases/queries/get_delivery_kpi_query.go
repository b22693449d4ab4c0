package queries

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/guard"
)

var ErrGetDeliveryKPIQueryIsNotConstructed = errors.New(
	"GetDeliveryKPIQuery must be created via NewGetDeliveryKPIQuery constructor",
)

// GetDeliveryKPIQuery computes delivery performance indicators over delivered
// orders: average delivery duration and on-time rate, overall and broken down
// by calendar month. The query covers all agents unless constructed with a
// specific agent.
//
// Example:
//
//	query := NewGetDeliveryKPIQuery()
//	handler := NewGetDeliveryKPIQueryHandler(db)
//
//	kpi, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to compute KPI: %w", err)
//	}
//	fmt.Printf("Avg %.1f min, %.0f%% on time\n",
//	    kpi.Overall.AvgDeliveryMinutes, kpi.Overall.OnTimeRate*100)
type GetDeliveryKPIQuery struct { //nolint:recvcheck //using for validation
	agentID *kernel.AgentID

	guard guard.ConstructorGuard
}

// NewGetDeliveryKPIQuery creates a query to compute the delivery KPIs
// across all agents.
func NewGetDeliveryKPIQuery() GetDeliveryKPIQuery {
	return GetDeliveryKPIQuery{guard: guard.NewConstructorGuard()}
}

// NewGetDeliveryKPIQueryForAgent creates a query to compute the delivery KPIs
// of a single agent. Validates that the agent id is valid.
func NewGetDeliveryKPIQueryForAgent(agentID kernel.AgentID) (GetDeliveryKPIQuery, error) {
	if err := agentID.Validate(); err != nil {
		return GetDeliveryKPIQuery{}, err
	}

	return GetDeliveryKPIQuery{
		agentID: &agentID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through a constructor.
// Returns ErrGetDeliveryKPIQueryIsNotConstructed if validation fails.
func (q GetDeliveryKPIQuery) Validate() error {
	return q.guard.Validate(ErrGetDeliveryKPIQueryIsNotConstructed)
}

// AgentID returns the agent the query is scoped to and whether a scope is set.
func (q GetDeliveryKPIQuery) AgentID() (kernel.AgentID, bool) {
	if q.agentID == nil {
		return 0, false
	}
	return *q.agentID, true
}

// DeliveryKPI aggregates delivery performance over a set of delivered orders.
// OnTimeRate is the fraction delivered no later than their scheduled time,
// in [0, 1].
type DeliveryKPI struct {
	Deliveries         int
	AvgDeliveryMinutes float64
	OnTimeRate         float64
}

// MonthlyDeliveryKPI is the KPI for one calendar month of deliveries.
// Month is formatted as "2006-01".
type MonthlyDeliveryKPI struct {
	Month string
	DeliveryKPI
}

// GetDeliveryKPIQueryResponse carries the overall KPI and the monthly breakdown.
// Months without deliveries are absent from the breakdown.
type GetDeliveryKPIQueryResponse struct {
	Overall DeliveryKPI
	Monthly []MonthlyDeliveryKPI
}
