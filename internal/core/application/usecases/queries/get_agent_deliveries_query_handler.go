package queries

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

// GetAgentDeliveriesQueryHandler reads the delivery tracking records.
type GetAgentDeliveriesQueryHandler struct {
	db *gorm.DB
}

// NewGetAgentDeliveriesQueryHandler creates a handler for agent delivery queries.
// Requires a GORM database connection for query execution.
func NewGetAgentDeliveriesQueryHandler(db *gorm.DB) GetAgentDeliveriesQueryHandler {
	return GetAgentDeliveriesQueryHandler{db: db}
}

// Handle executes the query to retrieve an agent's delivery records.
// Returns every tracking record for the agent, terminal ones included,
// newest scheduled delivery first.
func (h GetAgentDeliveriesQueryHandler) Handle(
	ctx context.Context,
	query GetAgentDeliveriesQuery,
) ([]GetAgentDeliveriesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	deliveries := make([]GetAgentDeliveriesQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			order_id,
			status,
			pickup_time,
			scheduled_delivery_time,
			delivery_time
		FROM delivery_data
		WHERE agent_id = ?
		ORDER BY scheduled_delivery_time DESC, order_id DESC
	`, query.AgentID().Int64()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetAgentDeliveriesQueryResponse
		var deliveryTime sql.NullTime

		err = rows.Scan(
			&resp.OrderID,
			&resp.Status,
			&resp.PickupTime,
			&resp.ScheduledDeliveryTime,
			&deliveryTime,
		)
		if err != nil {
			return nil, err
		}

		if deliveryTime.Valid {
			resp.DeliveryTime = &deliveryTime.Time
		}

		deliveries = append(deliveries, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return deliveries, nil
}
