package queries

import (
	"context"

	"fooddelivery/internal/core/domain/model/assignment"

	"gorm.io/gorm"
)

// GetAgentQueueQueryHandler reads the agent-facing assignment records.
type GetAgentQueueQueryHandler struct {
	db *gorm.DB
}

// NewGetAgentQueueQueryHandler creates a handler for agent queue queries.
// Requires a GORM database connection for query execution.
func NewGetAgentQueueQueryHandler(db *gorm.DB) GetAgentQueueQueryHandler {
	return GetAgentQueueQueryHandler{db: db}
}

// Handle executes the query to retrieve the assignments an agent has not
// acted on yet. Only assignments still in New workflow status are returned,
// oldest order first; accepting or rejecting removes an order from the queue,
// and a cancelled delivery drops out even though its workflow record still
// reads New.
func (h GetAgentQueueQueryHandler) Handle(
	ctx context.Context,
	query GetAgentQueueQuery,
) ([]GetAgentQueueQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	queue := make([]GetAgentQueueQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			order_id,
			customer_name,
			note,
			status
		FROM assigned_orders
		WHERE agent_id = ? AND status = ?
		  AND NOT EXISTS (
			SELECT 1 FROM delivery_data dd
			WHERE dd.order_id = assigned_orders.order_id AND dd.status = ?
		  )
		ORDER BY order_id
	`, query.AgentID().Int64(), assignment.New.String(), assignment.Cancelled.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetAgentQueueQueryResponse

		err = rows.Scan(
			&resp.OrderID,
			&resp.CustomerName,
			&resp.Note,
			&resp.Status,
		)
		if err != nil {
			return nil, err
		}

		queue = append(queue, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return queue, nil
}
