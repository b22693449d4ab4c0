package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetBacklogQueryHandler retrieves orders with no delivery record yet.
// An order enters the backlog the moment it is placed and leaves it when an
// assignment writes its delivery tracking row.
type GetBacklogQueryHandler struct {
	db *gorm.DB
}

// NewGetBacklogQueryHandler creates a handler for backlog queries.
// Requires a GORM database connection for query execution.
func NewGetBacklogQueryHandler(db *gorm.DB) GetBacklogQueryHandler {
	return GetBacklogQueryHandler{db: db}
}

// Handle executes the query to retrieve all unassigned orders.
// Results are sorted oldest first, which is the order a dispatcher works
// through them.
func (h GetBacklogQueryHandler) Handle(
	ctx context.Context,
	query GetBacklogQuery,
) ([]GetBacklogQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	backlog := make([]GetBacklogQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			customer_name,
			items,
			address,
			total_price,
			created_at
		FROM orders
		WHERE id NOT IN (SELECT order_id FROM delivery_data)
		ORDER BY created_at, id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetBacklogQueryResponse

		err = rows.Scan(
			&resp.OrderID,
			&resp.CustomerName,
			&resp.Items,
			&resp.Address,
			&resp.TotalPrice,
			&resp.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		backlog = append(backlog, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return backlog, nil
}
