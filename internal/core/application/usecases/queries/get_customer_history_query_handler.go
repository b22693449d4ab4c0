package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetCustomerHistoryQueryHandler reads a customer's orders joined with their
// assignment records.
type GetCustomerHistoryQueryHandler struct {
	db *gorm.DB
}

// NewGetCustomerHistoryQueryHandler creates a handler for customer history queries.
// Requires a GORM database connection for query execution.
func NewGetCustomerHistoryQueryHandler(db *gorm.DB) GetCustomerHistoryQueryHandler {
	return GetCustomerHistoryQueryHandler{db: db}
}

// Handle executes the query to retrieve a customer's order history.
// Orders without an assignment carry an empty status. Results are sorted
// newest first.
func (h GetCustomerHistoryQueryHandler) Handle(
	ctx context.Context,
	query GetCustomerHistoryQuery,
) ([]GetCustomerHistoryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	history := make([]GetCustomerHistoryQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.items,
			o.address,
			o.total_price,
			o.created_at,
			COALESCE(a.status, '')
		FROM orders o
		LEFT JOIN assigned_orders a ON a.order_id = o.id
		WHERE o.customer_name = ?
		ORDER BY o.created_at DESC, o.id DESC
	`, query.CustomerName()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetCustomerHistoryQueryResponse

		err = rows.Scan(
			&resp.OrderID,
			&resp.Items,
			&resp.Address,
			&resp.TotalPrice,
			&resp.CreatedAt,
			&resp.AssignmentStatus,
		)
		if err != nil {
			return nil, err
		}

		history = append(history, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return history, nil
}
