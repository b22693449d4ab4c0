package queries

import (
	"context"
	"sort"
	"time"

	"fooddelivery/internal/core/domain/model/assignment"

	"gorm.io/gorm"
)

// GetDeliveryKPIQueryHandler computes delivery KPIs from the tracking records.
// The rows are fetched with a plain filter and aggregated in Go, which keeps
// the SQL portable across the supported database engines.
type GetDeliveryKPIQueryHandler struct {
	db *gorm.DB
}

// NewGetDeliveryKPIQueryHandler creates a handler for delivery KPI queries.
// Requires a GORM database connection for query execution.
func NewGetDeliveryKPIQueryHandler(db *gorm.DB) GetDeliveryKPIQueryHandler {
	return GetDeliveryKPIQueryHandler{db: db}
}

type kpiAccumulator struct {
	deliveries   int
	totalMinutes float64
	onTime       int
}

func (acc *kpiAccumulator) add(pickup, scheduled, delivered time.Time) {
	acc.deliveries++
	acc.totalMinutes += delivered.Sub(pickup).Minutes()
	if !delivered.After(scheduled) {
		acc.onTime++
	}
}

func (acc *kpiAccumulator) kpi() DeliveryKPI {
	if acc.deliveries == 0 {
		return DeliveryKPI{}
	}
	return DeliveryKPI{
		Deliveries:         acc.deliveries,
		AvgDeliveryMinutes: acc.totalMinutes / float64(acc.deliveries),
		OnTimeRate:         float64(acc.onTime) / float64(acc.deliveries),
	}
}

// Handle executes the KPI computation over delivered orders, scoped to one
// agent when the query asks for it.
// Delivery duration is measured from pickup to delivery; a delivery is on
// time when it happened no later than the scheduled time. The monthly
// breakdown buckets deliveries by the month of their delivery time, in UTC.
func (h GetDeliveryKPIQueryHandler) Handle(
	ctx context.Context,
	query GetDeliveryKPIQuery,
) (GetDeliveryKPIQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetDeliveryKPIQueryResponse{}, err
	}

	sql := `
		SELECT
			pickup_time,
			scheduled_delivery_time,
			delivery_time
		FROM delivery_data
		WHERE status = ? AND delivery_time IS NOT NULL
	`
	args := []any{assignment.Delivered.String()}
	if agentID, ok := query.AgentID(); ok {
		sql += ` AND agent_id = ?`
		args = append(args, agentID.Int64())
	}

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return GetDeliveryKPIQueryResponse{}, err
	}
	defer rows.Close()

	var overall kpiAccumulator
	monthly := make(map[string]*kpiAccumulator)

	for rows.Next() {
		var pickup, scheduled, delivered time.Time

		if err = rows.Scan(&pickup, &scheduled, &delivered); err != nil {
			return GetDeliveryKPIQueryResponse{}, err
		}

		overall.add(pickup, scheduled, delivered)

		month := delivered.UTC().Format("2006-01")
		if monthly[month] == nil {
			monthly[month] = &kpiAccumulator{}
		}
		monthly[month].add(pickup, scheduled, delivered)
	}

	if err = rows.Err(); err != nil {
		return GetDeliveryKPIQueryResponse{}, err
	}

	response := GetDeliveryKPIQueryResponse{
		Overall: overall.kpi(),
		Monthly: make([]MonthlyDeliveryKPI, 0, len(monthly)),
	}

	for month, acc := range monthly {
		response.Monthly = append(response.Monthly, MonthlyDeliveryKPI{
			Month:       month,
			DeliveryKPI: acc.kpi(),
		})
	}

	sort.Slice(response.Monthly, func(i, j int) bool {
		return response.Monthly[i].Month < response.Monthly[j].Month
	})

	return response, nil
}
