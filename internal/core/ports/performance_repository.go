package ports

import (
	"context"
)

// PerformanceRepository maintains the per-agent monthly performance rollups
// derived from delivered assignments.
type PerformanceRepository interface {
	// Refresh recomputes the rollups from the delivery tracking records and
	// replaces the stored snapshot. Months without deliveries produce no rows.
	Refresh(ctx context.Context) error
}
