package perfrepo

import (
	"context"
	"sort"

	"fooddelivery/internal/adapters/out/postgres/assignmentrepo"
	"fooddelivery/internal/core/domain/model/assignment"

	"gorm.io/gorm"
)

// GormPerformanceRepository implements PerformanceRepository using GORM.
type GormPerformanceRepository struct {
	db *gorm.DB
}

// NewGormPerformanceRepository creates a new GORM performance repository.
func NewGormPerformanceRepository(db *gorm.DB) *GormPerformanceRepository {
	return &GormPerformanceRepository{db: db}
}

type performanceKey struct {
	agentID int64
	month   string
}

type performanceAccumulator struct {
	deliveries   int
	totalMinutes float64
	onTime       int
}

// Refresh rebuilds the agent_performance snapshot from delivered
// assignments. The previous snapshot is replaced wholesale.
func (r *GormPerformanceRepository) Refresh(ctx context.Context) error {
	var deliveries []assignmentrepo.DeliveryDataDTO
	err := r.db.WithContext(ctx).
		Where("status = ? AND delivery_time IS NOT NULL", assignment.Delivered.String()).
		Find(&deliveries).Error
	if err != nil {
		return err
	}

	accumulators := make(map[performanceKey]*performanceAccumulator)
	for _, delivery := range deliveries {
		deliveredAt := delivery.DeliveryTime.UTC()
		key := performanceKey{
			agentID: delivery.AgentID,
			month:   deliveredAt.Format("2006-01"),
		}

		acc, ok := accumulators[key]
		if !ok {
			acc = &performanceAccumulator{}
			accumulators[key] = acc
		}

		acc.deliveries++
		acc.totalMinutes += deliveredAt.Sub(delivery.PickupTime).Minutes()
		if !deliveredAt.After(delivery.ScheduledDeliveryTime) {
			acc.onTime++
		}
	}

	snapshot := make([]AgentPerformanceDTO, 0, len(accumulators))
	for key, acc := range accumulators {
		snapshot = append(snapshot, AgentPerformanceDTO{
			AgentID:            key.agentID,
			Month:              key.month,
			Deliveries:         acc.deliveries,
			AvgDeliveryMinutes: acc.totalMinutes / float64(acc.deliveries),
			OnTimeRate:         float64(acc.onTime) / float64(acc.deliveries),
		})
	}
	sort.Slice(snapshot, func(i, j int) bool {
		if snapshot[i].AgentID != snapshot[j].AgentID {
			return snapshot[i].AgentID < snapshot[j].AgentID
		}
		return snapshot[i].Month < snapshot[j].Month
	})

	if err := r.db.WithContext(ctx).Where("1 = 1").Delete(&AgentPerformanceDTO{}).Error; err != nil {
		return err
	}

	if len(snapshot) == 0 {
		return nil
	}

	return r.db.WithContext(ctx).Create(&snapshot).Error
}
