package assignmentrepo

import (
	"context"
	"errors"

	"fooddelivery/internal/core/domain/model/assignment"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormAssignmentRepository implements AssignmentRepository using GORM.
// Every write touches both projection rows so the paired statuses stay
// in lockstep; guarded writes compare the stored status against the one
// the caller observed and report assignment.ErrInvalidTransition when a
// concurrent writer changed it first.
type GormAssignmentRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id string, aggregate any)
}

// NewGormAssignmentRepository creates a new GORM assignment repository.
func NewGormAssignmentRepository(db *gorm.DB, tracker aggregateTracker) *GormAssignmentRepository {
	return &GormAssignmentRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add persists both projection rows for a new assignment. The unique
// index on order_id turns a concurrent duplicate insert into
// assignment.ErrAlreadyAssigned.
func (r *GormAssignmentRepository) Add(ctx context.Context, aggregate *assignment.Assignment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	assigned, delivery := fromDomain(aggregate)

	if err := r.db.WithContext(ctx).Create(&assigned).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return assignment.ErrAlreadyAssigned
		}
		return err
	}

	if err := r.db.WithContext(ctx).Create(&delivery).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return assignment.ErrAlreadyAssigned
		}
		return err
	}

	r.tracker.TrackAggregate(assigned.ID, aggregate)
	return nil
}

// Update writes both projection rows guarded by the statuses the caller
// observed when it loaded the aggregate.
func (r *GormAssignmentRepository) Update(
	ctx context.Context,
	aggregate *assignment.Assignment,
	expectedWorkflow assignment.WorkflowStatus,
	expectedTransit assignment.TransitStatus,
) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	if err := errors.Join(expectedWorkflow.Validate(), expectedTransit.Validate()); err != nil {
		return err
	}

	assigned, delivery := fromDomain(aggregate)

	result := r.db.WithContext(ctx).
		Model(&AssignedOrderDTO{}).
		Where("id = ? AND status = ?", assigned.ID, expectedWorkflow.String()).
		Updates(map[string]any{
			"customer_name": assigned.CustomerName,
			"note":          assigned.Note,
			"status":        assigned.Status,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return assignment.ErrInvalidTransition
	}

	result = r.db.WithContext(ctx).
		Model(&DeliveryDataDTO{}).
		Where("id = ? AND status = ?", delivery.ID, expectedTransit.String()).
		Updates(map[string]any{
			"status":                  delivery.Status,
			"pickup_time":             delivery.PickupTime,
			"scheduled_delivery_time": delivery.ScheduledDeliveryTime,
			"delivery_time":           delivery.DeliveryTime,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return assignment.ErrInvalidTransition
	}

	r.tracker.TrackAggregate(assigned.ID, aggregate)
	return nil
}

// Delete removes both projection rows guarded by the observed workflow
// status on the assignment record.
func (r *GormAssignmentRepository) Delete(
	ctx context.Context,
	aggregate *assignment.Assignment,
	expectedWorkflow assignment.WorkflowStatus,
) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	if err := expectedWorkflow.Validate(); err != nil {
		return err
	}

	id := aggregate.ID().String()

	result := r.db.WithContext(ctx).
		Where("id = ? AND status = ?", id, expectedWorkflow.String()).
		Delete(&AssignedOrderDTO{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return assignment.ErrInvalidTransition
	}

	if err := r.db.WithContext(ctx).Where("id = ?", id).Delete(&DeliveryDataDTO{}).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(id, aggregate)
	return nil
}

// GetByID retrieves an assignment by its record identifier.
func (r *GormAssignmentRepository) GetByID(ctx context.Context, id kernel.UUID) (*assignment.Assignment, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	return r.get(ctx, "id = ?", id.String())
}

// GetByOrderID retrieves the assignment for an order.
func (r *GormAssignmentRepository) GetByOrderID(
	ctx context.Context, orderID kernel.OrderID,
) (*assignment.Assignment, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	return r.get(ctx, "order_id = ?", orderID.Int64())
}

func (r *GormAssignmentRepository) get(ctx context.Context, query string, arg any) (*assignment.Assignment, error) {
	var assigned AssignedOrderDTO
	if err := r.db.WithContext(ctx).First(&assigned, query, arg).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("assignment", arg)
		}
		return nil, err
	}

	var delivery DeliveryDataDTO
	if err := r.db.WithContext(ctx).First(&delivery, "id = ?", assigned.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("assignment", assigned.ID)
		}
		return nil, err
	}

	return toDomain(assigned, delivery)
}
