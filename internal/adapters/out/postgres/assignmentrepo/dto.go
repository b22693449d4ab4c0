// Package assignmentrepo persists delivery assignments as two write-through
// projection rows sharing a single record identifier. The assigned_orders row
// carries the agent queue view; the delivery_data row carries the transit and
// timing view. Both rows are written in the same transaction so the paired
// statuses can never drift apart.
package assignmentrepo

import (
	"time"

	"fooddelivery/internal/core/domain/model/assignment"
	"fooddelivery/internal/core/domain/model/kernel"
)

// AssignedOrderDTO is the workflow projection row for an assignment.
// The unique index on order_id enforces at most one live assignment per order.
type AssignedOrderDTO struct {
	ID           string `gorm:"primaryKey;type:varchar(36)"`
	OrderID      int64  `gorm:"uniqueIndex"`
	AgentID      int64  `gorm:"index"`
	CustomerName string
	Note         string
	Status       string
}

// TableName specifies the database table name for the workflow projection.
func (AssignedOrderDTO) TableName() string {
	return "assigned_orders"
}

// DeliveryDataDTO is the transit projection row for an assignment.
type DeliveryDataDTO struct {
	ID                    string `gorm:"primaryKey;type:varchar(36)"`
	OrderID               int64  `gorm:"uniqueIndex"`
	AgentID               int64  `gorm:"index"`
	Status                string
	PickupTime            time.Time
	ScheduledDeliveryTime time.Time
	DeliveryTime          *time.Time
}

// TableName specifies the database table name for the transit projection.
func (DeliveryDataDTO) TableName() string {
	return "delivery_data"
}

// fromDomain splits an assignment aggregate into its two projection rows.
func fromDomain(aggregate *assignment.Assignment) (AssignedOrderDTO, DeliveryDataDTO) {
	assigned := AssignedOrderDTO{
		ID:           aggregate.ID().String(),
		OrderID:      aggregate.OrderID().Int64(),
		AgentID:      aggregate.AgentID().Int64(),
		CustomerName: aggregate.CustomerName(),
		Note:         aggregate.Note(),
		Status:       aggregate.WorkflowStatus().String(),
	}

	delivery := DeliveryDataDTO{
		ID:                    aggregate.ID().String(),
		OrderID:               aggregate.OrderID().Int64(),
		AgentID:               aggregate.AgentID().Int64(),
		Status:                aggregate.TransitStatus().String(),
		PickupTime:            aggregate.PickupTime(),
		ScheduledDeliveryTime: aggregate.ScheduledDeliveryTime(),
		DeliveryTime:          aggregate.DeliveryTime(),
	}

	return assigned, delivery
}

// toDomain reassembles an assignment aggregate from its two projection rows.
func toDomain(assigned AssignedOrderDTO, delivery DeliveryDataDTO) (*assignment.Assignment, error) {
	id, err := kernel.UUIDFromString(assigned.ID)
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.NewOrderID(assigned.OrderID)
	if err != nil {
		return nil, err
	}

	agentID, err := kernel.NewAgentID(assigned.AgentID)
	if err != nil {
		return nil, err
	}

	workflow, err := assignment.WorkflowStatusFromString(assigned.Status)
	if err != nil {
		return nil, err
	}

	transit, err := assignment.TransitStatusFromString(delivery.Status)
	if err != nil {
		return nil, err
	}

	return assignment.RestoreAssignment(
		id,
		orderID,
		agentID,
		assigned.CustomerName,
		assigned.Note,
		workflow,
		transit,
		delivery.PickupTime,
		delivery.ScheduledDeliveryTime,
		delivery.DeliveryTime,
	)
}
