// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the customer order aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
)

// OrderDTO represents the database structure for persisting customer orders.
// The id is generated by the database at insert time; customer_name is
// indexed for the customer history query.
type OrderDTO struct {
	ID           int64  `gorm:"primaryKey;autoIncrement"`
	CustomerName string `gorm:"index"`
	Items        string
	Address      string
	TotalPrice   float64
	CreatedAt    time.Time
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order domain aggregate to its database representation.
// A zero ID lets the database generate one on insert.
func fromDomain(aggregate *order.Order) OrderDTO {
	return OrderDTO{
		ID:           aggregate.ID().Int64(),
		CustomerName: aggregate.CustomerName(),
		Items:        aggregate.Items(),
		Address:      aggregate.Address(),
		TotalPrice:   aggregate.TotalPrice(),
		CreatedAt:    aggregate.CreatedAt(),
	}
}

// toDomain converts a database DTO to an order domain aggregate.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.NewOrderID(dto.ID)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(id, dto.CustomerName, dto.Items, dto.Address, dto.TotalPrice, dto.CreatedAt)
}
