package queries_test

import (
	"testing"
	"time"

	"fooddelivery/internal/adapters/out/postgres/assignmentrepo"
	"fooddelivery/internal/adapters/out/postgres/orderrepo"
	"fooddelivery/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// newQueryTestDB opens an isolated in-memory database with the projection
// schema migrated. The connection pool is capped at one so every statement
// sees the same in-memory database.
func newQueryTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&assignmentrepo.AssignedOrderDTO{},
		&assignmentrepo.DeliveryDataDTO{},
	)
	require.NoError(t, err)

	return db
}

func seedOrder(t *testing.T, db *gorm.DB, id int64, customerName string, createdAt time.Time) {
	t.Helper()

	err := db.Create(&orderrepo.OrderDTO{
		ID:           id,
		CustomerName: customerName,
		Items:        "1x Pad Thai",
		Address:      "12 Baker Street",
		TotalPrice:   18.90,
		CreatedAt:    createdAt,
	}).Error
	require.NoError(t, err)
}

func seedAssignedOrder(t *testing.T, db *gorm.DB, orderID, agentID int64, status string) string {
	t.Helper()

	id := kernel.NewUUID().String()
	err := db.Create(&assignmentrepo.AssignedOrderDTO{
		ID:           id,
		OrderID:      orderID,
		AgentID:      agentID,
		CustomerName: "Alice Smith",
		Note:         "Being Done",
		Status:       status,
	}).Error
	require.NoError(t, err)

	return id
}

func seedDeliveryData(
	t *testing.T, db *gorm.DB, orderID, agentID int64, status string,
	pickup, scheduled time.Time, delivered *time.Time,
) string {
	t.Helper()

	id := kernel.NewUUID().String()
	err := db.Create(&assignmentrepo.DeliveryDataDTO{
		ID:                    id,
		OrderID:               orderID,
		AgentID:               agentID,
		Status:                status,
		PickupTime:            pickup,
		ScheduledDeliveryTime: scheduled,
		DeliveryTime:          delivered,
	}).Error
	require.NoError(t, err)

	return id
}
