package assignment_test

import (
	"testing"
	"time"

	"fooddelivery/internal/core/domain/model/assignment"
	"fooddelivery/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustOrderID(t *testing.T, v int64) kernel.OrderID {
	t.Helper()
	id, err := kernel.NewOrderID(v)
	require.NoError(t, err)
	return id
}

func mustAgentID(t *testing.T, v int64) kernel.AgentID {
	t.Helper()
	id, err := kernel.NewAgentID(v)
	require.NoError(t, err)
	return id
}

func newTestAssignment(t *testing.T) *assignment.Assignment {
	t.Helper()
	pickup := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	a, err := assignment.NewAssignment(
		kernel.NewUUID(),
		mustOrderID(t, 42),
		mustAgentID(t, 7),
		"John Doe",
		pickup,
		pickup.Add(45*time.Minute),
	)
	require.NoError(t, err)
	return a
}

func TestNewAssignment(t *testing.T) {
	t.Run("should create assignment with valid parameters", func(t *testing.T) {
		id := kernel.NewUUID()
		orderID := mustOrderID(t, 42)
		agentID := mustAgentID(t, 7)
		pickup := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
		scheduled := pickup.Add(45 * time.Minute)

		a, err := assignment.NewAssignment(id, orderID, agentID, "John Doe", pickup, scheduled)

		require.NoError(t, err)
		require.NotNil(t, a)
		assert.True(t, a.ID().IsEqual(id))
		assert.Equal(t, orderID, a.OrderID())
		assert.Equal(t, agentID, a.AgentID())
		assert.Equal(t, "John Doe", a.CustomerName())
		assert.Equal(t, "Being Done", a.Note())
		assert.Equal(t, assignment.New, a.WorkflowStatus())
		assert.Equal(t, assignment.Pending, a.TransitStatus())
		assert.Equal(t, pickup, a.PickupTime())
		assert.Equal(t, scheduled, a.ScheduledDeliveryTime())
		assert.Nil(t, a.DeliveryTime())
		assert.False(t, a.IsTerminal())
		require.NoError(t, a.Validate())
	})

	t.Run("should accept the unknown customer sentinel", func(t *testing.T) {
		pickup := time.Now().UTC()

		a, err := assignment.NewAssignment(
			kernel.NewUUID(),
			mustOrderID(t, 1),
			mustAgentID(t, 1),
			assignment.UnknownCustomerName,
			pickup,
			pickup.Add(time.Hour),
		)

		require.NoError(t, err)
		assert.Equal(t, "unknown", a.CustomerName())
	})

	t.Run("should reject empty UUID", func(t *testing.T) {
		pickup := time.Now().UTC()

		a, err := assignment.NewAssignment(
			kernel.UUID{},
			mustOrderID(t, 1),
			mustAgentID(t, 1),
			"John Doe",
			pickup,
			pickup.Add(time.Hour),
		)

		require.Error(t, err)
		assert.Nil(t, a)
	})

	t.Run("should reject zero-value order id", func(t *testing.T) {
		pickup := time.Now().UTC()

		a, err := assignment.NewAssignment(
			kernel.NewUUID(),
			kernel.OrderID(0),
			mustAgentID(t, 1),
			"John Doe",
			pickup,
			pickup.Add(time.Hour),
		)

		require.Error(t, err)
		assert.Nil(t, a)
	})

	t.Run("should reject empty customer name", func(t *testing.T) {
		pickup := time.Now().UTC()

		a, err := assignment.NewAssignment(
			kernel.NewUUID(),
			mustOrderID(t, 1),
			mustAgentID(t, 1),
			"",
			pickup,
			pickup.Add(time.Hour),
		)

		require.Error(t, err)
		assert.Nil(t, a)
		assert.Contains(t, err.Error(), "customer name")
	})

	t.Run("should reject zero pickup time", func(t *testing.T) {
		a, err := assignment.NewAssignment(
			kernel.NewUUID(),
			mustOrderID(t, 1),
			mustAgentID(t, 1),
			"John Doe",
			time.Time{},
			time.Now().UTC(),
		)

		require.Error(t, err)
		assert.Nil(t, a)
		assert.Contains(t, err.Error(), "pickup time")
	})

	t.Run("should reject zero scheduled delivery time", func(t *testing.T) {
		a, err := assignment.NewAssignment(
			kernel.NewUUID(),
			mustOrderID(t, 1),
			mustAgentID(t, 1),
			"John Doe",
			time.Now().UTC(),
			time.Time{},
		)

		require.Error(t, err)
		assert.Nil(t, a)
		require.ErrorIs(t, err, assignment.ErrScheduledTimeIsRequired)
	})

	t.Run("should collect multiple validation errors", func(t *testing.T) {
		a, err := assignment.NewAssignment(
			kernel.UUID{},
			kernel.OrderID(0),
			kernel.AgentID(0),
			"",
			time.Time{},
			time.Time{},
		)

		require.Error(t, err)
		assert.Nil(t, a)
		assert.Contains(t, err.Error(), "customer name")
		assert.Contains(t, err.Error(), "pickup time")
	})
}

func TestRestoreAssignment(t *testing.T) {
	t.Run("should restore assignment from persisted state", func(t *testing.T) {
		id := kernel.NewUUID()
		pickup := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
		scheduled := pickup.Add(45 * time.Minute)
		delivered := pickup.Add(30 * time.Minute)

		a, err := assignment.RestoreAssignment(
			id,
			mustOrderID(t, 42),
			mustAgentID(t, 7),
			"John Doe",
			"Ring the bell",
			assignment.Completed,
			assignment.Delivered,
			pickup,
			scheduled,
			&delivered,
		)

		require.NoError(t, err)
		require.NotNil(t, a)
		assert.True(t, a.ID().IsEqual(id))
		assert.Equal(t, "Ring the bell", a.Note())
		assert.Equal(t, assignment.Completed, a.WorkflowStatus())
		assert.Equal(t, assignment.Delivered, a.TransitStatus())
		require.NotNil(t, a.DeliveryTime())
		assert.Equal(t, delivered, *a.DeliveryTime())
		assert.True(t, a.IsTerminal())
		require.NoError(t, a.Validate())
	})

	t.Run("should reject invalid persisted statuses", func(t *testing.T) {
		pickup := time.Now().UTC()

		a, err := assignment.RestoreAssignment(
			kernel.NewUUID(),
			mustOrderID(t, 42),
			mustAgentID(t, 7),
			"John Doe",
			"Being Done",
			assignment.WorkflowUnknown,
			assignment.Pending,
			pickup,
			pickup.Add(time.Hour),
			nil,
		)

		require.Error(t, err)
		assert.Nil(t, a)
		assert.Contains(t, err.Error(), "workflow status is invalid")
	})

	t.Run("restored assignment should behave like a new one", func(t *testing.T) {
		pickup := time.Now().UTC()

		a, err := assignment.RestoreAssignment(
			kernel.NewUUID(),
			mustOrderID(t, 42),
			mustAgentID(t, 7),
			"John Doe",
			"Being Done",
			assignment.New,
			assignment.Pending,
			pickup,
			pickup.Add(time.Hour),
			nil,
		)
		require.NoError(t, err)

		require.NoError(t, a.Accept())
		assert.Equal(t, assignment.InProgress, a.WorkflowStatus())
		assert.Equal(t, assignment.InTransit, a.TransitStatus())
	})
}

func TestAssignment_Validate(t *testing.T) {
	t.Run("should fail for nil assignment", func(t *testing.T) {
		var a *assignment.Assignment
		require.ErrorIs(t, a.Validate(), assignment.ErrAssignmentIsNotConstructed)
	})

	t.Run("should fail for zero-value assignment", func(t *testing.T) {
		a := &assignment.Assignment{}
		require.ErrorIs(t, a.Validate(), assignment.ErrAssignmentIsNotConstructed)
	})
}

func TestAssignment_Accept(t *testing.T) {
	t.Run("should move both statuses together", func(t *testing.T) {
		a := newTestAssignment(t)

		err := a.Accept()

		require.NoError(t, err)
		assert.Equal(t, assignment.InProgress, a.WorkflowStatus())
		assert.Equal(t, assignment.InTransit, a.TransitStatus())
		assert.Nil(t, a.DeliveryTime())
	})

	t.Run("should reject accepting twice", func(t *testing.T) {
		a := newTestAssignment(t)
		require.NoError(t, a.Accept())

		err := a.Accept()

		require.ErrorIs(t, err, assignment.ErrInvalidTransition)
		assert.Equal(t, assignment.InProgress, a.WorkflowStatus())
		assert.Equal(t, assignment.InTransit, a.TransitStatus())
	})

	t.Run("should reject accepting a completed assignment", func(t *testing.T) {
		a := newTestAssignment(t)
		require.NoError(t, a.Accept())
		require.NoError(t, a.Complete(time.Now().UTC()))

		err := a.Accept()

		require.ErrorIs(t, err, assignment.ErrInvalidTransition)
	})

	t.Run("should reject accepting a cancelled delivery", func(t *testing.T) {
		a := newTestAssignment(t)
		require.NoError(t, a.ReportTransit(a.AgentID(), assignment.Cancelled, time.Now().UTC()))

		err := a.Accept()

		require.ErrorIs(t, err, assignment.ErrInvalidTransition)
		assert.Equal(t, assignment.New, a.WorkflowStatus())
		assert.Equal(t, assignment.Cancelled, a.TransitStatus())
		assert.Nil(t, a.DeliveryTime())
	})
}

func TestAssignment_ValidateReject(t *testing.T) {
	t.Run("should allow rejecting a fresh assignment", func(t *testing.T) {
		a := newTestAssignment(t)
		require.NoError(t, a.ValidateReject())
	})

	t.Run("should reject after acceptance", func(t *testing.T) {
		a := newTestAssignment(t)
		require.NoError(t, a.Accept())

		err := a.ValidateReject()

		require.ErrorIs(t, err, assignment.ErrInvalidTransition)
	})

	t.Run("should reject after cancellation", func(t *testing.T) {
		a := newTestAssignment(t)
		require.NoError(t, a.ReportTransit(a.AgentID(), assignment.Cancelled, time.Now().UTC()))

		err := a.ValidateReject()

		require.ErrorIs(t, err, assignment.ErrInvalidTransition)
	})
}

func TestAssignment_Complete(t *testing.T) {
	t.Run("should record delivery time and terminal statuses", func(t *testing.T) {
		a := newTestAssignment(t)
		require.NoError(t, a.Accept())
		deliveredAt := a.PickupTime().Add(30 * time.Minute)

		err := a.Complete(deliveredAt)

		require.NoError(t, err)
		assert.Equal(t, assignment.Completed, a.WorkflowStatus())
		assert.Equal(t, assignment.Delivered, a.TransitStatus())
		require.NotNil(t, a.DeliveryTime())
		assert.Equal(t, deliveredAt, *a.DeliveryTime())
		assert.True(t, a.IsTerminal())
	})

	t.Run("should clamp delivery time to pickup time", func(t *testing.T) {
		a := newTestAssignment(t)
		require.NoError(t, a.Accept())

		err := a.Complete(a.PickupTime().Add(-time.Hour))

		require.NoError(t, err)
		require.NotNil(t, a.DeliveryTime())
		assert.Equal(t, a.PickupTime(), *a.DeliveryTime())
	})

	t.Run("should reject completing an unaccepted assignment", func(t *testing.T) {
		a := newTestAssignment(t)

		err := a.Complete(time.Now().UTC())

		require.ErrorIs(t, err, assignment.ErrInvalidTransition)
		assert.Equal(t, assignment.New, a.WorkflowStatus())
		assert.Equal(t, assignment.Pending, a.TransitStatus())
		assert.Nil(t, a.DeliveryTime())
	})

	t.Run("should reject completing twice", func(t *testing.T) {
		a := newTestAssignment(t)
		require.NoError(t, a.Accept())
		firstDelivery := a.PickupTime().Add(20 * time.Minute)
		require.NoError(t, a.Complete(firstDelivery))

		err := a.Complete(firstDelivery.Add(time.Hour))

		require.ErrorIs(t, err, assignment.ErrInvalidTransition)
		assert.Equal(t, firstDelivery, *a.DeliveryTime())
	})

	t.Run("should reject completing a cancelled delivery", func(t *testing.T) {
		a := newTestAssignment(t)
		require.NoError(t, a.Accept())
		require.NoError(t, a.ReportTransit(a.AgentID(), assignment.Cancelled, time.Now().UTC()))

		err := a.Complete(time.Now().UTC())

		require.ErrorIs(t, err, assignment.ErrInvalidTransition)
		assert.Equal(t, assignment.Cancelled, a.TransitStatus())
		assert.Nil(t, a.DeliveryTime())
	})
}

func TestAssignment_ReportTransit(t *testing.T) {
	t.Run("should reject reports from a different agent", func(t *testing.T) {
		a := newTestAssignment(t)

		err := a.ReportTransit(mustAgentID(t, 99), assignment.InTransit, time.Now().UTC())

		require.ErrorIs(t, err, assignment.ErrNotAssignedAgent)
		assert.Equal(t, assignment.Pending, a.TransitStatus())
	})

	t.Run("should move workflow in lockstep with transit", func(t *testing.T) {
		a := newTestAssignment(t)

		err := a.ReportTransit(a.AgentID(), assignment.InTransit, time.Now().UTC())

		require.NoError(t, err)
		assert.Equal(t, assignment.InTransit, a.TransitStatus())
		assert.Equal(t, assignment.InProgress, a.WorkflowStatus())
	})

	t.Run("should accept re-reporting the current status", func(t *testing.T) {
		a := newTestAssignment(t)
		require.NoError(t, a.ReportTransit(a.AgentID(), assignment.InTransit, time.Now().UTC()))

		err := a.ReportTransit(a.AgentID(), assignment.InTransit, time.Now().UTC())

		require.NoError(t, err)
		assert.Equal(t, assignment.InTransit, a.TransitStatus())
		assert.Equal(t, assignment.InProgress, a.WorkflowStatus())
	})

	t.Run("should stamp delivery time when reporting Delivered", func(t *testing.T) {
		a := newTestAssignment(t)
		require.NoError(t, a.ReportTransit(a.AgentID(), assignment.InTransit, time.Now().UTC()))
		reportedAt := a.PickupTime().Add(40 * time.Minute)

		err := a.ReportTransit(a.AgentID(), assignment.Delivered, reportedAt)

		require.NoError(t, err)
		assert.Equal(t, assignment.Delivered, a.TransitStatus())
		assert.Equal(t, assignment.Completed, a.WorkflowStatus())
		require.NotNil(t, a.DeliveryTime())
		assert.Equal(t, reportedAt, *a.DeliveryTime())
	})

	t.Run("should clamp reported delivery time to pickup time", func(t *testing.T) {
		a := newTestAssignment(t)
		require.NoError(t, a.ReportTransit(a.AgentID(), assignment.InTransit, time.Now().UTC()))

		err := a.ReportTransit(a.AgentID(), assignment.Delivered, a.PickupTime().Add(-time.Minute))

		require.NoError(t, err)
		require.NotNil(t, a.DeliveryTime())
		assert.Equal(t, a.PickupTime(), *a.DeliveryTime())
	})

	t.Run("should leave workflow untouched on cancellation", func(t *testing.T) {
		a := newTestAssignment(t)
		require.NoError(t, a.ReportTransit(a.AgentID(), assignment.InTransit, time.Now().UTC()))

		err := a.ReportTransit(a.AgentID(), assignment.Cancelled, time.Now().UTC())

		require.NoError(t, err)
		assert.Equal(t, assignment.Cancelled, a.TransitStatus())
		assert.Equal(t, assignment.InProgress, a.WorkflowStatus())
		assert.Nil(t, a.DeliveryTime())
		assert.True(t, a.IsTerminal())
	})

	t.Run("should reject invalid transit moves", func(t *testing.T) {
		a := newTestAssignment(t)

		err := a.ReportTransit(a.AgentID(), assignment.Delivered, time.Now().UTC())

		require.ErrorIs(t, err, assignment.ErrInvalidTransition)
		assert.Equal(t, assignment.Pending, a.TransitStatus())
		assert.Equal(t, assignment.New, a.WorkflowStatus())
	})

	t.Run("should reject reports on a terminal assignment", func(t *testing.T) {
		a := newTestAssignment(t)
		require.NoError(t, a.ReportTransit(a.AgentID(), assignment.Cancelled, time.Now().UTC()))

		err := a.ReportTransit(a.AgentID(), assignment.InTransit, time.Now().UTC())

		require.ErrorIs(t, err, assignment.ErrInvalidTransition)
	})
}

func TestAssignment_Lifecycle(t *testing.T) {
	t.Run("should follow full happy path", func(t *testing.T) {
		// Assign order 42 to agent 7, accept, then complete.
		a := newTestAssignment(t)
		assert.Equal(t, int64(42), a.OrderID().Int64())
		assert.Equal(t, int64(7), a.AgentID().Int64())

		require.NoError(t, a.Accept())
		assert.Equal(t, assignment.InProgress, a.WorkflowStatus())
		assert.Equal(t, assignment.InTransit, a.TransitStatus())

		deliveredAt := a.PickupTime().Add(35 * time.Minute)
		require.NoError(t, a.Complete(deliveredAt))

		assert.Equal(t, assignment.Completed, a.WorkflowStatus())
		assert.Equal(t, assignment.Delivered, a.TransitStatus())
		assert.Equal(t, deliveredAt, *a.DeliveryTime())
		assert.True(t, a.IsTerminal())
	})

	t.Run("statuses can never diverge across the lifecycle", func(t *testing.T) {
		pairs := map[assignment.WorkflowStatus]assignment.TransitStatus{
			assignment.New:        assignment.Pending,
			assignment.InProgress: assignment.InTransit,
			assignment.Completed:  assignment.Delivered,
		}

		a := newTestAssignment(t)
		assert.Equal(t, pairs[a.WorkflowStatus()], a.TransitStatus())

		require.NoError(t, a.Accept())
		assert.Equal(t, pairs[a.WorkflowStatus()], a.TransitStatus())

		require.NoError(t, a.Complete(time.Now().UTC()))
		assert.Equal(t, pairs[a.WorkflowStatus()], a.TransitStatus())
	})
}
