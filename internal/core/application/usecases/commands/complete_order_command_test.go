package commands_test

import (
	"testing"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCompleteOrderCommand_Success(t *testing.T) {
	orderID := mustOrderID(t, 42)
	agentID := mustAgentID(t, 7)

	cmd, err := commands.NewCompleteOrderCommand(orderID, agentID)

	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	assert.Equal(t, orderID, cmd.OrderID())
	assert.Equal(t, agentID, cmd.AgentID())
}

func TestNewCompleteOrderCommand_ValidationErrors(t *testing.T) {
	t.Run("invalid order id", func(t *testing.T) {
		cmd, err := commands.NewCompleteOrderCommand(kernel.OrderID(0), mustAgentID(t, 7))

		require.Error(t, err)
		assert.Zero(t, cmd)
	})

	t.Run("invalid agent id", func(t *testing.T) {
		cmd, err := commands.NewCompleteOrderCommand(mustOrderID(t, 42), kernel.AgentID(-5))

		require.Error(t, err)
		assert.Zero(t, cmd)
	})
}

func TestCompleteOrderCommand_Validate_ZeroValue(t *testing.T) {
	var cmd commands.CompleteOrderCommand

	err := cmd.Validate()

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrCompleteOrderCommandIsNotConstructed)
}
