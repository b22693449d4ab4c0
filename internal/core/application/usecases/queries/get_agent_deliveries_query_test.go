package queries_test

import (
	"testing"

	"fooddelivery/internal/core/application/usecases/queries"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetAgentDeliveriesQuery_Valid(t *testing.T) {
	agentID, err := kernel.NewAgentID(7)
	require.NoError(t, err)

	query, err := queries.NewGetAgentDeliveriesQuery(agentID)
	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.Equal(t, agentID, query.AgentID())
}

func TestNewGetAgentDeliveriesQuery_InvalidAgentID(t *testing.T) {
	var zeroID kernel.AgentID

	_, err := queries.NewGetAgentDeliveriesQuery(zeroID)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestGetAgentDeliveriesQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetAgentDeliveriesQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetAgentDeliveriesQueryIsNotConstructed)
}
