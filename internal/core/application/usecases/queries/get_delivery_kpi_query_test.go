package queries_test

import (
	"testing"

	"fooddelivery/internal/core/application/usecases/queries"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetDeliveryKPIQuery_Valid(t *testing.T) {
	query := queries.NewGetDeliveryKPIQuery()
	err := query.Validate()
	require.NoError(t, err)

	_, scoped := query.AgentID()
	assert.False(t, scoped)
}

func TestNewGetDeliveryKPIQueryForAgent_Valid(t *testing.T) {
	agentID, err := kernel.NewAgentID(7)
	require.NoError(t, err)

	query, err := queries.NewGetDeliveryKPIQueryForAgent(agentID)
	require.NoError(t, err)
	require.NoError(t, query.Validate())

	scopedID, scoped := query.AgentID()
	assert.True(t, scoped)
	assert.Equal(t, agentID, scopedID)
}

func TestNewGetDeliveryKPIQueryForAgent_InvalidAgentID(t *testing.T) {
	var zeroID kernel.AgentID

	_, err := queries.NewGetDeliveryKPIQueryForAgent(zeroID)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestGetDeliveryKPIQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetDeliveryKPIQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetDeliveryKPIQueryIsNotConstructed)
}
