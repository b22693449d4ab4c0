package queries_test

import (
	"testing"

	"fooddelivery/internal/core/application/usecases/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetCustomerHistoryQuery_Valid(t *testing.T) {
	query, err := queries.NewGetCustomerHistoryQuery("Alice Smith")
	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.Equal(t, "Alice Smith", query.CustomerName())
}

func TestNewGetCustomerHistoryQuery_EmptyName(t *testing.T) {
	_, err := queries.NewGetCustomerHistoryQuery("")
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrCustomerNameIsRequired)
}

func TestGetCustomerHistoryQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetCustomerHistoryQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetCustomerHistoryQueryIsNotConstructed)
}
