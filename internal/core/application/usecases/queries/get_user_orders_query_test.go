package queries_test

import (
	"testing"

	"shop/internal/core/application/usecases/queries"
	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/order"
	"shop/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetUserOrdersQuery_Valid(t *testing.T) {
	query, err := queries.NewGetUserOrdersQuery(kernel.NewUUID(), "shipped", 2, 25)
	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.Equal(t, order.Shipped, query.StatusFilter())
	assert.Equal(t, 2, query.Page())
	assert.Equal(t, 25, query.Limit())
}

func TestNewGetUserOrdersQuery_Defaults(t *testing.T) {
	query, err := queries.NewGetUserOrdersQuery(kernel.NewUUID(), "", 0, 0)
	require.NoError(t, err)
	assert.Equal(t, order.Unknown, query.StatusFilter())
	assert.Equal(t, 1, query.Page())
	assert.Equal(t, 10, query.Limit())
}

func TestNewGetUserOrdersQuery_Invalid(t *testing.T) {
	t.Run("invalid user ID", func(t *testing.T) {
		_, err := queries.NewGetUserOrdersQuery(kernel.UUID{}, "", 0, 0)
		require.Error(t, err)
	})

	t.Run("unknown status filter", func(t *testing.T) {
		_, err := queries.NewGetUserOrdersQuery(kernel.NewUUID(), "refunded", 0, 0)
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("negative page", func(t *testing.T) {
		_, err := queries.NewGetUserOrdersQuery(kernel.NewUUID(), "", -1, 0)
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("limit above cap", func(t *testing.T) {
		_, err := queries.NewGetUserOrdersQuery(kernel.NewUUID(), "", 1, 101)
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})
}

func TestGetUserOrdersQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetUserOrdersQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetUserOrdersQueryIsNotConstructed)
}
