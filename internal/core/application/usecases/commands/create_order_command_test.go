package commands_test

import (
	"testing"

	"shop/internal/core/application/usecases/commands"
	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateOrderCommand(t *testing.T) {
	t.Run("creates valid command", func(t *testing.T) {
		userID := kernel.NewUUID()

		cmd, err := commands.NewCreateOrderCommand(
			userID, fixtureItems(t), fixturePricing(t), fixtureAddress(t), "pay_123", "gift wrap")

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.True(t, userID.IsEqual(cmd.UserID()))
		assert.Len(t, cmd.Items(), 1)
		assert.Equal(t, "pay_123", cmd.PaymentID())
		assert.Equal(t, "gift wrap", cmd.Notes())
	})

	t.Run("rejects invalid user ID", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(
			kernel.UUID{}, fixtureItems(t), fixturePricing(t), fixtureAddress(t), "", "")

		require.Error(t, err)
	})

	t.Run("rejects empty items", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(
			kernel.NewUUID(), nil, fixturePricing(t), fixtureAddress(t), "", "")

		require.ErrorIs(t, err, commands.ErrItemsAreRequired)
	})

	t.Run("rejects unconstructed pricing", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(
			kernel.NewUUID(), fixtureItems(t), order.Pricing{}, fixtureAddress(t), "", "")

		require.ErrorIs(t, err, order.ErrPricingIsNotConstructed)
	})

	t.Run("rejects unconstructed address", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(
			kernel.NewUUID(), fixtureItems(t), fixturePricing(t), order.Address{}, "", "")

		require.ErrorIs(t, err, order.ErrAddressIsNotConstructed)
	})

	t.Run("zero value command fails validation", func(t *testing.T) {
		var cmd commands.CreateOrderCommand

		require.ErrorIs(t, cmd.Validate(), commands.ErrCreateOrderCommandIsNotConstructed)
	})
}
