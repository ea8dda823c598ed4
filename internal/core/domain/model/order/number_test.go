package order_test

import (
	"regexp"
	"testing"
	"time"

	"shop/internal/core/domain/model/order"
	"shop/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewNumber(t *testing.T) {
	day := time.Date(2025, 12, 1, 14, 30, 0, 0, time.UTC)

	t.Run("formats date and zero-padded sequence", func(t *testing.T) {
		number, err := order.NewNumber(day, 4)

		require.NoError(t, err)
		assert.Equal(t, "ORD-251201-0004", number.String())
	})

	t.Run("matches external pattern", func(t *testing.T) {
		pattern := regexp.MustCompile(`^ORD-\d{6}-\d{4}$`)

		for _, seq := range []int{1, 42, 999, 9999} {
			number, err := order.NewNumber(day, seq)
			require.NoError(t, err)
			assert.Regexp(t, pattern, number.String())
		}
	})

	t.Run("numbers from different days differ in date component", func(t *testing.T) {
		other := day.AddDate(0, 0, 1)

		first, err := order.NewNumber(day, 1)
		require.NoError(t, err)
		second, err := order.NewNumber(other, 1)
		require.NoError(t, err)

		assert.False(t, first.IsEqual(second))
		assert.Equal(t, "ORD-251202-0001", second.String())
	})

	t.Run("rejects out-of-range sequences", func(t *testing.T) {
		for _, seq := range []int{0, -1, 10000} {
			_, err := order.NewNumber(day, seq)
			require.Error(t, err, "sequence %d must be rejected", seq)
			require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		}
	})
}

func TestNumberFromString(t *testing.T) {
	t.Run("parses valid numbers", func(t *testing.T) {
		number, err := order.NumberFromString("ORD-251201-0004")

		require.NoError(t, err)
		assert.Equal(t, "ORD-251201-0004", number.String())
		require.NoError(t, number.Validate())
	})

	t.Run("rejects malformed numbers", func(t *testing.T) {
		invalid := []string{
			"",
			"ORD-251201-4",
			"ORD-2512-0004",
			"ord-251201-0004",
			"ORD-251201-00041",
			"XYZ-251201-0004",
		}

		for _, raw := range invalid {
			_, err := order.NumberFromString(raw)
			require.Error(t, err, "input %q should not parse", raw)
			require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		}
	})
}

func TestNumber_Validate(t *testing.T) {
	t.Run("zero value is invalid", func(t *testing.T) {
		var number order.Number

		require.Error(t, number.Validate())
	})
}
