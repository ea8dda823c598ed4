package order_test

import (
	"fmt"
	"testing"

	"shop/internal/core/domain/model/order"
	"shop/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func allStatuses() []order.Status {
	return []order.Status{
		order.Pending,
		order.Processing,
		order.Shipped,
		order.Delivered,
		order.Cancelled,
	}
}

// allowedTransitions mirrors the documented workflow:
// pending -> {processing, cancelled}, processing -> {shipped, cancelled},
// shipped -> {delivered}, delivered and cancelled terminal.
func allowedTransitions() map[order.Status][]order.Status {
	return map[order.Status][]order.Status{
		order.Pending:    {order.Processing, order.Cancelled},
		order.Processing: {order.Shipped, order.Cancelled},
		order.Shipped:    {order.Delivered},
		order.Delivered:  {},
		order.Cancelled:  {},
	}
}

func isAllowed(from, to order.Status) bool {
	for _, target := range allowedTransitions()[from] {
		if target == to {
			return true
		}
	}
	return false
}

func TestStatus_Constants(t *testing.T) {
	t.Run("should have correct enum values", func(t *testing.T) {
		assert.Equal(t, 0, int(order.Unknown))
		assert.Equal(t, 1, int(order.Pending))
		assert.Equal(t, 2, int(order.Processing))
		assert.Equal(t, 3, int(order.Shipped))
		assert.Equal(t, 4, int(order.Delivered))
		assert.Equal(t, 5, int(order.Cancelled))
	})
}

func TestStatus_Validate(t *testing.T) {
	t.Run("should validate valid statuses", func(t *testing.T) {
		for _, status := range allStatuses() {
			t.Run(fmt.Sprintf("should validate %s status", status.String()), func(t *testing.T) {
				require.NoError(t, status.Validate())
			})
		}
	})

	t.Run("should reject Unknown status", func(t *testing.T) {
		err := order.Unknown.Validate()

		require.Error(t, err)
		assert.IsType(t, &errs.ValueIsInvalidError{}, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "0 is not a valid status")
	})

	t.Run("should reject invalid status values", func(t *testing.T) {
		invalidStatuses := []order.Status{
			order.Status(-1),
			order.Status(6),
			order.Status(100),
		}

		for _, status := range invalidStatuses {
			t.Run(fmt.Sprintf("should reject status value %d", int(status)), func(t *testing.T) {
				err := status.Validate()

				require.Error(t, err)
				assert.IsType(t, &errs.ValueIsInvalidError{}, err)
			})
		}
	})
}

func TestStatus_String(t *testing.T) {
	t.Run("should return wire representations", func(t *testing.T) {
		expected := map[order.Status]string{
			order.Unknown:    "unknown",
			order.Pending:    "pending",
			order.Processing: "processing",
			order.Shipped:    "shipped",
			order.Delivered:  "delivered",
			order.Cancelled:  "cancelled",
		}

		for status, str := range expected {
			assert.Equal(t, str, status.String())
		}
	})

	t.Run("should return unknown for invalid values", func(t *testing.T) {
		assert.Equal(t, "unknown", order.Status(42).String())
	})
}

func TestStatusFromString(t *testing.T) {
	t.Run("should parse all valid statuses", func(t *testing.T) {
		for _, status := range allStatuses() {
			parsed, err := order.StatusFromString(status.String())
			require.NoError(t, err)
			assert.Equal(t, status, parsed)
		}
	})

	t.Run("should reject invalid strings", func(t *testing.T) {
		for _, raw := range []string{"", "unknown", "PENDING", "in-transit"} {
			_, err := order.StatusFromString(raw)
			require.Error(t, err, "input %q should not parse", raw)
			require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		}
	})
}

func TestStatus_IsTerminal(t *testing.T) {
	assert.False(t, order.Pending.IsTerminal())
	assert.False(t, order.Processing.IsTerminal())
	assert.False(t, order.Shipped.IsTerminal())
	assert.True(t, order.Delivered.IsTerminal())
	assert.True(t, order.Cancelled.IsTerminal())
}

func TestStatus_CanTransitionTo_FullTable(t *testing.T) {
	// Exercise every (current, requested) pair against the documented table.
	for _, from := range allStatuses() {
		for _, to := range allStatuses() {
			name := fmt.Sprintf("%s to %s", from.String(), to.String())
			t.Run(name, func(t *testing.T) {
				err := from.CanTransitionTo(to)

				if isAllowed(from, to) {
					require.NoError(t, err)
				} else {
					require.Error(t, err)
					assert.Contains(t, err.Error(),
						fmt.Sprintf("cannot transition from %s to %s", from.String(), to.String()))
				}
			})
		}
	}
}

func TestStatus_CanTransitionTo_InvalidStates(t *testing.T) {
	t.Run("unknown source is rejected", func(t *testing.T) {
		require.Error(t, order.Unknown.CanTransitionTo(order.Pending))
	})

	t.Run("unknown target is rejected", func(t *testing.T) {
		require.Error(t, order.Pending.CanTransitionTo(order.Unknown))
	})
}

func TestStatus_TransitionTo(t *testing.T) {
	t.Run("legal transition returns target", func(t *testing.T) {
		next, err := order.Pending.TransitionTo(order.Processing)

		require.NoError(t, err)
		assert.Equal(t, order.Processing, next)
	})

	t.Run("illegal transition returns zero status", func(t *testing.T) {
		next, err := order.Pending.TransitionTo(order.Shipped)

		require.Error(t, err)
		assert.Equal(t, order.Status(0), next)
	})

	t.Run("self transition is not in the table", func(t *testing.T) {
		for _, status := range allStatuses() {
			_, err := status.TransitionTo(status)
			require.Error(t, err, "%s to itself must be illegal", status.String())
		}
	})
}
