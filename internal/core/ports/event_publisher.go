package ports

import (
	"context"

	"shop/internal/core/domain/model/order"
)

// OrderEventPublisher notifies other services about order lifecycle events.
//
// Publishing is best-effort and happens after the owning transaction has
// committed: implementations log failures and never return them, so a
// broker outage cannot fail an operation whose document is already written.
type OrderEventPublisher interface {
	// OrderCreated announces a freshly created order.
	OrderCreated(ctx context.Context, o *order.Order)

	// OrderStatusChanged announces a fulfillment status change,
	// including the status the order moved from.
	OrderStatusChanged(ctx context.Context, o *order.Order, previous order.Status)

	// OrderCancelled announces a cancellation.
	OrderCancelled(ctx context.Context, o *order.Order)
}
