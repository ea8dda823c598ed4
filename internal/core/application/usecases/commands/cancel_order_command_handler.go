package commands

import (
	"context"
	"time"

	"shop/internal/core/domain/model/order"
	"shop/internal/core/ports"
)

// CancelOrderCommandHandler handles customer-initiated order cancellation.
// Loads the order scoped to the requesting user, applies the cancellation
// per the fulfillment state machine, and persists the result.
type CancelOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.OrderEventPublisher
}

// NewCancelOrderCommandHandler creates a handler for order cancellation.
func NewCancelOrderCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.OrderEventPublisher,
) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the cancellation and returns the cancelled order.
//
// Fails with a not-found error when the order is absent or owned by a
// different user (same error either way), and with a state-conflict error
// when the order is already shipped, delivered, or cancelled.
func (h *CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	aggregate, err := orderRepo.GetByUser(ctx, cmd.OrderID(), cmd.UserID())
	if err != nil {
		return nil, err
	}

	if err = aggregate.Cancel(cmd.Reason(), time.Now().UTC()); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.publisher.OrderCancelled(ctx, aggregate)
	return aggregate, nil
}
