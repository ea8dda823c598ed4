package commands

import (
	"context"
	"time"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/order"
	"shop/internal/core/ports"
)

// CreateOrderCommandHandler handles the business logic for order placement.
// Allocates a day-scoped order number, creates the order in pending status,
// and announces it to other services after commit.
type CreateOrderCommandHandler struct {
	uowFactory CreateOrderUoWFactory
	publisher  ports.OrderEventPublisher
}

// NewCreateOrderCommandHandler creates a handler for order placement.
// Requires a CreateOrderUoWFactory for transactional persistence and an
// event publisher for post-commit notification.
func NewCreateOrderCommandHandler(
	uowFactory CreateOrderUoWFactory,
	publisher ports.OrderEventPublisher,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the order placement command and returns the created order.
//
// The number allocation and the order insert run in one transaction, so a
// failed insert never publishes a gapless-looking but unused order number
// outside the day sequence, and concurrent creations on the same day cannot
// collide on the same sequence value.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
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

	now := time.Now().UTC()

	sequence, err := uow.OrderSequence().Next(ctx, now)
	if err != nil {
		return nil, err
	}

	number, err := order.NewNumber(now, sequence)
	if err != nil {
		return nil, err
	}

	newOrder, err := order.NewOrder(
		kernel.NewUUID(),
		number,
		cmd.UserID(),
		cmd.Items(),
		cmd.Pricing(),
		cmd.Address(),
		cmd.PaymentID(),
		cmd.Notes(),
		now,
	)
	if err != nil {
		return nil, err
	}

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.publisher.OrderCreated(ctx, newOrder)
	return newOrder, nil
}
