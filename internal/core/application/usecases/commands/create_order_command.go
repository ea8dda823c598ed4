package commands

import (
	"errors"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/order"
	"shop/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrItemsAreRequired = errors.New("at least one item is required")
)

// CreateOrderCommand represents a request to place a new order.
// Item name/price and the pricing breakdown arrive already resolved by the
// catalog upstream; this service only snapshots them.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(userID, items, pricing, address, "pay_123", "")
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory, publisher)
//	created, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	userID    kernel.UUID
	items     []order.Item
	pricing   order.Pricing
	address   order.Address
	paymentID string
	notes     string

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place a new order.
// Validates the owner ID, requires at least one item, and relies on the
// value objects having been constructed (and therefore validated) already.
func NewCreateOrderCommand(
	userID kernel.UUID,
	items []order.Item,
	pricing order.Pricing,
	address order.Address,
	paymentID string,
	notes string,
) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		paymentID: paymentID,
		notes:     notes,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setUserID(userID),
		orderCommand.setItems(items),
		orderCommand.setPricing(pricing),
		orderCommand.setAddress(address),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// UserID returns the order owner's identifier.
func (c CreateOrderCommand) UserID() kernel.UUID {
	return c.userID
}

// Items returns the order lines.
func (c CreateOrderCommand) Items() []order.Item {
	return c.items
}

// Pricing returns the price breakdown snapshot.
func (c CreateOrderCommand) Pricing() order.Pricing {
	return c.pricing
}

// Address returns the shipping address snapshot.
func (c CreateOrderCommand) Address() order.Address {
	return c.address
}

// PaymentID returns the optional external payment reference.
func (c CreateOrderCommand) PaymentID() string {
	return c.paymentID
}

// Notes returns the optional free-text notes.
func (c CreateOrderCommand) Notes() string {
	return c.notes
}

func (c *CreateOrderCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}

	c.userID = userID
	return nil
}

func (c *CreateOrderCommand) setItems(items []order.Item) error {
	if len(items) == 0 {
		return ErrItemsAreRequired
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}

	c.items = append([]order.Item(nil), items...)
	return nil
}

func (c *CreateOrderCommand) setPricing(pricing order.Pricing) error {
	if err := pricing.Validate(); err != nil {
		return err
	}

	c.pricing = pricing
	return nil
}

func (c *CreateOrderCommand) setAddress(address order.Address) error {
	if err := address.Validate(); err != nil {
		return err
	}

	c.address = address
	return nil
}
