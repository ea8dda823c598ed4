package order

import (
	"errors"
	"fmt"
	"time"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through NewOrder or RestoreOrder. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")

	// ErrNoItems is returned when an order is created without line items.
	ErrNoItems = errors.New("order must contain at least one item")
)

// Order represents a customer's purchase in the shop. It is the aggregate
// root that manages the order lifecycle from creation through fulfillment
// to a terminal state (delivered or cancelled).
//
// Order follows these invariants:
//   - Identity, owner, items, pricing, and shipping address are immutable after creation
//   - The order number is unique system-wide and day-scoped sequential
//   - Status transitions follow the fulfillment state machine (see Status)
//   - Terminal statuses permit no further mutation
//   - shippedAt/deliveredAt/cancelledAt are each stamped at most once
//
// The struct uses private fields to ensure encapsulation and maintains its
// invariants through validated methods. updatedAt is bumped on every mutation.
type Order struct {
	id     kernel.UUID
	number Number
	userID kernel.UUID

	items   []Item
	pricing Pricing
	address Address

	status Status

	paymentID          string
	notes              string
	trackingNumber     string
	cancellationReason string

	shippedAt   *time.Time
	deliveredAt *time.Time
	cancelledAt *time.Time

	createdAt time.Time
	updatedAt time.Time

	isConstructed bool
}

// NewOrder creates a new Order with validation. The order starts in Pending
// status unconditionally. paymentID and notes are optional and may be empty.
//
// The caller supplies the creation instant so that the order number's date
// component and createdAt always agree.
func NewOrder(
	id kernel.UUID,
	number Number,
	userID kernel.UUID,
	items []Item,
	pricing Pricing,
	address Address,
	paymentID string,
	notes string,
	now time.Time,
) (*Order, error) {
	if err := errors.Join(
		id.Validate(),
		number.Validate(),
		userID.Validate(),
		pricing.Validate(),
		address.Validate(),
	); err != nil {
		return nil, err
	}

	if len(items) == 0 {
		return nil, ErrNoItems
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return nil, err
		}
	}

	return &Order{
		id:            id,
		number:        number,
		userID:        userID,
		items:         append([]Item(nil), items...),
		pricing:       pricing,
		address:       address,
		status:        Pending,
		paymentID:     paymentID,
		notes:         notes,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}, nil
}

// RestoreOrderParams carries the full persisted state of an order for
// reconstruction by repositories.
type RestoreOrderParams struct {
	ID                 kernel.UUID
	Number             Number
	UserID             kernel.UUID
	Items              []Item
	Pricing            Pricing
	Address            Address
	Status             Status
	PaymentID          string
	Notes              string
	TrackingNumber     string
	CancellationReason string
	ShippedAt          *time.Time
	DeliveredAt        *time.Time
	CancelledAt        *time.Time
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// RestoreOrder reconstructs an Order from persisted state, bypassing the
// creation-time defaults but not the structural validation. Used only by
// repository implementations.
func RestoreOrder(params RestoreOrderParams) (*Order, error) {
	if err := errors.Join(
		params.ID.Validate(),
		params.Number.Validate(),
		params.UserID.Validate(),
		params.Pricing.Validate(),
		params.Address.Validate(),
		params.Status.Validate(),
	); err != nil {
		return nil, err
	}

	if len(params.Items) == 0 {
		return nil, ErrNoItems
	}

	return &Order{
		id:                 params.ID,
		number:             params.Number,
		userID:             params.UserID,
		items:              append([]Item(nil), params.Items...),
		pricing:            params.Pricing,
		address:            params.Address,
		status:             params.Status,
		paymentID:          params.PaymentID,
		notes:              params.Notes,
		trackingNumber:     params.TrackingNumber,
		cancellationReason: params.CancellationReason,
		shippedAt:          params.ShippedAt,
		deliveredAt:        params.DeliveredAt,
		cancelledAt:        params.CancelledAt,
		createdAt:          params.CreatedAt,
		updatedAt:          params.UpdatedAt,
		isConstructed:      true,
	}, nil
}

// Validate ensures the Order instance was properly constructed.
// This prevents bypassing validation by directly instantiating the struct.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Number returns the human-readable order number.
func (o *Order) Number() Number {
	return o.number
}

// UserID returns the identifier of the order's owner.
func (o *Order) UserID() kernel.UUID {
	return o.userID
}

// Items returns a copy of the order's line items.
func (o *Order) Items() []Item {
	return append([]Item(nil), o.items...)
}

// Pricing returns the price breakdown snapshot.
func (o *Order) Pricing() Pricing {
	return o.pricing
}

// Address returns the shipping address snapshot.
func (o *Order) Address() Address {
	return o.address
}

// Status returns the current fulfillment status.
func (o *Order) Status() Status {
	return o.status
}

// PaymentID returns the external payment reference; may be empty.
func (o *Order) PaymentID() string {
	return o.paymentID
}

// Notes returns the free-text notes; may be empty.
func (o *Order) Notes() string {
	return o.notes
}

// TrackingNumber returns the carrier tracking number; empty until shipped.
func (o *Order) TrackingNumber() string {
	return o.trackingNumber
}

// CancellationReason returns the reason given at cancellation; may be empty.
func (o *Order) CancellationReason() string {
	return o.cancellationReason
}

// ShippedAt returns when the order was shipped, or nil.
func (o *Order) ShippedAt() *time.Time {
	return o.shippedAt
}

// DeliveredAt returns when the order was delivered, or nil.
func (o *Order) DeliveredAt() *time.Time {
	return o.deliveredAt
}

// CancelledAt returns when the order was cancelled, or nil.
func (o *Order) CancelledAt() *time.Time {
	return o.cancelledAt
}

// CreatedAt returns the immutable creation instant.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns the instant of the last mutation.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// Cancel cancels the order, recording the optional reason and stamping
// cancelledAt. Eligibility comes from the transition table: cancellation
// is legal exactly while the order is pending or processing.
//
// Returns an error naming the current status when the order is already
// shipped, delivered, or cancelled.
func (o *Order) Cancel(reason string, now time.Time) error {
	if err := o.status.CanTransitionTo(Cancelled); err != nil {
		return errs.NewValueIsInvalidErrorWithCause(
			"cancellation",
			fmt.Errorf("cannot cancel order with status: %s", o.status.String()),
		)
	}

	o.status = Cancelled
	o.cancellationReason = reason
	if o.cancelledAt == nil {
		cancelledAt := now
		o.cancelledAt = &cancelledAt
	}
	o.updatedAt = now
	return nil
}

// ChangeStatus moves the order to target after validating the transition
// against the state machine. Side effects of reaching a state are applied
// here: shippedAt/deliveredAt/cancelledAt are stamped the first time the
// corresponding state is reached (an already-set timestamp is never
// overwritten), and an optional tracking number and notes are recorded.
func (o *Order) ChangeStatus(target Status, trackingNumber, notes string, now time.Time) error {
	newStatus, err := o.status.TransitionTo(target)
	if err != nil {
		return err
	}

	o.status = newStatus

	switch newStatus {
	case Shipped:
		if o.shippedAt == nil {
			shippedAt := now
			o.shippedAt = &shippedAt
		}
	case Delivered:
		if o.deliveredAt == nil {
			deliveredAt := now
			o.deliveredAt = &deliveredAt
		}
	case Cancelled:
		if o.cancelledAt == nil {
			cancelledAt := now
			o.cancelledAt = &cancelledAt
		}
	}

	if trackingNumber != "" {
		o.trackingNumber = trackingNumber
	}
	if notes != "" {
		o.notes = notes
	}

	o.updatedAt = now
	return nil
}
