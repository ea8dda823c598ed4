package order

import (
	"fmt"

	"shop/internal/pkg/errs"
)

// Status represents the fulfillment state of an order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct business workflow.
//
// State transitions:
//
//	Pending ──> Processing ──> Shipped ──> Delivered
//	   │             │
//	   └──> Cancelled <──┘
//
// Delivered and Cancelled are terminal: no transition leaves them.
// Status is a value object that validates state transitions and provides
// string representations for persistence and the wire contract.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status assigned unconditionally at creation.
	// Pending orders may move to processing or be cancelled.
	Pending

	// Processing indicates the order has been accepted for fulfillment.
	// Processing orders may be shipped or cancelled.
	Processing

	// Shipped indicates the order has left the warehouse.
	// Shipped orders can only be delivered; cancellation is no longer possible.
	Shipped

	// Delivered indicates the order reached the customer.
	// This is a terminal state with no further transitions allowed.
	Delivered

	// Cancelled indicates the order was cancelled before shipment.
	// This is a terminal state with no further transitions allowed.
	Cancelled
)

// getStatusStrings returns a map of Status values to their string
// representations. The strings double as the wire-contract values,
// hence the lower case.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "unknown",
		Pending:    "pending",
		Processing: "processing",
		Shipped:    "shipped",
		Delivered:  "delivered",
		Cancelled:  "cancelled",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:    "pending",
		Processing: "processing",
		Shipped:    "shipped",
		Delivered:  "delivered",
		Cancelled:  "cancelled",
	}
}

// getStatusTransitions returns the transition table of the fulfillment
// state machine. A requested transition is legal iff the target appears
// in the slice keyed by the current status. This table is the single
// authority for both generic status updates and cancellation eligibility.
func getStatusTransitions() map[Status][]Status {
	return map[Status][]Status{
		Pending:    {Processing, Cancelled},
		Processing: {Shipped, Cancelled},
		Shipped:    {Delivered},
		Delivered:  {},
		Cancelled:  {},
	}
}

// StatusFromString parses a wire-contract status string ("pending",
// "processing", "shipped", "delivered", "cancelled") into a Status.
// Returns an error for anything else, including "unknown".
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: Pending, Processing, Shipped, Delivered, Cancelled.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire representation of the status.
// Returns "unknown" for invalid status values.
// This method implements the fmt.Stringer interface and is safe
// to call on any Status value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether the status permits no further transitions.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// CanTransitionTo checks whether the transition table permits moving from
// the current status to target, without performing the transition.
//
// Returns:
//   - nil if the transition is legal
//   - error naming both states if it is not
func (s Status) CanTransitionTo(target Status) error {
	if err := s.Validate(); err != nil {
		return err
	}
	if err := target.Validate(); err != nil {
		return err
	}

	for _, allowed := range getStatusTransitions()[s] {
		if allowed == target {
			return nil
		}
	}

	return errs.NewValueIsInvalidErrorWithCause(
		"status transition",
		fmt.Errorf("cannot transition from %s to %s", s.String(), target.String()),
	)
}

// TransitionTo returns the target status after validating the transition
// against the table.
//
// Returns:
//   - (target, nil) on a legal transition
//   - (0, error) if the transition is not allowed from the current status
//
// This method is used by Order.ChangeStatus to enforce state transitions.
func (s Status) TransitionTo(target Status) (Status, error) {
	if err := s.CanTransitionTo(target); err != nil {
		return 0, err
	}

	return target, nil
}
