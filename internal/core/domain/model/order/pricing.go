package order

import (
	"errors"
	"fmt"
	"math"

	"shop/internal/pkg/errs"
	"shop/internal/pkg/guard"
)

// ErrPricingIsNotConstructed is returned when a Pricing was not created
// through the NewPricing constructor.
var ErrPricingIsNotConstructed = errors.New("Pricing must be created via NewPricing constructor")

// pricingTolerance absorbs float rounding when checking the total.
// Anything off by half a cent or more is a real inconsistency.
const pricingTolerance = 0.005

// Pricing is the immutable price breakdown captured at order creation.
// It is a snapshot: catalog price changes after creation never alter it.
//
// Invariant: total = subtotal + tax + shippingCost (within rounding
// tolerance), enforced at construction.
type Pricing struct {
	subtotal     float64
	tax          float64
	shippingCost float64
	total        float64

	guard guard.ConstructorGuard
}

// NewPricing creates a validated pricing snapshot.
//
// Validation rules:
//   - no component may be negative
//   - total must equal subtotal + tax + shippingCost
func NewPricing(subtotal, tax, shippingCost, total float64) (Pricing, error) {
	for param, value := range map[string]float64{
		"subtotal":     subtotal,
		"tax":          tax,
		"shippingCost": shippingCost,
		"total":        total,
	} {
		if value < 0 {
			return Pricing{}, errs.NewValueIsInvalidErrorWithCause(param,
				fmt.Errorf("%.2f is negative", value))
		}
	}

	if math.Abs(total-(subtotal+tax+shippingCost)) >= pricingTolerance {
		return Pricing{}, errs.NewValueIsInvalidErrorWithCause("total",
			fmt.Errorf("%.2f does not equal subtotal %.2f + tax %.2f + shipping %.2f",
				total, subtotal, tax, shippingCost))
	}

	return Pricing{
		subtotal:     subtotal,
		tax:          tax,
		shippingCost: shippingCost,
		total:        total,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Subtotal returns the sum of line subtotals.
func (p Pricing) Subtotal() float64 { return p.subtotal }

// Tax returns the tax amount.
func (p Pricing) Tax() float64 { return p.tax }

// ShippingCost returns the shipping cost.
func (p Pricing) ShippingCost() float64 { return p.shippingCost }

// Total returns the grand total.
func (p Pricing) Total() float64 { return p.total }

// Validate ensures the pricing was created through the constructor.
func (p Pricing) Validate() error {
	return p.guard.Validate(ErrPricingIsNotConstructed)
}
