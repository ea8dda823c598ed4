package order

import (
	"fmt"

	"shop/internal/pkg/errs"
)

// Item is a single order line: a product snapshot taken at creation time.
// Name and unit price are captured from the catalog when the order is
// placed and are never refreshed afterwards, so later catalog changes do
// not affect existing orders.
//
// Item is an immutable value object created via NewItem.
type Item struct {
	productID string
	name      string
	unitPrice float64
	quantity  int
}

// NewItem creates a validated order line.
//
// Validation rules:
//   - productID and name must be non-empty
//   - unitPrice must not be negative
//   - quantity must be positive
func NewItem(productID, name string, unitPrice float64, quantity int) (Item, error) {
	if productID == "" {
		return Item{}, errs.NewValueIsRequiredError("productId")
	}
	if name == "" {
		return Item{}, errs.NewValueIsRequiredError("name")
	}
	if unitPrice < 0 {
		return Item{}, errs.NewValueIsInvalidErrorWithCause("price",
			fmt.Errorf("%.2f is negative", unitPrice))
	}
	if quantity <= 0 {
		return Item{}, errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}

	return Item{
		productID: productID,
		name:      name,
		unitPrice: unitPrice,
		quantity:  quantity,
	}, nil
}

// ProductID returns the catalog identifier the line refers to.
func (i Item) ProductID() string {
	return i.productID
}

// Name returns the product name snapshot.
func (i Item) Name() string {
	return i.name
}

// UnitPrice returns the per-unit price snapshot.
func (i Item) UnitPrice() float64 {
	return i.unitPrice
}

// Quantity returns the number of units ordered.
func (i Item) Quantity() int {
	return i.quantity
}

// Subtotal returns the computed line total (unit price times quantity).
func (i Item) Subtotal() float64 {
	return i.unitPrice * float64(i.quantity)
}

// Validate checks that the item was created through NewItem.
func (i Item) Validate() error {
	if i.productID == "" {
		return errs.NewValueIsRequiredError("item must be created via NewItem")
	}
	return nil
}
