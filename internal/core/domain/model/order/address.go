package order

import (
	"errors"

	"shop/internal/pkg/errs"
	"shop/internal/pkg/guard"
)

// ErrAddressIsNotConstructed is returned when an Address was not created
// through the NewAddress constructor.
var ErrAddressIsNotConstructed = errors.New("Address must be created via NewAddress constructor")

// Address is the shipping destination captured when the order is placed.
// It is an immutable snapshot: changing a customer's saved address later
// never affects orders already created.
type Address struct {
	name       string
	line1      string
	line2      string
	city       string
	state      string
	postalCode string
	country    string
	phone      string

	guard guard.ConstructorGuard
}

// NewAddress creates a validated shipping address.
// All fields except the second address line are required.
func NewAddress(name, line1, line2, city, state, postalCode, country, phone string) (Address, error) {
	required := map[string]string{
		"name":         name,
		"addressLine1": line1,
		"city":         city,
		"state":        state,
		"postalCode":   postalCode,
		"country":      country,
		"phone":        phone,
	}
	for param, value := range required {
		if value == "" {
			return Address{}, errs.NewValueIsRequiredError(param)
		}
	}

	return Address{
		name:       name,
		line1:      line1,
		line2:      line2,
		city:       city,
		state:      state,
		postalCode: postalCode,
		country:    country,
		phone:      phone,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Name returns the recipient name.
func (a Address) Name() string { return a.name }

// Line1 returns the first address line.
func (a Address) Line1() string { return a.line1 }

// Line2 returns the optional second address line; may be empty.
func (a Address) Line2() string { return a.line2 }

// City returns the city.
func (a Address) City() string { return a.city }

// State returns the state or region.
func (a Address) State() string { return a.state }

// PostalCode returns the postal code.
func (a Address) PostalCode() string { return a.postalCode }

// Country returns the country.
func (a Address) Country() string { return a.country }

// Phone returns the contact phone number.
func (a Address) Phone() string { return a.phone }

// Validate ensures the address was created through the constructor.
func (a Address) Validate() error {
	return a.guard.Validate(ErrAddressIsNotConstructed)
}
