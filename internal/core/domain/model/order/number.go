package order

import (
	"fmt"
	"regexp"
	"time"

	"shop/internal/pkg/errs"
)

const (
	numberPrefix  = "ORD"
	numberDateFmt = "060102"
	maxSequence   = 9999
)

var numberPattern = regexp.MustCompile(`^ORD-\d{6}-\d{4}$`)

// Number is the human-readable, day-scoped sequential order identifier,
// distinct from the internal UUID. External format: ORD-YYMMDD-NNNN,
// e.g. ORD-251201-0004. The date component is the creation day and the
// sequence component counts creations within that day, starting at 1.
//
// Number is a value object; the zero value is invalid and must be created
// via NewNumber or NumberFromString.
type Number struct {
	value string
}

// NewNumber builds an order number from a creation day and the day-scoped
// sequence assigned by the allocator. The sequence must lie in [1, 9999];
// the allocator owns uniqueness, this constructor only owns the format.
func NewNumber(day time.Time, sequence int) (Number, error) {
	if sequence < 1 || sequence > maxSequence {
		return Number{}, errs.NewValueIsOutOfRangeError("sequence", sequence, 1, maxSequence)
	}

	return Number{
		value: fmt.Sprintf("%s-%s-%04d", numberPrefix, day.Format(numberDateFmt), sequence),
	}, nil
}

// NumberFromString parses and validates an order number arriving from
// persistence or the wire.
func NumberFromString(s string) (Number, error) {
	if !numberPattern.MatchString(s) {
		return Number{}, errs.NewValueIsInvalidErrorWithCause("order number",
			fmt.Errorf("%q does not match %s", s, numberPattern.String()))
	}
	return Number{value: s}, nil
}

// String returns the external representation, e.g. "ORD-251201-0004".
func (n Number) String() string {
	return n.value
}

// IsEqual compares two order numbers for equality.
func (n Number) IsEqual(other Number) bool {
	return n.value == other.value
}

// Validate checks that the number was created through a constructor.
func (n Number) Validate() error {
	if n.value == "" {
		return errs.NewValueIsRequiredError("order number must be created via NewNumber or NumberFromString")
	}
	return nil
}
