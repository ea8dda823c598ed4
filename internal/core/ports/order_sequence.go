package ports

import (
	"context"
	"time"
)

// OrderSequence allocates day-scoped sequence numbers for order numbers.
//
// Next returns the next integer for the calendar day of the given instant,
// starting at 1 each day and increasing by exactly 1 per call. The
// implementation must be atomic: concurrent calls for the same day must
// never return the same value. Allocations are not returned on rollback,
// so gaps in a day's sequence are possible and harmless.
type OrderSequence interface {
	Next(ctx context.Context, day time.Time) (int, error)
}
