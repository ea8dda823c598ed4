package queries

import (
	"errors"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/order"
	"shop/internal/pkg/guard"
)

var ErrGetUserOrdersQueryIsNotConstructed = errors.New(
	"GetUserOrdersQuery must be created via NewGetUserOrdersQuery constructor",
)

// GetUserOrdersQuery lists a user's orders newest first, optionally filtered
// by status, with page metadata.
//
// statusFilter is the wire status string; empty means no filter. page and
// limit of zero fall back to the defaults (page 1, 10 per page).
type GetUserOrdersQuery struct {
	userID       kernel.UUID
	statusFilter order.Status
	page         int
	limit        int

	guard guard.ConstructorGuard
}

// NewGetUserOrdersQuery creates a paginated listing query for one user.
func NewGetUserOrdersQuery(
	userID kernel.UUID,
	statusFilter string,
	page int,
	limit int,
) (GetUserOrdersQuery, error) {
	if err := userID.Validate(); err != nil {
		return GetUserOrdersQuery{}, err
	}

	status := order.Unknown
	if statusFilter != "" {
		var err error
		status, err = order.StatusFromString(statusFilter)
		if err != nil {
			return GetUserOrdersQuery{}, err
		}
	}

	page, err := normalizePage(page)
	if err != nil {
		return GetUserOrdersQuery{}, err
	}

	limit, err = normalizeLimit(limit)
	if err != nil {
		return GetUserOrdersQuery{}, err
	}

	return GetUserOrdersQuery{
		userID:       userID,
		statusFilter: status,
		page:         page,
		limit:        limit,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetUserOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetUserOrdersQueryIsNotConstructed)
}

// UserID returns the owner whose orders are listed.
func (q GetUserOrdersQuery) UserID() kernel.UUID {
	return q.userID
}

// StatusFilter returns the status to filter by, or order.Unknown for none.
func (q GetUserOrdersQuery) StatusFilter() order.Status {
	return q.statusFilter
}

// Page returns the 1-based page number.
func (q GetUserOrdersQuery) Page() int {
	return q.page
}

// Limit returns the page size.
func (q GetUserOrdersQuery) Limit() int {
	return q.limit
}
