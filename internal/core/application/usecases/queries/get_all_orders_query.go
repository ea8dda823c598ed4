package queries

import (
	"errors"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/order"
	"shop/internal/pkg/guard"
)

var ErrGetAllOrdersQueryIsNotConstructed = errors.New(
	"GetAllOrdersQuery must be created via NewGetAllOrdersQuery constructor",
)

// GetAllOrdersQuery lists orders across all users for administrative tooling.
// Unlike GetUserOrdersQuery it is not scoped to a caller; both the status and
// the user filters are optional (empty string means no filter).
type GetAllOrdersQuery struct {
	statusFilter order.Status
	userFilter   kernel.UUID
	filterByUser bool
	page         int
	limit        int

	guard guard.ConstructorGuard
}

// NewGetAllOrdersQuery creates an unscoped paginated listing query.
func NewGetAllOrdersQuery(
	statusFilter string,
	userFilter string,
	page int,
	limit int,
) (GetAllOrdersQuery, error) {
	status := order.Unknown
	if statusFilter != "" {
		var err error
		status, err = order.StatusFromString(statusFilter)
		if err != nil {
			return GetAllOrdersQuery{}, err
		}
	}

	var userID kernel.UUID
	filterByUser := false
	if userFilter != "" {
		var err error
		userID, err = kernel.UUIDFromString(userFilter)
		if err != nil {
			return GetAllOrdersQuery{}, err
		}
		filterByUser = true
	}

	page, err := normalizePage(page)
	if err != nil {
		return GetAllOrdersQuery{}, err
	}

	limit, err = normalizeLimit(limit)
	if err != nil {
		return GetAllOrdersQuery{}, err
	}

	return GetAllOrdersQuery{
		statusFilter: status,
		userFilter:   userID,
		filterByUser: filterByUser,
		page:         page,
		limit:        limit,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetAllOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetAllOrdersQueryIsNotConstructed)
}

// StatusFilter returns the status to filter by, or order.Unknown for none.
func (q GetAllOrdersQuery) StatusFilter() order.Status {
	return q.statusFilter
}

// UserFilter returns the user to filter by and whether the filter is set.
func (q GetAllOrdersQuery) UserFilter() (kernel.UUID, bool) {
	return q.userFilter, q.filterByUser
}

// Page returns the 1-based page number.
func (q GetAllOrdersQuery) Page() int {
	return q.page
}

// Limit returns the page size.
func (q GetAllOrdersQuery) Limit() int {
	return q.limit
}
