package queries

import (
	"shop/internal/pkg/errs"
)

const (
	defaultPage  = 1
	defaultLimit = 10
	maxLimit     = 100
)

// normalizePage applies the default page number when the caller omitted it
// (zero). Pages are 1-based.
func normalizePage(page int) (int, error) {
	if page == 0 {
		return defaultPage, nil
	}
	if page < 1 {
		return 0, errs.NewValueIsOutOfRangeError("page", page, 1, "unbounded")
	}
	return page, nil
}

// normalizeLimit applies the default page size when the caller omitted it
// (zero) and caps the size to keep a single page bounded.
func normalizeLimit(limit int) (int, error) {
	if limit == 0 {
		return defaultLimit, nil
	}
	if limit < 1 || limit > maxLimit {
		return 0, errs.NewValueIsOutOfRangeError("limit", limit, 1, maxLimit)
	}
	return limit, nil
}

func totalPages(total int64, limit int) int {
	pages := int(total) / limit
	if int(total)%limit != 0 {
		pages++
	}
	return pages
}
