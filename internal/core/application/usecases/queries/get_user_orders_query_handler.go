package queries

import (
	"context"

	"shop/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetUserOrdersQueryHandler lists a user's orders from the database.
type GetUserOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetUserOrdersQueryHandler creates a handler for user order listings.
func NewGetUserOrdersQueryHandler(db *gorm.DB) GetUserOrdersQueryHandler {
	return GetUserOrdersQueryHandler{db: db}
}

// Handle executes the listing. Orders are returned newest first; the envelope
// carries the total count across all pages.
func (h GetUserOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetUserOrdersQuery,
) (OrdersPageResponse, error) {
	if err := query.Validate(); err != nil {
		return OrdersPageResponse{}, err
	}

	// gorm chains cannot be reused after a finisher, so the filter is rebuilt
	// for the count and the page fetch.
	scope := func() *gorm.DB {
		s := h.db.WithContext(ctx).Model(&orderRow{}).
			Where("user_id = ?", query.UserID().Bytes())
		if query.StatusFilter() != order.Unknown {
			s = s.Where("status = ?", int(query.StatusFilter()))
		}
		return s
	}

	var total int64
	if err := scope().Count(&total).Error; err != nil {
		return OrdersPageResponse{}, err
	}

	var rows []orderRow
	err := scope().
		Order("created_at DESC").
		Offset((query.Page() - 1) * query.Limit()).
		Limit(query.Limit()).
		Find(&rows).Error
	if err != nil {
		return OrdersPageResponse{}, err
	}

	orders, err := rowsToResponses(rows)
	if err != nil {
		return OrdersPageResponse{}, err
	}

	return OrdersPageResponse{
		Orders:     orders,
		Total:      total,
		Page:       query.Page(),
		Limit:      query.Limit(),
		TotalPages: totalPages(total, query.Limit()),
	}, nil
}
