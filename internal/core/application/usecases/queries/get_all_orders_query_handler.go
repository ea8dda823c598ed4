package queries

import (
	"context"

	"shop/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetAllOrdersQueryHandler lists orders across all users from the database.
type GetAllOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetAllOrdersQueryHandler creates a handler for administrative listings.
func NewGetAllOrdersQueryHandler(db *gorm.DB) GetAllOrdersQueryHandler {
	return GetAllOrdersQueryHandler{db: db}
}

// Handle executes the listing, newest first.
func (h GetAllOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetAllOrdersQuery,
) (OrdersPageResponse, error) {
	if err := query.Validate(); err != nil {
		return OrdersPageResponse{}, err
	}

	scope := func() *gorm.DB {
		s := h.db.WithContext(ctx).Model(&orderRow{})
		if query.StatusFilter() != order.Unknown {
			s = s.Where("status = ?", int(query.StatusFilter()))
		}
		if userID, ok := query.UserFilter(); ok {
			s = s.Where("user_id = ?", userID.Bytes())
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
