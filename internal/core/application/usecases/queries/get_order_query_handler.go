package queries

import (
	"context"
	"errors"

	"shop/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetOrderQueryHandler reads a single order straight from the database.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single-order lookups.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the lookup. A missing order and a foreign-owned order both
// produce the same not-found error.
func (h GetOrderQueryHandler) Handle(
	ctx context.Context,
	query GetOrderQuery,
) (OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderResponse{}, err
	}

	var row orderRow
	result := h.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", query.OrderID().Bytes(), query.UserID().Bytes()).
		First(&row)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return OrderResponse{}, errs.NewObjectNotFoundError("order", query.OrderID().String())
		}
		return OrderResponse{}, result.Error
	}

	return row.toResponse()
}
