package queries

import (
	"encoding/json"
	"time"

	"shop/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// ItemResponse is a single order line as returned to callers.
type ItemResponse struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
	Subtotal  float64 `json:"subtotal"`
}

// AddressResponse is the shipping destination snapshot as returned to callers.
type AddressResponse struct {
	Name         string `json:"name"`
	AddressLine1 string `json:"addressLine1"`
	AddressLine2 string `json:"addressLine2,omitempty"`
	City         string `json:"city"`
	State        string `json:"state"`
	PostalCode   string `json:"postalCode"`
	Country      string `json:"country"`
	Phone        string `json:"phone"`
}

// OrderResponse is the full order representation returned by every read
// operation and by commands that echo the mutated order back.
type OrderResponse struct {
	ID                 string          `json:"id"`
	OrderNumber        string          `json:"orderNumber"`
	UserID             string          `json:"userId"`
	Status             string          `json:"status"`
	Items              []ItemResponse  `json:"items"`
	Subtotal           float64         `json:"subtotal"`
	Tax                float64         `json:"tax"`
	ShippingCost       float64         `json:"shippingCost"`
	Total              float64         `json:"total"`
	ShippingAddress    AddressResponse `json:"shippingAddress"`
	PaymentID          string          `json:"paymentId,omitempty"`
	Notes              string          `json:"notes,omitempty"`
	TrackingNumber     string          `json:"trackingNumber,omitempty"`
	CancellationReason string          `json:"cancellationReason,omitempty"`
	ShippedAt          *time.Time      `json:"shippedAt,omitempty"`
	DeliveredAt        *time.Time      `json:"deliveredAt,omitempty"`
	CancelledAt        *time.Time      `json:"cancelledAt,omitempty"`
	CreatedAt          time.Time       `json:"createdAt"`
	UpdatedAt          time.Time       `json:"updatedAt"`
}

// OrdersPageResponse is the paginated envelope for order list operations.
type OrdersPageResponse struct {
	Orders     []OrderResponse `json:"orders"`
	Total      int64           `json:"total"`
	Page       int             `json:"page"`
	Limit      int             `json:"limit"`
	TotalPages int             `json:"totalPages"`
}

// orderRow mirrors the orders table for read-side queries. Items and the
// shipping address are stored as JSONB documents in the same shape they are
// served in, so no domain reconstruction happens on the read path.
type orderRow struct {
	ID                 uuid.UUID `gorm:"primaryKey"`
	OrderNumber        string
	UserID             uuid.UUID
	Status             int
	Items              string `gorm:"type:jsonb"`
	ShippingAddress    string `gorm:"type:jsonb"`
	Subtotal           float64
	Tax                float64
	ShippingCost       float64
	Total              float64
	PaymentID          string
	Notes              string
	TrackingNumber     string
	CancellationReason string
	ShippedAt          *time.Time
	DeliveredAt        *time.Time
	CancelledAt        *time.Time
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

func (orderRow) TableName() string {
	return "orders"
}

func (r orderRow) toResponse() (OrderResponse, error) {
	var items []ItemResponse
	if err := json.Unmarshal([]byte(r.Items), &items); err != nil {
		return OrderResponse{}, err
	}

	var address AddressResponse
	if err := json.Unmarshal([]byte(r.ShippingAddress), &address); err != nil {
		return OrderResponse{}, err
	}

	return OrderResponse{
		ID:                 r.ID.String(),
		OrderNumber:        r.OrderNumber,
		UserID:             r.UserID.String(),
		Status:             order.Status(r.Status).String(),
		Items:              items,
		Subtotal:           r.Subtotal,
		Tax:                r.Tax,
		ShippingCost:       r.ShippingCost,
		Total:              r.Total,
		ShippingAddress:    address,
		PaymentID:          r.PaymentID,
		Notes:              r.Notes,
		TrackingNumber:     r.TrackingNumber,
		CancellationReason: r.CancellationReason,
		ShippedAt:          r.ShippedAt,
		DeliveredAt:        r.DeliveredAt,
		CancelledAt:        r.CancelledAt,
		CreatedAt:          r.CreatedAt,
		UpdatedAt:          r.UpdatedAt,
	}, nil
}

func rowsToResponses(rows []orderRow) ([]OrderResponse, error) {
	responses := make([]OrderResponse, 0, len(rows))
	for _, row := range rows {
		response, err := row.toResponse()
		if err != nil {
			return nil, err
		}
		responses = append(responses, response)
	}
	return responses, nil
}
