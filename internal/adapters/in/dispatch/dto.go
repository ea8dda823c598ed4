package dispatch

import (
	"shop/internal/core/application/usecases/queries"
	"shop/internal/core/domain/model/order"
)

// Request payloads mirror the wire contract of the existing shop gateway.
// Field names must stay stable; frontends bind to them directly.

type itemRequest struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
}

type addressRequest struct {
	Name         string `json:"name"`
	AddressLine1 string `json:"addressLine1"`
	AddressLine2 string `json:"addressLine2"`
	City         string `json:"city"`
	State        string `json:"state"`
	PostalCode   string `json:"postalCode"`
	Country      string `json:"country"`
	Phone        string `json:"phone"`
}

type createOrderRequest struct {
	UserID          string         `json:"userId"`
	Items           []itemRequest  `json:"items"`
	Subtotal        float64        `json:"subtotal"`
	Tax             float64        `json:"tax"`
	ShippingCost    float64        `json:"shippingCost"`
	Total           float64        `json:"total"`
	ShippingAddress addressRequest `json:"shippingAddress"`
	PaymentID       string         `json:"paymentId"`
	Notes           string         `json:"notes"`
}

type getUserOrdersRequest struct {
	UserID string `json:"userId"`
	Status string `json:"status"`
	Page   int    `json:"page"`
	Limit  int    `json:"limit"`
}

type getOrderRequest struct {
	OrderID string `json:"orderId"`
	UserID  string `json:"userId"`
}

type cancelOrderRequest struct {
	OrderID string `json:"orderId"`
	UserID  string `json:"userId"`
	Reason  string `json:"reason"`
}

type getAllOrdersRequest struct {
	Status string `json:"status"`
	UserID string `json:"userId"`
	Page   int    `json:"page"`
	Limit  int    `json:"limit"`
}

type updateOrderStatusRequest struct {
	OrderID        string `json:"orderId"`
	Status         string `json:"status"`
	TrackingNumber string `json:"trackingNumber"`
	Notes          string `json:"notes"`
}

// toOrderResponse converts a mutated aggregate to the wire representation,
// so commands echo back the same shape reads serve.
func toOrderResponse(o *order.Order) queries.OrderResponse {
	items := make([]queries.ItemResponse, 0, len(o.Items()))
	for _, item := range o.Items() {
		items = append(items, queries.ItemResponse{
			ProductID: item.ProductID(),
			Name:      item.Name(),
			Price:     item.UnitPrice(),
			Quantity:  item.Quantity(),
			Subtotal:  item.Subtotal(),
		})
	}

	address := o.Address()
	pricing := o.Pricing()

	return queries.OrderResponse{
		ID:           o.ID().String(),
		OrderNumber:  o.Number().String(),
		UserID:       o.UserID().String(),
		Status:       o.Status().String(),
		Items:        items,
		Subtotal:     pricing.Subtotal(),
		Tax:          pricing.Tax(),
		ShippingCost: pricing.ShippingCost(),
		Total:        pricing.Total(),
		ShippingAddress: queries.AddressResponse{
			Name:         address.Name(),
			AddressLine1: address.Line1(),
			AddressLine2: address.Line2(),
			City:         address.City(),
			State:        address.State(),
			PostalCode:   address.PostalCode(),
			Country:      address.Country(),
			Phone:        address.Phone(),
		},
		PaymentID:          o.PaymentID(),
		Notes:              o.Notes(),
		TrackingNumber:     o.TrackingNumber(),
		CancellationReason: o.CancellationReason(),
		ShippedAt:          o.ShippedAt(),
		DeliveredAt:        o.DeliveredAt(),
		CancelledAt:        o.CancelledAt(),
		CreatedAt:          o.CreatedAt(),
		UpdatedAt:          o.UpdatedAt(),
	}
}
