// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. It implements the repository pattern for the order
// aggregate, handling the conversion between domain entities and database rows.
package orderrepo

import (
	"encoding/json"
	"time"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Line items and the shipping address are stored as JSONB documents in the
// same shape the read side serves them, so queries never have to rebuild the
// aggregate.
type OrderDTO struct {
	ID                 uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderNumber        string    `gorm:"uniqueIndex"`
	UserID             uuid.UUID `gorm:"type:uuid;index"`
	Status             int       `gorm:"index"`
	Items              string    `gorm:"type:jsonb"`
	ShippingAddress    string    `gorm:"type:jsonb"`
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
	CreatedAt          time.Time `gorm:"index"`
	UpdatedAt          time.Time
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

type itemDocument struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
	Subtotal  float64 `json:"subtotal"`
}

type addressDocument struct {
	Name         string `json:"name"`
	AddressLine1 string `json:"addressLine1"`
	AddressLine2 string `json:"addressLine2,omitempty"`
	City         string `json:"city"`
	State        string `json:"state"`
	PostalCode   string `json:"postalCode"`
	Country      string `json:"country"`
	Phone        string `json:"phone"`
}

// fromDomain converts an order aggregate to its database representation.
func fromDomain(aggregate *order.Order) (OrderDTO, error) {
	items := make([]itemDocument, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, itemDocument{
			ProductID: item.ProductID(),
			Name:      item.Name(),
			Price:     item.UnitPrice(),
			Quantity:  item.Quantity(),
			Subtotal:  item.Subtotal(),
		})
	}

	itemsJSON, err := json.Marshal(items)
	if err != nil {
		return OrderDTO{}, err
	}

	address := aggregate.Address()
	addressJSON, err := json.Marshal(addressDocument{
		Name:         address.Name(),
		AddressLine1: address.Line1(),
		AddressLine2: address.Line2(),
		City:         address.City(),
		State:        address.State(),
		PostalCode:   address.PostalCode(),
		Country:      address.Country(),
		Phone:        address.Phone(),
	})
	if err != nil {
		return OrderDTO{}, err
	}

	pricing := aggregate.Pricing()
	return OrderDTO{
		ID:                 aggregate.ID().Bytes(),
		OrderNumber:        aggregate.Number().String(),
		UserID:             aggregate.UserID().Bytes(),
		Status:             int(aggregate.Status()),
		Items:              string(itemsJSON),
		ShippingAddress:    string(addressJSON),
		Subtotal:           pricing.Subtotal(),
		Tax:                pricing.Tax(),
		ShippingCost:       pricing.ShippingCost(),
		Total:              pricing.Total(),
		PaymentID:          aggregate.PaymentID(),
		Notes:              aggregate.Notes(),
		TrackingNumber:     aggregate.TrackingNumber(),
		CancellationReason: aggregate.CancellationReason(),
		ShippedAt:          aggregate.ShippedAt(),
		DeliveredAt:        aggregate.DeliveredAt(),
		CancelledAt:        aggregate.CancelledAt(),
		CreatedAt:          aggregate.CreatedAt(),
		UpdatedAt:          aggregate.UpdatedAt(),
	}, nil
}

// toDomain converts a database DTO back to an order aggregate using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}

	number, err := order.NumberFromString(dto.OrderNumber)
	if err != nil {
		return nil, err
	}

	var itemDocs []itemDocument
	if err = json.Unmarshal([]byte(dto.Items), &itemDocs); err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(itemDocs))
	for _, doc := range itemDocs {
		item, itemErr := order.NewItem(doc.ProductID, doc.Name, doc.Price, doc.Quantity)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	var addressDoc addressDocument
	if err = json.Unmarshal([]byte(dto.ShippingAddress), &addressDoc); err != nil {
		return nil, err
	}

	address, err := order.NewAddress(
		addressDoc.Name,
		addressDoc.AddressLine1,
		addressDoc.AddressLine2,
		addressDoc.City,
		addressDoc.State,
		addressDoc.PostalCode,
		addressDoc.Country,
		addressDoc.Phone,
	)
	if err != nil {
		return nil, err
	}

	pricing, err := order.NewPricing(dto.Subtotal, dto.Tax, dto.ShippingCost, dto.Total)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(order.RestoreOrderParams{
		ID:                 id,
		Number:             number,
		UserID:             userID,
		Items:              items,
		Pricing:            pricing,
		Address:            address,
		Status:             order.Status(dto.Status),
		PaymentID:          dto.PaymentID,
		Notes:              dto.Notes,
		TrackingNumber:     dto.TrackingNumber,
		CancellationReason: dto.CancellationReason,
		ShippedAt:          dto.ShippedAt,
		DeliveredAt:        dto.DeliveredAt,
		CancelledAt:        dto.CancelledAt,
		CreatedAt:          dto.CreatedAt,
		UpdatedAt:          dto.UpdatedAt,
	})
}
