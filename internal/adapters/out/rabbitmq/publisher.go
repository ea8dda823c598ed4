// Package rabbitmq publishes order lifecycle events to a RabbitMQ topic
// exchange so downstream services (notifications, analytics) can react to
// order changes. Publishing is best-effort: failures are logged, never
// returned, because events are emitted only after the owning transaction
// has already committed.
package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"shop/internal/core/domain/model/order"

	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	ExchangeName = "shop_orders"
	ExchangeType = "topic"

	connectAttempts = 5
	connectBackoff  = 2 * time.Second
)

// SetupConn dials RabbitMQ and declares the order events exchange. Retries a
// few times so the service survives broker container startup.
func SetupConn(url string) (*amqp.Connection, *amqp.Channel, error) {
	var conn *amqp.Connection
	var err error

	for i := range connectAttempts {
		conn, err = amqp.Dial(url)
		if err == nil {
			break
		}
		slog.Warn("failed to connect to RabbitMQ", "attempt", i+1, "error", err)
		time.Sleep(connectBackoff)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("could not connect to RabbitMQ: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		return nil, nil, fmt.Errorf("could not open channel: %w", err)
	}

	err = ch.ExchangeDeclare(
		ExchangeName, // name
		ExchangeType, // type
		true,         // durable
		false,        // auto-deleted
		false,        // internal
		false,        // no-wait
		nil,          // arguments
	)
	if err != nil {
		return nil, nil, fmt.Errorf("could not declare exchange: %w", err)
	}

	return conn, ch, nil
}

// orderEvent is the wire shape of every published order event.
type orderEvent struct {
	OrderID        string `json:"orderId"`
	OrderNumber    string `json:"orderNumber"`
	UserID         string `json:"userId"`
	Status         string `json:"status"`
	PreviousStatus string `json:"previousStatus,omitempty"`
	Reason         string `json:"reason,omitempty"`
	OccurredAt     string `json:"occurredAt"`
}

// Publisher implements ports.OrderEventPublisher on a RabbitMQ channel.
type Publisher struct {
	ch *amqp.Channel
}

// NewPublisher creates an order event publisher on an open channel.
func NewPublisher(ch *amqp.Channel) *Publisher {
	return &Publisher{ch: ch}
}

// OrderCreated announces a freshly created order.
func (p *Publisher) OrderCreated(ctx context.Context, o *order.Order) {
	p.publish(ctx, "order.created", orderEvent{
		OrderID:     o.ID().String(),
		OrderNumber: o.Number().String(),
		UserID:      o.UserID().String(),
		Status:      o.Status().String(),
		OccurredAt:  o.CreatedAt().Format(time.RFC3339),
	})
}

// OrderStatusChanged announces a fulfillment status change.
func (p *Publisher) OrderStatusChanged(ctx context.Context, o *order.Order, previous order.Status) {
	p.publish(ctx, fmt.Sprintf("order.status.%s", o.Status().String()), orderEvent{
		OrderID:        o.ID().String(),
		OrderNumber:    o.Number().String(),
		UserID:         o.UserID().String(),
		Status:         o.Status().String(),
		PreviousStatus: previous.String(),
		OccurredAt:     o.UpdatedAt().Format(time.RFC3339),
	})
}

// OrderCancelled announces a cancellation.
func (p *Publisher) OrderCancelled(ctx context.Context, o *order.Order) {
	p.publish(ctx, "order.cancelled", orderEvent{
		OrderID:     o.ID().String(),
		OrderNumber: o.Number().String(),
		UserID:      o.UserID().String(),
		Status:      o.Status().String(),
		Reason:      o.CancellationReason(),
		OccurredAt:  o.UpdatedAt().Format(time.RFC3339),
	})
}

func (p *Publisher) publish(ctx context.Context, routingKey string, event orderEvent) {
	body, err := json.Marshal(event)
	if err != nil {
		slog.Error("could not marshal order event", "routingKey", routingKey, "error", err)
		return
	}

	err = p.ch.PublishWithContext(ctx,
		ExchangeName, // exchange
		routingKey,   // routing key
		false,        // mandatory
		false,        // immediate
		amqp.Publishing{
			ContentType: "application/json",
			Body:        body,
		},
	)
	if err != nil {
		slog.Error("could not publish order event",
			"routingKey", routingKey, "orderId", event.OrderID, "error", err)
	}
}
