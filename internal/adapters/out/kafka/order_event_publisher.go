// Package kafka publishes order lifecycle events to a Kafka topic.
// Events are emitted after the owning transaction commits; delivery is
// best effort and consumers must tolerate duplicates.
package kafka

import (
	"context"
	"encoding/json"
	"time"

	"marketplace/internal/core/domain/model/order"

	"github.com/segmentio/kafka-go"
)

// Event type values carried in the message payload.
const (
	EventOrderPlaced    = "order.placed"
	EventOrderCancelled = "order.cancelled"
)

// OrderEvent is the wire envelope common to all order events.
// Messages are keyed by customer ID so one customer's events stay in one
// partition, preserving their relative ordering.
type OrderEvent struct {
	Type       string           `json:"type"`
	OrderID    string           `json:"orderId"`
	CustomerID string           `json:"customerId"`
	Items      []OrderEventItem `json:"items"`
	OccurredAt time.Time        `json:"occurredAt"`
}

// OrderEventItem is one affected line within an order event.
type OrderEventItem struct {
	ItemID      string `json:"itemId"`
	InventoryID string `json:"inventoryId"`
	Quantity    int    `json:"quantity"`
	PriceAmount int64  `json:"priceAmount"`
	Status      string `json:"status"`
}

// OrderEventPublisher writes order events to Kafka.
type OrderEventPublisher struct {
	writer *kafka.Writer
}

// NewOrderEventPublisher creates a publisher writing to the given topic.
func NewOrderEventPublisher(broker, topic string) *OrderEventPublisher {
	return &OrderEventPublisher{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(broker),
			Topic:        topic,
			Balancer:     &kafka.LeastBytes{},
			RequiredAcks: kafka.RequireOne,
		},
	}
}

// PublishOrderPlaced announces the items a checkout added to the
// customer's order.
func (p *OrderEventPublisher) PublishOrderPlaced(ctx context.Context, aggregate *order.Order, items []*order.Item) error {
	return p.publish(ctx, EventOrderPlaced, aggregate, items)
}

// PublishOrderItemCancelled announces the cancellation of a single order item.
func (p *OrderEventPublisher) PublishOrderItemCancelled(ctx context.Context, aggregate *order.Order, item *order.Item) error {
	return p.publish(ctx, EventOrderCancelled, aggregate, []*order.Item{item})
}

// Close flushes buffered messages and releases the writer.
func (p *OrderEventPublisher) Close() error {
	return p.writer.Close()
}

func (p *OrderEventPublisher) publish(ctx context.Context, eventType string, aggregate *order.Order, items []*order.Item) error {
	event := OrderEvent{
		Type:       eventType,
		OrderID:    aggregate.ID().String(),
		CustomerID: aggregate.CustomerID().String(),
		Items:      make([]OrderEventItem, 0, len(items)),
		OccurredAt: time.Now().UTC(),
	}

	for _, item := range items {
		event.Items = append(event.Items, OrderEventItem{
			ItemID:      item.ID().String(),
			InventoryID: item.InventoryID().String(),
			Quantity:    item.Quantity(),
			PriceAmount: item.Price().Amount(),
			Status:      item.Status().String(),
		})
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.CustomerID),
		Value: payload,
	})
}
