package ports

import (
	"context"

	"marketplace/internal/core/domain/model/order"
)

// OrderEventPublisher notifies downstream consumers about order lifecycle
// changes. Publishing happens after the owning transaction commits and is
// best effort: a publish failure never rolls back the order.
type OrderEventPublisher interface {
	// PublishOrderPlaced announces the items a checkout added to the
	// customer's order.
	PublishOrderPlaced(ctx context.Context, aggregate *order.Order, items []*order.Item) error

	// PublishOrderItemCancelled announces the cancellation of a single
	// order item.
	PublishOrderItemCancelled(ctx context.Context, aggregate *order.Order, item *order.Item) error
}
