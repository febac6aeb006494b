package port

import (
	"context"

	orders "savoria/internal/modules/orders/domain"
	"savoria/internal/modules/realtime/domain"
)

// Broadcaster fans a message out to every subscribed websocket client.
type Broadcaster interface {
	Broadcast(ctx context.Context, msg *domain.Message)
}

// TopicHandler consumes broker messages for a single topic.
type TopicHandler interface {
	Topic() string
	Handle(ctx context.Context, msg *domain.Message) error
}

// OrderSnapshotFetcher loads the current admin order list for feed refreshes.
// The concrete implementation is the orders repository.
type OrderSnapshotFetcher interface {
	FetchOrders(ctx context.Context) (orders.List, error)
}
