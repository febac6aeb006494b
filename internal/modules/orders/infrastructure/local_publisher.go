package infrastructure

import (
	"context"

	realtime "savoria/internal/modules/realtime/domain"
	realtimeinfra "savoria/internal/modules/realtime/infrastructure"
)

// LocalPublisher dispatches order events straight into the handler registry,
// bypassing the broker. Used when no Kafka brokers are configured so a
// single-node deployment still gets the realtime admin feed.
type LocalPublisher struct {
	topic    string
	registry *realtimeinfra.HandlerRegistry
}

func NewLocalPublisher(topic string, registry *realtimeinfra.HandlerRegistry) *LocalPublisher {
	return &LocalPublisher{topic: topic, registry: registry}
}

func (p *LocalPublisher) Publish(ctx context.Context, msg *realtime.Message) error {
	// Route under the broker topic name so the same handler serves both paths.
	copied := *msg
	copied.Topic = p.topic
	return p.registry.Dispatch(ctx, &copied)
}
