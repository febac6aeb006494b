package broker

import (
	"context"

	"savoria/internal/modules/realtime/domain"
	"savoria/internal/modules/realtime/infrastructure"
)

// StartKafkaConsumers launches one consumer goroutine per topic, dispatching
// decoded messages into the handler registry. With no brokers configured the
// call is a no-op; the in-process publisher covers single-node deployments.
func StartKafkaConsumers(
	ctx context.Context,
	registry *infrastructure.HandlerRegistry,
	brokers []string,
	groupID string,
	topics []string,
) {
	if len(brokers) == 0 {
		return
	}
	for _, topic := range topics {
		go func(tp string) {
			consumer := NewKafkaConsumer(brokers, groupID, tp)
			defer consumer.Close()
			_ = consumer.Consume(ctx, func(msg *domain.Message) error {
				return registry.Dispatch(ctx, msg)
			})
		}(topic)
	}
}
