package infrastructure

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/segmentio/kafka-go"

	realtime "savoria/internal/modules/realtime/domain"
	"savoria/internal/platform/broker"
)

// KafkaPublisher ships order change events to the broker topic consumed by
// the realtime feed (and any other interested service).
type KafkaPublisher struct {
	writer *kafka.Writer
}

func NewKafkaPublisher(brokers []string, topic string) *KafkaPublisher {
	return &KafkaPublisher{
		writer: &kafka.Writer{
			Addr:     kafka.TCP(brokers...),
			Topic:    topic,
			Balancer: &kafka.LeastBytes{},
		},
	}
}

func (p *KafkaPublisher) Publish(ctx context.Context, msg *realtime.Message) error {
	value, err := json.Marshal(broker.Event{
		Entity:     msg.Entity,
		Action:     msg.Action,
		ResourceID: msg.ResourceID,
		Metadata:   msg.Metadata,
		Data:       msg.Data,
	})
	if err != nil {
		return fmt.Errorf("marshal order event: %w", err)
	}
	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(msg.ResourceID),
		Value: value,
	})
	if err != nil {
		return fmt.Errorf("write order event: %w", err)
	}
	return nil
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}
