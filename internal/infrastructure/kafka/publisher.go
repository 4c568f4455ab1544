package kafka

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"
)

// EventPublisher is the sink for hub domain events. The no-op
// implementation keeps single-binary deployments working without a broker.
type EventPublisher interface {
	PublishOrderSynced(ctx context.Context, event OrderSyncedEvent) error
	PublishShipmentUpdated(ctx context.Context, event ShipmentUpdatedEvent) error
}

type KafkaPublisher struct {
	writer *kafka.Writer
}

func NewKafkaPublisher(brokers []string) *KafkaPublisher {
	return &KafkaPublisher{
		writer: &kafka.Writer{
			Addr:     kafka.TCP(brokers...),
			Balancer: &kafka.LeastBytes{},
		},
	}
}

func (k *KafkaPublisher) PublishOrderSynced(ctx context.Context, event OrderSyncedEvent) error {
	return k.publish(ctx, TopicOrderSynced, event.OrderID, event)
}

func (k *KafkaPublisher) PublishShipmentUpdated(ctx context.Context, event ShipmentUpdatedEvent) error {
	return k.publish(ctx, TopicShipmentUpdated, event.OrderID, event)
}

func (k *KafkaPublisher) publish(ctx context.Context, topic, key string, event any) error {
	value, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return k.writer.WriteMessages(ctx, kafka.Message{
		Topic: topic,
		Key:   []byte(key),
		Value: value,
		Time:  time.Now(),
	})
}

func (k *KafkaPublisher) Close() error {
	return k.writer.Close()
}

type NopPublisher struct{}

func (NopPublisher) PublishOrderSynced(context.Context, OrderSyncedEvent) error { return nil }

func (NopPublisher) PublishShipmentUpdated(context.Context, ShipmentUpdatedEvent) error { return nil }
