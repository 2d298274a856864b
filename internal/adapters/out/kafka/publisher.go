// Package kafka publishes order events to a Kafka topic.
package kafka

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"logistics/internal/core/ports"

	"github.com/IBM/sarama"
)

var _ ports.EventPublisher = (*OrderEventPublisher)(nil)

// OrderEventPublisher sends each order event as a JSON message keyed by the
// order id, so all events of one order land on the same partition.
type OrderEventPublisher struct {
	producer sarama.SyncProducer
	topic    string
	logger   *slog.Logger
}

func NewOrderEventPublisher(brokers []string, topic string, logger *slog.Logger) (*OrderEventPublisher, error) {
	config := sarama.NewConfig()
	config.Producer.Return.Successes = true
	config.Producer.Timeout = 5 * time.Second
	producer, err := sarama.NewSyncProducer(brokers, config)
	if err != nil {
		return nil, err
	}
	return NewOrderEventPublisherWithProducer(producer, topic, logger), nil
}

func NewOrderEventPublisherWithProducer(producer sarama.SyncProducer, topic string, logger *slog.Logger) *OrderEventPublisher {
	return &OrderEventPublisher{
		producer: producer,
		topic:    topic,
		logger:   logger.With("component", "kafka_publisher"),
	}
}

func (p *OrderEventPublisher) PublishOrderChanged(ctx context.Context, event ports.OrderChangedEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	msg := &sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(event.OrderID),
		Value: sarama.ByteEncoder(payload),
	}
	partition, offset, err := p.producer.SendMessage(msg)
	if err != nil {
		p.logger.ErrorContext(ctx, "Failed to send order event", "topic", p.topic, "order_id", event.OrderID, "error", err)
		return err
	}
	p.logger.DebugContext(ctx, "Order event stored", "topic", p.topic, "partition", partition, "offset", offset)
	return nil
}

func (p *OrderEventPublisher) Close() error {
	return p.producer.Close()
}

// NoopPublisher drops every event. Used when no broker is configured.
type NoopPublisher struct{}

func (NoopPublisher) PublishOrderChanged(context.Context, ports.OrderChangedEvent) error {
	return nil
}
