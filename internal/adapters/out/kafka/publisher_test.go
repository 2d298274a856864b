package kafka_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"logistics/internal/adapters/out/kafka"
	"logistics/internal/core/ports"

	"github.com/IBM/sarama"
	"github.com/IBM/sarama/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProducer(t *testing.T) *mocks.SyncProducer {
	config := sarama.NewConfig()
	config.Producer.Return.Successes = true
	return mocks.NewSyncProducer(t, config)
}

func TestOrderEventPublisher_PublishOrderChanged(t *testing.T) {
	producer := newProducer(t)
	event := ports.OrderChangedEvent{
		OrderID:              "SO-1003",
		Kind:                 "sale",
		Status:               "packed",
		AddressStatus:        "original",
		PackingListValidated: true,
		OccurredAt:           time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
	}

	producer.ExpectSendMessageWithMessageCheckerFunctionAndSucceed(func(msg *sarama.ProducerMessage) error {
		if msg.Topic != "orders" {
			return errors.New("unexpected topic " + msg.Topic)
		}
		key, err := msg.Key.Encode()
		if err != nil {
			return err
		}
		if string(key) != "SO-1003" {
			return errors.New("unexpected key " + string(key))
		}
		return nil
	})
	producer.ExpectSendMessageWithCheckerFunctionAndSucceed(func(value []byte) error {
		var got ports.OrderChangedEvent
		if err := json.Unmarshal(value, &got); err != nil {
			return err
		}
		if got != event {
			return errors.New("payload does not match the event")
		}
		return nil
	})

	publisher := kafka.NewOrderEventPublisherWithProducer(producer, "orders", slog.New(slog.NewTextHandler(io.Discard, nil)))

	require.NoError(t, publisher.PublishOrderChanged(context.Background(), event))
	require.NoError(t, publisher.PublishOrderChanged(context.Background(), event))
	require.NoError(t, publisher.Close())
}

func TestOrderEventPublisher_SendFailure(t *testing.T) {
	producer := newProducer(t)
	producer.ExpectSendMessageAndFail(sarama.ErrOutOfBrokers)

	publisher := kafka.NewOrderEventPublisherWithProducer(producer, "orders", slog.New(slog.NewTextHandler(io.Discard, nil)))
	err := publisher.PublishOrderChanged(context.Background(), ports.OrderChangedEvent{OrderID: "SO-1001"})

	assert.ErrorIs(t, err, sarama.ErrOutOfBrokers)
	require.NoError(t, publisher.Close())
}

func TestNoopPublisher(t *testing.T) {
	assert.NoError(t, kafka.NoopPublisher{}.PublishOrderChanged(context.Background(), ports.OrderChangedEvent{}))
}
