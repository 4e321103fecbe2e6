package services

//go:generate mockgen -source=events.go -destination=events_mock.go -package=services

import (
	"context"
	"encoding/json"
	"strconv"

	"github.com/sbilibin2017/gw-topup-wallet/internal/logger"
	"github.com/sbilibin2017/gw-topup-wallet/internal/models"
	"github.com/segmentio/kafka-go"
)

// KafkaWriter defines methods required for writing messages to Kafka.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// TopupEventPublisher publishes flow events to Kafka.
type TopupEventPublisher struct {
	kafkaWriter KafkaWriter
}

// NewTopupEventPublisher creates a publisher. A nil writer disables publishing.
func NewTopupEventPublisher(kafkaWriter KafkaWriter) *TopupEventPublisher {
	return &TopupEventPublisher{kafkaWriter: kafkaWriter}
}

// Publish writes evt keyed by transaction id. Failures are logged and dropped.
func (p *TopupEventPublisher) Publish(ctx context.Context, evt models.TopupEvent) {
	if p.kafkaWriter == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "event", evt.Event, "transaction_id", evt.TransactionID)
		return
	}

	data, err := json.Marshal(evt)
	if err != nil {
		logger.Log.Errorw("Failed to marshal event for Kafka", "event", evt.Event, "transaction_id", evt.TransactionID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(strconv.FormatInt(evt.TransactionID, 10)),
		Value: data,
	}

	if err := p.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish event to Kafka", "event", evt.Event, "transaction_id", evt.TransactionID, "error", err)
	} else {
		logger.Log.Infow("Event published to Kafka", "event", evt.Event, "transaction_id", evt.TransactionID, "status", evt.Status)
	}
}
