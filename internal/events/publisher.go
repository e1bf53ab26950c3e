// Package events publishes order lifecycle events to Kafka.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/SergeyBogomolovv/pod-fulfillment-service/internal/entities"
	"github.com/segmentio/kafka-go"
)

type Config struct {
	Brokers      []string
	Topic        string
	BatchTimeout time.Duration
}

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type KafkaPublisher struct {
	logger *slog.Logger
	writer messageWriter
}

func NewKafkaPublisher(logger *slog.Logger, cfg Config) *KafkaPublisher {
	return &KafkaPublisher{
		logger: logger.With(slog.String("publisher", "kafka")),
		writer: &kafka.Writer{
			Addr:                   kafka.TCP(cfg.Brokers...),
			Topic:                  cfg.Topic,
			Balancer:               &kafka.Hash{},
			BatchTimeout:           cfg.BatchTimeout,
			AllowAutoTopicCreation: true,
		},
	}
}

// OrderEventMessage is the wire form of an order lifecycle event.
type OrderEventMessage struct {
	Type            string    `json:"type"`
	OrderID         string    `json:"order_id"`
	Status          string    `json:"status"`
	PaymentStatus   string    `json:"payment_status"`
	SupplierOrderID *int64    `json:"supplier_order_id,omitempty"`
	OccurredAt      time.Time `json:"occurred_at"`
}

// PublishOrderEvent writes the event keyed by order id so one order's events stay ordered.
func (p *KafkaPublisher) PublishOrderEvent(ctx context.Context, event entities.OrderEvent) error {
	value, err := json.Marshal(OrderEventMessage{
		Type:            string(event.Type),
		OrderID:         event.OrderID,
		Status:          string(event.Status),
		PaymentStatus:   string(event.PaymentStatus),
		SupplierOrderID: event.SupplierOrderID,
		OccurredAt:      event.OccurredAt.UTC(),
	})
	if err != nil {
		return fmt.Errorf("failed to marshal order event: %w", err)
	}

	msg := kafka.Message{
		Key:   []byte(event.OrderID),
		Value: value,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(event.Type)},
		},
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("failed to publish order event: %w", err)
	}

	p.logger.Debug("order event published", slog.String("order_id", event.OrderID), slog.String("type", string(event.Type)))
	return nil
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}
