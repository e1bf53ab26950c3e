package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/SergeyBogomolovv/pod-fulfillment-service/internal/config"
	"github.com/SergeyBogomolovv/pod-fulfillment-service/internal/entities"

	"github.com/go-playground/validator/v10"
	"github.com/segmentio/kafka-go"
)

type SupplierEventApplier interface {
	ApplySupplierEvent(ctx context.Context, ev entities.SupplierEvent) error
}

type messageReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type kafkaHandler struct {
	dlq      messageWriter
	reader   messageReader
	logger   *slog.Logger
	validate *validator.Validate
	applier  SupplierEventApplier
}

func NewKafkaHandler(logger *slog.Logger, cfg config.Kafka, applier SupplierEventApplier) *kafkaHandler {
	return &kafkaHandler{
		logger: logger.With(slog.String("handler", "kafka")),
		reader: kafka.NewReader(kafka.ReaderConfig{
			Brokers: cfg.Brokers,
			GroupID: cfg.GroupID,
			Topic:   cfg.SupplierEventsTopic,
			MaxWait: cfg.ReaderMaxWait,
		}),
		dlq: &kafka.Writer{
			Addr:                   kafka.TCP(cfg.Brokers...),
			Balancer:               &kafka.LeastBytes{},
			BatchTimeout:           cfg.BatchTimeout,
			AllowAutoTopicCreation: true,
		},
		validate: validator.New(),
		applier:  applier,
	}
}

// Consume applies supplier events until ctx is cancelled. Events that cannot be
// applied are parked in the DLQ; offsets are committed after handling.
func (h *kafkaHandler) Consume(ctx context.Context) {
	for {
		m, err := h.reader.FetchMessage(ctx)
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, context.Canceled) {
				break
			}
			h.logger.Error("failed to fetch message", slog.Any("error", err))
			continue
		}

		if err := h.handleSupplierEvent(ctx, m); err != nil {
			if ctx.Err() != nil {
				break
			}
			eventsFailed.Inc()
			h.logger.Error("failed to handle message",
				slog.Any("error", err), slog.Int64("offset", m.Offset), slog.Int("partition", m.Partition))

			if err := h.WriteToDLQ(ctx, m); err != nil {
				h.logger.Error("failed to write message to DLQ", slog.Any("error", err))
				continue
			}
			eventsDLQ.Inc()
		}

		if err := h.reader.CommitMessages(ctx, m); err != nil {
			commitErrors.Inc()
			h.logger.Error("failed to commit message", slog.Any("error", err))
		}
	}
}

func (h *kafkaHandler) handleSupplierEvent(ctx context.Context, m kafka.Message) error {
	eventsInProgress.Inc()
	defer eventsInProgress.Dec()
	start := time.Now()
	defer func() { eventProcessingDuration.Observe(time.Since(start).Seconds()) }()

	var msg SupplierEventMessage
	if err := json.Unmarshal(m.Value, &msg); err != nil {
		return fmt.Errorf("failed to unmarshal supplier event: %w", err)
	}

	if err := h.validate.Struct(msg); err != nil {
		return fmt.Errorf("invalid supplier event: %w", err)
	}

	if err := h.applier.ApplySupplierEvent(ctx, SupplierEventJSONToEntity(msg)); err != nil {
		return err
	}

	eventsProcessed.WithLabelValues(msg.Type).Inc()
	return nil
}

func (h *kafkaHandler) WriteToDLQ(ctx context.Context, m kafka.Message) error {
	return h.dlq.WriteMessages(ctx, kafka.Message{
		Topic:   fmt.Sprintf("%s-dlq", m.Topic),
		Key:     m.Key,
		Value:   m.Value,
		Headers: m.Headers,
	})
}

func (h *kafkaHandler) Close() error {
	if err := h.reader.Close(); err != nil {
		return err
	}
	return h.dlq.Close()
}
