package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"time"

	"github.com/SergeyBogomolovv/order-notifier/internal/config"
	"github.com/SergeyBogomolovv/order-notifier/internal/entities"
	"github.com/go-playground/validator/v10"
	"github.com/segmentio/kafka-go"
)

type OrderIntaker interface {
	IntakeOrder(ctx context.Context, event entities.OrderEvent) (entities.OrderRecord, error)
}

// kafkaHandler тот же пайплайн приема заказа, что и у вебхука, но из топика
type kafkaHandler struct {
	dlq      *kafka.Writer
	reader   *kafka.Reader
	logger   *slog.Logger
	validate *validator.Validate
	svc      OrderIntaker
}

func NewKafkaHandler(logger *slog.Logger, cfg config.Kafka, svc OrderIntaker) *kafkaHandler {
	return &kafkaHandler{
		logger: logger.With(slog.String("handler", "kafka")),
		reader: kafka.NewReader(kafka.ReaderConfig{
			Brokers: cfg.Brokers,
			GroupID: cfg.GroupID,
			Topic:   cfg.Topic,
			MaxWait: cfg.ReaderMaxWait,
		}),
		dlq: &kafka.Writer{
			Addr:         kafka.TCP(cfg.Brokers...),
			Balancer:     &kafka.LeastBytes{},
			BatchTimeout: cfg.BatchTimeout,
		},
		validate: validator.New(),
		svc:      svc,
	}
}

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

		start := time.Now()
		if err := h.handleOrderEvent(ctx, m.Value); err != nil {
			eventsFailed.Inc()
			h.logger.Error("failed to handle order event",
				slog.Any("error", err),
				slog.String("key", string(m.Key)),
				slog.Int("partition", m.Partition),
				slog.Int64("offset", m.Offset),
			)

			if dlqErr := h.writeToDLQ(ctx, m, err); dlqErr != nil {
				h.logger.Error("failed to write message to DLQ", slog.Any("error", dlqErr))
				continue
			}
			eventsDLQ.Inc()
		} else {
			eventsProcessed.Inc()
		}
		eventProcessingDuration.Observe(time.Since(start).Seconds())

		if err := h.reader.CommitMessages(ctx, m); err != nil {
			commitErrors.Inc()
			h.logger.Error("failed to commit message", slog.Any("error", err))
		}
	}
}

func (h *kafkaHandler) handleOrderEvent(ctx context.Context, value []byte) error {
	var order ShopifyOrder
	if err := json.Unmarshal(value, &order); err != nil {
		return fmt.Errorf("failed to unmarshal order event: %w", err)
	}

	if err := h.validate.Var(string(order.OrderNumber), "required"); err != nil {
		return fmt.Errorf("%w: missing order number", entities.ErrInvalidOrderEvent)
	}

	_, err := h.svc.IntakeOrder(ctx, ShopifyOrderToEntity(order))
	intakeTotal.WithLabelValues(intakeResult(err)).Inc()
	return err
}

// writeToDLQ причина сбоя уходит в заголовок error
func (h *kafkaHandler) writeToDLQ(ctx context.Context, m kafka.Message, cause error) error {
	headers := append(slices.Clone(m.Headers), kafka.Header{Key: "error", Value: []byte(cause.Error())})
	return h.dlq.WriteMessages(ctx, kafka.Message{
		Topic:   fmt.Sprintf("%s-dlq", m.Topic),
		Key:     m.Key,
		Value:   m.Value,
		Headers: headers,
	})
}

func (h *kafkaHandler) Close() error {
	if err := h.reader.Close(); err != nil {
		return err
	}
	return h.dlq.Close()
}
