package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/shopcore/billing-service/internal/config"
	"github.com/shopcore/billing-service/internal/entities"

	"github.com/segmentio/kafka-go"
)

// reconPublisher publishes charge-without-order events to a durable
// topic. Publishing happens at failure time; the topic's consumer owns
// how and when gateway charges get reconciled against missing orders.
type reconPublisher struct {
	logger *slog.Logger
	writer *kafka.Writer
}

func NewReconPublisher(logger *slog.Logger, cfg config.Kafka) *reconPublisher {
	return &reconPublisher{
		logger: logger.With(slog.String("handler", "reconciliation")),
		writer: &kafka.Writer{
			Addr:         kafka.TCP(cfg.Brokers...),
			Topic:        cfg.ReconTopic,
			Balancer:     &kafka.LeastBytes{},
			BatchTimeout: cfg.BatchTimeout,
			RequiredAcks: kafka.RequireAll,
		},
	}
}

func (p *reconPublisher) ChargeWithoutOrder(ctx context.Context, ev entities.ReconciliationEvent) error {
	data, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("failed to marshal reconciliation event: %w", err)
	}

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(ev.JobID),
		Value: data,
	})
	if err != nil {
		return fmt.Errorf("failed to publish reconciliation event: %w", err)
	}

	reconEvents.Inc()
	p.logger.Warn("reconciliation event published",
		slog.String("job_id", ev.JobID),
		slog.String("confirmation_id", ev.ConfirmationID),
		slog.String("amount", ev.Amount.String()),
	)
	return nil
}

func (p *reconPublisher) Close() error {
	return p.writer.Close()
}
