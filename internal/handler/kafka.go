package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/shopcore/billing-service/internal/config"
	"github.com/shopcore/billing-service/internal/entities"

	"github.com/go-playground/validator/v10"
	"github.com/segmentio/kafka-go"
	"golang.org/x/sync/semaphore"
)

type JobProcessor interface {
	ProcessJob(ctx context.Context, job entities.BillingJob) (entities.Order, error)
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

// kafkaHandler consumes billing jobs with a bounded number in flight.
// Every fetched message is eventually committed: terminal failures go to
// the DLQ first, transient ones are republished to the jobs topic first.
// Messages are never left uncommitted as a retry mechanism, because a
// concurrent handler committing a later offset on the same partition
// would skip the failed one for good after the next rebalance.
type kafkaHandler struct {
	logger     *slog.Logger
	reader     messageReader
	producer   messageWriter
	validate   *validator.Validate
	processor  JobProcessor
	sem        *semaphore.Weighted
	jobTimeout time.Duration
	wg         sync.WaitGroup
}

func NewKafkaHandler(logger *slog.Logger, cfg config.Kafka, worker config.Worker, processor JobProcessor) *kafkaHandler {
	return &kafkaHandler{
		logger: logger.With(slog.String("handler", "kafka")),
		reader: kafka.NewReader(kafka.ReaderConfig{
			Brokers: cfg.Brokers,
			GroupID: cfg.GroupID,
			Topic:   cfg.JobsTopic,
			MaxWait: cfg.ReaderMaxWait,
		}),
		producer: &kafka.Writer{
			Addr:         kafka.TCP(cfg.Brokers...),
			Balancer:     &kafka.LeastBytes{},
			BatchTimeout: cfg.BatchTimeout,
		},
		validate:   validator.New(),
		processor:  processor,
		sem:        semaphore.NewWeighted(worker.Concurrency),
		jobTimeout: worker.JobTimeout,
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

		if err := h.sem.Acquire(ctx, 1); err != nil {
			// Shutdown while waiting for a slot: the message stays
			// uncommitted and will be redelivered.
			break
		}

		h.wg.Add(1)
		go func(m kafka.Message) {
			defer h.wg.Done()
			defer h.sem.Release(1)
			h.handleMessage(ctx, m)
		}(m)
	}

	h.wg.Wait()
}

func (h *kafkaHandler) handleMessage(ctx context.Context, m kafka.Message) {
	jobsInProgress.Inc()
	defer jobsInProgress.Dec()

	start := time.Now()
	defer func() { jobDuration.Observe(time.Since(start).Seconds()) }()

	// Acknowledgments survive shutdown: losing the commit of a finished
	// job would redeliver it for nothing.
	ackCtx := context.WithoutCancel(ctx)

	var payload BillingJob
	if err := json.Unmarshal(m.Value, &payload); err != nil {
		h.logger.Error("failed to unmarshal job", slog.Any("error", err))
		h.reject(ackCtx, m, fmt.Sprintf("malformed payload: %s", err))
		return
	}
	if err := h.validate.Struct(payload); err != nil {
		h.logger.Error("invalid job payload", slog.Any("error", err), slog.String("job_id", payload.JobID))
		h.reject(ackCtx, m, fmt.Sprintf("invalid payload: %s", err))
		return
	}

	jobCtx, cancel := context.WithTimeout(ctx, h.jobTimeout)
	defer cancel()

	_, err := h.processor.ProcessJob(jobCtx, JobJSONToEntity(payload))
	if err == nil {
		jobsCompleted.Inc()
		h.commit(ackCtx, m)
		return
	}

	kind := entities.Classify(err)
	jobsFailed.With(map[string]string{"kind": kind.String()}).Inc()
	h.logger.Error("job failed",
		slog.String("job_id", payload.JobID),
		slog.String("kind", kind.String()),
		slog.Any("error", err),
	)

	// The kind decides the outcome exhaustively: transient and internal
	// failures go back onto the jobs topic as a fresh delivery (the
	// gateway idempotency key makes the retried charge safe); everything
	// else is final and goes to the DLQ.
	switch kind {
	case entities.KindTransient, entities.KindInternal:
		h.requeue(ackCtx, m, err.Error())
	case entities.KindNotFound, entities.KindConflict, entities.KindValidation, entities.KindFatal:
		h.reject(ackCtx, m, err.Error())
	}
}

// requeue republishes the message to its own topic and then commits the
// original, so the failed job rides a new offset instead of an
// uncommitted one that a later commit on the partition would bury.
func (h *kafkaHandler) requeue(ctx context.Context, m kafka.Message, reason string) {
	msg := kafka.Message{
		Topic:   m.Topic,
		Key:     m.Key,
		Value:   m.Value,
		Headers: append(m.Headers, kafka.Header{Key: "retry-reason", Value: []byte(reason)}),
	}
	if err := h.producer.WriteMessages(ctx, msg); err != nil {
		// Cannot republish: leave the offset uncommitted so a rebalance
		// redelivers the message as the last resort.
		h.logger.Error("failed to requeue message", slog.Any("error", err))
		return
	}
	jobsRetried.Inc()
	h.commit(ctx, m)
}

// reject dead-letters the message and acknowledges it: the job will never
// succeed as delivered, so redelivery would only repeat the failure.
func (h *kafkaHandler) reject(ctx context.Context, m kafka.Message, reason string) {
	if err := h.writeToDLQ(ctx, m, reason); err != nil {
		h.logger.Error("failed to write message to DLQ", slog.Any("error", err))
		return
	}
	jobsDLQ.Inc()
	h.commit(ctx, m)
}

func (h *kafkaHandler) writeToDLQ(ctx context.Context, m kafka.Message, reason string) error {
	m.Topic = fmt.Sprintf("%s-dlq", m.Topic)
	m.Headers = append(m.Headers, kafka.Header{Key: "failure-reason", Value: []byte(reason)})
	return h.producer.WriteMessages(ctx, m)
}

func (h *kafkaHandler) commit(ctx context.Context, m kafka.Message) {
	if err := h.reader.CommitMessages(ctx, m); err != nil {
		commitErrors.Inc()
		h.logger.Error("failed to commit message", slog.Any("error", err))
	}
}

func (h *kafkaHandler) Close() error {
	if err := h.reader.Close(); err != nil {
		return err
	}
	return h.producer.Close()
}
