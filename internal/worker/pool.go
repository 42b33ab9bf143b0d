package worker

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// Handler processes one decoded job payload.
type Handler interface {
	Handle(ctx context.Context, payload json.RawMessage) error
}

// WorkerHandlers wires each queue to its handler. Wired at the composition
// root so handlers have full access to infrastructure dependencies.
type WorkerHandlers struct {
	StockAlert  Handler
	ReportEmail Handler
}

func (h *WorkerHandlers) forQueue(queue string) Handler {
	switch queue {
	case QueueStockAlert:
		return h.StockAlert
	case QueueReportEmail:
		return h.ReportEmail
	default:
		return nil
	}
}

// StartWorkerPool launches numWorkers goroutines consuming both queues.
// Each goroutine blocks on BRPOP — zero CPU when idle.
func StartWorkerPool(ctx context.Context, rdb *redis.Client, handlers *WorkerHandlers, numWorkers int) {
	for i := 0; i < numWorkers; i++ {
		go runWorker(ctx, rdb, handlers, i)
	}
	log.Info().Msgf("worker pool started with %d workers", numWorkers)
}

func runWorker(ctx context.Context, rdb *redis.Client, handlers *WorkerHandlers, id int) {
	queues := []string{QueueStockAlert, QueueReportEmail}
	for {
		select {
		case <-ctx.Done():
			log.Info().Msgf("worker %d shutting down", id)
			return
		default:
			// Blocking pop — waits up to 5s then loops to check ctx
			result, err := rdb.BRPop(ctx, 5*time.Second, queues...).Result()
			if err != nil {
				continue // timeout or context cancelled
			}
			if len(result) < 2 {
				continue
			}
			processJob(ctx, rdb, handlers, result[0], result[1])
		}
	}
}

func processJob(ctx context.Context, rdb *redis.Client, handlers *WorkerHandlers, queue, raw string) {
	var job Job
	if err := json.Unmarshal([]byte(raw), &job); err != nil {
		log.Error().Str("queue", queue).Err(err).Msg("failed to unmarshal job")
		return
	}

	handler := handlers.forQueue(queue)
	if handler == nil {
		log.Error().Str("queue", queue).Str("type", job.Type).Msg("no handler for queue")
		return
	}

	if err := handler.Handle(ctx, job.Payload); err != nil {
		job.Attempts++
		log.Warn().
			Str("queue", queue).
			Str("type", job.Type).
			Int("attempts", job.Attempts).
			Err(err).
			Msg("job failed")

		if job.Attempts >= maxAttempts {
			SendToDLQ(ctx, rdb, queue, job.Type, job.Payload, err.Error(), job.Attempts)
			return
		}
		// Requeue for another attempt.
		if encoded, mErr := json.Marshal(job); mErr == nil {
			_ = rdb.LPush(ctx, queue, encoded).Err()
		}
		return
	}

	log.Info().Str("type", job.Type).Str("queue", queue).Msg("job processed")
}
