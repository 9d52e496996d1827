package worker

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/pathlight/corpsite-backend/internal/config"
	"github.com/pathlight/corpsite-backend/internal/metrics"
	"github.com/pathlight/corpsite-backend/internal/model"
	"github.com/pathlight/corpsite-backend/internal/repository"
)

const (
	OplogBatchSize    = 50
	OplogBatchTimeout = 2 * time.Second
	OplogPollTimeout  = 1 * time.Second
)

// OperationLogWorker drains queued audit entries from Redis into Postgres
// in batches so admin mutations never wait on an audit insert.
type OperationLogWorker struct {
	logRepo *repository.OperationLogRepository
	rdb     *redis.Client
	log     zerolog.Logger
}

func NewOperationLogWorker(logRepo *repository.OperationLogRepository, rdb *redis.Client, log zerolog.Logger) *OperationLogWorker {
	return &OperationLogWorker{
		logRepo: logRepo,
		rdb:     rdb,
		log:     log.With().Str("component", "oplog_worker").Logger(),
	}
}

func (w *OperationLogWorker) Start(ctx context.Context) {
	w.log.Info().Msg("OperationLogWorker started")

	batch := make([]model.OperationLog, 0, OplogBatchSize)
	lastFlush := time.Now()

	for {
		if len(batch) > 0 &&
			(len(batch) >= OplogBatchSize || time.Since(lastFlush) >= OplogBatchTimeout) {

			w.flushSafe(ctx, batch)
			batch = batch[:0]
			lastFlush = time.Now()
		}

		select {
		case <-ctx.Done():
			w.log.Info().Msg("Shutdown requested. Flushing remaining batch...")
			w.flushSafe(context.Background(), batch)
			return

		default:
			item, err := w.rdb.BLPop(ctx, OplogPollTimeout, config.WorkerKey.OperationLogQueue).Result()
			if err != nil {
				if err != redis.Nil && ctx.Err() == nil {
					w.log.Error().Err(err).Msg("BLPop error")
				}
				continue
			}

			if len(item) < 2 {
				continue
			}

			var entry model.OperationLog
			if err := json.Unmarshal([]byte(item[1]), &entry); err != nil {
				w.log.Error().Err(err).Msg("Invalid JSON payload")
				continue
			}

			batch = append(batch, entry)
		}
	}
}

func (w *OperationLogWorker) flushSafe(ctx context.Context, batch []model.OperationLog) {
	if len(batch) == 0 {
		return
	}

	if err := w.logRepo.InsertBatch(ctx, batch); err != nil {
		w.log.Error().Err(err).Int("count", len(batch)).Msg("batch insert failed, requeueing")
		for _, entry := range batch {
			raw, _ := json.Marshal(entry)
			w.rdb.RPush(ctx, config.WorkerKey.OperationLogQueue, raw)
		}
		return
	}
	metrics.CountOplogFlush()
}
