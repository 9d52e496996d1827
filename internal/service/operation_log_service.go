package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/pathlight/corpsite-backend/internal/config"
	"github.com/pathlight/corpsite-backend/internal/model"
	"github.com/pathlight/corpsite-backend/internal/repository"
)

// OperationLogService records admin mutations for the audit trail. Entries
// go through a Redis queue so writes never sit on the request path; a
// worker drains the queue into Postgres in batches. Each entry is also
// published to the activity channel feeding the live back-office feed.
type OperationLogService struct {
	logRepo *repository.OperationLogRepository
	rdb     *redis.Client
	log     zerolog.Logger
}

// NewOperationLogService creates a new OperationLogService.
func NewOperationLogService(logRepo *repository.OperationLogRepository, rdb *redis.Client, log zerolog.Logger) *OperationLogService {
	return &OperationLogService{
		logRepo: logRepo,
		rdb:     rdb,
		log:     log.With().Str("component", "operation_log_service").Logger(),
	}
}

// Record enqueues one audit entry. Failures are logged and swallowed: a
// broken audit pipeline must not fail the mutation it describes.
func (s *OperationLogService) Record(ctx context.Context, entry model.OperationLog) {
	entry.CreatedAt = time.Now()

	raw, err := json.Marshal(entry)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to marshal operation log")
		return
	}

	if err := s.rdb.RPush(ctx, config.WorkerKey.OperationLogQueue, raw).Err(); err != nil {
		s.log.Error().Err(err).Msg("failed to enqueue operation log")
	}
	if err := s.rdb.Publish(ctx, config.CacheKey.ActivityChannel(), raw).Err(); err != nil {
		s.log.Warn().Err(err).Msg("failed to publish activity event")
	}
}

// List retrieves the persisted audit trail with optional admin, resource
// and action filters.
func (s *OperationLogService) List(ctx context.Context, adminID *int, resource, action string, q *model.ListQuery) ([]model.OperationLog, int, error) {
	return s.logRepo.ListPaginated(ctx, adminID, resource, action, q)
}
