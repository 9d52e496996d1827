package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/pathlight/corpsite-backend/internal/config"
	"github.com/pathlight/corpsite-backend/internal/model"
	"github.com/pathlight/corpsite-backend/internal/pageconfig"
	"github.com/pathlight/corpsite-backend/internal/repository"
)

// ErrUnknownArea is returned when a request names a page area the system
// does not manage.
var ErrUnknownArea = errors.New("unknown page area")

const pageConfigCacheTTL = 5 * time.Minute

// PageConfigService manages the keyed page-entry maps behind each
// marketing-site feature area.
type PageConfigService struct {
	pageRepo repository.PageConfigRepository
	rdb      *redis.Client
	log      zerolog.Logger
}

// NewPageConfigService creates a new PageConfigService.
func NewPageConfigService(pageRepo repository.PageConfigRepository, rdb *redis.Client, log zerolog.Logger) *PageConfigService {
	return &PageConfigService{
		pageRepo: pageRepo,
		rdb:      rdb,
		log:      log.With().Str("component", "page_config_service").Logger(),
	}
}

// GetAdminList resolves an area's full entry list, disabled entries
// included, in display order.
func (s *PageConfigService) GetAdminList(ctx context.Context, area string) ([]model.PageItem, error) {
	if !model.IsKnownArea(area) {
		return nil, ErrUnknownArea
	}
	cfg, keyOrder, err := s.pageRepo.GetArea(ctx, area)
	if err != nil {
		return nil, err
	}
	return pageconfig.ResolveAdminList(cfg, keyOrder), nil
}

// GetPublicList resolves an area's enabled entries in display order, served
// from Redis when a fresh copy exists.
func (s *PageConfigService) GetPublicList(ctx context.Context, area string) ([]model.PageItem, error) {
	if !model.IsKnownArea(area) {
		return nil, ErrUnknownArea
	}

	key := config.CacheKey.PageConfigKey(area)
	if raw, err := s.rdb.Get(ctx, key).Result(); err == nil {
		var cached []model.PageItem
		if err := json.Unmarshal([]byte(raw), &cached); err == nil {
			return cached, nil
		}
	}

	cfg, keyOrder, err := s.pageRepo.GetArea(ctx, area)
	if err != nil {
		return nil, err
	}
	items := pageconfig.ResolveEnabledList(cfg, keyOrder)

	if raw, err := json.Marshal(items); err == nil {
		if err := s.rdb.Set(ctx, key, raw, pageConfigCacheTTL).Err(); err != nil {
			s.log.Warn().Err(err).Str("area", area).Msg("failed to cache page list")
		}
	}
	return items, nil
}

// Replace swaps an area's entire entry map in one transaction. There is no
// per-entry merge: concurrent replacements resolve to whichever commits
// last, and the submitted collection becomes the whole truth for the area.
func (s *PageConfigService) Replace(ctx context.Context, area string, entries map[string]model.PageEntry, keyOrder []string) ([]model.PageItem, error) {
	if !model.IsKnownArea(area) {
		return nil, ErrUnknownArea
	}
	if err := s.pageRepo.ReplaceArea(ctx, area, entries, keyOrder); err != nil {
		return nil, err
	}
	if err := s.rdb.Del(ctx, config.CacheKey.PageConfigKey(area)).Err(); err != nil {
		s.log.Warn().Err(err).Str("area", area).Msg("failed to invalidate page cache")
	}
	return pageconfig.ResolveAdminList(entries, keyOrder), nil
}
