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

const publicBannerCacheTTL = 5 * time.Minute

// BannerService handles home-page banner management.
type BannerService struct {
	bannerRepo repository.BannerRepository
	rdb        *redis.Client
	log        zerolog.Logger
}

// NewBannerService creates a new BannerService.
func NewBannerService(bannerRepo repository.BannerRepository, rdb *redis.Client, log zerolog.Logger) *BannerService {
	return &BannerService{
		bannerRepo: bannerRepo,
		rdb:        rdb,
		log:        log.With().Str("component", "banner_service").Logger(),
	}
}

// ListAdmin retrieves every banner, enabled or not, in display order.
func (s *BannerService) ListAdmin(ctx context.Context) ([]*model.Banner, error) {
	return s.bannerRepo.GetAll(ctx)
}

// ListPublic retrieves enabled banners in display order, served from Redis
// when a fresh copy exists. Cache failures fall back to the database.
func (s *BannerService) ListPublic(ctx context.Context) ([]*model.Banner, error) {
	key := config.CacheKey.PublicBannersKey()

	if raw, err := s.rdb.Get(ctx, key).Result(); err == nil {
		var cached []*model.Banner
		if err := json.Unmarshal([]byte(raw), &cached); err == nil {
			return cached, nil
		}
	}

	banners, err := s.bannerRepo.GetEnabled(ctx)
	if err != nil {
		return nil, err
	}

	if raw, err := json.Marshal(banners); err == nil {
		if err := s.rdb.Set(ctx, key, raw, publicBannerCacheTTL).Err(); err != nil {
			s.log.Warn().Err(err).Msg("failed to cache public banners")
		}
	}
	return banners, nil
}

// Get retrieves a banner by ID.
func (s *BannerService) Get(ctx context.Context, id int) (*model.Banner, error) {
	return s.bannerRepo.GetByID(ctx, id)
}

// Create creates a banner.
func (s *BannerService) Create(ctx context.Context, req *model.BannerRequest) (*model.Banner, error) {
	b := &model.Banner{
		Title:    req.Title,
		Subtitle: req.Subtitle,
		ImageURL: req.ImageURL,
		LinkURL:  req.LinkURL,
		Order:    req.Order,
		Enabled:  *req.Enabled,
	}
	if err := s.bannerRepo.Create(ctx, b); err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return b, nil
}

// Update modifies a banner.
func (s *BannerService) Update(ctx context.Context, id int, req *model.BannerRequest) error {
	b := &model.Banner{
		ID:       id,
		Title:    req.Title,
		Subtitle: req.Subtitle,
		ImageURL: req.ImageURL,
		LinkURL:  req.LinkURL,
		Order:    req.Order,
		Enabled:  *req.Enabled,
	}
	if err := s.bannerRepo.Update(ctx, b); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

// Delete removes a banner.
func (s *BannerService) Delete(ctx context.Context, id int) error {
	if err := s.bannerRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

// Reorder persists the submitted display order and returns the list as the
// server now holds it, so clients render confirmed state.
func (s *BannerService) Reorder(ctx context.Context, ids []int) ([]*model.Banner, error) {
	if err := s.bannerRepo.UpdateOrder(ctx, ids); err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return s.bannerRepo.GetAll(ctx)
}

func (s *BannerService) invalidate(ctx context.Context) {
	if err := s.rdb.Del(ctx, config.CacheKey.PublicBannersKey()).Err(); err != nil {
		s.log.Warn().Err(err).Msg("failed to invalidate banner cache")
	}
}
