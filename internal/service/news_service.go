package service

import (
	"context"

	"github.com/pathlight/corpsite-backend/internal/model"
	"github.com/pathlight/corpsite-backend/internal/repository"
)

// NewsService handles news article management.
type NewsService struct {
	newsRepo *repository.NewsRepository
}

// NewNewsService creates a new NewsService.
func NewNewsService(newsRepo *repository.NewsRepository) *NewsService {
	return &NewsService{newsRepo: newsRepo}
}

// ListAdmin retrieves a paginated list of articles with an optional status
// filter.
func (s *NewsService) ListAdmin(ctx context.Context, q *model.ListQuery, status model.NewsStatus) ([]model.NewsArticle, int, error) {
	return s.newsRepo.ListPaginated(ctx, q, status)
}

// ListPublic retrieves published articles, newest publication first.
func (s *NewsService) ListPublic(ctx context.Context, limit, offset int) ([]model.NewsArticle, int, error) {
	return s.newsRepo.ListPublished(ctx, limit, offset)
}

// Get retrieves an article by ID.
func (s *NewsService) Get(ctx context.Context, id int) (*model.NewsArticle, error) {
	return s.newsRepo.GetByID(ctx, id)
}

// GetPublicBySlug retrieves a published article by slug.
func (s *NewsService) GetPublicBySlug(ctx context.Context, slug string) (*model.NewsArticle, error) {
	return s.newsRepo.GetPublishedBySlug(ctx, slug)
}

// Create creates an article in DRAFT status.
func (s *NewsService) Create(ctx context.Context, req *model.NewsRequest) (*model.NewsArticle, error) {
	n := &model.NewsArticle{
		Title:    req.Title,
		Slug:     req.Slug,
		Excerpt:  req.Excerpt,
		Body:     req.Body,
		CoverURL: req.CoverURL,
		Hashtags: req.Hashtags,
		Status:   model.NewsStatusDraft,
	}
	if err := s.newsRepo.Create(ctx, n); err != nil {
		return nil, err
	}
	return n, nil
}

// Update modifies an article and relinks its hashtags. Status is not
// touched here; publication moves through Publish and Unpublish.
func (s *NewsService) Update(ctx context.Context, id int, req *model.NewsRequest) error {
	n := &model.NewsArticle{
		ID:       id,
		Title:    req.Title,
		Slug:     req.Slug,
		Excerpt:  req.Excerpt,
		Body:     req.Body,
		CoverURL: req.CoverURL,
		Hashtags: req.Hashtags,
	}
	return s.newsRepo.Update(ctx, n)
}

// Publish moves a draft article to PUBLISHED, stamping its publication time.
func (s *NewsService) Publish(ctx context.Context, id int) error {
	n, err := s.newsRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if n.Status == model.NewsStatusPublished {
		return ErrAlreadyPublished
	}
	return s.newsRepo.SetStatus(ctx, id, model.NewsStatusPublished)
}

// Unpublish moves a published article back to DRAFT.
func (s *NewsService) Unpublish(ctx context.Context, id int) error {
	n, err := s.newsRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if n.Status != model.NewsStatusPublished {
		return ErrNotPublished
	}
	return s.newsRepo.SetStatus(ctx, id, model.NewsStatusDraft)
}

// Delete removes an article and its hashtag links.
func (s *NewsService) Delete(ctx context.Context, id int) error {
	return s.newsRepo.Delete(ctx, id)
}
