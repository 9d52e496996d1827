package service

import (
	"context"

	"github.com/pathlight/corpsite-backend/internal/model"
	"github.com/pathlight/corpsite-backend/internal/repository"
)

// HashtagService handles content hashtag management.
type HashtagService struct {
	hashtagRepo repository.HashtagRepository
}

// NewHashtagService creates a new HashtagService.
func NewHashtagService(hashtagRepo repository.HashtagRepository) *HashtagService {
	return &HashtagService{hashtagRepo: hashtagRepo}
}

// List retrieves a paginated, searchable list of hashtags with usage counts.
func (s *HashtagService) List(ctx context.Context, q *model.ListQuery) ([]model.Hashtag, int, error) {
	return s.hashtagRepo.ListPaginated(ctx, q)
}

// Get retrieves a hashtag by ID.
func (s *HashtagService) Get(ctx context.Context, id int) (*model.Hashtag, error) {
	return s.hashtagRepo.GetByID(ctx, id)
}

// Create creates a hashtag.
func (s *HashtagService) Create(ctx context.Context, req *model.HashtagRequest) (*model.Hashtag, error) {
	return s.hashtagRepo.Create(ctx, req.Name, *req.Enabled)
}

// Update renames or toggles a hashtag.
func (s *HashtagService) Update(ctx context.Context, id int, req *model.HashtagRequest) error {
	return s.hashtagRepo.Update(ctx, id, req.Name, *req.Enabled)
}

// Delete removes a hashtag. Tags still referenced by case studies or news
// articles are refused with repository.ErrHashtagInUse.
func (s *HashtagService) Delete(ctx context.Context, id int) error {
	return s.hashtagRepo.Delete(ctx, id)
}
