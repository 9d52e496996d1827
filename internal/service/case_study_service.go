package service

import (
	"context"
	"errors"

	"github.com/pathlight/corpsite-backend/internal/model"
	"github.com/pathlight/corpsite-backend/internal/repository"
)

// Publication state errors shared by case studies and news articles.
var (
	ErrAlreadyPublished = errors.New("content is already published")
	ErrNotPublished     = errors.New("content is not published")
)

// CaseStudyService handles client success story management.
type CaseStudyService struct {
	caseRepo *repository.CaseStudyRepository
}

// NewCaseStudyService creates a new CaseStudyService.
func NewCaseStudyService(caseRepo *repository.CaseStudyRepository) *CaseStudyService {
	return &CaseStudyService{caseRepo: caseRepo}
}

// ListAdmin retrieves a paginated, searchable list of case studies.
func (s *CaseStudyService) ListAdmin(ctx context.Context, q *model.ListQuery) ([]model.CaseStudy, int, error) {
	return s.caseRepo.ListPaginated(ctx, q)
}

// ListPublic retrieves published case studies, newest publication first.
func (s *CaseStudyService) ListPublic(ctx context.Context, limit, offset int) ([]model.CaseStudy, int, error) {
	return s.caseRepo.ListPublished(ctx, limit, offset)
}

// Get retrieves a case study by ID.
func (s *CaseStudyService) Get(ctx context.Context, id int) (*model.CaseStudy, error) {
	return s.caseRepo.GetByID(ctx, id)
}

// GetPublicBySlug retrieves a published case study by slug. Drafts are not
// reachable from the public site.
func (s *CaseStudyService) GetPublicBySlug(ctx context.Context, slug string) (*model.CaseStudy, error) {
	return s.caseRepo.GetPublishedBySlug(ctx, slug)
}

// Create creates a case study as a draft.
func (s *CaseStudyService) Create(ctx context.Context, req *model.CaseStudyRequest) (*model.CaseStudy, error) {
	cs := &model.CaseStudy{
		Title:    req.Title,
		Slug:     req.Slug,
		Client:   req.Client,
		Industry: req.Industry,
		Summary:  req.Summary,
		Body:     req.Body,
		CoverURL: req.CoverURL,
		Hashtags: req.Hashtags,
	}
	if err := s.caseRepo.Create(ctx, cs); err != nil {
		return nil, err
	}
	return cs, nil
}

// Update modifies a case study and relinks its hashtags.
func (s *CaseStudyService) Update(ctx context.Context, id int, req *model.CaseStudyRequest) error {
	cs := &model.CaseStudy{
		ID:       id,
		Title:    req.Title,
		Slug:     req.Slug,
		Client:   req.Client,
		Industry: req.Industry,
		Summary:  req.Summary,
		Body:     req.Body,
		CoverURL: req.CoverURL,
		Hashtags: req.Hashtags,
	}
	return s.caseRepo.Update(ctx, cs)
}

// Publish makes a case study visible on the public site, stamping its
// publication time.
func (s *CaseStudyService) Publish(ctx context.Context, id int) error {
	cs, err := s.caseRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if cs.Published {
		return ErrAlreadyPublished
	}
	return s.caseRepo.SetPublished(ctx, id, true)
}

// Unpublish takes a case study off the public site.
func (s *CaseStudyService) Unpublish(ctx context.Context, id int) error {
	cs, err := s.caseRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !cs.Published {
		return ErrNotPublished
	}
	return s.caseRepo.SetPublished(ctx, id, false)
}

// Delete removes a case study and its hashtag links.
func (s *CaseStudyService) Delete(ctx context.Context, id int) error {
	return s.caseRepo.Delete(ctx, id)
}
