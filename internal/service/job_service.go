package service

import (
	"context"

	"github.com/pathlight/corpsite-backend/internal/model"
	"github.com/pathlight/corpsite-backend/internal/repository"
)

// JobService handles careers-page job posting management.
type JobService struct {
	jobRepo *repository.JobRepository
}

// NewJobService creates a new JobService.
func NewJobService(jobRepo *repository.JobRepository) *JobService {
	return &JobService{jobRepo: jobRepo}
}

// ListAdmin retrieves a paginated, searchable list of postings.
func (s *JobService) ListAdmin(ctx context.Context, q *model.ListQuery) ([]*model.JobPosting, int, error) {
	return s.jobRepo.ListPaginated(ctx, q)
}

// ListPublic retrieves enabled postings in display order.
func (s *JobService) ListPublic(ctx context.Context) ([]*model.JobPosting, error) {
	return s.jobRepo.GetEnabled(ctx)
}

// Get retrieves a posting by ID.
func (s *JobService) Get(ctx context.Context, id int) (*model.JobPosting, error) {
	return s.jobRepo.GetByID(ctx, id)
}

// Create creates a posting.
func (s *JobService) Create(ctx context.Context, req *model.JobPostingRequest) (*model.JobPosting, error) {
	j := jobFromRequest(0, req)
	if err := s.jobRepo.Create(ctx, j); err != nil {
		return nil, err
	}
	return j, nil
}

// Update modifies a posting.
func (s *JobService) Update(ctx context.Context, id int, req *model.JobPostingRequest) error {
	return s.jobRepo.Update(ctx, jobFromRequest(id, req))
}

// Delete removes a posting.
func (s *JobService) Delete(ctx context.Context, id int) error {
	return s.jobRepo.Delete(ctx, id)
}

// Reorder persists the submitted display order and returns the confirmed
// admin list.
func (s *JobService) Reorder(ctx context.Context, ids []int) ([]*model.JobPosting, error) {
	if err := s.jobRepo.UpdateOrder(ctx, ids); err != nil {
		return nil, err
	}
	return s.jobRepo.GetAll(ctx)
}

func jobFromRequest(id int, req *model.JobPostingRequest) *model.JobPosting {
	return &model.JobPosting{
		ID:             id,
		Title:          req.Title,
		Department:     req.Department,
		Location:       req.Location,
		EmploymentType: req.EmploymentType,
		Description:    req.Description,
		Requirements:   req.Requirements,
		Order:          req.Order,
		Enabled:        *req.Enabled,
	}
}
