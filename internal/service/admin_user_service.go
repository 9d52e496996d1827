package service

import (
	"context"

	"github.com/pathlight/corpsite-backend/internal/model"
	"github.com/pathlight/corpsite-backend/internal/repository"
)

// AdminUserService handles back-office account management.
type AdminUserService struct {
	adminRepo *repository.AdminRepository
	auth      *AuthService
}

// NewAdminUserService creates a new AdminUserService.
func NewAdminUserService(adminRepo *repository.AdminRepository, auth *AuthService) *AdminUserService {
	return &AdminUserService{adminRepo: adminRepo, auth: auth}
}

// List retrieves all admin accounts. Back-office staff are few enough that
// the list is not paginated.
func (s *AdminUserService) List(ctx context.Context) ([]*model.Admin, error) {
	return s.adminRepo.GetAll(ctx)
}

// Get retrieves a single admin account.
func (s *AdminUserService) Get(ctx context.Context, id int) (*model.Admin, error) {
	return s.adminRepo.GetByID(ctx, id)
}

// Create creates a new admin account.
func (s *AdminUserService) Create(ctx context.Context, req *model.CreateAdminRequest) (*model.Admin, error) {
	hash, err := s.auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	admin := &model.Admin{
		Email:        req.Email,
		Name:         req.Name,
		PasswordHash: hash,
		RoleID:       req.RoleID,
	}
	if err := s.adminRepo.Create(ctx, admin); err != nil {
		return nil, err
	}
	return admin, nil
}

// Update modifies an admin account. An empty password leaves the current
// one in place.
func (s *AdminUserService) Update(ctx context.Context, id int, req *model.UpdateAdminRequest) error {
	hash := ""
	if req.Password != "" {
		var err error
		hash, err = s.auth.HashPassword(req.Password)
		if err != nil {
			return err
		}
	}

	admin := &model.Admin{
		ID:     id,
		Email:  req.Email,
		Name:   req.Name,
		RoleID: req.RoleID,
	}
	return s.adminRepo.Update(ctx, admin, hash)
}

// Delete removes an admin account and ends any active session it holds.
func (s *AdminUserService) Delete(ctx context.Context, id int) error {
	if err := s.adminRepo.Delete(ctx, id); err != nil {
		return err
	}
	return s.auth.EndAdminSession(ctx, id)
}
