package service

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/pathlight/corpsite-backend/internal/model"
	"github.com/pathlight/corpsite-backend/internal/repository"
)

// AdminService handles admin account lookups and the login flow.
type AdminService struct {
	adminRepo *repository.AdminRepository
	roleRepo  *repository.RoleRepository
	auth      *AuthService
}

// NewAdminService creates a new AdminService.
func NewAdminService(adminRepo *repository.AdminRepository, roleRepo *repository.RoleRepository, auth *AuthService) *AdminService {
	return &AdminService{adminRepo: adminRepo, roleRepo: roleRepo, auth: auth}
}

// Login verifies credentials and issues a session token with the role's
// permission codes embedded. A wrong email and a wrong password return the
// same error so the endpoint does not leak which accounts exist.
func (s *AdminService) Login(ctx context.Context, email, password string) (string, *model.Admin, error) {
	admin, err := s.adminRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}

	if err := s.auth.CheckPassword(admin.PasswordHash, password); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	permissions, err := s.roleRepo.GetPermissions(ctx, admin.RoleID)
	if err != nil {
		return "", nil, err
	}

	token, err := s.auth.GenerateAdminToken(ctx, admin.ID, admin.RoleID, permissions)
	if err != nil {
		return "", nil, err
	}
	return token, admin, nil
}

// Logout ends the admin's active session, invalidating outstanding tokens.
func (s *AdminService) Logout(ctx context.Context, adminID int) error {
	return s.auth.EndAdminSession(ctx, adminID)
}

// GetByID retrieves an admin by ID.
func (s *AdminService) GetByID(ctx context.Context, id int) (*model.Admin, error) {
	return s.adminRepo.GetByID(ctx, id)
}
