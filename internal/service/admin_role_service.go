package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/pathlight/corpsite-backend/internal/model"
	"github.com/pathlight/corpsite-backend/internal/repository"
)

// ErrUnknownPermission is returned when a role payload names a permission
// code that does not exist.
var ErrUnknownPermission = errors.New("unknown permission code")

// AdminRoleService handles role and permission management.
type AdminRoleService struct {
	roleRepo *repository.RoleRepository
}

// NewAdminRoleService creates a new AdminRoleService.
func NewAdminRoleService(roleRepo *repository.RoleRepository) *AdminRoleService {
	return &AdminRoleService{roleRepo: roleRepo}
}

// List retrieves all roles.
func (s *AdminRoleService) List(ctx context.Context) ([]*model.Role, error) {
	return s.roleRepo.GetAll(ctx)
}

// Get retrieves a role with its permission codes.
func (s *AdminRoleService) Get(ctx context.Context, id int) (*model.RoleWithPermissions, error) {
	return s.roleRepo.GetByID(ctx, id)
}

// ListPermissions returns every permission code the system knows.
func (s *AdminRoleService) ListPermissions() []string {
	codes := make([]string, len(model.AllPermissions))
	for i, p := range model.AllPermissions {
		codes[i] = string(p)
	}
	return codes
}

// Create creates a role with the given permission codes.
func (s *AdminRoleService) Create(ctx context.Context, req *model.RoleRequest) (*model.Role, error) {
	if err := validatePermissions(req.Permissions); err != nil {
		return nil, err
	}
	return s.roleRepo.Create(ctx, req.Name, req.Permissions)
}

// Update replaces a role's name and permission grants.
func (s *AdminRoleService) Update(ctx context.Context, id int, req *model.RoleRequest) error {
	if err := validatePermissions(req.Permissions); err != nil {
		return err
	}
	return s.roleRepo.Update(ctx, id, req.Name, req.Permissions)
}

// Delete removes a role. Roles still assigned to admins are refused.
func (s *AdminRoleService) Delete(ctx context.Context, id int) error {
	return s.roleRepo.Delete(ctx, id)
}

func validatePermissions(codes []string) error {
	known := make(map[string]struct{}, len(model.AllPermissions))
	for _, p := range model.AllPermissions {
		known[string(p)] = struct{}{}
	}
	for _, c := range codes {
		if _, ok := known[c]; !ok {
			return fmt.Errorf("%w: %s", ErrUnknownPermission, c)
		}
	}
	return nil
}
