package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pathlight/corpsite-backend/internal/model"
)

var ErrRoleInUse = errors.New("role is still assigned to admins")

// RoleRepository handles RBAC role data access.
type RoleRepository struct {
	pool *pgxpool.Pool
}

// NewRoleRepository creates a new RoleRepository.
func NewRoleRepository(pool *pgxpool.Pool) *RoleRepository {
	return &RoleRepository{pool: pool}
}

// GetAll retrieves every role.
func (r *RoleRepository) GetAll(ctx context.Context) ([]*model.Role, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, name, created_at FROM roles ORDER BY name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var roles []*model.Role
	for rows.Next() {
		role := &model.Role{}
		if err := rows.Scan(&role.ID, &role.Name, &role.CreatedAt); err != nil {
			return nil, err
		}
		roles = append(roles, role)
	}
	return roles, rows.Err()
}

// GetByID retrieves a role with its permission codes.
func (r *RoleRepository) GetByID(ctx context.Context, id int) (*model.RoleWithPermissions, error) {
	role := &model.Role{}
	err := r.pool.QueryRow(ctx, `SELECT id, name, created_at FROM roles WHERE id = $1`, id).
		Scan(&role.ID, &role.Name, &role.CreatedAt)
	if err != nil {
		return nil, err
	}

	permissions, err := r.GetPermissions(ctx, id)
	if err != nil {
		return nil, err
	}

	return &model.RoleWithPermissions{Role: role, Permissions: permissions}, nil
}

// GetPermissions retrieves the permission codes granted to a role.
func (r *RoleRepository) GetPermissions(ctx context.Context, roleID int) ([]string, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT p.code FROM permissions p
		 JOIN role_permissions rp ON rp.permission_id = p.id
		 WHERE rp.role_id = $1
		 ORDER BY p.code ASC`, roleID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	permissions := []string{}
	for rows.Next() {
		var code string
		if err := rows.Scan(&code); err != nil {
			return nil, err
		}
		permissions = append(permissions, code)
	}
	return permissions, rows.Err()
}

// Create inserts a role and grants it the given permission codes in one
// transaction.
func (r *RoleRepository) Create(ctx context.Context, name string, permissions []string) (*model.Role, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	role := &model.Role{Name: name}
	err = tx.QueryRow(ctx, `INSERT INTO roles (name) VALUES ($1) RETURNING id, created_at`, name).
		Scan(&role.ID, &role.CreatedAt)
	if err != nil {
		return nil, err
	}

	if err := grantPermissions(ctx, tx, role.ID, permissions); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return role, nil
}

// Update renames a role and replaces its permission grants.
func (r *RoleRepository) Update(ctx context.Context, id int, name string, permissions []string) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `UPDATE roles SET name = $1 WHERE id = $2`, name, id); err != nil {
		return err
	}
	if _, err := tx.Exec(ctx, `DELETE FROM role_permissions WHERE role_id = $1`, id); err != nil {
		return err
	}
	if err := grantPermissions(ctx, tx, id, permissions); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

// Delete removes a role. Roles still assigned to admins are refused.
func (r *RoleRepository) Delete(ctx context.Context, id int) error {
	var assigned int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM admins WHERE role_id = $1`, id).Scan(&assigned); err != nil {
		return err
	}
	if assigned > 0 {
		return ErrRoleInUse
	}
	_, err := r.pool.Exec(ctx, `DELETE FROM roles WHERE id = $1`, id)
	return err
}

func grantPermissions(ctx context.Context, tx pgx.Tx, roleID int, codes []string) error {
	for _, code := range codes {
		if _, err := tx.Exec(ctx,
			`INSERT INTO role_permissions (role_id, permission_id)
			 SELECT $1, id FROM permissions WHERE code = $2
			 ON CONFLICT DO NOTHING`, roleID, code); err != nil {
			return err
		}
	}
	return nil
}
