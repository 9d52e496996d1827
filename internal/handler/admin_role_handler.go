package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"

	"github.com/pathlight/corpsite-backend/internal/model"
	"github.com/pathlight/corpsite-backend/internal/repository"
	"github.com/pathlight/corpsite-backend/internal/response"
	"github.com/pathlight/corpsite-backend/internal/service"
	"github.com/pathlight/corpsite-backend/internal/validator"
)

// AdminRoleHandler handles role and permission management.
type AdminRoleHandler struct {
	roleService  *service.AdminRoleService
	oplogService *service.OperationLogService
}

// NewAdminRoleHandler creates a new AdminRoleHandler.
func NewAdminRoleHandler(roleService *service.AdminRoleService, oplogService *service.OperationLogService) *AdminRoleHandler {
	return &AdminRoleHandler{roleService: roleService, oplogService: oplogService}
}

// ListRoles godoc
// GET /api/v1/admin/roles
func (h *AdminRoleHandler) ListRoles(c *gin.Context) {
	roles, err := h.roleService.List(c.Request.Context())
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"roles": roles})
}

// GetRole godoc
// GET /api/v1/admin/roles/:id
func (h *AdminRoleHandler) GetRole(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	role, err := h.roleService.Get(c.Request.Context(), id)
	if err != nil {
		response.Fail(c, http.StatusNotFound, response.ErrNotFound)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"role": role})
}

// ListPermissions godoc
// GET /api/v1/admin/roles/permissions
// Lists every permission code a role can grant.
func (h *AdminRoleHandler) ListPermissions(c *gin.Context) {
	response.Success(c, http.StatusOK, gin.H{"permissions": h.roleService.ListPermissions()})
}

// CreateRole godoc
// POST /api/v1/admin/roles
func (h *AdminRoleHandler) CreateRole(c *gin.Context) {
	var req model.RoleRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	role, err := h.roleService.Create(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrUnknownPermission) {
			response.Fail(c, http.StatusBadRequest, response.ErrValidation)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	recordOp(c, h.oplogService, model.ActionCreate, "role", strconv.Itoa(role.ID), role.Name)
	response.Success(c, http.StatusCreated, gin.H{"role": role})
}

// UpdateRole godoc
// PUT /api/v1/admin/roles/:id
// Permission changes take effect at next login; issued tokens keep the
// permissions they were signed with until they expire.
func (h *AdminRoleHandler) UpdateRole(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	var req model.RoleRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	if err := h.roleService.Update(c.Request.Context(), id, &req); err != nil {
		switch {
		case errors.Is(err, service.ErrUnknownPermission):
			response.Fail(c, http.StatusBadRequest, response.ErrValidation)
		case errors.Is(err, pgx.ErrNoRows):
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
		default:
			response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		}
		return
	}

	recordOp(c, h.oplogService, model.ActionUpdate, "role", strconv.Itoa(id), req.Name)

	role, _ := h.roleService.Get(c.Request.Context(), id)
	response.Success(c, http.StatusOK, gin.H{"role": role})
}

// DeleteRole godoc
// DELETE /api/v1/admin/roles/:id
// Roles still assigned to admins are refused with 409.
func (h *AdminRoleHandler) DeleteRole(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	if err := h.roleService.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, repository.ErrRoleInUse) {
			response.Fail(c, http.StatusConflict, response.ErrDependencyExists)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	recordOp(c, h.oplogService, model.ActionDelete, "role", strconv.Itoa(id), "")
	response.Success(c, http.StatusOK, gin.H{"message": "role deleted"})
}
