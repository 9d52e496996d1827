package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"

	"github.com/pathlight/corpsite-backend/internal/middleware"
	"github.com/pathlight/corpsite-backend/internal/model"
	"github.com/pathlight/corpsite-backend/internal/repository"
	"github.com/pathlight/corpsite-backend/internal/response"
	"github.com/pathlight/corpsite-backend/internal/service"
	"github.com/pathlight/corpsite-backend/internal/validator"
)

// AdminUserHandler handles back-office account management.
type AdminUserHandler struct {
	userService  *service.AdminUserService
	oplogService *service.OperationLogService
}

// NewAdminUserHandler creates a new AdminUserHandler.
func NewAdminUserHandler(userService *service.AdminUserService, oplogService *service.OperationLogService) *AdminUserHandler {
	return &AdminUserHandler{userService: userService, oplogService: oplogService}
}

// ListAdmins godoc
// GET /api/v1/admin/users
func (h *AdminUserHandler) ListAdmins(c *gin.Context) {
	admins, err := h.userService.List(c.Request.Context())
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"admins": admins})
}

// GetAdmin godoc
// GET /api/v1/admin/users/:id
func (h *AdminUserHandler) GetAdmin(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	admin, err := h.userService.Get(c.Request.Context(), id)
	if err != nil {
		response.Fail(c, http.StatusNotFound, response.ErrNotFound)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"admin": admin})
}

// CreateAdmin godoc
// POST /api/v1/admin/users
func (h *AdminUserHandler) CreateAdmin(c *gin.Context) {
	var req model.CreateAdminRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	admin, err := h.userService.Create(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			response.Fail(c, http.StatusConflict, response.ErrConflict)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	recordOp(c, h.oplogService, model.ActionCreate, "admin", strconv.Itoa(admin.ID), admin.Email)
	response.Success(c, http.StatusCreated, gin.H{"admin": admin})
}

// UpdateAdmin godoc
// PUT /api/v1/admin/users/:id
func (h *AdminUserHandler) UpdateAdmin(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	var req model.UpdateAdminRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	if err := h.userService.Update(c.Request.Context(), id, &req); err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicateEmail):
			response.Fail(c, http.StatusConflict, response.ErrConflict)
		case errors.Is(err, pgx.ErrNoRows):
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
		default:
			response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		}
		return
	}

	recordOp(c, h.oplogService, model.ActionUpdate, "admin", strconv.Itoa(id), req.Email)

	admin, _ := h.userService.Get(c.Request.Context(), id)
	response.Success(c, http.StatusOK, gin.H{"admin": admin})
}

// DeleteAdmin godoc
// DELETE /api/v1/admin/users/:id
// Self-deletion is refused.
func (h *AdminUserHandler) DeleteAdmin(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	if claims := middleware.GetClaims(c); claims != nil && claims.AdminID == id {
		response.Fail(c, http.StatusConflict, response.ErrActionForbidden)
		return
	}

	if err := h.userService.Delete(c.Request.Context(), id); err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	recordOp(c, h.oplogService, model.ActionDelete, "admin", strconv.Itoa(id), "")
	response.Success(c, http.StatusOK, gin.H{"message": "admin deleted"})
}
