package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pathlight/corpsite-backend/internal/middleware"
	"github.com/pathlight/corpsite-backend/internal/model"
	"github.com/pathlight/corpsite-backend/internal/response"
	"github.com/pathlight/corpsite-backend/internal/service"
	"github.com/pathlight/corpsite-backend/internal/validator"
)

// AuthHandler handles admin authentication.
type AuthHandler struct {
	adminService *service.AdminService
	oplogService *service.OperationLogService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(adminService *service.AdminService, oplogService *service.OperationLogService) *AuthHandler {
	return &AuthHandler{adminService: adminService, oplogService: oplogService}
}

// Login godoc
// POST /api/v1/auth/login
// Verifies credentials and returns a session token.
func (h *AuthHandler) Login(c *gin.Context) {
	var req model.AdminLoginRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	token, admin, err := h.adminService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			response.Fail(c, http.StatusUnauthorized, response.ErrInvalidCredentials)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	h.oplogService.Record(c.Request.Context(), model.OperationLog{
		AdminID:  admin.ID,
		Action:   model.ActionLogin,
		Resource: "session",
		IP:       c.ClientIP(),
	})

	response.Success(c, http.StatusOK, gin.H{
		"token": token,
		"admin": admin,
	})
}

// Logout godoc
// POST /api/v1/admin/auth/logout
// Ends the active session, invalidating outstanding tokens.
func (h *AuthHandler) Logout(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		response.Fail(c, http.StatusUnauthorized, response.ErrTokenRequired)
		return
	}

	if err := h.adminService.Logout(c.Request.Context(), claims.AdminID); err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	recordOp(c, h.oplogService, model.ActionLogout, "session", "", "")
	response.Success(c, http.StatusOK, gin.H{"message": "logged out"})
}

// Me godoc
// GET /api/v1/admin/auth/me
// Returns the authenticated admin's profile and permissions.
func (h *AuthHandler) Me(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		response.Fail(c, http.StatusUnauthorized, response.ErrTokenRequired)
		return
	}

	admin, err := h.adminService.GetByID(c.Request.Context(), claims.AdminID)
	if err != nil {
		response.Fail(c, http.StatusNotFound, response.ErrNotFound)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"admin":       admin,
		"permissions": claims.Permissions,
	})
}
