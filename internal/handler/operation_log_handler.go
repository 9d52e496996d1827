package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/pathlight/corpsite-backend/internal/model"
	"github.com/pathlight/corpsite-backend/internal/response"
	"github.com/pathlight/corpsite-backend/internal/service"
	"github.com/pathlight/corpsite-backend/internal/validator"
)

// OperationLogHandler exposes the audit trail to the back office.
type OperationLogHandler struct {
	oplogService *service.OperationLogService
}

// NewOperationLogHandler creates a new OperationLogHandler.
func NewOperationLogHandler(oplogService *service.OperationLogService) *OperationLogHandler {
	return &OperationLogHandler{oplogService: oplogService}
}

// ListOperationLogs godoc
// GET /api/v1/admin/logs?admin_id=N&resource=banner&action=CREATE
func (h *OperationLogHandler) ListOperationLogs(c *gin.Context) {
	var q model.ListQuery
	if fields := validator.BindQuery(c, &q); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}
	q.Normalize()

	var adminID *int
	if raw := c.Query("admin_id"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil || id < 1 {
			response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
			return
		}
		adminID = &id
	}

	logs, total, err := h.oplogService.List(c.Request.Context(), adminID, c.Query("resource"), c.Query("action"), &q)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.SuccessWithPagination(c, http.StatusOK, gin.H{"logs": logs}, paginate(&q, total))
}
