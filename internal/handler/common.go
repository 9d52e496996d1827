package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/pathlight/corpsite-backend/internal/middleware"
	"github.com/pathlight/corpsite-backend/internal/model"
	"github.com/pathlight/corpsite-backend/internal/response"
	"github.com/pathlight/corpsite-backend/internal/service"
)

// paramID parses the :id route parameter.
func paramID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		return 0, false
	}
	return id, true
}

// paginate builds the response pagination block from a normalized query and
// total row count.
func paginate(q *model.ListQuery, total int) *response.Pagination {
	totalPages := (total + q.Limit - 1) / q.Limit
	return &response.Pagination{
		Page:       q.Page,
		PerPage:    q.Limit,
		TotalItems: total,
		TotalPages: totalPages,
	}
}

// recordOp queues one audit entry for the acting admin. Safe to call from
// any route behind RequireAdminJWT.
func recordOp(c *gin.Context, oplog *service.OperationLogService, action, resource, resourceID, detail string) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		return
	}
	oplog.Record(c.Request.Context(), model.OperationLog{
		AdminID:    claims.AdminID,
		Action:     action,
		Resource:   resource,
		ResourceID: resourceID,
		Detail:     detail,
		IP:         c.ClientIP(),
	})
}
