package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pathlight/corpsite-backend/internal/model"
	"github.com/pathlight/corpsite-backend/internal/pageconfig"
	"github.com/pathlight/corpsite-backend/internal/response"
	"github.com/pathlight/corpsite-backend/internal/service"
)

// PageConfigHandler manages the keyed page maps behind each marketing-site
// feature area.
type PageConfigHandler struct {
	pageService  *service.PageConfigService
	oplogService *service.OperationLogService
}

// NewPageConfigHandler creates a new PageConfigHandler.
func NewPageConfigHandler(pageService *service.PageConfigService, oplogService *service.OperationLogService) *PageConfigHandler {
	return &PageConfigHandler{pageService: pageService, oplogService: oplogService}
}

// ListPublicPages godoc
// GET /api/v1/pages/:area
// Lists an area's enabled entries in display order.
func (h *PageConfigHandler) ListPublicPages(c *gin.Context) {
	items, err := h.pageService.GetPublicList(c.Request.Context(), c.Param("area"))
	if err != nil {
		if errors.Is(err, service.ErrUnknownArea) {
			response.Fail(c, http.StatusNotFound, response.ErrUnknownArea)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"pages": items})
}

// ListPages godoc
// GET /api/v1/admin/pages/:area
// Lists an area's full entry list, disabled entries included.
func (h *PageConfigHandler) ListPages(c *gin.Context) {
	items, err := h.pageService.GetAdminList(c.Request.Context(), c.Param("area"))
	if err != nil {
		if errors.Is(err, service.ErrUnknownArea) {
			response.Fail(c, http.StatusNotFound, response.ErrUnknownArea)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"pages": items})
}

// replacePagesBody mirrors model.ReplacePageConfigRequest with the entries
// kept raw, so their submission order can be recovered before decoding.
type replacePagesBody struct {
	Entries json.RawMessage `json:"entries" binding:"required"`
}

// ReplacePages godoc
// PUT /api/v1/admin/pages/:area
// Replaces the area's whole entry map in one transaction and returns the
// resolved list the server now holds.
func (h *PageConfigHandler) ReplacePages(c *gin.Context) {
	area := c.Param("area")

	var body replacePagesBody
	if err := c.ShouldBindJSON(&body); err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidPayload)
		return
	}

	entries, keyOrder, err := pageconfig.ParseEntries(body.Entries)
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidPayload)
		return
	}

	items, err := h.pageService.Replace(c.Request.Context(), area, entries, keyOrder)
	if err != nil {
		if errors.Is(err, service.ErrUnknownArea) {
			response.Fail(c, http.StatusNotFound, response.ErrUnknownArea)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	recordOp(c, h.oplogService, model.ActionReplace, "page_config", area, "")
	response.Success(c, http.StatusOK, gin.H{"pages": items})
}
