package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"

	"github.com/pathlight/corpsite-backend/internal/model"
	"github.com/pathlight/corpsite-backend/internal/response"
	"github.com/pathlight/corpsite-backend/internal/service"
	"github.com/pathlight/corpsite-backend/internal/validator"
)

// BannerHandler handles home-page banner management and the public banner
// list.
type BannerHandler struct {
	bannerService *service.BannerService
	oplogService  *service.OperationLogService
}

// NewBannerHandler creates a new BannerHandler.
func NewBannerHandler(bannerService *service.BannerService, oplogService *service.OperationLogService) *BannerHandler {
	return &BannerHandler{bannerService: bannerService, oplogService: oplogService}
}

// ListPublicBanners godoc
// GET /api/v1/banners
// Lists enabled banners in display order.
func (h *BannerHandler) ListPublicBanners(c *gin.Context) {
	banners, err := h.bannerService.ListPublic(c.Request.Context())
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"banners": banners})
}

// ListBanners godoc
// GET /api/v1/admin/banners
// Lists all banners, enabled or not, in display order.
func (h *BannerHandler) ListBanners(c *gin.Context) {
	banners, err := h.bannerService.ListAdmin(c.Request.Context())
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"banners": banners})
}

// CreateBanner godoc
// POST /api/v1/admin/banners
func (h *BannerHandler) CreateBanner(c *gin.Context) {
	var req model.BannerRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	banner, err := h.bannerService.Create(c.Request.Context(), &req)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	recordOp(c, h.oplogService, model.ActionCreate, "banner", strconv.Itoa(banner.ID), banner.Title)
	response.Success(c, http.StatusCreated, gin.H{"banner": banner})
}

// UpdateBanner godoc
// PUT /api/v1/admin/banners/:id
func (h *BannerHandler) UpdateBanner(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	var req model.BannerRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	if err := h.bannerService.Update(c.Request.Context(), id, &req); err != nil {
		if err == pgx.ErrNoRows {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	recordOp(c, h.oplogService, model.ActionUpdate, "banner", strconv.Itoa(id), req.Title)

	banner, _ := h.bannerService.Get(c.Request.Context(), id)
	response.Success(c, http.StatusOK, gin.H{"banner": banner})
}

// DeleteBanner godoc
// DELETE /api/v1/admin/banners/:id
func (h *BannerHandler) DeleteBanner(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	if err := h.bannerService.Delete(c.Request.Context(), id); err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	recordOp(c, h.oplogService, model.ActionDelete, "banner", strconv.Itoa(id), "")
	response.Success(c, http.StatusOK, gin.H{"message": "banner deleted"})
}

// ReorderBanners godoc
// PUT /api/v1/admin/banners/reorder
// Persists the submitted display order and returns the confirmed list.
func (h *BannerHandler) ReorderBanners(c *gin.Context) {
	var req model.ReorderRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	banners, err := h.bannerService.Reorder(c.Request.Context(), req.IDs)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	recordOp(c, h.oplogService, model.ActionReorder, "banner", "", "")
	response.Success(c, http.StatusOK, gin.H{"banners": banners})
}
