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

// HashtagHandler handles content hashtag management.
type HashtagHandler struct {
	hashtagService *service.HashtagService
	oplogService   *service.OperationLogService
}

// NewHashtagHandler creates a new HashtagHandler.
func NewHashtagHandler(hashtagService *service.HashtagService, oplogService *service.OperationLogService) *HashtagHandler {
	return &HashtagHandler{hashtagService: hashtagService, oplogService: oplogService}
}

// ListHashtags godoc
// GET /api/v1/admin/hashtags
// Lists hashtags with their usage counts.
func (h *HashtagHandler) ListHashtags(c *gin.Context) {
	var q model.ListQuery
	if fields := validator.BindQuery(c, &q); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}
	q.Normalize()

	items, total, err := h.hashtagService.List(c.Request.Context(), &q)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.SuccessWithPagination(c, http.StatusOK, gin.H{"hashtags": items}, paginate(&q, total))
}

// CreateHashtag godoc
// POST /api/v1/admin/hashtags
func (h *HashtagHandler) CreateHashtag(c *gin.Context) {
	var req model.HashtagRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	tag, err := h.hashtagService.Create(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateHashtag) {
			response.Fail(c, http.StatusConflict, response.ErrConflict)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	recordOp(c, h.oplogService, model.ActionCreate, "hashtag", strconv.Itoa(tag.ID), tag.Name)
	response.Success(c, http.StatusCreated, gin.H{"hashtag": tag})
}

// UpdateHashtag godoc
// PUT /api/v1/admin/hashtags/:id
func (h *HashtagHandler) UpdateHashtag(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	var req model.HashtagRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	if err := h.hashtagService.Update(c.Request.Context(), id, &req); err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicateHashtag):
			response.Fail(c, http.StatusConflict, response.ErrConflict)
		case errors.Is(err, pgx.ErrNoRows):
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
		default:
			response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		}
		return
	}

	recordOp(c, h.oplogService, model.ActionUpdate, "hashtag", strconv.Itoa(id), req.Name)

	tag, _ := h.hashtagService.Get(c.Request.Context(), id)
	response.Success(c, http.StatusOK, gin.H{"hashtag": tag})
}

// DeleteHashtag godoc
// DELETE /api/v1/admin/hashtags/:id
// A hashtag still referenced by content is refused with 409.
func (h *HashtagHandler) DeleteHashtag(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	if err := h.hashtagService.Delete(c.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, repository.ErrHashtagInUse):
			response.Fail(c, http.StatusConflict, response.ErrDependencyExists)
		case errors.Is(err, pgx.ErrNoRows):
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
		default:
			response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		}
		return
	}

	recordOp(c, h.oplogService, model.ActionDelete, "hashtag", strconv.Itoa(id), "")
	response.Success(c, http.StatusOK, gin.H{"message": "hashtag deleted"})
}
