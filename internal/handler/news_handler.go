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

// NewsHandler handles news article management and the public news pages.
type NewsHandler struct {
	newsService  *service.NewsService
	oplogService *service.OperationLogService
}

// NewNewsHandler creates a new NewsHandler.
func NewNewsHandler(newsService *service.NewsService, oplogService *service.OperationLogService) *NewsHandler {
	return &NewsHandler{newsService: newsService, oplogService: oplogService}
}

// ListPublicNews godoc
// GET /api/v1/news
func (h *NewsHandler) ListPublicNews(c *gin.Context) {
	var q model.ListQuery
	if fields := validator.BindQuery(c, &q); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}
	q.Normalize()

	items, total, err := h.newsService.ListPublic(c.Request.Context(), q.Limit, q.Offset())
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.SuccessWithPagination(c, http.StatusOK, gin.H{"articles": items}, paginate(&q, total))
}

// GetPublicNews godoc
// GET /api/v1/news/:slug
func (h *NewsHandler) GetPublicNews(c *gin.Context) {
	article, err := h.newsService.GetPublicBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		response.Fail(c, http.StatusNotFound, response.ErrNotFound)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"article": article})
}

// ListNews godoc
// GET /api/v1/admin/news?status=DRAFT|PUBLISHED
func (h *NewsHandler) ListNews(c *gin.Context) {
	var q model.ListQuery
	if fields := validator.BindQuery(c, &q); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}
	q.Normalize()

	status := model.NewsStatus(c.Query("status"))
	if status != "" && status != model.NewsStatusDraft && status != model.NewsStatusPublished {
		response.Fail(c, http.StatusBadRequest, response.ErrValidation)
		return
	}

	items, total, err := h.newsService.ListAdmin(c.Request.Context(), &q, status)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.SuccessWithPagination(c, http.StatusOK, gin.H{"articles": items}, paginate(&q, total))
}

// GetNews godoc
// GET /api/v1/admin/news/:id
func (h *NewsHandler) GetNews(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	article, err := h.newsService.Get(c.Request.Context(), id)
	if err != nil {
		response.Fail(c, http.StatusNotFound, response.ErrNotFound)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"article": article})
}

// CreateNews godoc
// POST /api/v1/admin/news
// New articles start as drafts.
func (h *NewsHandler) CreateNews(c *gin.Context) {
	var req model.NewsRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	article, err := h.newsService.Create(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateSlug) {
			response.Fail(c, http.StatusConflict, response.ErrSlugTaken)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	recordOp(c, h.oplogService, model.ActionCreate, "news", strconv.Itoa(article.ID), article.Title)
	response.Success(c, http.StatusCreated, gin.H{"article": article})
}

// UpdateNews godoc
// PUT /api/v1/admin/news/:id
func (h *NewsHandler) UpdateNews(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	var req model.NewsRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	if err := h.newsService.Update(c.Request.Context(), id, &req); err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicateSlug):
			response.Fail(c, http.StatusConflict, response.ErrSlugTaken)
		case errors.Is(err, pgx.ErrNoRows):
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
		default:
			response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		}
		return
	}

	recordOp(c, h.oplogService, model.ActionUpdate, "news", strconv.Itoa(id), req.Title)

	article, _ := h.newsService.Get(c.Request.Context(), id)
	response.Success(c, http.StatusOK, gin.H{"article": article})
}

// PublishNews godoc
// POST /api/v1/admin/news/:id/publish
func (h *NewsHandler) PublishNews(c *gin.Context) {
	h.setStatus(c, true)
}

// UnpublishNews godoc
// POST /api/v1/admin/news/:id/unpublish
func (h *NewsHandler) UnpublishNews(c *gin.Context) {
	h.setStatus(c, false)
}

func (h *NewsHandler) setStatus(c *gin.Context, publish bool) {
	id, ok := paramID(c)
	if !ok {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	var err error
	if publish {
		err = h.newsService.Publish(c.Request.Context(), id)
	} else {
		err = h.newsService.Unpublish(c.Request.Context(), id)
	}
	if err != nil {
		switch {
		case errors.Is(err, service.ErrAlreadyPublished):
			response.Fail(c, http.StatusConflict, response.ErrAlreadyPublished)
		case errors.Is(err, service.ErrNotPublished):
			response.Fail(c, http.StatusConflict, response.ErrNotPublished)
		case errors.Is(err, pgx.ErrNoRows):
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
		default:
			response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		}
		return
	}

	action := model.ActionPublish
	if !publish {
		action = model.ActionUnpublish
	}
	recordOp(c, h.oplogService, action, "news", strconv.Itoa(id), "")

	article, _ := h.newsService.Get(c.Request.Context(), id)
	response.Success(c, http.StatusOK, gin.H{"article": article})
}

// DeleteNews godoc
// DELETE /api/v1/admin/news/:id
func (h *NewsHandler) DeleteNews(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	if err := h.newsService.Delete(c.Request.Context(), id); err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	recordOp(c, h.oplogService, model.ActionDelete, "news", strconv.Itoa(id), "")
	response.Success(c, http.StatusOK, gin.H{"message": "article deleted"})
}
