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

// CaseStudyHandler handles client success story management and the public
// case study pages.
type CaseStudyHandler struct {
	caseService  *service.CaseStudyService
	oplogService *service.OperationLogService
}

// NewCaseStudyHandler creates a new CaseStudyHandler.
func NewCaseStudyHandler(caseService *service.CaseStudyService, oplogService *service.OperationLogService) *CaseStudyHandler {
	return &CaseStudyHandler{caseService: caseService, oplogService: oplogService}
}

// ListPublicCaseStudies godoc
// GET /api/v1/case-studies
func (h *CaseStudyHandler) ListPublicCaseStudies(c *gin.Context) {
	var q model.ListQuery
	if fields := validator.BindQuery(c, &q); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}
	q.Normalize()

	items, total, err := h.caseService.ListPublic(c.Request.Context(), q.Limit, q.Offset())
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.SuccessWithPagination(c, http.StatusOK, gin.H{"case_studies": items}, paginate(&q, total))
}

// GetPublicCaseStudy godoc
// GET /api/v1/case-studies/:slug
// Drafts are not reachable here.
func (h *CaseStudyHandler) GetPublicCaseStudy(c *gin.Context) {
	cs, err := h.caseService.GetPublicBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		response.Fail(c, http.StatusNotFound, response.ErrNotFound)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"case_study": cs})
}

// ListCaseStudies godoc
// GET /api/v1/admin/case-studies
func (h *CaseStudyHandler) ListCaseStudies(c *gin.Context) {
	var q model.ListQuery
	if fields := validator.BindQuery(c, &q); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}
	q.Normalize()

	items, total, err := h.caseService.ListAdmin(c.Request.Context(), &q)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.SuccessWithPagination(c, http.StatusOK, gin.H{"case_studies": items}, paginate(&q, total))
}

// GetCaseStudy godoc
// GET /api/v1/admin/case-studies/:id
func (h *CaseStudyHandler) GetCaseStudy(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	cs, err := h.caseService.Get(c.Request.Context(), id)
	if err != nil {
		response.Fail(c, http.StatusNotFound, response.ErrNotFound)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"case_study": cs})
}

// CreateCaseStudy godoc
// POST /api/v1/admin/case-studies
func (h *CaseStudyHandler) CreateCaseStudy(c *gin.Context) {
	var req model.CaseStudyRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	cs, err := h.caseService.Create(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateSlug) {
			response.Fail(c, http.StatusConflict, response.ErrSlugTaken)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	recordOp(c, h.oplogService, model.ActionCreate, "case_study", strconv.Itoa(cs.ID), cs.Title)
	response.Success(c, http.StatusCreated, gin.H{"case_study": cs})
}

// UpdateCaseStudy godoc
// PUT /api/v1/admin/case-studies/:id
func (h *CaseStudyHandler) UpdateCaseStudy(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	var req model.CaseStudyRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	if err := h.caseService.Update(c.Request.Context(), id, &req); err != nil {
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

	recordOp(c, h.oplogService, model.ActionUpdate, "case_study", strconv.Itoa(id), req.Title)

	cs, _ := h.caseService.Get(c.Request.Context(), id)
	response.Success(c, http.StatusOK, gin.H{"case_study": cs})
}

// PublishCaseStudy godoc
// POST /api/v1/admin/case-studies/:id/publish
func (h *CaseStudyHandler) PublishCaseStudy(c *gin.Context) {
	h.setPublication(c, true)
}

// UnpublishCaseStudy godoc
// POST /api/v1/admin/case-studies/:id/unpublish
func (h *CaseStudyHandler) UnpublishCaseStudy(c *gin.Context) {
	h.setPublication(c, false)
}

func (h *CaseStudyHandler) setPublication(c *gin.Context, publish bool) {
	id, ok := paramID(c)
	if !ok {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	var err error
	if publish {
		err = h.caseService.Publish(c.Request.Context(), id)
	} else {
		err = h.caseService.Unpublish(c.Request.Context(), id)
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
	recordOp(c, h.oplogService, action, "case_study", strconv.Itoa(id), "")

	cs, _ := h.caseService.Get(c.Request.Context(), id)
	response.Success(c, http.StatusOK, gin.H{"case_study": cs})
}

// DeleteCaseStudy godoc
// DELETE /api/v1/admin/case-studies/:id
func (h *CaseStudyHandler) DeleteCaseStudy(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	if err := h.caseService.Delete(c.Request.Context(), id); err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	recordOp(c, h.oplogService, model.ActionDelete, "case_study", strconv.Itoa(id), "")
	response.Success(c, http.StatusOK, gin.H{"message": "case study deleted"})
}
