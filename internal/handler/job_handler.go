package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"

	"github.com/pathlight/corpsite-backend/internal/model"
	"github.com/pathlight/corpsite-backend/internal/response"
	"github.com/pathlight/corpsite-backend/internal/service"
	"github.com/pathlight/corpsite-backend/internal/validator"
)

// JobHandler handles careers-page job posting management.
type JobHandler struct {
	jobService   *service.JobService
	oplogService *service.OperationLogService
}

// NewJobHandler creates a new JobHandler.
func NewJobHandler(jobService *service.JobService, oplogService *service.OperationLogService) *JobHandler {
	return &JobHandler{jobService: jobService, oplogService: oplogService}
}

// ListPublicJobs godoc
// GET /api/v1/jobs
// Lists open postings in display order.
func (h *JobHandler) ListPublicJobs(c *gin.Context) {
	jobs, err := h.jobService.ListPublic(c.Request.Context())
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"jobs": jobs})
}

// GetPublicJob godoc
// GET /api/v1/jobs/:id
// Disabled postings are not reachable here.
func (h *JobHandler) GetPublicJob(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	job, err := h.jobService.Get(c.Request.Context(), id)
	if err != nil || !job.Enabled {
		response.Fail(c, http.StatusNotFound, response.ErrNotFound)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"job": job})
}

// ListJobs godoc
// GET /api/v1/admin/jobs
func (h *JobHandler) ListJobs(c *gin.Context) {
	var q model.ListQuery
	if fields := validator.BindQuery(c, &q); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}
	q.Normalize()

	jobs, total, err := h.jobService.ListAdmin(c.Request.Context(), &q)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.SuccessWithPagination(c, http.StatusOK, gin.H{"jobs": jobs}, paginate(&q, total))
}

// GetJob godoc
// GET /api/v1/admin/jobs/:id
func (h *JobHandler) GetJob(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	job, err := h.jobService.Get(c.Request.Context(), id)
	if err != nil {
		response.Fail(c, http.StatusNotFound, response.ErrNotFound)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"job": job})
}

// CreateJob godoc
// POST /api/v1/admin/jobs
func (h *JobHandler) CreateJob(c *gin.Context) {
	var req model.JobPostingRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	job, err := h.jobService.Create(c.Request.Context(), &req)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	recordOp(c, h.oplogService, model.ActionCreate, "job", strconv.Itoa(job.ID), job.Title)
	response.Success(c, http.StatusCreated, gin.H{"job": job})
}

// UpdateJob godoc
// PUT /api/v1/admin/jobs/:id
func (h *JobHandler) UpdateJob(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	var req model.JobPostingRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	if err := h.jobService.Update(c.Request.Context(), id, &req); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	recordOp(c, h.oplogService, model.ActionUpdate, "job", strconv.Itoa(id), req.Title)

	job, _ := h.jobService.Get(c.Request.Context(), id)
	response.Success(c, http.StatusOK, gin.H{"job": job})
}

// DeleteJob godoc
// DELETE /api/v1/admin/jobs/:id
func (h *JobHandler) DeleteJob(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	if err := h.jobService.Delete(c.Request.Context(), id); err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	recordOp(c, h.oplogService, model.ActionDelete, "job", strconv.Itoa(id), "")
	response.Success(c, http.StatusOK, gin.H{"message": "job deleted"})
}

// ReorderJobs godoc
// PUT /api/v1/admin/jobs/reorder
// Persists the submitted display order and returns the confirmed list.
func (h *JobHandler) ReorderJobs(c *gin.Context) {
	var req model.ReorderRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	jobs, err := h.jobService.Reorder(c.Request.Context(), req.IDs)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	recordOp(c, h.oplogService, model.ActionReorder, "job", "", "")
	response.Success(c, http.StatusOK, gin.H{"jobs": jobs})
}
