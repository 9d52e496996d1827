package handler

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/pathlight/corpsite-backend/internal/model"
	"github.com/pathlight/corpsite-backend/internal/response"
	"github.com/pathlight/corpsite-backend/internal/service"
	"github.com/pathlight/corpsite-backend/internal/validator"
)

// ApplicationHandler handles candidate submissions, resume downloads and
// the CSV export.
type ApplicationHandler struct {
	appService   *service.ApplicationService
	oplogService *service.OperationLogService
}

// NewApplicationHandler creates a new ApplicationHandler.
func NewApplicationHandler(appService *service.ApplicationService, oplogService *service.OperationLogService) *ApplicationHandler {
	return &ApplicationHandler{appService: appService, oplogService: oplogService}
}

// applyForm is the multipart form accompanying the resume file.
type applyForm struct {
	Name    string `form:"name" binding:"required"`
	Email   string `form:"email" binding:"required,email"`
	Phone   string `form:"phone"`
	Message string `form:"message"`
}

// SubmitApplication godoc
// POST /api/v1/jobs/:id/apply
// Accepts a multipart form with candidate details and a resume file.
func (h *ApplicationHandler) SubmitApplication(c *gin.Context) {
	jobID, ok := paramID(c)
	if !ok {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	var form applyForm
	if err := c.ShouldBind(&form); err != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, validator.TranslateErrors(err))
		return
	}

	file, header, err := c.Request.FormFile("resume")
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrFileRequired)
		return
	}
	defer file.Close()

	app, err := h.appService.Submit(c.Request.Context(), jobID, form.Name, form.Email, form.Phone, form.Message, file, header)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrJobNotOpen):
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
		case errors.Is(err, service.ErrUnsupportedFileType):
			response.Fail(c, http.StatusBadRequest, response.ErrUnsupportedFile)
		case errors.Is(err, service.ErrFileTooLarge):
			response.Fail(c, http.StatusRequestEntityTooLarge, response.ErrFileTooLarge)
		default:
			response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		}
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"application": app})
}

// ListApplications godoc
// GET /api/v1/admin/applications?job_id=N
func (h *ApplicationHandler) ListApplications(c *gin.Context) {
	var q model.ListQuery
	if fields := validator.BindQuery(c, &q); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}
	q.Normalize()

	var jobID *int
	if raw := c.Query("job_id"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil || id < 1 {
			response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
			return
		}
		jobID = &id
	}

	apps, total, err := h.appService.List(c.Request.Context(), jobID, &q)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.SuccessWithPagination(c, http.StatusOK, gin.H{"applications": apps}, paginate(&q, total))
}

// GetApplication godoc
// GET /api/v1/admin/applications/:id
func (h *ApplicationHandler) GetApplication(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	app, err := h.appService.Get(c.Request.Context(), id)
	if err != nil {
		response.Fail(c, http.StatusNotFound, response.ErrNotFound)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"application": app})
}

// DownloadResume godoc
// GET /api/v1/admin/applications/:id/resume
// Streams the stored resume under its original filename. filename* carries
// the RFC 5987 encoding for non-ASCII names.
func (h *ApplicationHandler) DownloadResume(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	f, name, err := h.appService.OpenResume(c.Request.Context(), id)
	if err != nil {
		response.Fail(c, http.StatusNotFound, response.ErrNotFound)
		return
	}
	defer f.Close()

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"; filename*=UTF-8''%s`,
		sanitizeFilename(name), url.PathEscape(name)))
	c.Header("Content-Type", "application/octet-stream")
	c.Status(http.StatusOK)
	io.Copy(c.Writer, f)
}

// ExportApplications godoc
// GET /api/v1/admin/applications/export
// Streams every application as a CSV download.
func (h *ApplicationHandler) ExportApplications(c *gin.Context) {
	filename := "applications-" + time.Now().Format("20060102-150405") + ".csv"
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Status(http.StatusOK)

	if err := h.appService.ExportCSV(c.Request.Context(), c.Writer); err != nil {
		// Headers are already gone; nothing to do but log through gin's
		// error list.
		c.Error(err) //nolint:errcheck
		return
	}

	recordOp(c, h.oplogService, model.ActionExport, "application", "", filename)
}

// sanitizeFilename strips characters that would break the quoted
// Content-Disposition filename parameter.
func sanitizeFilename(name string) string {
	out := make([]rune, 0, len(name))
	for _, r := range name {
		if r == '"' || r == '\\' || r < 0x20 {
			continue
		}
		if r > 0x7e {
			// Non-ASCII goes in filename* only.
			out = append(out, '_')
			continue
		}
		out = append(out, r)
	}
	return string(out)
}
