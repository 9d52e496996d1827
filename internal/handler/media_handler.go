package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pathlight/corpsite-backend/internal/model"
	"github.com/pathlight/corpsite-backend/internal/response"
	"github.com/pathlight/corpsite-backend/internal/service"
)

// MediaHandler handles back-office image uploads.
type MediaHandler struct {
	mediaService *service.MediaService
	oplogService *service.OperationLogService
}

// NewMediaHandler creates a new MediaHandler.
func NewMediaHandler(mediaService *service.MediaService, oplogService *service.OperationLogService) *MediaHandler {
	return &MediaHandler{mediaService: mediaService, oplogService: oplogService}
}

// UploadImage godoc
// POST /api/v1/admin/media/upload
// Accepts one image under the "file" field and returns its public URL.
func (h *MediaHandler) UploadImage(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrFileRequired)
		return
	}
	defer file.Close()

	url, err := h.mediaService.SaveImage(file, header)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUnsupportedFileType):
			response.Fail(c, http.StatusBadRequest, response.ErrUnsupportedFile)
		case errors.Is(err, service.ErrFileTooLarge):
			response.Fail(c, http.StatusRequestEntityTooLarge, response.ErrFileTooLarge)
		default:
			response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		}
		return
	}

	recordOp(c, h.oplogService, model.ActionCreate, "media", "", url)
	response.Success(c, http.StatusCreated, gin.H{"url": url})
}
