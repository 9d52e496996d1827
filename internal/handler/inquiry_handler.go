package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/pathlight/corpsite-backend/internal/middleware"
	"github.com/pathlight/corpsite-backend/internal/model"
	"github.com/pathlight/corpsite-backend/internal/response"
	"github.com/pathlight/corpsite-backend/internal/service"
	"github.com/pathlight/corpsite-backend/internal/validator"
)

// InquiryHandler handles the public cooperation intake and its back-office
// review flow.
type InquiryHandler struct {
	inquiryService *service.InquiryService
	oplogService   *service.OperationLogService
}

// NewInquiryHandler creates a new InquiryHandler.
func NewInquiryHandler(inquiryService *service.InquiryService, oplogService *service.OperationLogService) *InquiryHandler {
	return &InquiryHandler{inquiryService: inquiryService, oplogService: oplogService}
}

// SubmitInquiry godoc
// POST /api/v1/inquiries
// Captcha-gated. The response carries only the reference code; rejection
// detail never leaves the server.
func (h *InquiryHandler) SubmitInquiry(c *gin.Context) {
	var req model.InquiryRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	inq, err := h.inquiryService.Submit(c.Request.Context(), &req, c.ClientIP())
	if err != nil {
		if errors.Is(err, service.ErrCaptchaFailed) {
			response.Fail(c, http.StatusForbidden, response.ErrCaptchaFailed)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"reference": inq.Reference})
}

// ListInquiries godoc
// GET /api/v1/admin/inquiries?status=OPEN|HANDLED
func (h *InquiryHandler) ListInquiries(c *gin.Context) {
	var q model.ListQuery
	if fields := validator.BindQuery(c, &q); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}
	q.Normalize()

	status := model.InquiryStatus(c.Query("status"))
	if status != "" && status != model.InquiryStatusOpen && status != model.InquiryStatusHandled {
		response.Fail(c, http.StatusBadRequest, response.ErrValidation)
		return
	}

	items, total, err := h.inquiryService.List(c.Request.Context(), status, &q)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.SuccessWithPagination(c, http.StatusOK, gin.H{"inquiries": items}, paginate(&q, total))
}

// GetInquiry godoc
// GET /api/v1/admin/inquiries/:id
func (h *InquiryHandler) GetInquiry(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	inq, err := h.inquiryService.Get(c.Request.Context(), id)
	if err != nil {
		response.Fail(c, http.StatusNotFound, response.ErrNotFound)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"inquiry": inq})
}

// HandleInquiry godoc
// POST /api/v1/admin/inquiries/:id/handle
// Marks the inquiry handled by the acting admin.
func (h *InquiryHandler) HandleInquiry(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	claims := middleware.GetClaims(c)
	if claims == nil {
		response.Fail(c, http.StatusUnauthorized, response.ErrTokenRequired)
		return
	}

	if err := h.inquiryService.MarkHandled(c.Request.Context(), id, claims.AdminID); err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	recordOp(c, h.oplogService, model.ActionUpdate, "inquiry", strconv.Itoa(id), "handled")

	inq, _ := h.inquiryService.Get(c.Request.Context(), id)
	response.Success(c, http.StatusOK, gin.H{"inquiry": inq})
}
