package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pathlight/corpsite-backend/internal/captcha"
	"github.com/pathlight/corpsite-backend/internal/response"
	"github.com/pathlight/corpsite-backend/internal/validator"
)

// CaptchaHandler exposes the captcha challenge for the local provider and a
// verification check for back-office diagnostics.
type CaptchaHandler struct {
	verifier captcha.Verifier
}

// NewCaptchaHandler creates a new CaptchaHandler.
func NewCaptchaHandler(verifier captcha.Verifier) *CaptchaHandler {
	return &CaptchaHandler{verifier: verifier}
}

// GetChallenge godoc
// GET /api/v1/captcha/challenge
// Issues a challenge image when the local provider is active. The cloud
// provider serves its own widget, so the route answers 404 there.
func (h *CaptchaHandler) GetChallenge(c *gin.Context) {
	local, ok := h.verifier.(*captcha.LocalVerifier)
	if !ok {
		response.Fail(c, http.StatusNotFound, response.ErrNotFound)
		return
	}

	id, image, err := local.Challenge()
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"id": id, "image": image})
}

// verifyRequest carries the proof tokens to check.
type verifyRequest struct {
	Ticket  string `json:"ticket" binding:"required"`
	Randstr string `json:"randstr" binding:"required"`
}

// VerifyCaptcha godoc
// POST /api/v1/admin/captcha/verify
// Runs a proof through the active provider and reports pass or fail. Meant
// for support staff chasing rejected submissions; the why stays in logs.
func (h *CaptchaHandler) VerifyCaptcha(c *gin.Context) {
	var req verifyRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	ok := h.verifier.Verify(c.Request.Context(), captcha.Proof{
		Ticket:  req.Ticket,
		Randstr: req.Randstr,
		UserIP:  c.ClientIP(),
	})

	message := "captcha verification failed"
	if ok {
		message = "captcha verified"
	}
	response.Success(c, http.StatusOK, gin.H{"success": ok, "message": message})
}
