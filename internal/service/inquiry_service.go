package service

import (
	"context"
	"errors"

	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog"

	"github.com/pathlight/corpsite-backend/internal/captcha"
	"github.com/pathlight/corpsite-backend/internal/metrics"
	"github.com/pathlight/corpsite-backend/internal/model"
	"github.com/pathlight/corpsite-backend/internal/repository"
)

// ErrCaptchaFailed is returned when an intake submission carries no valid
// captcha proof.
var ErrCaptchaFailed = errors.New("captcha verification failed")

// InquiryService handles the captcha-gated cooperation intake.
type InquiryService struct {
	inquiryRepo *repository.InquiryRepository
	verifier    captcha.Verifier
	log         zerolog.Logger
}

// NewInquiryService creates a new InquiryService.
func NewInquiryService(inquiryRepo *repository.InquiryRepository, verifier captcha.Verifier, log zerolog.Logger) *InquiryService {
	return &InquiryService{
		inquiryRepo: inquiryRepo,
		verifier:    verifier,
		log:         log.With().Str("component", "inquiry_service").Logger(),
	}
}

// Submit verifies the captcha proof and records the inquiry. The returned
// record carries a ULID reference the submitter can quote in follow-ups.
// The submitter only ever learns pass or fail; verification detail stays in
// the server logs.
func (s *InquiryService) Submit(ctx context.Context, req *model.InquiryRequest, userIP string) (*model.Inquiry, error) {
	ok := s.verifier.Verify(ctx, captcha.Proof{
		Ticket:  req.Ticket,
		Randstr: req.Randstr,
		UserIP:  userIP,
	})
	if !ok {
		metrics.CountCaptcha("fail")
		s.log.Warn().Str("ip", userIP).Str("company", req.Company).Msg("inquiry rejected by captcha")
		return nil, ErrCaptchaFailed
	}
	metrics.CountCaptcha("pass")

	inq := &model.Inquiry{
		Reference:   ulid.Make().String(),
		Company:     req.Company,
		ContactName: req.ContactName,
		Email:       req.Email,
		Phone:       req.Phone,
		Message:     req.Message,
		Status:      model.InquiryStatusOpen,
	}
	if err := s.inquiryRepo.Create(ctx, inq); err != nil {
		return nil, err
	}
	return inq, nil
}

// List retrieves a paginated inquiry list with an optional status filter.
func (s *InquiryService) List(ctx context.Context, status model.InquiryStatus, q *model.ListQuery) ([]model.Inquiry, int, error) {
	return s.inquiryRepo.ListPaginated(ctx, status, q)
}

// Get retrieves a single inquiry.
func (s *InquiryService) Get(ctx context.Context, id int) (*model.Inquiry, error) {
	return s.inquiryRepo.GetByID(ctx, id)
}

// MarkHandled closes an inquiry, recording which admin handled it.
func (s *InquiryService) MarkHandled(ctx context.Context, id, adminID int) error {
	return s.inquiryRepo.MarkHandled(ctx, id, adminID)
}
