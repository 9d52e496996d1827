package model

import "time"

// InquiryStatus is the handling state of a cooperation inquiry.
type InquiryStatus string

const (
	InquiryStatusOpen    InquiryStatus = "OPEN"
	InquiryStatusHandled InquiryStatus = "HANDLED"
)

// Inquiry is a captcha-gated cooperation/customer intake submission.
// Reference is a ULID handed back to the submitter for follow-up.
type Inquiry struct {
	ID          int           `json:"id"`
	Reference   string        `json:"reference"`
	Company     string        `json:"company"`
	ContactName string        `json:"contact_name"`
	Email       string        `json:"email"`
	Phone       string        `json:"phone"`
	Message     string        `json:"message"`
	Status      InquiryStatus `json:"status"`
	HandledBy   *int          `json:"handled_by"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

// InquiryRequest is the public submission payload. Ticket and Randstr are
// the opaque proof tokens issued by the captcha widget.
type InquiryRequest struct {
	Company     string `json:"company" binding:"required"`
	ContactName string `json:"contact_name" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	Phone       string `json:"phone"`
	Message     string `json:"message" binding:"required"`
	Ticket      string `json:"ticket" binding:"required"`
	Randstr     string `json:"randstr" binding:"required"`
}
