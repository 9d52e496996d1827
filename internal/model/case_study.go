package model

import "time"

// CaseStudy is a client success story shown on the marketing site.
type CaseStudy struct {
	ID          int        `json:"id"`
	Title       string     `json:"title"`
	Slug        string     `json:"slug"`
	Client      string     `json:"client"`
	Industry    string     `json:"industry"`
	Summary     string     `json:"summary"`
	Body        string     `json:"body"`
	CoverURL    string     `json:"cover_url"`
	Hashtags    []string   `json:"hashtags"`
	Published   bool       `json:"published"`
	PublishedAt *time.Time `json:"published_at"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// CaseStudyRequest is the payload for creating or updating a case study.
type CaseStudyRequest struct {
	Title    string   `json:"title" binding:"required"`
	Slug     string   `json:"slug" binding:"required"`
	Client   string   `json:"client" binding:"required"`
	Industry string   `json:"industry"`
	Summary  string   `json:"summary"`
	Body     string   `json:"body" binding:"required"`
	CoverURL string   `json:"cover_url"`
	Hashtags []string `json:"hashtags"`
}
