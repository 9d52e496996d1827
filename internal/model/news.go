package model

import "time"

// NewsStatus is the publication state of a news article.
type NewsStatus string

const (
	NewsStatusDraft     NewsStatus = "DRAFT"
	NewsStatusPublished NewsStatus = "PUBLISHED"
)

// NewsArticle is a latest-news item on the marketing site.
type NewsArticle struct {
	ID          int        `json:"id"`
	Title       string     `json:"title"`
	Slug        string     `json:"slug"`
	Excerpt     string     `json:"excerpt"`
	Body        string     `json:"body"`
	CoverURL    string     `json:"cover_url"`
	Hashtags    []string   `json:"hashtags"`
	Status      NewsStatus `json:"status"`
	PublishedAt *time.Time `json:"published_at"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// NewsRequest is the payload for creating or updating a news article.
type NewsRequest struct {
	Title    string   `json:"title" binding:"required"`
	Slug     string   `json:"slug" binding:"required"`
	Excerpt  string   `json:"excerpt"`
	Body     string   `json:"body" binding:"required"`
	CoverURL string   `json:"cover_url"`
	Hashtags []string `json:"hashtags"`
}
