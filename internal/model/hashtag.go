package model

import "time"

// Hashtag labels case studies and news articles. UsageCount tracks how many
// content items currently reference it; a tag in use cannot be deleted.
type Hashtag struct {
	ID         int       `json:"id"`
	Name       string    `json:"name"`
	UsageCount int       `json:"usage_count"`
	Enabled    bool      `json:"enabled"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// HashtagRequest is the payload for creating or updating a hashtag.
type HashtagRequest struct {
	Name    string `json:"name" binding:"required"`
	Enabled *bool  `json:"enabled" binding:"required"`
}
