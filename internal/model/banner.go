package model

import "time"

// Banner is a home-page hero banner.
type Banner struct {
	ID        int       `json:"id"`
	Title     string    `json:"title"`
	Subtitle  string    `json:"subtitle"`
	ImageURL  string    `json:"image_url"`
	LinkURL   string    `json:"link_url"`
	Order     int       `json:"order"`
	Enabled   bool      `json:"enabled"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BannerRequest is the payload for creating or updating a banner.
type BannerRequest struct {
	Title    string `json:"title" binding:"required"`
	Subtitle string `json:"subtitle"`
	ImageURL string `json:"image_url" binding:"required"`
	LinkURL  string `json:"link_url"`
	Order    int    `json:"order"`
	Enabled  *bool  `json:"enabled" binding:"required"`
}

// ReorderRequest carries the full id list in the desired display order.
// The server persists positions and responds with the confirmed order so
// clients render server state rather than an optimistic one.
type ReorderRequest struct {
	IDs []int `json:"ids" binding:"required,min=1"`
}
