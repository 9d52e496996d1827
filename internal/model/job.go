package model

import "time"

// JobPosting is a recruitment listing on the careers page.
type JobPosting struct {
	ID             int       `json:"id"`
	Title          string    `json:"title"`
	Department     string    `json:"department"`
	Location       string    `json:"location"`
	EmploymentType string    `json:"employment_type"`
	Description    string    `json:"description"`
	Requirements   string    `json:"requirements"`
	Order          int       `json:"order"`
	Enabled        bool      `json:"enabled"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// JobPostingRequest is the payload for creating or updating a job posting.
type JobPostingRequest struct {
	Title          string `json:"title" binding:"required"`
	Department     string `json:"department" binding:"required"`
	Location       string `json:"location" binding:"required"`
	EmploymentType string `json:"employment_type" binding:"required,oneof=FULL_TIME PART_TIME CONTRACT INTERN"`
	Description    string `json:"description" binding:"required"`
	Requirements   string `json:"requirements"`
	Order          int    `json:"order"`
	Enabled        *bool  `json:"enabled" binding:"required"`
}
