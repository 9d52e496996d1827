package model

import "time"

// JobApplication is a candidate submission against a job posting.
// ResumePath is the storage location; ResumeName the original filename
// offered back on download.
type JobApplication struct {
	ID         int       `json:"id"`
	JobID      int       `json:"job_id"`
	JobTitle   string    `json:"job_title,omitempty"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Phone      string    `json:"phone"`
	Message    string    `json:"message"`
	ResumePath string    `json:"-"`
	ResumeName string    `json:"resume_name"`
	CreatedAt  time.Time `json:"created_at"`
}
