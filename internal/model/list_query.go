package model

// ListQuery is the shared query-string shape of paginated admin lists.
type ListQuery struct {
	Page      int    `form:"page"`
	Limit     int    `form:"limit"`
	Search    string `form:"search"`
	SortBy    string `form:"sort_by"`
	SortOrder string `form:"sort_order" binding:"omitempty,oneof=asc desc"`
}

// Normalize clamps pagination values into sane bounds.
func (q *ListQuery) Normalize() {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Limit < 1 {
		q.Limit = 20
	}
	if q.Limit > 100 {
		q.Limit = 100
	}
	if q.SortOrder == "" {
		q.SortOrder = "desc"
	}
}

// Offset returns the SQL offset for the current page.
func (q *ListQuery) Offset() int {
	return (q.Page - 1) * q.Limit
}
