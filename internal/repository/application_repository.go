package repository

import (
	"context"
	"strconv"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pathlight/corpsite-backend/internal/model"
)

// ApplicationRepository handles job application data access.
type ApplicationRepository struct {
	pool *pgxpool.Pool
}

// NewApplicationRepository creates a new ApplicationRepository.
func NewApplicationRepository(pool *pgxpool.Pool) *ApplicationRepository {
	return &ApplicationRepository{pool: pool}
}

// Create inserts an application.
func (r *ApplicationRepository) Create(ctx context.Context, a *model.JobApplication) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO job_applications (job_id, name, email, phone, message, resume_path, resume_name)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id, created_at`,
		a.JobID, a.Name, a.Email, a.Phone, a.Message, a.ResumePath, a.ResumeName,
	).Scan(&a.ID, &a.CreatedAt)
}

// GetByID retrieves a single application with its posting title.
func (r *ApplicationRepository) GetByID(ctx context.Context, id int) (*model.JobApplication, error) {
	a := &model.JobApplication{}
	err := r.pool.QueryRow(ctx,
		`SELECT a.id, a.job_id, j.title, a.name, a.email, a.phone, a.message, a.resume_path, a.resume_name, a.created_at
		 FROM job_applications a
		 JOIN job_postings j ON j.id = a.job_id
		 WHERE a.id = $1`, id,
	).Scan(&a.ID, &a.JobID, &a.JobTitle, &a.Name, &a.Email, &a.Phone, &a.Message,
		&a.ResumePath, &a.ResumeName, &a.CreatedAt)
	if err != nil {
		return nil, err
	}
	return a, nil
}

// ListPaginated retrieves applications, optionally scoped to one posting
// and searched by candidate name or email.
func (r *ApplicationRepository) ListPaginated(ctx context.Context, jobID *int, q *model.ListQuery) ([]model.JobApplication, int, error) {
	countQuery := `SELECT COUNT(*) FROM job_applications a`
	query := `SELECT a.id, a.job_id, j.title, a.name, a.email, a.phone, a.message, a.resume_path, a.resume_name, a.created_at
	          FROM job_applications a
	          JOIN job_postings j ON j.id = a.job_id`

	var args []interface{}
	var where []string
	argIdx := 1

	if jobID != nil {
		where = append(where, `a.job_id = $`+strconv.Itoa(argIdx))
		args = append(args, *jobID)
		argIdx++
	}
	if q.Search != "" {
		where = append(where, `(a.name ILIKE $`+strconv.Itoa(argIdx)+` OR a.email ILIKE $`+strconv.Itoa(argIdx)+`)`)
		args = append(args, "%"+q.Search+"%")
		argIdx++
	}

	clause := ""
	for i, w := range where {
		if i == 0 {
			clause = ` WHERE ` + w
		} else {
			clause += ` AND ` + w
		}
	}

	var total int
	if err := r.pool.QueryRow(ctx, countQuery+clause, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query += clause + ` ORDER BY a.created_at ` + sortDirection(q.SortOrder)
	query += ` LIMIT $` + strconv.Itoa(argIdx) + ` OFFSET $` + strconv.Itoa(argIdx+1)
	args = append(args, q.Limit, q.Offset())

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var items []model.JobApplication
	for rows.Next() {
		var a model.JobApplication
		if err := rows.Scan(&a.ID, &a.JobID, &a.JobTitle, &a.Name, &a.Email, &a.Phone, &a.Message,
			&a.ResumePath, &a.ResumeName, &a.CreatedAt); err != nil {
			return nil, 0, err
		}
		items = append(items, a)
	}
	return items, total, rows.Err()
}

// ListAll retrieves every application for CSV export, newest first.
func (r *ApplicationRepository) ListAll(ctx context.Context) ([]model.JobApplication, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT a.id, a.job_id, j.title, a.name, a.email, a.phone, a.message, a.resume_path, a.resume_name, a.created_at
		 FROM job_applications a
		 JOIN job_postings j ON j.id = a.job_id
		 ORDER BY a.created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []model.JobApplication
	for rows.Next() {
		var a model.JobApplication
		if err := rows.Scan(&a.ID, &a.JobID, &a.JobTitle, &a.Name, &a.Email, &a.Phone, &a.Message,
			&a.ResumePath, &a.ResumeName, &a.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, a)
	}
	return items, rows.Err()
}
