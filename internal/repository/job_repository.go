package repository

import (
	"context"
	"strconv"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pathlight/corpsite-backend/internal/model"
)

// JobRepository handles recruitment posting data access.
type JobRepository struct {
	pool *pgxpool.Pool
}

// NewJobRepository creates a new JobRepository.
func NewJobRepository(pool *pgxpool.Pool) *JobRepository {
	return &JobRepository{pool: pool}
}

const jobColumns = `id, title, department, location, employment_type, description, requirements, ord, enabled, created_at, updated_at`

func scanJob(row interface{ Scan(...any) error }) (*model.JobPosting, error) {
	j := &model.JobPosting{}
	err := row.Scan(&j.ID, &j.Title, &j.Department, &j.Location, &j.EmploymentType,
		&j.Description, &j.Requirements, &j.Order, &j.Enabled, &j.CreatedAt, &j.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return j, nil
}

// ListPaginated retrieves postings for the back office with optional
// title/department search.
func (r *JobRepository) ListPaginated(ctx context.Context, q *model.ListQuery) ([]*model.JobPosting, int, error) {
	countQuery := `SELECT COUNT(*) FROM job_postings`
	query := `SELECT ` + jobColumns + ` FROM job_postings`

	var args []interface{}
	argIdx := 1
	if q.Search != "" {
		countQuery += ` WHERE title ILIKE $1 OR department ILIKE $1`
		query += ` WHERE title ILIKE $1 OR department ILIKE $1`
		args = append(args, "%"+q.Search+"%")
		argIdx++
	}

	var total int
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query += ` ORDER BY ord ASC, id ASC LIMIT $` + strconv.Itoa(argIdx) + ` OFFSET $` + strconv.Itoa(argIdx+1)
	args = append(args, q.Limit, q.Offset())

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var jobs []*model.JobPosting
	for rows.Next() {
		j, err := scanJob(rows)
		if err != nil {
			return nil, 0, err
		}
		jobs = append(jobs, j)
	}
	return jobs, total, rows.Err()
}

// GetAll retrieves every posting in display order.
func (r *JobRepository) GetAll(ctx context.Context) ([]*model.JobPosting, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+jobColumns+` FROM job_postings ORDER BY ord ASC, id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var jobs []*model.JobPosting
	for rows.Next() {
		j, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, j)
	}
	return jobs, rows.Err()
}

// GetEnabled retrieves open postings for the careers page, sorted by order.
func (r *JobRepository) GetEnabled(ctx context.Context) ([]*model.JobPosting, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+jobColumns+` FROM job_postings WHERE enabled ORDER BY ord ASC, id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var jobs []*model.JobPosting
	for rows.Next() {
		j, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, j)
	}
	return jobs, rows.Err()
}

// GetByID retrieves a single posting.
func (r *JobRepository) GetByID(ctx context.Context, id int) (*model.JobPosting, error) {
	return scanJob(r.pool.QueryRow(ctx, `SELECT `+jobColumns+` FROM job_postings WHERE id = $1`, id))
}

// Create inserts a posting.
func (r *JobRepository) Create(ctx context.Context, j *model.JobPosting) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO job_postings (title, department, location, employment_type, description, requirements, ord, enabled)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING id, created_at, updated_at`,
		j.Title, j.Department, j.Location, j.EmploymentType, j.Description, j.Requirements, j.Order, j.Enabled,
	).Scan(&j.ID, &j.CreatedAt, &j.UpdatedAt)
}

// Update modifies a posting.
func (r *JobRepository) Update(ctx context.Context, j *model.JobPosting) error {
	return r.pool.QueryRow(ctx,
		`UPDATE job_postings
		 SET title = $1, department = $2, location = $3, employment_type = $4,
		     description = $5, requirements = $6, ord = $7, enabled = $8, updated_at = CURRENT_TIMESTAMP
		 WHERE id = $9
		 RETURNING updated_at`,
		j.Title, j.Department, j.Location, j.EmploymentType, j.Description, j.Requirements, j.Order, j.Enabled, j.ID,
	).Scan(&j.UpdatedAt)
}

// Delete removes a posting. Applications against it cascade.
func (r *JobRepository) Delete(ctx context.Context, id int) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM job_postings WHERE id = $1`, id)
	return err
}

// UpdateOrder persists positions from the given id list in one transaction.
func (r *JobRepository) UpdateOrder(ctx context.Context, ids []int) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	for pos, id := range ids {
		if _, err := tx.Exec(ctx,
			`UPDATE job_postings SET ord = $1, updated_at = CURRENT_TIMESTAMP WHERE id = $2`, pos, id); err != nil {
			return err
		}
	}
	return tx.Commit(ctx)
}
