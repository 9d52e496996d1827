package repository

import (
	"context"
	"strconv"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pathlight/corpsite-backend/internal/model"
)

// InquiryRepository handles cooperation inquiry data access.
type InquiryRepository struct {
	pool *pgxpool.Pool
}

// NewInquiryRepository creates a new InquiryRepository.
func NewInquiryRepository(pool *pgxpool.Pool) *InquiryRepository {
	return &InquiryRepository{pool: pool}
}

const inquiryColumns = `id, reference, company, contact_name, email, phone, message, status, handled_by, created_at, updated_at`

// Create inserts an inquiry with its pre-assigned reference code.
func (r *InquiryRepository) Create(ctx context.Context, inq *model.Inquiry) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO inquiries (reference, company, contact_name, email, phone, message, status)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id, created_at, updated_at`,
		inq.Reference, inq.Company, inq.ContactName, inq.Email, inq.Phone, inq.Message, model.InquiryStatusOpen,
	).Scan(&inq.ID, &inq.CreatedAt, &inq.UpdatedAt)
}

// GetByID retrieves a single inquiry.
func (r *InquiryRepository) GetByID(ctx context.Context, id int) (*model.Inquiry, error) {
	inq := &model.Inquiry{}
	err := r.pool.QueryRow(ctx, `SELECT `+inquiryColumns+` FROM inquiries WHERE id = $1`, id).
		Scan(&inq.ID, &inq.Reference, &inq.Company, &inq.ContactName, &inq.Email, &inq.Phone,
			&inq.Message, &inq.Status, &inq.HandledBy, &inq.CreatedAt, &inq.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return inq, nil
}

// ListPaginated retrieves inquiries with optional status filter and
// company/contact search.
func (r *InquiryRepository) ListPaginated(ctx context.Context, status model.InquiryStatus, q *model.ListQuery) ([]model.Inquiry, int, error) {
	countQuery := `SELECT COUNT(*) FROM inquiries`
	query := `SELECT ` + inquiryColumns + ` FROM inquiries`

	var args []interface{}
	var where []string
	argIdx := 1

	if status != "" {
		where = append(where, `status = $`+strconv.Itoa(argIdx))
		args = append(args, status)
		argIdx++
	}
	if q.Search != "" {
		where = append(where, `(company ILIKE $`+strconv.Itoa(argIdx)+` OR contact_name ILIKE $`+strconv.Itoa(argIdx)+`)`)
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

	query += clause + ` ORDER BY created_at ` + sortDirection(q.SortOrder)
	query += ` LIMIT $` + strconv.Itoa(argIdx) + ` OFFSET $` + strconv.Itoa(argIdx+1)
	args = append(args, q.Limit, q.Offset())

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var items []model.Inquiry
	for rows.Next() {
		var inq model.Inquiry
		if err := rows.Scan(&inq.ID, &inq.Reference, &inq.Company, &inq.ContactName, &inq.Email, &inq.Phone,
			&inq.Message, &inq.Status, &inq.HandledBy, &inq.CreatedAt, &inq.UpdatedAt); err != nil {
			return nil, 0, err
		}
		items = append(items, inq)
	}
	return items, total, rows.Err()
}

// MarkHandled records which admin closed the inquiry.
func (r *InquiryRepository) MarkHandled(ctx context.Context, id, adminID int) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE inquiries SET status = $1, handled_by = $2, updated_at = CURRENT_TIMESTAMP WHERE id = $3`,
		model.InquiryStatusHandled, adminID, id)
	return err
}
