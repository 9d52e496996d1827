package repository

import (
	"context"
	"strconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pathlight/corpsite-backend/internal/model"
)

// OperationLogRepository handles audit log data access.
type OperationLogRepository struct {
	pool *pgxpool.Pool
}

// NewOperationLogRepository creates a new OperationLogRepository.
func NewOperationLogRepository(pool *pgxpool.Pool) *OperationLogRepository {
	return &OperationLogRepository{pool: pool}
}

// InsertBatch writes a batch of drained log entries in one round trip.
func (r *OperationLogRepository) InsertBatch(ctx context.Context, logs []model.OperationLog) error {
	if len(logs) == 0 {
		return nil
	}
	batch := &pgx.Batch{}
	for _, l := range logs {
		batch.Queue(
			`INSERT INTO operation_logs (admin_id, action, resource, resource_id, detail, ip, created_at)
			 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			l.AdminID, l.Action, l.Resource, l.ResourceID, l.Detail, l.IP, l.CreatedAt)
	}
	br := r.pool.SendBatch(ctx, batch)
	defer br.Close()
	for range logs {
		if _, err := br.Exec(); err != nil {
			return err
		}
	}
	return nil
}

// ListPaginated retrieves logs with optional admin, resource and action
// filters, newest first.
func (r *OperationLogRepository) ListPaginated(ctx context.Context, adminID *int, resource, action string, q *model.ListQuery) ([]model.OperationLog, int, error) {
	countQuery := `SELECT COUNT(*) FROM operation_logs ol`
	query := `SELECT ol.id, ol.admin_id, COALESCE(a.name, ''), ol.action, ol.resource, ol.resource_id, ol.detail, ol.ip, ol.created_at
		FROM operation_logs ol
		LEFT JOIN admins a ON a.id = ol.admin_id`

	var args []interface{}
	var where []string
	argIdx := 1

	if adminID != nil {
		where = append(where, `ol.admin_id = $`+strconv.Itoa(argIdx))
		args = append(args, *adminID)
		argIdx++
	}
	if resource != "" {
		where = append(where, `ol.resource = $`+strconv.Itoa(argIdx))
		args = append(args, resource)
		argIdx++
	}
	if action != "" {
		where = append(where, `ol.action = $`+strconv.Itoa(argIdx))
		args = append(args, action)
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

	countArgs := args

	var total int
	if err := r.pool.QueryRow(ctx, countQuery+clause, countArgs...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query += clause + ` ORDER BY ol.created_at DESC`
	query += ` LIMIT $` + strconv.Itoa(argIdx) + ` OFFSET $` + strconv.Itoa(argIdx+1)
	args = append(args, q.Limit, q.Offset())

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var items []model.OperationLog
	for rows.Next() {
		var l model.OperationLog
		if err := rows.Scan(&l.ID, &l.AdminID, &l.AdminName, &l.Action, &l.Resource, &l.ResourceID,
			&l.Detail, &l.IP, &l.CreatedAt); err != nil {
			return nil, 0, err
		}
		items = append(items, l)
	}
	return items, total, rows.Err()
}
