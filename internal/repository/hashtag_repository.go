package repository

import (
	"context"
	"errors"
	"strconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pathlight/corpsite-backend/internal/model"
)

var (
	ErrHashtagInUse     = errors.New("hashtag is still referenced by content")
	ErrDuplicateHashtag = errors.New("hashtag with this name already exists")
)

// usageCountExpr counts live references from both content link tables.
const usageCountExpr = `(
	(SELECT COUNT(*) FROM case_study_hashtags csh WHERE csh.hashtag_id = h.id) +
	(SELECT COUNT(*) FROM news_hashtags nh WHERE nh.hashtag_id = h.id)
)`

func hashtagErr(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return ErrDuplicateHashtag
	}
	return err
}

type HashtagRepository interface {
	ListPaginated(ctx context.Context, q *model.ListQuery) ([]model.Hashtag, int, error)
	GetByID(ctx context.Context, id int) (*model.Hashtag, error)
	Create(ctx context.Context, name string, enabled bool) (*model.Hashtag, error)
	Update(ctx context.Context, id int, name string, enabled bool) error
	Delete(ctx context.Context, id int) error
}

type hashtagRepository struct {
	pool *pgxpool.Pool
}

func NewHashtagRepository(pool *pgxpool.Pool) HashtagRepository {
	return &hashtagRepository{pool: pool}
}

func (r *hashtagRepository) ListPaginated(ctx context.Context, q *model.ListQuery) ([]model.Hashtag, int, error) {
	countQuery := `SELECT COUNT(*) FROM hashtags h`
	query := `SELECT h.id, h.name, ` + usageCountExpr + `, h.enabled, h.created_at, h.updated_at FROM hashtags h`

	var args []interface{}
	argIdx := 1
	if q.Search != "" {
		countQuery += ` WHERE h.name ILIKE $1`
		query += ` WHERE h.name ILIKE $1`
		args = append(args, "%"+q.Search+"%")
		argIdx++
	}

	var total int
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query += ` ORDER BY h.name ASC LIMIT $` + strconv.Itoa(argIdx) + ` OFFSET $` + strconv.Itoa(argIdx+1)
	args = append(args, q.Limit, q.Offset())

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var tags []model.Hashtag
	for rows.Next() {
		var h model.Hashtag
		if err := rows.Scan(&h.ID, &h.Name, &h.UsageCount, &h.Enabled, &h.CreatedAt, &h.UpdatedAt); err != nil {
			return nil, 0, err
		}
		tags = append(tags, h)
	}
	return tags, total, rows.Err()
}

func (r *hashtagRepository) GetByID(ctx context.Context, id int) (*model.Hashtag, error) {
	h := &model.Hashtag{}
	err := r.pool.QueryRow(ctx,
		`SELECT h.id, h.name, `+usageCountExpr+`, h.enabled, h.created_at, h.updated_at
		 FROM hashtags h WHERE h.id = $1`, id,
	).Scan(&h.ID, &h.Name, &h.UsageCount, &h.Enabled, &h.CreatedAt, &h.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return h, nil
}

func (r *hashtagRepository) Create(ctx context.Context, name string, enabled bool) (*model.Hashtag, error) {
	h := &model.Hashtag{Name: name, Enabled: enabled}
	err := r.pool.QueryRow(ctx,
		`INSERT INTO hashtags (name, enabled) VALUES ($1, $2)
		 RETURNING id, created_at, updated_at`, name, enabled,
	).Scan(&h.ID, &h.CreatedAt, &h.UpdatedAt)
	if err != nil {
		return nil, hashtagErr(err)
	}
	return h, nil
}

func (r *hashtagRepository) Update(ctx context.Context, id int, name string, enabled bool) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE hashtags SET name = $1, enabled = $2, updated_at = CURRENT_TIMESTAMP WHERE id = $3`,
		name, enabled, id)
	return hashtagErr(err)
}

// Delete removes a hashtag unless content still references it. The guard
// runs inside the DELETE itself so a concurrent link cannot slip between
// check and removal.
func (r *hashtagRepository) Delete(ctx context.Context, id int) error {
	tag, err := r.pool.Exec(ctx,
		`DELETE FROM hashtags h WHERE h.id = $1
		 AND NOT EXISTS (SELECT 1 FROM case_study_hashtags csh WHERE csh.hashtag_id = h.id)
		 AND NOT EXISTS (SELECT 1 FROM news_hashtags nh WHERE nh.hashtag_id = h.id)`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		// Row either absent or still referenced; distinguish for the caller.
		var exists bool
		if err := r.pool.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM hashtags WHERE id = $1)`, id).Scan(&exists); err != nil {
			return err
		}
		if exists {
			return ErrHashtagInUse
		}
		return pgx.ErrNoRows
	}
	return nil
}
