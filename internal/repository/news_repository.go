package repository

import (
	"context"
	"strconv"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pathlight/corpsite-backend/internal/model"
)

// NewsRepository handles news article data access.
type NewsRepository struct {
	pool *pgxpool.Pool
}

// NewNewsRepository creates a new NewsRepository.
func NewNewsRepository(pool *pgxpool.Pool) *NewsRepository {
	return &NewsRepository{pool: pool}
}

const newsColumns = `id, title, slug, excerpt, body, cover_url, status, published_at, created_at, updated_at`

// ListPaginated retrieves articles for the back office with optional title
// search and status filter.
func (r *NewsRepository) ListPaginated(ctx context.Context, q *model.ListQuery, status model.NewsStatus) ([]model.NewsArticle, int, error) {
	countQuery := `SELECT COUNT(*) FROM news_articles`
	query := `SELECT ` + newsColumns + ` FROM news_articles`

	var args []interface{}
	var where []string
	argIdx := 1

	if q.Search != "" {
		where = append(where, `title ILIKE $`+strconv.Itoa(argIdx))
		args = append(args, "%"+q.Search+"%")
		argIdx++
	}
	if status != "" {
		where = append(where, `status = $`+strconv.Itoa(argIdx))
		args = append(args, status)
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

	var items []model.NewsArticle
	for rows.Next() {
		var n model.NewsArticle
		if err := rows.Scan(&n.ID, &n.Title, &n.Slug, &n.Excerpt, &n.Body, &n.CoverURL,
			&n.Status, &n.PublishedAt, &n.CreatedAt, &n.UpdatedAt); err != nil {
			return nil, 0, err
		}
		items = append(items, n)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	if err := r.attachHashtags(ctx, items); err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

// ListPublished retrieves published articles for the public site, newest
// first.
func (r *NewsRepository) ListPublished(ctx context.Context, limit, offset int) ([]model.NewsArticle, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM news_articles WHERE status = $1`, model.NewsStatusPublished).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.pool.Query(ctx,
		`SELECT `+newsColumns+` FROM news_articles
		 WHERE status = $1
		 ORDER BY published_at DESC
		 LIMIT $2 OFFSET $3`, model.NewsStatusPublished, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var items []model.NewsArticle
	for rows.Next() {
		var n model.NewsArticle
		if err := rows.Scan(&n.ID, &n.Title, &n.Slug, &n.Excerpt, &n.Body, &n.CoverURL,
			&n.Status, &n.PublishedAt, &n.CreatedAt, &n.UpdatedAt); err != nil {
			return nil, 0, err
		}
		items = append(items, n)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	if err := r.attachHashtags(ctx, items); err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

// GetByID retrieves a single article with hashtags.
func (r *NewsRepository) GetByID(ctx context.Context, id int) (*model.NewsArticle, error) {
	return r.getOne(ctx, `WHERE id = $1`, id)
}

// GetPublishedBySlug retrieves a published article for the public site.
func (r *NewsRepository) GetPublishedBySlug(ctx context.Context, slug string) (*model.NewsArticle, error) {
	return r.getOne(ctx, `WHERE slug = $1 AND status = 'PUBLISHED'`, slug)
}

func (r *NewsRepository) getOne(ctx context.Context, where string, arg interface{}) (*model.NewsArticle, error) {
	n := &model.NewsArticle{}
	err := r.pool.QueryRow(ctx, `SELECT `+newsColumns+` FROM news_articles `+where, arg).
		Scan(&n.ID, &n.Title, &n.Slug, &n.Excerpt, &n.Body, &n.CoverURL,
			&n.Status, &n.PublishedAt, &n.CreatedAt, &n.UpdatedAt)
	if err != nil {
		return nil, err
	}

	items := []model.NewsArticle{*n}
	if err := r.attachHashtags(ctx, items); err != nil {
		return nil, err
	}
	return &items[0], nil
}

// Create inserts an article as DRAFT and links its hashtags.
func (r *NewsRepository) Create(ctx context.Context, n *model.NewsArticle) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	err = tx.QueryRow(ctx,
		`INSERT INTO news_articles (title, slug, excerpt, body, cover_url, status)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id, status, created_at, updated_at`,
		n.Title, n.Slug, n.Excerpt, n.Body, n.CoverURL, model.NewsStatusDraft,
	).Scan(&n.ID, &n.Status, &n.CreatedAt, &n.UpdatedAt)
	if err != nil {
		return slugErr(err)
	}

	if err := relinkHashtags(ctx, tx, "news_hashtags", "news_id", n.ID, n.Hashtags); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

// Update modifies an article and replaces its hashtag links.
func (r *NewsRepository) Update(ctx context.Context, n *model.NewsArticle) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	err = tx.QueryRow(ctx,
		`UPDATE news_articles
		 SET title = $1, slug = $2, excerpt = $3, body = $4, cover_url = $5, updated_at = CURRENT_TIMESTAMP
		 WHERE id = $6
		 RETURNING updated_at`,
		n.Title, n.Slug, n.Excerpt, n.Body, n.CoverURL, n.ID,
	).Scan(&n.UpdatedAt)
	if err != nil {
		return slugErr(err)
	}

	if err := relinkHashtags(ctx, tx, "news_hashtags", "news_id", n.ID, n.Hashtags); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

// SetStatus moves an article between DRAFT and PUBLISHED, stamping
// published_at on publish.
func (r *NewsRepository) SetStatus(ctx context.Context, id int, status model.NewsStatus) error {
	var err error
	if status == model.NewsStatusPublished {
		_, err = r.pool.Exec(ctx,
			`UPDATE news_articles SET status = $1, published_at = NOW(), updated_at = CURRENT_TIMESTAMP WHERE id = $2`,
			status, id)
	} else {
		_, err = r.pool.Exec(ctx,
			`UPDATE news_articles SET status = $1, updated_at = CURRENT_TIMESTAMP WHERE id = $2`,
			status, id)
	}
	return err
}

// Delete removes an article; hashtag links cascade.
func (r *NewsRepository) Delete(ctx context.Context, id int) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM news_articles WHERE id = $1`, id)
	return err
}

func (r *NewsRepository) attachHashtags(ctx context.Context, items []model.NewsArticle) error {
	for i := range items {
		tags, err := linkedHashtags(ctx, r.pool, "news_hashtags", "news_id", items[i].ID)
		if err != nil {
			return err
		}
		items[i].Hashtags = tags
	}
	return nil
}
