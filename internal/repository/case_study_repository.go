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

var ErrDuplicateSlug = errors.New("slug already in use")

// CaseStudyRepository handles case-study data access. Hashtag links live in
// case_study_hashtags; tag rows are created on demand by name.
type CaseStudyRepository struct {
	pool *pgxpool.Pool
}

// NewCaseStudyRepository creates a new CaseStudyRepository.
func NewCaseStudyRepository(pool *pgxpool.Pool) *CaseStudyRepository {
	return &CaseStudyRepository{pool: pool}
}

// ListPaginated retrieves case studies for the back office with optional
// title/client search.
func (r *CaseStudyRepository) ListPaginated(ctx context.Context, q *model.ListQuery) ([]model.CaseStudy, int, error) {
	countQuery := `SELECT COUNT(*) FROM case_studies`
	query := `SELECT id, title, slug, client, industry, summary, body, cover_url, published, published_at, created_at, updated_at
	          FROM case_studies`
	var args []interface{}
	argIdx := 1

	if q.Search != "" {
		countQuery += ` WHERE title ILIKE $1 OR client ILIKE $1`
		query += ` WHERE title ILIKE $1 OR client ILIKE $1`
		args = append(args, "%"+q.Search+"%")
		argIdx++
	}

	var total int
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query += ` ORDER BY ` + caseStudySortColumn(q.SortBy) + ` ` + sortDirection(q.SortOrder)
	query += ` LIMIT $` + strconv.Itoa(argIdx) + ` OFFSET $` + strconv.Itoa(argIdx+1)
	args = append(args, q.Limit, q.Offset())

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var items []model.CaseStudy
	for rows.Next() {
		var cs model.CaseStudy
		if err := rows.Scan(&cs.ID, &cs.Title, &cs.Slug, &cs.Client, &cs.Industry, &cs.Summary, &cs.Body,
			&cs.CoverURL, &cs.Published, &cs.PublishedAt, &cs.CreatedAt, &cs.UpdatedAt); err != nil {
			return nil, 0, err
		}
		items = append(items, cs)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	if err := r.attachHashtags(ctx, items); err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

// ListPublished retrieves published case studies for the public site,
// newest first.
func (r *CaseStudyRepository) ListPublished(ctx context.Context, limit, offset int) ([]model.CaseStudy, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM case_studies WHERE published`).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.pool.Query(ctx,
		`SELECT id, title, slug, client, industry, summary, body, cover_url, published, published_at, created_at, updated_at
		 FROM case_studies
		 WHERE published
		 ORDER BY published_at DESC
		 LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var items []model.CaseStudy
	for rows.Next() {
		var cs model.CaseStudy
		if err := rows.Scan(&cs.ID, &cs.Title, &cs.Slug, &cs.Client, &cs.Industry, &cs.Summary, &cs.Body,
			&cs.CoverURL, &cs.Published, &cs.PublishedAt, &cs.CreatedAt, &cs.UpdatedAt); err != nil {
			return nil, 0, err
		}
		items = append(items, cs)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	if err := r.attachHashtags(ctx, items); err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

// GetByID retrieves a single case study with hashtags.
func (r *CaseStudyRepository) GetByID(ctx context.Context, id int) (*model.CaseStudy, error) {
	return r.getOne(ctx, `WHERE id = $1`, id)
}

// GetPublishedBySlug retrieves a published case study for the public site.
func (r *CaseStudyRepository) GetPublishedBySlug(ctx context.Context, slug string) (*model.CaseStudy, error) {
	return r.getOne(ctx, `WHERE slug = $1 AND published`, slug)
}

func (r *CaseStudyRepository) getOne(ctx context.Context, where string, arg interface{}) (*model.CaseStudy, error) {
	cs := &model.CaseStudy{}
	err := r.pool.QueryRow(ctx,
		`SELECT id, title, slug, client, industry, summary, body, cover_url, published, published_at, created_at, updated_at
		 FROM case_studies `+where, arg,
	).Scan(&cs.ID, &cs.Title, &cs.Slug, &cs.Client, &cs.Industry, &cs.Summary, &cs.Body,
		&cs.CoverURL, &cs.Published, &cs.PublishedAt, &cs.CreatedAt, &cs.UpdatedAt)
	if err != nil {
		return nil, err
	}

	items := []model.CaseStudy{*cs}
	if err := r.attachHashtags(ctx, items); err != nil {
		return nil, err
	}
	return &items[0], nil
}

// Create inserts a case study and links its hashtags in one transaction.
func (r *CaseStudyRepository) Create(ctx context.Context, cs *model.CaseStudy) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	err = tx.QueryRow(ctx,
		`INSERT INTO case_studies (title, slug, client, industry, summary, body, cover_url)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id, created_at, updated_at`,
		cs.Title, cs.Slug, cs.Client, cs.Industry, cs.Summary, cs.Body, cs.CoverURL,
	).Scan(&cs.ID, &cs.CreatedAt, &cs.UpdatedAt)
	if err != nil {
		return slugErr(err)
	}

	if err := relinkHashtags(ctx, tx, "case_study_hashtags", "case_study_id", cs.ID, cs.Hashtags); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

// Update modifies a case study and replaces its hashtag links.
func (r *CaseStudyRepository) Update(ctx context.Context, cs *model.CaseStudy) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	err = tx.QueryRow(ctx,
		`UPDATE case_studies
		 SET title = $1, slug = $2, client = $3, industry = $4, summary = $5, body = $6, cover_url = $7, updated_at = CURRENT_TIMESTAMP
		 WHERE id = $8
		 RETURNING updated_at`,
		cs.Title, cs.Slug, cs.Client, cs.Industry, cs.Summary, cs.Body, cs.CoverURL, cs.ID,
	).Scan(&cs.UpdatedAt)
	if err != nil {
		return slugErr(err)
	}

	if err := relinkHashtags(ctx, tx, "case_study_hashtags", "case_study_id", cs.ID, cs.Hashtags); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

// SetPublished flips the publication flag, stamping published_at on publish.
func (r *CaseStudyRepository) SetPublished(ctx context.Context, id int, published bool) error {
	var err error
	if published {
		_, err = r.pool.Exec(ctx,
			`UPDATE case_studies SET published = TRUE, published_at = NOW(), updated_at = CURRENT_TIMESTAMP WHERE id = $1`, id)
	} else {
		_, err = r.pool.Exec(ctx,
			`UPDATE case_studies SET published = FALSE, updated_at = CURRENT_TIMESTAMP WHERE id = $1`, id)
	}
	return err
}

// Delete removes a case study; hashtag links cascade.
func (r *CaseStudyRepository) Delete(ctx context.Context, id int) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM case_studies WHERE id = $1`, id)
	return err
}

// attachHashtags fills the Hashtags slice of every item in place.
func (r *CaseStudyRepository) attachHashtags(ctx context.Context, items []model.CaseStudy) error {
	for i := range items {
		tags, err := linkedHashtags(ctx, r.pool, "case_study_hashtags", "case_study_id", items[i].ID)
		if err != nil {
			return err
		}
		items[i].Hashtags = tags
	}
	return nil
}

func caseStudySortColumn(sortBy string) string {
	switch sortBy {
	case "title":
		return "title"
	case "client":
		return "client"
	case "published_at":
		return "published_at"
	default:
		return "created_at"
	}
}

func sortDirection(order string) string {
	if order == "asc" {
		return "ASC"
	}
	return "DESC"
}

func slugErr(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return ErrDuplicateSlug
	}
	return err
}

// relinkHashtags replaces a content item's hashtag links, creating missing
// tag rows by name inside the caller's transaction.
func relinkHashtags(ctx context.Context, tx pgx.Tx, linkTable, fkColumn string, contentID int, names []string) error {
	if _, err := tx.Exec(ctx, `DELETE FROM `+linkTable+` WHERE `+fkColumn+` = $1`, contentID); err != nil {
		return err
	}
	for _, name := range names {
		var tagID int
		err := tx.QueryRow(ctx,
			`INSERT INTO hashtags (name) VALUES ($1)
			 ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
			 RETURNING id`, name).Scan(&tagID)
		if err != nil {
			return err
		}
		if _, err := tx.Exec(ctx,
			`INSERT INTO `+linkTable+` (`+fkColumn+`, hashtag_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
			contentID, tagID); err != nil {
			return err
		}
	}
	return nil
}

// linkedHashtags returns the tag names linked to one content item.
func linkedHashtags(ctx context.Context, pool *pgxpool.Pool, linkTable, fkColumn string, contentID int) ([]string, error) {
	rows, err := pool.Query(ctx,
		`SELECT h.name FROM hashtags h
		 JOIN `+linkTable+` l ON l.hashtag_id = h.id
		 WHERE l.`+fkColumn+` = $1
		 ORDER BY h.name ASC`, contentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tags := []string{}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		tags = append(tags, name)
	}
	return tags, rows.Err()
}
