package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pathlight/corpsite-backend/internal/model"
)

type BannerRepository interface {
	GetAll(ctx context.Context) ([]*model.Banner, error)
	GetEnabled(ctx context.Context) ([]*model.Banner, error)
	GetByID(ctx context.Context, id int) (*model.Banner, error)
	Create(ctx context.Context, b *model.Banner) error
	Update(ctx context.Context, b *model.Banner) error
	Delete(ctx context.Context, id int) error
	UpdateOrder(ctx context.Context, ids []int) error
}

type bannerRepository struct {
	db *pgxpool.Pool
}

func NewBannerRepository(db *pgxpool.Pool) BannerRepository {
	return &bannerRepository{db: db}
}

const bannerColumns = `id, title, subtitle, image_url, link_url, ord, enabled, created_at, updated_at`

func scanBanner(row interface{ Scan(...any) error }) (*model.Banner, error) {
	b := &model.Banner{}
	err := row.Scan(&b.ID, &b.Title, &b.Subtitle, &b.ImageURL, &b.LinkURL, &b.Order, &b.Enabled, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return b, nil
}

func (r *bannerRepository) GetAll(ctx context.Context) ([]*model.Banner, error) {
	rows, err := r.db.Query(ctx, `SELECT `+bannerColumns+` FROM banners ORDER BY ord ASC, id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var banners []*model.Banner
	for rows.Next() {
		b, err := scanBanner(rows)
		if err != nil {
			return nil, err
		}
		banners = append(banners, b)
	}
	return banners, rows.Err()
}

func (r *bannerRepository) GetEnabled(ctx context.Context) ([]*model.Banner, error) {
	rows, err := r.db.Query(ctx, `SELECT `+bannerColumns+` FROM banners WHERE enabled ORDER BY ord ASC, id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var banners []*model.Banner
	for rows.Next() {
		b, err := scanBanner(rows)
		if err != nil {
			return nil, err
		}
		banners = append(banners, b)
	}
	return banners, rows.Err()
}

func (r *bannerRepository) GetByID(ctx context.Context, id int) (*model.Banner, error) {
	return scanBanner(r.db.QueryRow(ctx, `SELECT `+bannerColumns+` FROM banners WHERE id = $1`, id))
}

func (r *bannerRepository) Create(ctx context.Context, b *model.Banner) error {
	return r.db.QueryRow(ctx,
		`INSERT INTO banners (title, subtitle, image_url, link_url, ord, enabled)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id, created_at, updated_at`,
		b.Title, b.Subtitle, b.ImageURL, b.LinkURL, b.Order, b.Enabled,
	).Scan(&b.ID, &b.CreatedAt, &b.UpdatedAt)
}

func (r *bannerRepository) Update(ctx context.Context, b *model.Banner) error {
	return r.db.QueryRow(ctx,
		`UPDATE banners
		 SET title = $1, subtitle = $2, image_url = $3, link_url = $4, ord = $5, enabled = $6, updated_at = CURRENT_TIMESTAMP
		 WHERE id = $7
		 RETURNING updated_at`,
		b.Title, b.Subtitle, b.ImageURL, b.LinkURL, b.Order, b.Enabled, b.ID,
	).Scan(&b.UpdatedAt)
}

func (r *bannerRepository) Delete(ctx context.Context, id int) error {
	_, err := r.db.Exec(ctx, `DELETE FROM banners WHERE id = $1`, id)
	return err
}

// UpdateOrder persists positions from the given id list in one transaction.
func (r *bannerRepository) UpdateOrder(ctx context.Context, ids []int) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	for pos, id := range ids {
		if _, err := tx.Exec(ctx,
			`UPDATE banners SET ord = $1, updated_at = CURRENT_TIMESTAMP WHERE id = $2`, pos, id); err != nil {
			return err
		}
	}
	return tx.Commit(ctx)
}
