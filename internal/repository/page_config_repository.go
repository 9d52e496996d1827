package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pathlight/corpsite-backend/internal/model"
)

// PageConfigRepository stores keyed page-configuration maps, one row per
// entry with the feature area as discriminator. The position column keeps
// the submission order of the map so tie-breaking stays stable across
// reads.
type PageConfigRepository interface {
	GetArea(ctx context.Context, area string) (map[string]model.PageEntry, []string, error)
	ReplaceArea(ctx context.Context, area string, entries map[string]model.PageEntry, keyOrder []string) error
}

type pageConfigRepository struct {
	pool *pgxpool.Pool
}

// NewPageConfigRepository creates a PageConfigRepository backed by Postgres.
func NewPageConfigRepository(pool *pgxpool.Pool) PageConfigRepository {
	return &pageConfigRepository{pool: pool}
}

// GetArea loads an area's full map plus its stored key order.
func (r *pageConfigRepository) GetArea(ctx context.Context, area string) (map[string]model.PageEntry, []string, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT key, name, description, slug, ord, enabled
		 FROM page_entries
		 WHERE area = $1
		 ORDER BY position ASC`, area)
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	entries := make(map[string]model.PageEntry)
	var keyOrder []string
	for rows.Next() {
		var key string
		var e model.PageEntry
		if err := rows.Scan(&key, &e.Name, &e.Description, &e.Slug, &e.Order, &e.Enabled); err != nil {
			return nil, nil, err
		}
		entries[key] = e
		keyOrder = append(keyOrder, key)
	}
	return entries, keyOrder, rows.Err()
}

// ReplaceArea swaps an area's entire map in one transaction. No merge, no
// version check: the last replace wins, matching the back office's
// whole-document update protocol.
func (r *pageConfigRepository) ReplaceArea(ctx context.Context, area string, entries map[string]model.PageEntry, keyOrder []string) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM page_entries WHERE area = $1`, area); err != nil {
		return err
	}

	for pos, key := range keyOrder {
		e, ok := entries[key]
		if !ok {
			continue
		}
		if _, err := tx.Exec(ctx,
			`INSERT INTO page_entries (area, key, name, description, slug, ord, enabled, position)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
			area, key, e.Name, e.Description, e.Slug, e.Order, e.Enabled, pos); err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}
