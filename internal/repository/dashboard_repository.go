package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pathlight/corpsite-backend/internal/model"
)

// DashboardRepository handles admin dashboard data access.
type DashboardRepository struct {
	pool *pgxpool.Pool
}

// NewDashboardRepository creates a new DashboardRepository.
func NewDashboardRepository(pool *pgxpool.Pool) *DashboardRepository {
	return &DashboardRepository{pool: pool}
}

// GetSummaryCounts retrieves the high-level metrics for the dashboard.
func (r *DashboardRepository) GetSummaryCounts(ctx context.Context) (banners, caseStudies, articles, jobs, openInquiries int, err error) {
	err = r.pool.QueryRow(ctx,
		`SELECT
			(SELECT COUNT(*) FROM banners),
			(SELECT COUNT(*) FROM case_studies),
			(SELECT COUNT(*) FROM news_articles),
			(SELECT COUNT(*) FROM job_postings),
			(SELECT COUNT(*) FROM inquiries WHERE status = 'OPEN')`,
	).Scan(&banners, &caseStudies, &articles, &jobs, &openInquiries)
	return
}

// GetNewsStatusCounts retrieves the distribution of news articles by status.
func (r *DashboardRepository) GetNewsStatusCounts(ctx context.Context) (map[model.NewsStatus]int, error) {
	rows, err := r.pool.Query(ctx, `SELECT status, COUNT(*) FROM news_articles GROUP BY status`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[model.NewsStatus]int)
	for rows.Next() {
		var status model.NewsStatus
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return nil, err
		}
		counts[status] = count
	}
	return counts, rows.Err()
}

// DashboardRecentInquiry represents minimal data for the latest intake
// submissions.
type DashboardRecentInquiry struct {
	ID        int                 `json:"id"`
	Reference string              `json:"reference"`
	Company   string              `json:"company"`
	Status    model.InquiryStatus `json:"status"`
	CreatedAt time.Time           `json:"created_at"`
}

// GetRecentInquiries retrieves the latest N inquiries.
func (r *DashboardRepository) GetRecentInquiries(ctx context.Context, limit int) ([]DashboardRecentInquiry, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, reference, company, status, created_at
		 FROM inquiries
		 ORDER BY created_at DESC LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []DashboardRecentInquiry
	for rows.Next() {
		var inq DashboardRecentInquiry
		if err := rows.Scan(&inq.ID, &inq.Reference, &inq.Company, &inq.Status, &inq.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, inq)
	}
	return items, rows.Err()
}

// DashboardTopHashtag is a hashtag with its combined usage count.
type DashboardTopHashtag struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// GetTopHashtags retrieves the N most used hashtags across case studies
// and news articles.
func (r *DashboardRepository) GetTopHashtags(ctx context.Context, limit int) ([]DashboardTopHashtag, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT h.id, h.name,
			(SELECT COUNT(*) FROM case_study_hashtags WHERE hashtag_id = h.id)
			+ (SELECT COUNT(*) FROM news_hashtags WHERE hashtag_id = h.id) AS usage_count
		 FROM hashtags h
		 ORDER BY usage_count DESC, h.name ASC
		 LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []DashboardTopHashtag
	for rows.Next() {
		var h DashboardTopHashtag
		if err := rows.Scan(&h.ID, &h.Name, &h.Count); err != nil {
			return nil, err
		}
		items = append(items, h)
	}
	return items, rows.Err()
}
