package service

import (
	"context"

	"github.com/pathlight/corpsite-backend/internal/model"
	"github.com/pathlight/corpsite-backend/internal/repository"
)

// DashboardData is the aggregate payload behind the back-office landing
// page.
type DashboardData struct {
	TotalBanners     int                                 `json:"total_banners"`
	TotalCaseStudies int                                 `json:"total_case_studies"`
	TotalArticles    int                                 `json:"total_articles"`
	TotalJobs        int                                 `json:"total_jobs"`
	OpenInquiries    int                                 `json:"open_inquiries"`
	NewsByStatus     map[model.NewsStatus]int            `json:"news_by_status"`
	RecentInquiries  []repository.DashboardRecentInquiry `json:"recent_inquiries"`
	TopHashtags      []repository.DashboardTopHashtag    `json:"top_hashtags"`
}

// DashboardService aggregates back-office overview data.
type DashboardService struct {
	dashRepo *repository.DashboardRepository
}

// NewDashboardService creates a new DashboardService.
func NewDashboardService(dashRepo *repository.DashboardRepository) *DashboardService {
	return &DashboardService{dashRepo: dashRepo}
}

// GetOverview collects summary counts, the news status breakdown, the
// latest inquiries and the most used hashtags.
func (s *DashboardService) GetOverview(ctx context.Context) (*DashboardData, error) {
	data := &DashboardData{}

	var err error
	data.TotalBanners, data.TotalCaseStudies, data.TotalArticles, data.TotalJobs, data.OpenInquiries, err = s.dashRepo.GetSummaryCounts(ctx)
	if err != nil {
		return nil, err
	}

	if data.NewsByStatus, err = s.dashRepo.GetNewsStatusCounts(ctx); err != nil {
		return nil, err
	}
	if data.RecentInquiries, err = s.dashRepo.GetRecentInquiries(ctx, 5); err != nil {
		return nil, err
	}
	if data.TopHashtags, err = s.dashRepo.GetTopHashtags(ctx, 10); err != nil {
		return nil, err
	}
	return data, nil
}
