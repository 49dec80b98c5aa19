package services

import (
	"context"
	"net/http"
	"time"

	"github.com/nguyentuanthien2384/unishare-be-main/repositories"
	"github.com/nguyentuanthien2384/unishare-be-main/utils"
)

type PlatformStatsOutput struct {
	TotalUploads   int64   `json:"total_uploads"`
	TotalDownloads int64   `json:"total_downloads"`
	ActiveUsers    int64   `json:"active_users"`
	AvgDlPerDoc    float64 `json:"avg_dl_per_doc"`
}

type StatsService interface {
	GetPlatformStats(ctx context.Context) (PlatformStatsOutput, error)
	GetUploadsOverTime(ctx context.Context, days int) ([]repositories.DailyCount, error)
}

type statsService struct {
	stats     repositories.StatsRepository
	documents repositories.DocumentRepository
}

func NewStatsService(stats repositories.StatsRepository, documents repositories.DocumentRepository) StatsService {
	return &statsService{stats: stats, documents: documents}
}

func (s *statsService) GetPlatformStats(ctx context.Context) (PlatformStatsOutput, error) {
	stats, err := s.stats.Get(ctx)
	if err != nil {
		return PlatformStatsOutput{}, newAppError(http.StatusInternalServerError, "failed to read platform stats", err)
	}

	avg := 0.0
	if stats.TotalUploads > 0 {
		avg = float64(stats.TotalDownloads) / float64(stats.TotalUploads)
	}

	return PlatformStatsOutput{
		TotalUploads:   stats.TotalUploads,
		TotalDownloads: stats.TotalDownloads,
		ActiveUsers:    stats.ActiveUsers,
		AvgDlPerDoc:    utils.Round2(avg),
	}, nil
}

// GetUploadsOverTime buckets platform-wide uploads per calendar day,
// starting at local midnight `days` days ago.
func (s *statsService) GetUploadsOverTime(ctx context.Context, days int) ([]repositories.DailyCount, error) {
	if days <= 0 {
		days = 30
	}

	now := time.Now()
	since := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).AddDate(0, 0, -days)

	buckets, err := s.documents.CountUploadsByDay(ctx, since, nil, 0)
	if err != nil {
		return nil, newAppError(http.StatusInternalServerError, "failed to aggregate uploads", err)
	}
	if buckets == nil {
		buckets = []repositories.DailyCount{}
	}
	return buckets, nil
}
