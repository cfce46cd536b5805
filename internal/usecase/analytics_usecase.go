package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/lreale4125-ux/taplinknfc/internal/domain/repository"
)

// StatsRange is the caller-selected reporting window. Zero Start/End means
// the default window of the last 7 days ending today.
type StatsRange struct {
	Start   time.Time
	End     time.Time
	GroupBy repository.TimeBucket
}

// LinkStatsOutput bundles the three dashboard queries for one link.
type LinkStatsOutput struct {
	GeoDistribution []repository.CountryClicks `json:"geo_distribution"`
	RecentActivity  []repository.ActivityRow   `json:"recent_activity"`
	ClicksOverTime  []repository.BucketClicks  `json:"clicks_over_time"`
}

// AnalyticsUsecase is the read-only query engine over the click table.
// Every query is scoped to the caller's company: a link outside it is
// reported as not found, enforced per query rather than by the database.
type AnalyticsUsecase interface {
	// LinkStats returns geo distribution, recent activity and the
	// time-bucketed click series for one link.
	LinkStats(ctx context.Context, companyID uuid.UUID, linkID uuid.UUID, window StatsRange) (*LinkStatsOutput, error)

	// Heatmap returns click counts by (day-of-week, hour-of-day).
	Heatmap(ctx context.Context, companyID uuid.UUID, linkID uuid.UUID, window StatsRange) ([]repository.HeatmapCell, error)

	// GeoStats returns map-plottable click totals per location.
	GeoStats(ctx context.Context, companyID uuid.UUID, linkID uuid.UUID) ([]repository.GeoPoint, error)

	// CompanyLinks returns per-link click rollups for the whole company.
	CompanyLinks(ctx context.Context, companyID uuid.UUID) ([]repository.LinkSummary, error)
}
