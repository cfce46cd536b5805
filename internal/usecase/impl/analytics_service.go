package impl

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"

	domainerrors "github.com/lreale4125-ux/taplinknfc/internal/domain/errors"
	"github.com/lreale4125-ux/taplinknfc/internal/domain/repository"
	"github.com/lreale4125-ux/taplinknfc/internal/usecase"
)

const (
	defaultStatsDays     = 7
	geoDistributionLimit = 5
	recentActivityLimit  = 10
)

// analyticsService implements the AnalyticsUsecase interface. Every
// per-link query first checks the link belongs to the caller's company;
// foreign links are indistinguishable from missing ones.
type analyticsService struct {
	linkRepo      repository.LinkRepository
	analyticsRepo repository.AnalyticsRepository
}

// AnalyticsServiceParams holds dependencies for analyticsService, injected by Fx.
type AnalyticsServiceParams struct {
	fx.In

	LinkRepo      repository.LinkRepository
	AnalyticsRepo repository.AnalyticsRepository
}

// NewAnalyticsService is the constructor for analyticsService.
func NewAnalyticsService(params AnalyticsServiceParams) usecase.AnalyticsUsecase {
	return &analyticsService{
		linkRepo:      params.LinkRepo,
		analyticsRepo: params.AnalyticsRepo,
	}
}

// LinkStats returns the three dashboard series for one link.
func (srv *analyticsService) LinkStats(ctx context.Context, companyID uuid.UUID, linkID uuid.UUID, window usecase.StatsRange) (*usecase.LinkStatsOutput, error) {
	if err := srv.authorizeLink(ctx, companyID, linkID); err != nil {
		return nil, err
	}

	start, end := resolveWindow(window)

	geo, err := srv.analyticsRepo.GeoDistribution(ctx, linkID, geoDistributionLimit)
	if err != nil {
		return nil, err
	}

	activity, err := srv.analyticsRepo.RecentActivity(ctx, linkID, start, end, recentActivityLimit)
	if err != nil {
		return nil, err
	}

	series, err := srv.analyticsRepo.ClicksOverTime(ctx, linkID, start, end, window.GroupBy)
	if err != nil {
		return nil, err
	}

	return &usecase.LinkStatsOutput{
		GeoDistribution: geo,
		RecentActivity:  activity,
		ClicksOverTime:  series,
	}, nil
}

// Heatmap returns click counts by (day-of-week, hour-of-day).
func (srv *analyticsService) Heatmap(ctx context.Context, companyID uuid.UUID, linkID uuid.UUID, window usecase.StatsRange) ([]repository.HeatmapCell, error) {
	if err := srv.authorizeLink(ctx, companyID, linkID); err != nil {
		return nil, err
	}

	start, end := resolveWindow(window)

	return srv.analyticsRepo.Heatmap(ctx, linkID, start, end)
}

// GeoStats returns map-plottable click totals per location.
func (srv *analyticsService) GeoStats(ctx context.Context, companyID uuid.UUID, linkID uuid.UUID) ([]repository.GeoPoint, error) {
	if err := srv.authorizeLink(ctx, companyID, linkID); err != nil {
		return nil, err
	}

	return srv.analyticsRepo.GeoStats(ctx, linkID)
}

// CompanyLinks returns per-link click rollups for the whole company.
func (srv *analyticsService) CompanyLinks(ctx context.Context, companyID uuid.UUID) ([]repository.LinkSummary, error) {
	return srv.analyticsRepo.LinkSummaries(ctx, companyID)
}

// authorizeLink confirms the link exists and belongs to the company.
func (srv *analyticsService) authorizeLink(ctx context.Context, companyID uuid.UUID, linkID uuid.UUID) error {
	link, err := srv.linkRepo.FindByID(ctx, linkID)
	if err != nil {
		if errors.Is(err, repository.ErrLinkNotFound) {
			return domainerrors.ErrLinkNotFound
		}

		return err
	}

	if link.CompanyID != companyID {
		return domainerrors.ErrLinkNotFound
	}

	return nil
}

// resolveWindow fills in the default reporting window: the last 7 days,
// with End stretched to the end of its day so today's clicks count.
func resolveWindow(window usecase.StatsRange) (time.Time, time.Time) {
	end := window.End
	if end.IsZero() {
		end = time.Now()
	}
	end = time.Date(end.Year(), end.Month(), end.Day(), 23, 59, 59, 999999999, end.Location())

	start := window.Start
	if start.IsZero() {
		start = end.AddDate(0, 0, -defaultStatsDays)
	}
	start = time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, start.Location())

	return start, end
}
