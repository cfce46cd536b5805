package impl

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/lreale4125-ux/taplinknfc/internal/domain/entity"
	domainerrors "github.com/lreale4125-ux/taplinknfc/internal/domain/errors"
	"github.com/lreale4125-ux/taplinknfc/internal/domain/repository"
	mockRepo "github.com/lreale4125-ux/taplinknfc/internal/mocks/repository"
	"github.com/lreale4125-ux/taplinknfc/internal/usecase"

	"github.com/google/uuid"
)

func newAnalyticsService(t *testing.T) (usecase.AnalyticsUsecase, *mockRepo.MockLinkRepository, *mockRepo.MockAnalyticsRepository) {
	linkRepo := mockRepo.NewMockLinkRepository(t)
	analyticsRepo := mockRepo.NewMockAnalyticsRepository(t)

	service := NewAnalyticsService(AnalyticsServiceParams{
		LinkRepo:      linkRepo,
		AnalyticsRepo: analyticsRepo,
	})

	return service, linkRepo, analyticsRepo
}

func TestAnalyticsService_LinkStats(t *testing.T) {
	service, linkRepo, analyticsRepo := newAnalyticsService(t)
	ctx := context.Background()
	companyID := uuid.New()
	linkID := uuid.New()

	linkRepo.EXPECT().
		FindByID(ctx, linkID).
		Return(&entity.Link{ID: linkID, CompanyID: companyID}, nil)

	geo := []repository.CountryClicks{{Country: "Italy", Clicks: 42}}
	activity := []repository.ActivityRow{{LastSeen: time.Now()}}
	series := []repository.BucketClicks{{TimeGroup: "2026-08-29", Clicks: 7}}

	analyticsRepo.EXPECT().
		GeoDistribution(ctx, linkID, 5).
		Return(geo, nil)
	analyticsRepo.EXPECT().
		RecentActivity(ctx, linkID, mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time"), 10).
		Return(activity, nil)
	analyticsRepo.EXPECT().
		ClicksOverTime(ctx, linkID, mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time"), repository.BucketDay).
		Return(series, nil)

	output, err := service.LinkStats(ctx, companyID, linkID, usecase.StatsRange{GroupBy: repository.BucketDay})
	require.NoError(t, err)
	assert.Equal(t, geo, output.GeoDistribution)
	assert.Equal(t, activity, output.RecentActivity)
	assert.Equal(t, series, output.ClicksOverTime)
}

func TestAnalyticsService_LinkStats_ForeignLink(t *testing.T) {
	service, linkRepo, _ := newAnalyticsService(t)
	ctx := context.Background()
	linkID := uuid.New()

	// The link exists but belongs to another company.
	linkRepo.EXPECT().
		FindByID(ctx, linkID).
		Return(&entity.Link{ID: linkID, CompanyID: uuid.New()}, nil)

	output, err := service.LinkStats(ctx, uuid.New(), linkID, usecase.StatsRange{})
	require.Error(t, err)
	assert.Nil(t, output)

	// A foreign link must be indistinguishable from a missing one.
	assert.ErrorIs(t, err, domainerrors.ErrLinkNotFound)
}

func TestAnalyticsService_LinkStats_MissingLink(t *testing.T) {
	service, linkRepo, _ := newAnalyticsService(t)
	ctx := context.Background()
	linkID := uuid.New()

	linkRepo.EXPECT().
		FindByID(ctx, linkID).
		Return(nil, repository.ErrLinkNotFound)

	output, err := service.LinkStats(ctx, uuid.New(), linkID, usecase.StatsRange{})
	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrLinkNotFound)
}

func TestAnalyticsService_Heatmap(t *testing.T) {
	service, linkRepo, analyticsRepo := newAnalyticsService(t)
	ctx := context.Background()
	companyID := uuid.New()
	linkID := uuid.New()

	linkRepo.EXPECT().
		FindByID(ctx, linkID).
		Return(&entity.Link{ID: linkID, CompanyID: companyID}, nil)

	cells := []repository.HeatmapCell{{DayOfWeek: 1, HourOfDay: 12, Clicks: 9}}
	analyticsRepo.EXPECT().
		Heatmap(ctx, linkID, mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time")).
		Return(cells, nil)

	output, err := service.Heatmap(ctx, companyID, linkID, usecase.StatsRange{})
	require.NoError(t, err)
	assert.Equal(t, cells, output)
}

func TestAnalyticsService_GeoStats(t *testing.T) {
	service, linkRepo, analyticsRepo := newAnalyticsService(t)
	ctx := context.Background()
	companyID := uuid.New()
	linkID := uuid.New()

	linkRepo.EXPECT().
		FindByID(ctx, linkID).
		Return(&entity.Link{ID: linkID, CompanyID: companyID}, nil)

	points := []repository.GeoPoint{{City: "Rome", Country: "Italy", Lat: 41.9, Lon: 12.5, TotalClicks: 31}}
	analyticsRepo.EXPECT().GeoStats(ctx, linkID).Return(points, nil)

	output, err := service.GeoStats(ctx, companyID, linkID)
	require.NoError(t, err)
	assert.Equal(t, points, output)
}

func TestAnalyticsService_CompanyLinks(t *testing.T) {
	service, _, analyticsRepo := newAnalyticsService(t)
	ctx := context.Background()
	companyID := uuid.New()

	summaries := []repository.LinkSummary{{LinkID: uuid.New(), Name: "Menu", TotalClicks: 100, UniqueVisitors: 40}}
	analyticsRepo.EXPECT().LinkSummaries(ctx, companyID).Return(summaries, nil)

	output, err := service.CompanyLinks(ctx, companyID)
	require.NoError(t, err)
	assert.Equal(t, summaries, output)
}

func TestResolveWindow_Defaults(t *testing.T) {
	start, end := resolveWindow(usecase.StatsRange{})

	now := time.Now()
	assert.Equal(t, now.Year(), end.Year())
	assert.Equal(t, 23, end.Hour())
	assert.Equal(t, 0, start.Hour())

	// Default window spans the last 7 days.
	assert.InDelta(t, float64(defaultStatsDays*24), end.Sub(start).Hours(), 25)
}

func TestResolveWindow_ExplicitRange(t *testing.T) {
	windowStart := time.Date(2026, 8, 1, 15, 30, 0, 0, time.UTC)
	windowEnd := time.Date(2026, 8, 10, 9, 0, 0, 0, time.UTC)

	start, end := resolveWindow(usecase.StatsRange{Start: windowStart, End: windowEnd})

	// Start snaps to midnight, end stretches to end of day.
	assert.Equal(t, time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, 10, end.Day())
	assert.Equal(t, 23, end.Hour())
	assert.Equal(t, 59, end.Minute())
}
