package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/lreale4125-ux/taplinknfc/internal/domain/entity"
)

// TimeBucket is the granularity for clicks-over-time aggregation.
type TimeBucket string

const (
	BucketDay   TimeBucket = "day"
	BucketWeek  TimeBucket = "week"
	BucketMonth TimeBucket = "month"
)

// ParseTimeBucket maps a query parameter onto the closed set, defaulting
// to daily buckets.
func ParseTimeBucket(s string) TimeBucket {
	switch TimeBucket(s) {
	case BucketDay, BucketWeek, BucketMonth:
		return TimeBucket(s)
	}

	return BucketDay
}

// CountryClicks is one row of the geo distribution.
type CountryClicks struct {
	Country string `json:"country"`
	Clicks  int64  `json:"clicks"`
}

// BucketClicks is one row of the clicks-over-time series.
type BucketClicks struct {
	TimeGroup string `json:"time_group"`
	Clicks    int64  `json:"clicks"`
}

// ActivityRow is one row of the recent activity feed.
type ActivityRow struct {
	City        *string   `json:"city"`
	Country     *string   `json:"country"`
	LastSeen    time.Time `json:"last_seen"`
	OSName      *string   `json:"os_name"`
	BrowserName *string   `json:"browser_name"`
	DeviceType  *string   `json:"device_type"`
}

// HeatmapCell is one (day-of-week, hour-of-day) bucket.
type HeatmapCell struct {
	DayOfWeek int   `json:"day_of_week"` // 0 = Sunday, Postgres DOW convention
	HourOfDay int   `json:"hour_of_day"`
	Clicks    int64 `json:"clicks"`
}

// GeoPoint is one map-plottable location with its click total. Rows with
// missing coordinates are excluded at query time.
type GeoPoint struct {
	City        string  `json:"city"`
	Country     string  `json:"country"`
	Lat         float64 `json:"lat"`
	Lon         float64 `json:"lon"`
	TotalClicks int64   `json:"total_clicks"`
}

// LinkSummary is the per-link rollup shown on the company dashboard.
type LinkSummary struct {
	LinkID         uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	URL            *string   `json:"url"`
	TotalClicks    int64     `json:"total_clicks"`
	UniqueVisitors int64     `json:"unique_visitors"`
}

// LocationClicks is the admin summary report grouped by location.
type LocationClicks struct {
	Country     *string `json:"country"`
	City        *string `json:"city"`
	TotalClicks int64   `json:"total_clicks"`
}

// AnalyticsRepository is both sides of the click table: the single atomic
// upsert used by the recorder, and the read-only aggregations used by the
// query engine.
type AnalyticsRepository interface {
	// UpsertClick atomically inserts a first-visit row with click_count 1
	// or increments the existing row for the same (link, ip, keychain,
	// source) key, refreshing last_seen and the device metadata. This must
	// be a single INSERT ... ON CONFLICT statement, never read-then-write.
	UpsertClick(ctx context.Context, click *entity.Click) error

	// GeoDistribution returns the top-N countries by summed click count.
	GeoDistribution(ctx context.Context, linkID uuid.UUID, limit int) ([]CountryClicks, error)

	// ClicksOverTime buckets summed click counts within the inclusive date
	// range, bucket keys ascending.
	ClicksOverTime(ctx context.Context, linkID uuid.UUID, start, end time.Time, bucket TimeBucket) ([]BucketClicks, error)

	// RecentActivity returns the last N rows by last_seen descending within
	// the date range.
	RecentActivity(ctx context.Context, linkID uuid.UUID, start, end time.Time, limit int) ([]ActivityRow, error)

	// Heatmap groups click counts by (day-of-week, hour-of-day) of
	// last_seen within the date range.
	Heatmap(ctx context.Context, linkID uuid.UUID, start, end time.Time) ([]HeatmapCell, error)

	// GeoStats groups click counts by (city, country, lat, lon), skipping
	// rows with missing coordinates.
	GeoStats(ctx context.Context, linkID uuid.UUID) ([]GeoPoint, error)

	// LinkSummaries returns per-link totals for every link of a company,
	// busiest first.
	LinkSummaries(ctx context.Context, companyID uuid.UUID) ([]LinkSummary, error)

	// SummaryByLocation is the admin rollup grouped by country and city.
	SummaryByLocation(ctx context.Context, linkID uuid.UUID) ([]LocationClicks, error)

	// Detail returns the raw counter rows for a link, newest activity
	// first.
	Detail(ctx context.Context, linkID uuid.UUID) ([]*entity.Click, error)
}
