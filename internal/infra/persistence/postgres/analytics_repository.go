package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/lreale4125-ux/taplinknfc/internal/domain/entity"
	"github.com/lreale4125-ux/taplinknfc/internal/domain/repository"
	"github.com/lreale4125-ux/taplinknfc/internal/infra/persistence/model"
)

type analyticsRepository struct {
	db *gorm.DB
}

// NewAnalyticsRepository is the constructor for analyticsRepository.
func NewAnalyticsRepository(db *gorm.DB) repository.AnalyticsRepository {
	return &analyticsRepository{db: db}
}

// UpsertClick is a single INSERT ... ON CONFLICT statement against the
// composite visitor key. The increment happens inside the database, so
// concurrent clicks from the same visitor can never lose counts the way a
// read-then-write would. Device and location metadata are refreshed on
// conflict; first_seen is only ever written once.
func (repo *analyticsRepository) UpsertClick(ctx context.Context, click *entity.Click) error {
	clickM := fromClickDomain(click)

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{
				{Name: "link_id"},
				{Name: "ip_address"},
				{Name: "keychain_id"},
				{Name: "source"},
			},
			DoUpdates: clause.Assignments(map[string]any{
				"click_count":  gorm.Expr("analytics.click_count + 1"),
				"last_seen":    clickM.LastSeen,
				"user_agent":   clickM.UserAgent,
				"referrer":     clickM.Referrer,
				"country":      clickM.Country,
				"city":         clickM.City,
				"lat":          clickM.Lat,
				"lon":          clickM.Lon,
				"os_name":      clickM.OSName,
				"browser_name": clickM.BrowserName,
				"device_type":  clickM.DeviceType,
			}),
		}).
		Create(clickM).Error
	if err != nil {
		return errors.Wrap(err, "failed to upsert click")
	}

	return nil
}

func (repo *analyticsRepository) GeoDistribution(ctx context.Context, linkID uuid.UUID, limit int) ([]repository.CountryClicks, error) {
	var rows []repository.CountryClicks
	err := repo.db.WithContext(ctx).
		Model(&model.ClickModel{}).
		Select("COALESCE(country, 'Unknown') AS country, SUM(click_count) AS clicks").
		Where("link_id = ?", linkID).
		Group("COALESCE(country, 'Unknown')").
		Order("clicks DESC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to query geo distribution")
	}

	return rows, nil
}

func (repo *analyticsRepository) ClicksOverTime(ctx context.Context, linkID uuid.UUID, start, end time.Time, bucket repository.TimeBucket) ([]repository.BucketClicks, error) {
	format := bucketFormat(bucket)

	var rows []repository.BucketClicks
	err := repo.db.WithContext(ctx).
		Model(&model.ClickModel{}).
		Select("to_char(last_seen, ?) AS time_group, SUM(click_count) AS clicks", format).
		Where("link_id = ? AND last_seen >= ? AND last_seen <= ?", linkID, start, end).
		Group("time_group").
		Order("time_group ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to query clicks over time")
	}

	return rows, nil
}

// bucketFormat maps a bucket granularity onto a to_char pattern. IYYY-IW
// keys weeks by ISO year so the first days of January land in the right
// week bucket.
func bucketFormat(bucket repository.TimeBucket) string {
	switch bucket {
	case repository.BucketWeek:
		return "IYYY-IW"
	case repository.BucketMonth:
		return "YYYY-MM"
	case repository.BucketDay:
		return "YYYY-MM-DD"
	}

	return "YYYY-MM-DD"
}

func (repo *analyticsRepository) RecentActivity(ctx context.Context, linkID uuid.UUID, start, end time.Time, limit int) ([]repository.ActivityRow, error) {
	var rows []repository.ActivityRow
	err := repo.db.WithContext(ctx).
		Model(&model.ClickModel{}).
		Select("city, country, last_seen, os_name, browser_name, device_type").
		Where("link_id = ? AND last_seen >= ? AND last_seen <= ?", linkID, start, end).
		Order("last_seen DESC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to query recent activity")
	}

	return rows, nil
}

func (repo *analyticsRepository) Heatmap(ctx context.Context, linkID uuid.UUID, start, end time.Time) ([]repository.HeatmapCell, error) {
	var rows []repository.HeatmapCell
	err := repo.db.WithContext(ctx).
		Model(&model.ClickModel{}).
		Select("EXTRACT(DOW FROM last_seen)::int AS day_of_week, EXTRACT(HOUR FROM last_seen)::int AS hour_of_day, SUM(click_count) AS clicks").
		Where("link_id = ? AND last_seen >= ? AND last_seen <= ?", linkID, start, end).
		Group("day_of_week, hour_of_day").
		Order("day_of_week ASC, hour_of_day ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to query heatmap")
	}

	return rows, nil
}

func (repo *analyticsRepository) GeoStats(ctx context.Context, linkID uuid.UUID) ([]repository.GeoPoint, error) {
	var rows []repository.GeoPoint
	err := repo.db.WithContext(ctx).
		Model(&model.ClickModel{}).
		Select("city, country, lat, lon, SUM(click_count) AS total_clicks").
		Where("link_id = ? AND lat IS NOT NULL AND lon IS NOT NULL", linkID).
		Group("city, country, lat, lon").
		Order("total_clicks DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to query geo stats")
	}

	return rows, nil
}

func (repo *analyticsRepository) LinkSummaries(ctx context.Context, companyID uuid.UUID) ([]repository.LinkSummary, error) {
	var rows []repository.LinkSummary
	err := repo.db.WithContext(ctx).
		Model(&model.LinkModel{}).
		Select("links.id AS link_id, links.name, links.url, COALESCE(SUM(analytics.click_count), 0) AS total_clicks, COUNT(DISTINCT analytics.ip_address) AS unique_visitors").
		Joins("LEFT JOIN analytics ON analytics.link_id = links.id").
		Where("links.company_id = ?", companyID).
		Group("links.id, links.name, links.url").
		Order("total_clicks DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to query link summaries")
	}

	return rows, nil
}

func (repo *analyticsRepository) SummaryByLocation(ctx context.Context, linkID uuid.UUID) ([]repository.LocationClicks, error) {
	var rows []repository.LocationClicks
	err := repo.db.WithContext(ctx).
		Model(&model.ClickModel{}).
		Select("country, city, SUM(click_count) AS total_clicks").
		Where("link_id = ?", linkID).
		Group("country, city").
		Order("total_clicks DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to query summary by location")
	}

	return rows, nil
}

func (repo *analyticsRepository) Detail(ctx context.Context, linkID uuid.UUID) ([]*entity.Click, error) {
	var clickModels []*model.ClickModel
	if err := repo.db.WithContext(ctx).
		Where("link_id = ?", linkID).
		Order("last_seen DESC").
		Find(&clickModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to query click detail")
	}

	clicks := make([]*entity.Click, 0, len(clickModels))
	for _, clickM := range clickModels {
		clicks = append(clicks, toClickDomain(clickM))
	}

	return clicks, nil
}

func toClickDomain(data *model.ClickModel) *entity.Click {
	if data == nil {
		return nil
	}

	return &entity.Click{
		ID:          data.ID,
		LinkID:      data.LinkID,
		KeychainID:  data.KeychainID,
		IPAddress:   data.IPAddress,
		Source:      entity.Source(data.Source),
		UserAgent:   data.UserAgent,
		Referrer:    data.Referrer,
		Country:     data.Country,
		City:        data.City,
		Lat:         data.Lat,
		Lon:         data.Lon,
		OSName:      data.OSName,
		BrowserName: data.BrowserName,
		DeviceType:  data.DeviceType,
		ClickCount:  data.ClickCount,
		FirstSeen:   data.FirstSeen,
		LastSeen:    data.LastSeen,
	}
}

func fromClickDomain(data *entity.Click) *model.ClickModel {
	if data == nil {
		return nil
	}

	return &model.ClickModel{
		ID:          data.ID,
		LinkID:      data.LinkID,
		KeychainID:  data.KeychainID,
		IPAddress:   data.IPAddress,
		Source:      string(data.Source),
		UserAgent:   data.UserAgent,
		Referrer:    data.Referrer,
		Country:     data.Country,
		City:        data.City,
		Lat:         data.Lat,
		Lon:         data.Lon,
		OSName:      data.OSName,
		BrowserName: data.BrowserName,
		DeviceType:  data.DeviceType,
		ClickCount:  data.ClickCount,
		FirstSeen:   data.FirstSeen,
		LastSeen:    data.LastSeen,
	}
}
