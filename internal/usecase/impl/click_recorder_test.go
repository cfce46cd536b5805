package impl

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/lreale4125-ux/taplinknfc/internal/domain/entity"
	"github.com/lreale4125-ux/taplinknfc/internal/domain/service"
	mockRepo "github.com/lreale4125-ux/taplinknfc/internal/mocks/repository"
	mockSvc "github.com/lreale4125-ux/taplinknfc/internal/mocks/service"

	"github.com/google/uuid"
)

func newClickRecorder(t *testing.T, queueSize int) (*clickRecorder, *mockRepo.MockAnalyticsRepository, *mockSvc.MockGeoLocator, *mockSvc.MockAgentParser) {
	analyticsRepo := mockRepo.NewMockAnalyticsRepository(t)
	geoLocator := mockSvc.NewMockGeoLocator(t)
	agentParser := mockSvc.NewMockAgentParser(t)

	recorder := &clickRecorder{
		analyticsRepo: analyticsRepo,
		geoLocator:    geoLocator,
		agentParser:   agentParser,
		logger:        testLogger(),
		events:        make(chan entity.ClickEvent, queueSize),
	}

	return recorder, analyticsRepo, geoLocator, agentParser
}

func TestClickRecorder_RecordsEnrichedClick(t *testing.T) {
	recorder, analyticsRepo, geoLocator, agentParser := newClickRecorder(t, 8)

	country := "Italy"
	city := "Rome"
	osName := "iOS"
	browser := "Safari"
	device := "mobile"

	geoLocator.EXPECT().Locate("203.0.113.9").Return(service.Location{
		Country: &country,
		City:    &city,
	})
	agentParser.EXPECT().Parse("Mozilla/5.0").Return(service.DeviceInfo{
		OSName:      &osName,
		BrowserName: &browser,
		DeviceType:  &device,
	})

	event := entity.ClickEvent{
		LinkID:     uuid.New(),
		KeychainID: uuid.New(),
		Source:     entity.SourceQR,
		IPAddress:  "203.0.113.9",
		UserAgent:  "Mozilla/5.0",
		Referrer:   "https://search.example",
		OccurredAt: time.Now(),
	}

	analyticsRepo.EXPECT().
		UpsertClick(mock.Anything, mock.AnythingOfType("*entity.Click")).
		Run(func(ctx context.Context, click *entity.Click) {
			assert.Equal(t, event.LinkID, click.LinkID)
			assert.Equal(t, event.KeychainID, click.KeychainID)
			assert.Equal(t, entity.SourceQR, click.Source)
			assert.Equal(t, &country, click.Country)
			assert.Equal(t, &osName, click.OSName)
			assert.Equal(t, int64(1), click.ClickCount)
			assert.Equal(t, event.OccurredAt, click.FirstSeen)
			assert.Equal(t, event.OccurredAt, click.LastSeen)
		}).
		Return(nil)

	recorder.start(1)
	recorder.Enqueue(event)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	require.NoError(t, recorder.stop(ctx))
}

func TestClickRecorder_DropsWhenQueueFull(t *testing.T) {
	// One slot and no running workers, so the second event has nowhere
	// to go.
	recorder, _, _, _ := newClickRecorder(t, 1)

	recorder.Enqueue(entity.ClickEvent{LinkID: uuid.New()})
	recorder.Enqueue(entity.ClickEvent{LinkID: uuid.New()})

	assert.Equal(t, int64(1), recorder.dropped.Load())
	assert.Len(t, recorder.events, 1)
}

func TestClickRecorder_StopDrainsQueue(t *testing.T) {
	recorder, analyticsRepo, geoLocator, agentParser := newClickRecorder(t, 8)

	geoLocator.EXPECT().Locate(mock.AnythingOfType("string")).Return(service.Location{})
	agentParser.EXPECT().Parse(mock.AnythingOfType("string")).Return(service.DeviceInfo{})
	analyticsRepo.EXPECT().
		UpsertClick(mock.Anything, mock.AnythingOfType("*entity.Click")).
		Return(nil).
		Times(3)

	for i := 0; i < 3; i++ {
		recorder.Enqueue(entity.ClickEvent{LinkID: uuid.New(), OccurredAt: time.Now()})
	}

	recorder.start(2)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	require.NoError(t, recorder.stop(ctx))
}
