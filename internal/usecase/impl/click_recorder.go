package impl

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"

	"go.uber.org/fx"

	"github.com/lreale4125-ux/taplinknfc/config"
	"github.com/lreale4125-ux/taplinknfc/internal/domain/entity"
	"github.com/lreale4125-ux/taplinknfc/internal/domain/lifecycle"
	"github.com/lreale4125-ux/taplinknfc/internal/domain/repository"
	"github.com/lreale4125-ux/taplinknfc/internal/domain/service"
	"github.com/lreale4125-ux/taplinknfc/internal/usecase"
)

// clickRecorder persists click events asynchronously through a fixed
// worker pool. The redirect path only ever touches the buffered channel;
// geo and user-agent enrichment happen on the workers.
type clickRecorder struct {
	analyticsRepo repository.AnalyticsRepository
	geoLocator    service.GeoLocator
	agentParser   service.AgentParser
	logger        *slog.Logger

	events  chan entity.ClickEvent
	wg      sync.WaitGroup
	dropped atomic.Int64
}

// ClickRecorderParams holds dependencies for clickRecorder, injected by Fx.
type ClickRecorderParams struct {
	fx.In

	LC            fx.Lifecycle
	Config        *config.Config
	AnalyticsRepo repository.AnalyticsRepository
	GeoLocator    service.GeoLocator
	AgentParser   service.AgentParser
	Logger        *slog.Logger
}

// NewClickRecorder builds the recorder and ties the worker pool to the fx
// lifecycle: workers start with the app and drain the queue on shutdown.
func NewClickRecorder(params ClickRecorderParams) usecase.ClickRecorder {
	recorder := &clickRecorder{
		analyticsRepo: params.AnalyticsRepo,
		geoLocator:    params.GeoLocator,
		agentParser:   params.AgentParser,
		logger:        params.Logger,
		events:        make(chan entity.ClickEvent, params.Config.Clicks.QueueSize),
	}

	workers := params.Config.Clicks.Workers

	params.LC.Append(fx.Hook{
		OnStart: func(context.Context) error {
			recorder.start(workers)

			return nil
		},
		OnStop: func(ctx context.Context) error {
			return recorder.stop(ctx)
		},
	})

	return recorder
}

// Enqueue hands off one event without ever blocking the caller. When the
// queue is full the event is dropped and counted; a redirect is worth more
// than a perfectly complete counter.
func (r *clickRecorder) Enqueue(event entity.ClickEvent) {
	select {
	case r.events <- event:
	default:
		if n := r.dropped.Add(1); n%100 == 1 {
			r.logger.Warn("Click queue full, dropping events", slog.Int64("totalDropped", n))
		}
	}
}

func (r *clickRecorder) start(workers int) {
	for i := 0; i < workers; i++ {
		r.wg.Add(1)
		go r.worker()
	}

	r.logger.Info("Click recorder started", slog.Int("workers", workers), slog.Int("queueSize", cap(r.events)))
}

// stop closes the queue and waits for the workers to drain it, bounded by
// the shutdown context.
func (r *clickRecorder) stop(ctx context.Context) error {
	close(r.events)

	done := make(chan struct{})
	go func() {
		r.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		r.logger.Warn("Click recorder shutdown timed out before draining queue")

		return ctx.Err()
	}
}

func (r *clickRecorder) worker() {
	defer r.wg.Done()

	for event := range r.events {
		r.record(event)
	}
}

func (r *clickRecorder) record(event entity.ClickEvent) {
	ctx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancel()

	location := r.geoLocator.Locate(event.IPAddress)
	device := r.agentParser.Parse(event.UserAgent)

	click := &entity.Click{
		LinkID:      event.LinkID,
		KeychainID:  event.KeychainID,
		IPAddress:   event.IPAddress,
		Source:      event.Source,
		UserAgent:   event.UserAgent,
		Referrer:    event.Referrer,
		Country:     location.Country,
		City:        location.City,
		Lat:         location.Lat,
		Lon:         location.Lon,
		OSName:      device.OSName,
		BrowserName: device.BrowserName,
		DeviceType:  device.DeviceType,
		ClickCount:  1,
		FirstSeen:   event.OccurredAt,
		LastSeen:    event.OccurredAt,
	}

	if err := r.analyticsRepo.UpsertClick(ctx, click); err != nil {
		// Recording is best effort: log and move on, the visitor already
		// got their redirect.
		r.logger.Error("Failed to record click",
			slog.String("linkID", event.LinkID.String()),
			slog.String("error", err.Error()))
	}
}
