// Package scheduler drives the monitoring loop: it selects due and
// resumable sites from the registry on each tick, runs probes with bounded
// concurrency against the shared engine, feeds results to the state
// machine, persists the outcome, and routes events to the notification
// gate and the best-effort publishers.
package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/Devashish-Jain/Uptime-Sentinel/internal/monitor/engine"
	apperrors "github.com/Devashish-Jain/Uptime-Sentinel/internal/monitor/errors"
	"github.com/Devashish-Jain/Uptime-Sentinel/internal/monitor/events"
	"github.com/Devashish-Jain/Uptime-Sentinel/internal/monitor/model"
	"github.com/Devashish-Jain/Uptime-Sentinel/internal/monitor/notify"
	"github.com/Devashish-Jain/Uptime-Sentinel/internal/monitor/realtime"
	"github.com/Devashish-Jain/Uptime-Sentinel/internal/monitor/state"
)

type Config struct {
	TickInterval     time.Duration
	ProbeTimeout     time.Duration
	ProbeConcurrency int
	InterProbeDelay  time.Duration
	State            state.Config
}

type Scheduler struct {
	cfg       Config
	repo      SiteRegistry
	eng       engine.Engine
	gate      *notify.Gate
	publisher realtime.Publisher
	stream    events.Stream
	logger    *zap.Logger

	ticker   *time.Ticker
	stopChan chan struct{}
	tickMu   sync.Mutex

	now func() time.Time
}

// SiteRegistry is the slice of the repository the scheduler needs.
type SiteRegistry interface {
	ListDue(ctx context.Context, now time.Time) ([]model.MonitoredSite, error)
	ListResumable(ctx context.Context, now time.Time) ([]model.MonitoredSite, error)
	Upsert(ctx context.Context, site model.MonitoredSite) (model.MonitoredSite, error)
}

func NewScheduler(cfg Config, repo SiteRegistry, eng engine.Engine, gate *notify.Gate, publisher realtime.Publisher, stream events.Stream, logger *zap.Logger) *Scheduler {
	if cfg.ProbeConcurrency <= 0 {
		cfg.ProbeConcurrency = 1
	}
	return &Scheduler{
		cfg:       cfg,
		repo:      repo,
		eng:       eng,
		gate:      gate,
		publisher: publisher,
		stream:    stream,
		logger:    logger,
		stopChan:  make(chan struct{}),
		now:       time.Now,
	}
}

// Start runs the loop: one immediate tick, then the recurring cadence.
func (s *Scheduler) Start() {
	go func() {
		s.ticker = time.NewTicker(s.cfg.TickInterval)
		s.onTick()
		for {
			select {
			case <-s.ticker.C:
				s.onTick()
			case <-s.stopChan:
				s.ticker.Stop()
				if s.stream != nil {
					s.stream.Close()
				}
				return
			}
		}
	}()
}

func (s *Scheduler) Stop() {
	s.stopChan <- struct{}{}
}

// onTick is single-flight: a tick arriving while the previous one is still
// processing is skipped, never queued.
func (s *Scheduler) onTick() {
	if !s.tickMu.TryLock() {
		s.logger.Warn("previous tick still in progress, skipping")
		return
	}
	defer s.tickMu.Unlock()

	ctx := context.Background()
	now := s.now()

	if err := s.eng.EnsureHealthy(ctx); err != nil {
		s.logger.Error("probing engine unhealthy, skipping tick", zap.Error(err))
		return
	}

	resumable, err := s.repo.ListResumable(ctx, now)
	if err != nil {
		s.logger.Error("failed to list resumable sites, aborting tick", zap.Error(err))
		return
	}
	for _, site := range resumable {
		resumed := state.Resume(site, now)
		if _, err = s.repo.Upsert(ctx, resumed); err != nil {
			s.logger.Error("failed to persist resume, aborting tick",
				zap.String("site_id", site.ID), zap.Error(err))
			return
		}
		s.logger.Info("site resumed from suspension",
			zap.String("site_id", site.ID), zap.String("site_name", site.Name))
	}

	due, err := s.repo.ListDue(ctx, now)
	if err != nil {
		s.logger.Error("failed to list due sites, aborting tick", zap.Error(err))
		return
	}
	if len(due) == 0 {
		return
	}
	s.processDue(ctx, due)
}

// processDue probes the due set with a bounded number of concurrent
// sessions and a small delay between launches so monitored origins never
// see a burst. A single probe failing never aborts the rest; the engine
// dying or the registry rejecting a write does, and the remaining sites
// wait for the next tick. Engine loss additionally triggers a restart.
func (s *Scheduler) processDue(ctx context.Context, sites []model.MonitoredSite) {
	sem := make(chan struct{}, s.cfg.ProbeConcurrency)
	var wg sync.WaitGroup
	var engineDown, registryDown atomic.Bool

	for i, site := range sites {
		sem <- struct{}{}
		if engineDown.Load() || registryDown.Load() {
			<-sem
			s.logger.Error("abandoning remaining probes of this tick",
				zap.Bool("engine_down", engineDown.Load()),
				zap.Bool("registry_down", registryDown.Load()),
				zap.Int("remaining", len(sites)-i))
			break
		}
		wg.Add(1)
		go func(site model.MonitoredSite) {
			defer wg.Done()
			defer func() { <-sem }()
			err := s.checkSite(ctx, site)
			switch {
			case errors.Is(err, apperrors.ErrEngineUnavailable):
				engineDown.Store(true)
			case err != nil:
				registryDown.Store(true)
			}
		}(site)
		if s.cfg.InterProbeDelay > 0 && i < len(sites)-1 {
			time.Sleep(s.cfg.InterProbeDelay)
		}
	}
	wg.Wait()

	if engineDown.Load() {
		if err := s.eng.Restart(ctx); err != nil {
			s.logger.Error("engine restart failed", zap.Error(err))
		} else {
			s.logger.Info("probing engine restarted")
		}
	}
}

// checkSite runs one probe and carries the result through the state
// machine, persistence, and event routing. The returned error is non-nil
// only for engine-level failure or a failed persist; the probe's own
// failure is already folded into the recorded result.
func (s *Scheduler) checkSite(ctx context.Context, site model.MonitoredSite) error {
	result, engErr := s.eng.Probe(ctx, site.URL, s.cfg.ProbeTimeout)
	now := s.now()

	updated, evs := state.Apply(site, result, now, s.cfg.State)

	if evs.Alert != nil && s.gate.OnDowntimeAlert(*evs.Alert) {
		updated.NotifiedForCurrentIncident = true
	}
	if evs.Recovery != nil {
		s.gate.OnRecovery(*evs.Recovery)
	}

	persisted, err := s.repo.Upsert(ctx, updated)
	if err != nil {
		s.logger.Error("failed to persist check result",
			zap.String("site_id", site.ID), zap.Error(err))
		if engErr != nil {
			return engErr
		}
		return fmt.Errorf("Scheduler.checkSite: %w", err)
	}

	if s.publisher != nil {
		if e := s.publisher.Publish(ctx, newSiteUpdatedEvent(persisted, result)); e != nil {
			s.logger.Warn("failed to publish site update", zap.String("site_id", site.ID), zap.Error(e))
		}
	}
	if s.stream != nil {
		if e := s.stream.PublishCheck(ctx, newCheckEvent(persisted, result)); e != nil {
			s.logger.Warn("failed to publish check event", zap.String("site_id", site.ID), zap.Error(e))
		}
	}
	return engErr
}

func newSiteUpdatedEvent(site model.MonitoredSite, result model.CheckResult) model.SiteUpdatedEvent {
	return model.SiteUpdatedEvent{
		SiteID:     site.ID,
		Name:       site.Name,
		Status:     site.Status,
		Suspended:  site.Suspended,
		StatusCode: result.StatusCode,
		DurationMs: result.DurationMs,
		ObservedAt: result.ObservedAt,
	}
}

func newCheckEvent(site model.MonitoredSite, result model.CheckResult) model.CheckEvent {
	ev := model.CheckEvent{
		SiteID:     site.ID,
		Status:     site.Status,
		StatusCode: result.StatusCode,
		DurationMs: result.DurationMs,
		ObservedAt: result.ObservedAt,
	}
	if site.Status == model.SiteStatusUp {
		ev.StatusNumeric = 1
	}
	return ev
}
