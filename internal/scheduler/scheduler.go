// Package scheduler drives one repeating probe cycle per endpoint.
package scheduler

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/MJDEV50/fetch-coding-challenge/internal/config"
	"github.com/MJDEV50/fetch-coding-challenge/internal/probe"
	"github.com/MJDEV50/fetch-coding-challenge/internal/stats"
)

// DefaultInterval is the fixed probe cadence.
const DefaultInterval = 15 * time.Second

// DefaultGrace bounds how long Run waits for in-flight probes after cancel.
const DefaultGrace = 5 * time.Second

// Scheduler runs one goroutine per endpoint. Each loop probes, records the
// outcome, then sleeps a full interval; elapsed probe time is not subtracted,
// so a slow probe drifts the cycle rather than triggering catch-up. Loops are
// independent: a hung endpoint never delays the others.
type Scheduler struct {
	Logger   *zap.Logger
	Checker  probe.Checker
	Stats    *stats.Aggregator
	Interval time.Duration
	Grace    time.Duration
}

func New(logger *zap.Logger, checker probe.Checker, agg *stats.Aggregator, interval time.Duration) *Scheduler {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Scheduler{
		Logger:   logger,
		Checker:  checker,
		Stats:    agg,
		Interval: interval,
		Grace:    DefaultGrace,
	}
}

// Run starts every endpoint loop and blocks until ctx is cancelled. After
// cancellation no new probes are issued; probes already in flight get up to
// Grace to finish before Run returns regardless.
func (s *Scheduler) Run(ctx context.Context, endpoints []config.Endpoint) {
	var wg sync.WaitGroup
	for _, ep := range endpoints {
		wg.Add(1)
		go func(ep config.Endpoint) {
			defer wg.Done()
			s.loop(ctx, ep)
		}(ep)
	}

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	<-ctx.Done()
	select {
	case <-done:
		s.Logger.Info("scheduler_stopped")
	case <-time.After(s.Grace):
		s.Logger.Warn("scheduler_grace_elapsed")
	}
}

func (s *Scheduler) loop(ctx context.Context, ep config.Endpoint) {
	for {
		if ctx.Err() != nil {
			return
		}
		s.probeOnce(ctx, ep)

		select {
		case <-ctx.Done():
			return
		case <-time.After(s.Interval):
		}
	}
}

func (s *Scheduler) probeOnce(ctx context.Context, ep config.Endpoint) {
	// Detach cancellation: a probe that started before shutdown may finish
	// inside the grace window instead of being aborted mid-request.
	out := s.Checker.Check(context.WithoutCancel(ctx), ep)
	s.Stats.Record(out)

	fields := []zap.Field{
		zap.String("endpoint", ep.Name),
		zap.String("url", ep.URL),
		zap.String("classification", string(out.Classification)),
	}
	if out.StatusCode != nil {
		fields = append(fields, zap.Int("status", *out.StatusCode))
	}
	if out.LatencyMS != nil {
		fields = append(fields, zap.Float64("latency_ms", *out.LatencyMS))
	}
	if out.Reason != "" {
		fields = append(fields, zap.String("reason", out.Reason))
	}
	s.Logger.Debug("probe_complete", fields...)
}
