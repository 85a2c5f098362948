// Package report periodically publishes availability snapshots to sinks.
package report

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/MJDEV50/fetch-coding-challenge/internal/stats"
)

// DefaultInterval is the fixed reporting cadence.
const DefaultInterval = 15 * time.Second

// Sink consumes one availability snapshot per reporting tick.
type Sink interface {
	Emit(ctx context.Context, snap stats.Snapshot) error
}

// Reporter reads the aggregator on its own cadence, independent of any probe
// cycle, and hands the snapshot to a sink.
type Reporter struct {
	Logger   *zap.Logger
	Stats    *stats.Aggregator
	Sink     Sink
	Interval time.Duration
}

func New(logger *zap.Logger, agg *stats.Aggregator, sink Sink, interval time.Duration) *Reporter {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Reporter{
		Logger:   logger,
		Stats:    agg,
		Sink:     sink,
		Interval: interval,
	}
}

// Run blocks until ctx is cancelled, emitting once per interval. An empty
// snapshot (no probes recorded yet) is skipped, not emitted.
func (r *Reporter) Run(ctx context.Context) {
	t := time.NewTicker(r.Interval)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			r.Logger.Info("reporter_stopped")
			return
		case <-t.C:
			r.emitOnce(ctx)
		}
	}
}

func (r *Reporter) emitOnce(ctx context.Context) {
	snap := r.Stats.Snapshot()
	if len(snap.Endpoints) == 0 && len(snap.Domains) == 0 {
		return
	}
	if err := r.Sink.Emit(ctx, snap); err != nil {
		r.Logger.Warn("report_emit_error", zap.Error(err))
	}
}
