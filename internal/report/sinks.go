package report

import (
	"context"
	"fmt"
	"io"
	"math"
	"sort"

	"go.uber.org/zap"

	"github.com/MJDEV50/fetch-coding-challenge/internal/stats"
)

// ConsoleSink prints one availability line per domain, rounded to a whole
// percent. Keys are sorted so successive reports are diffable.
type ConsoleSink struct {
	Out io.Writer
}

func NewConsoleSink(out io.Writer) *ConsoleSink {
	return &ConsoleSink{Out: out}
}

func (s *ConsoleSink) Emit(_ context.Context, snap stats.Snapshot) error {
	keys := make([]string, 0, len(snap.Domains))
	for k := range snap.Domains {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		pct := int(math.Round(snap.Domains[k].Pct))
		if _, err := fmt.Fprintf(s.Out, "%s has %d%% availability percentage\n", k, pct); err != nil {
			return err
		}
	}
	return nil
}

// ZapSink logs one structured entry per key, endpoints and domains alike,
// with exact percentages.
type ZapSink struct {
	Logger *zap.Logger
}

func NewZapSink(logger *zap.Logger) *ZapSink {
	return &ZapSink{Logger: logger}
}

func (s *ZapSink) Emit(_ context.Context, snap stats.Snapshot) error {
	for key, a := range snap.Endpoints {
		s.Logger.Info("availability",
			zap.String("endpoint", key),
			zap.Int64("up_count", a.Up),
			zap.Int64("total_count", a.Total),
			zap.Float64("availability_pct", a.Pct),
		)
	}
	for key, a := range snap.Domains {
		s.Logger.Info("availability",
			zap.String("domain", key),
			zap.Int64("up_count", a.Up),
			zap.Int64("total_count", a.Total),
			zap.Float64("availability_pct", a.Pct),
		)
	}
	return nil
}

// Multi fans a snapshot out to several sinks and reports the first error.
type Multi []Sink

func (m Multi) Emit(ctx context.Context, snap stats.Snapshot) error {
	var firstErr error
	for _, s := range m {
		if s == nil {
			continue
		}
		if err := s.Emit(ctx, snap); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
