package probe

import (
	"context"
	"time"

	"github.com/MJDEV50/fetch-coding-challenge/internal/config"
)

// Classification is the UP/DOWN verdict for a single probe.
type Classification string

const (
	Up   Classification = "UP"
	Down Classification = "DOWN"
)

// MaxLatencyMS is the latency bound for an UP verdict. A probe taking exactly
// this long is DOWN.
const MaxLatencyMS = 500.0

// Outcome holds the result of one probe against one endpoint.
//
// StatusCode and LatencyMS are nil when no response was received at all
// (timeout, DNS failure, connection refused, TLS error). The outcome is still
// classified DOWN in that case; a failed probe is never dropped.
type Outcome struct {
	Endpoint       string
	Domain         string
	StatusCode     *int
	LatencyMS      *float64
	Classification Classification
	Reason         string
	CheckedAt      time.Time
}

// Up reports whether the outcome was classified UP.
func (o Outcome) Up() bool { return o.Classification == Up }

// Classify applies the fixed verdict rule: UP iff the status is 2xx and the
// latency is strictly under MaxLatencyMS.
func Classify(statusCode int, latencyMS float64) Classification {
	if statusCode >= 200 && statusCode <= 299 && latencyMS < MaxLatencyMS {
		return Up
	}
	return Down
}

// Checker performs a single probe for an endpoint.
type Checker interface {
	Check(ctx context.Context, ep config.Endpoint) Outcome
}
