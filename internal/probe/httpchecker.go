package probe

import (
	"context"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/MJDEV50/fetch-coding-challenge/internal/config"
)

// probeTimeout bounds a single probe end to end. Not configurable.
const probeTimeout = 5 * time.Second

// maxResponseBody caps how much of a response we drain while timing it.
const maxResponseBody = 1 << 20 // 1MB

// HTTPChecker probes endpoints with a shared HTTP client. Redirects are
// followed inside the timed request.
type HTTPChecker struct {
	Client *http.Client
}

func NewHTTPChecker() *HTTPChecker {
	return &HTTPChecker{
		Client: &http.Client{Timeout: probeTimeout},
	}
}

// Check issues exactly one request for the endpoint and classifies the
// result. It never returns an error: every failure mode becomes a DOWN
// outcome so one bad endpoint cannot disturb the cycle.
func (c *HTTPChecker) Check(ctx context.Context, ep config.Endpoint) Outcome {
	out := Outcome{
		Endpoint:       ep.Name,
		Domain:         ep.Domain(),
		Classification: Down,
		CheckedAt:      time.Now().UTC(),
	}

	method := ep.Method
	if method == "" {
		method = http.MethodGet
	}

	var payload io.Reader
	if ep.Body != "" {
		payload = strings.NewReader(ep.Body)
	}

	start := time.Now()
	req, err := http.NewRequestWithContext(ctx, method, ep.URL, payload)
	if err != nil {
		out.Reason = err.Error()
		return out
	}
	for k, v := range ep.Headers {
		req.Header.Set(k, v)
	}
	if ep.Body != "" && req.Header.Get("Content-Type") == "" {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.Client.Do(req)
	if err != nil {
		out.Reason = err.Error()
		return out
	}
	defer resp.Body.Close()

	// Latency covers the full response, not just the headers.
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxResponseBody))
	lat := time.Since(start).Seconds() * 1000

	out.StatusCode = &resp.StatusCode
	out.LatencyMS = &lat
	out.Classification = Classify(resp.StatusCode, lat)
	if !out.Up() {
		out.Reason = resp.Status
		if lat >= MaxLatencyMS {
			out.Reason = "slow_response"
		}
	}
	return out
}
