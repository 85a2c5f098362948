// Package stats accumulates probe outcomes into per-endpoint and per-domain
// availability counters for the lifetime of the process.
package stats

import (
	"sync"
	"sync/atomic"

	"github.com/MJDEV50/fetch-coding-challenge/internal/probe"
)

// counters is one tracked key's tally. Total is bumped before up so that a
// concurrent snapshot (which loads up first) can never observe up > total.
type counters struct {
	up    atomic.Int64
	total atomic.Int64
}

func (c *counters) bump(up bool) {
	c.total.Add(1)
	if up {
		c.up.Add(1)
	}
}

// Availability is a point-in-time view of one key.
type Availability struct {
	Up    int64   `json:"up_count"`
	Total int64   `json:"total_count"`
	Pct   float64 `json:"availability_pct"`
}

// Snapshot is a consistent-per-key copy of all counters. Endpoint and domain
// keyspaces are kept apart so an endpoint named like a host cannot collide
// with the host's own aggregate.
type Snapshot struct {
	Endpoints map[string]Availability `json:"endpoints"`
	Domains   map[string]Availability `json:"domains"`
}

// Aggregator owns all availability counters. Probe loops submit outcomes via
// Record; nothing else mutates the counters. Safe for concurrent use: keys
// are created under a lock, but increments on existing keys are lock-free
// atomics, so writers to different keys do not contend.
type Aggregator struct {
	mu        sync.RWMutex
	endpoints map[string]*counters
	domains   map[string]*counters
}

func NewAggregator() *Aggregator {
	return &Aggregator{
		endpoints: make(map[string]*counters),
		domains:   make(map[string]*counters),
	}
}

// Record applies one probe outcome: the endpoint key and, when the URL has a
// host, the derived domain key each gain one observation.
func (a *Aggregator) Record(o probe.Outcome) {
	up := o.Up()
	a.counter(a.endpoints, o.Endpoint).bump(up)
	if o.Domain != "" {
		a.counter(a.domains, o.Domain).bump(up)
	}
}

func (a *Aggregator) counter(m map[string]*counters, key string) *counters {
	a.mu.RLock()
	c, ok := m[key]
	a.mu.RUnlock()
	if ok {
		return c
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	if c, ok = m[key]; ok {
		return c
	}
	c = &counters{}
	m[key] = c
	return c
}

// Snapshot copies the current counters. Keys appear only once they have at
// least one observation; availability is exactly 100*up/total.
func (a *Aggregator) Snapshot() Snapshot {
	a.mu.RLock()
	eps := make(map[string]*counters, len(a.endpoints))
	doms := make(map[string]*counters, len(a.domains))
	for k, c := range a.endpoints {
		eps[k] = c
	}
	for k, c := range a.domains {
		doms[k] = c
	}
	a.mu.RUnlock()

	return Snapshot{
		Endpoints: render(eps),
		Domains:   render(doms),
	}
}

func render(m map[string]*counters) map[string]Availability {
	out := make(map[string]Availability, len(m))
	for k, c := range m {
		// up before total: see counters.bump.
		up := c.up.Load()
		total := c.total.Load()
		if total == 0 {
			continue
		}
		out[k] = Availability{
			Up:    up,
			Total: total,
			Pct:   100 * float64(up) / float64(total),
		}
	}
	return out
}
