package gateway

import (
	"sync/atomic"

	"github.com/jonathan/resume-tailor/internal/types"
)

// activeCounter counts in-flight generation calls for the Health snapshot.
// The semaphore enforces the cap; this only observes.
type activeCounter struct {
	n atomic.Int64
}

func (c *activeCounter) inc() { c.n.Add(1) }
func (c *activeCounter) dec() { c.n.Add(-1) }

// Health returns a read-only snapshot of the gateway's circuit and
// concurrency state. No side effects.
func (g *Gateway) Health() types.HealthStatus {
	open, failures, openedAt := g.breaker.snapshot()
	return types.HealthStatus{
		CircuitOpen:    open,
		ActiveRequests: int(g.active.n.Load()),
		RecentFailures: failures,
		OpenedAt:       openedAt,
	}
}
