package gateway

import (
	"sync"
	"time"
)

// breaker is the gateway's circuit breaker. Only the gateway mutates it, and
// always under the mutex; Health readers take the same lock for a consistent
// snapshot.
//
// States: closed (failures tracked in a sliding window), open (all calls shed
// until the open duration elapses), half-open (exactly one probe allowed
// through; its outcome closes or reopens the circuit).
type breaker struct {
	mu sync.Mutex

	window       time.Duration
	threshold    int
	openDuration time.Duration

	failures []time.Time
	openedAt *time.Time
	halfOpen bool
	probing  bool

	now func() time.Time // injectable clock for tests
}

func newBreaker(window time.Duration, threshold int, openDuration time.Duration) *breaker {
	return &breaker{
		window:       window,
		threshold:    threshold,
		openDuration: openDuration,
		now:          time.Now,
	}
}

// allow reports whether a call may go to the primary source, and whether that
// call is the half-open probe.
func (b *breaker) allow() (allowed, probe bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.openedAt != nil {
		if b.now().Sub(*b.openedAt) < b.openDuration {
			return false, false
		}
		// Open duration elapsed: exit to half-open, clear failure history,
		// and let exactly one probe through.
		b.openedAt = nil
		b.failures = nil
		b.halfOpen = true
	}

	if b.halfOpen {
		if b.probing {
			return false, false
		}
		b.probing = true
		return true, true
	}

	return true, false
}

// cancelProbe returns the half-open probe token without recording an outcome,
// for when the probe was shed before reaching the service (no slot).
func (b *breaker) cancelProbe() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.probing = false
}

// recordSuccess closes the circuit and clears the failure history.
func (b *breaker) recordSuccess() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.failures = nil
	b.openedAt = nil
	b.halfOpen = false
	b.probing = false
}

// recordFailure registers one terminal failure. A failed probe reopens the
// circuit immediately; otherwise the circuit opens when the windowed failure
// count reaches the threshold. Returns true when this failure opened the
// circuit.
func (b *breaker) recordFailure() bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	now := b.now()

	if b.probing {
		b.probing = false
		b.halfOpen = false
		b.failures = nil
		b.openedAt = &now
		return true
	}

	b.failures = append(b.failures, now)
	b.pruneLocked(now)

	if len(b.failures) >= b.threshold {
		b.openedAt = &now
		b.failures = nil
		return true
	}
	return false
}

// pruneLocked drops failure timestamps older than the window. Callers hold mu.
func (b *breaker) pruneLocked(now time.Time) {
	cutoff := now.Add(-b.window)
	kept := b.failures[:0]
	for _, t := range b.failures {
		if t.After(cutoff) {
			kept = append(kept, t)
		}
	}
	b.failures = kept
}

// snapshot returns the breaker state for Health: whether the circuit is open,
// the windowed failure count, and when it opened.
func (b *breaker) snapshot() (open bool, recentFailures int, openedAt *time.Time) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.pruneLocked(b.now())
	if b.openedAt != nil {
		t := *b.openedAt
		return true, len(b.failures), &t
	}
	return false, len(b.failures), nil
}
