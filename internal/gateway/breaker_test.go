package gateway

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClock drives the breaker's injectable clock.
type fakeClock struct {
	t time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{t: time.Date(2026, 1, 15, 9, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) now() time.Time          { return c.t }
func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func testBreaker(clock *fakeClock) *breaker {
	b := newBreaker(2*time.Minute, 3, 10*time.Minute)
	b.now = clock.now
	return b
}

func TestBreaker_StaysClosedBelowThreshold(t *testing.T) {
	clock := newFakeClock()
	b := testBreaker(clock)

	for i := 0; i < 2; i++ {
		assert.False(t, b.recordFailure())
		clock.advance(time.Second)
	}

	allowed, probe := b.allow()
	assert.True(t, allowed)
	assert.False(t, probe)

	open, failures, openedAt := b.snapshot()
	assert.False(t, open)
	assert.Equal(t, 2, failures)
	assert.Nil(t, openedAt)
}

func TestBreaker_OpensOnThresholdWithinWindow(t *testing.T) {
	clock := newFakeClock()
	b := testBreaker(clock)

	assert.False(t, b.recordFailure())
	clock.advance(time.Second)
	assert.False(t, b.recordFailure())
	clock.advance(time.Second)
	assert.True(t, b.recordFailure())

	allowed, _ := b.allow()
	assert.False(t, allowed)

	open, _, openedAt := b.snapshot()
	assert.True(t, open)
	require.NotNil(t, openedAt)
	assert.Equal(t, clock.t, *openedAt)
}

func TestBreaker_WindowPrunesOldFailures(t *testing.T) {
	clock := newFakeClock()
	b := testBreaker(clock)

	b.recordFailure()
	b.recordFailure()
	clock.advance(3 * time.Minute) // both fall out of the 2m window

	assert.False(t, b.recordFailure())
	allowed, _ := b.allow()
	assert.True(t, allowed)
}

func TestBreaker_SuccessClearsFailures(t *testing.T) {
	clock := newFakeClock()
	b := testBreaker(clock)

	b.recordFailure()
	b.recordFailure()
	b.recordSuccess()

	assert.False(t, b.recordFailure())
	assert.False(t, b.recordFailure())

	_, failures, _ := b.snapshot()
	assert.Equal(t, 2, failures)
}

func openBreaker(t *testing.T, b *breaker) {
	t.Helper()
	b.recordFailure()
	b.recordFailure()
	require.True(t, b.recordFailure())
}

func TestBreaker_ShedsWhileOpen(t *testing.T) {
	clock := newFakeClock()
	b := testBreaker(clock)
	openBreaker(t, b)

	clock.advance(9 * time.Minute)
	allowed, _ := b.allow()
	assert.False(t, allowed)
}

func TestBreaker_HalfOpenAllowsSingleProbe(t *testing.T) {
	clock := newFakeClock()
	b := testBreaker(clock)
	openBreaker(t, b)

	clock.advance(10 * time.Minute)

	allowed, probe := b.allow()
	assert.True(t, allowed)
	assert.True(t, probe)

	// While the probe is in flight every other call is shed.
	allowed, _ = b.allow()
	assert.False(t, allowed)
}

func TestBreaker_ProbeSuccessCloses(t *testing.T) {
	clock := newFakeClock()
	b := testBreaker(clock)
	openBreaker(t, b)

	clock.advance(10 * time.Minute)
	_, probe := b.allow()
	require.True(t, probe)
	b.recordSuccess()

	allowed, probe := b.allow()
	assert.True(t, allowed)
	assert.False(t, probe)

	open, failures, _ := b.snapshot()
	assert.False(t, open)
	assert.Equal(t, 0, failures)
}

func TestBreaker_ProbeFailureReopens(t *testing.T) {
	clock := newFakeClock()
	b := testBreaker(clock)
	openBreaker(t, b)

	clock.advance(10 * time.Minute)
	_, probe := b.allow()
	require.True(t, probe)
	assert.True(t, b.recordFailure())

	// Reopened for a full open duration.
	clock.advance(9 * time.Minute)
	allowed, _ := b.allow()
	assert.False(t, allowed)

	clock.advance(time.Minute)
	allowed, probe = b.allow()
	assert.True(t, allowed)
	assert.True(t, probe)
}

func TestBreaker_CancelProbeReleasesToken(t *testing.T) {
	clock := newFakeClock()
	b := testBreaker(clock)
	openBreaker(t, b)

	clock.advance(10 * time.Minute)
	_, probe := b.allow()
	require.True(t, probe)

	b.cancelProbe()

	allowed, probe := b.allow()
	assert.True(t, allowed)
	assert.True(t, probe)
}
