package limiter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func newTestTracker(clock *time.Time) *PatternTracker {
	t := NewPatternTracker(DefaultConfig())
	t.now = func() time.Time { return *clock }
	return t
}

func TestObserveCountsDistinctIdentities(t *testing.T) {
	clock := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	tracker := newTestTracker(&clock)

	emailIPs, _, _ := tracker.Observe("1.1.1.1", "a@x.com", "ua")
	assert.Equal(t, 1, emailIPs)

	// Same IP again does not grow the set.
	emailIPs, _, _ = tracker.Observe("1.1.1.1", "a@x.com", "ua")
	assert.Equal(t, 1, emailIPs)

	emailIPs, _, _ = tracker.Observe("2.2.2.2", "a@x.com", "ua")
	assert.Equal(t, 2, emailIPs)

	_, ipAgents, ipEmails := tracker.Observe("1.1.1.1", "b@x.com", "other-ua")
	assert.Equal(t, 2, ipAgents)
	assert.Equal(t, 2, ipEmails)
}

func TestObserveWindowResets(t *testing.T) {
	clock := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	tracker := newTestTracker(&clock)

	tracker.Observe("1.1.1.1", "a@x.com", "ua")
	tracker.Observe("2.2.2.2", "a@x.com", "ua")

	// First observation after the window lapses starts a fresh entry; the
	// old correlations do not carry over.
	clock = clock.Add(time.Hour)
	emailIPs, ipAgents, ipEmails := tracker.Observe("3.3.3.3", "a@x.com", "ua")
	assert.Equal(t, 1, emailIPs)
	assert.Equal(t, 1, ipAgents)
	assert.Equal(t, 1, ipEmails)
}

func TestObserveSkipsEmptyIdentities(t *testing.T) {
	clock := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	tracker := newTestTracker(&clock)

	emailIPs, ipAgents, ipEmails := tracker.Observe("1.1.1.1", "", "")
	assert.Equal(t, 0, emailIPs)
	assert.Equal(t, 0, ipAgents)
	assert.Equal(t, 0, ipEmails)

	emails, ips := tracker.Len()
	assert.Equal(t, 0, emails)
	assert.Equal(t, 1, ips)
}

func TestSweepDropsStaleEntries(t *testing.T) {
	clock := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	tracker := newTestTracker(&clock)

	tracker.Observe("1.1.1.1", "old@x.com", "ua")

	clock = clock.Add(25 * time.Hour)
	tracker.Observe("2.2.2.2", "new@x.com", "ua")

	tracker.Sweep()

	emails, ips := tracker.Len()
	assert.Equal(t, 1, emails)
	assert.Equal(t, 1, ips)

	_, stale := tracker.emails["old@x.com"]
	assert.False(t, stale)
}
