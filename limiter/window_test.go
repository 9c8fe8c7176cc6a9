package limiter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func newTestWindow(clock *time.Time) *MemoryWindow {
	w := NewMemoryWindow(DefaultConfig())
	w.now = func() time.Time { return *clock }
	return w
}

func TestCheckAndRecordEnforcesLimit(t *testing.T) {
	clock := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	w := newTestWindow(&clock)
	keys := []string{"ip_1.2.3.4", "email_a@x.com"}

	for i := 0; i < 3; i++ {
		allowed, _ := w.CheckAndRecord(keys, 3)
		assert.True(t, allowed, "request %d should fit", i+1)
		clock = clock.Add(time.Minute)
	}

	allowed, maxCount := w.CheckAndRecord(keys, 3)
	assert.False(t, allowed)
	assert.Equal(t, 3, maxCount)
}

func TestCheckAndRecordAllOrNothing(t *testing.T) {
	clock := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	w := newTestWindow(&clock)

	// Saturate one key on its own.
	for i := 0; i < 3; i++ {
		w.CheckAndRecord([]string{"ip_1.2.3.4"}, 3)
	}

	// A request sharing the saturated key is denied, and its fresh
	// sibling key stays untouched.
	allowed, _ := w.CheckAndRecord([]string{"ip_1.2.3.4", "email_a@x.com"}, 3)
	assert.False(t, allowed)
	assert.Equal(t, 0, w.Count("email_a@x.com"))
}

func TestCheckAndRecordSlidesWithTime(t *testing.T) {
	clock := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	w := newTestWindow(&clock)
	keys := []string{"ip_1.2.3.4"}

	for i := 0; i < 3; i++ {
		w.CheckAndRecord(keys, 3)
	}
	allowed, _ := w.CheckAndRecord(keys, 3)
	assert.False(t, allowed)

	// Once the earliest stamps fall out of the hour, quota frees up.
	clock = clock.Add(61 * time.Minute)
	allowed, _ = w.CheckAndRecord(keys, 3)
	assert.True(t, allowed)
	assert.Equal(t, 1, w.Count("ip_1.2.3.4"))
}

func TestReducedLimitForSuspiciousKeys(t *testing.T) {
	clock := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	w := newTestWindow(&clock)
	keys := []string{"ip_1.2.3.4"}

	allowed, _ := w.CheckAndRecord(keys, 1)
	assert.True(t, allowed)

	allowed, _ = w.CheckAndRecord(keys, 1)
	assert.False(t, allowed)
}

func TestSweepDropsEmptyKeys(t *testing.T) {
	clock := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	w := newTestWindow(&clock)

	w.CheckAndRecord([]string{"ip_1.2.3.4"}, 3)
	assert.Equal(t, 1, w.Len())

	clock = clock.Add(2 * time.Hour)
	w.Sweep()
	assert.Equal(t, 0, w.Len())
}
