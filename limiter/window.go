package limiter

import (
	"sync"
	"time"
)

// MemoryWindow is the in-process sliding window counter. It keeps an
// ordered timestamp list per tracking key, prunes lazily on access and in
// the background sweep, and applies a multi-key check-and-record as a
// single critical section: either every key of a request is counted or
// none is.
type MemoryWindow struct {
	mu      sync.Mutex
	entries map[string][]time.Time

	window time.Duration

	now func() time.Time
}

func NewMemoryWindow(cfg Config) *MemoryWindow {
	return &MemoryWindow{
		entries: make(map[string][]time.Time),
		window:  cfg.Window,
		now:     time.Now,
	}
}

// CheckAndRecord prunes each key's window, rejects if any key already sits
// at or above the effective limit, and otherwise stamps the current time
// onto every key. Returns whether the request fit and the highest count
// seen across its keys.
func (w *MemoryWindow) CheckAndRecord(keys []string, limit int) (allowed bool, maxCount int) {
	now := w.now()
	windowStart := now.Add(-w.window)

	w.mu.Lock()
	defer w.mu.Unlock()

	pruned := make(map[string][]time.Time, len(keys))
	for _, key := range keys {
		valid := pruneBefore(w.entries[key], windowStart)
		pruned[key] = valid
		if len(valid) > maxCount {
			maxCount = len(valid)
		}
	}

	if maxCount >= limit {
		// Nothing is recorded on rejection so a denied request never
		// consumes quota on its sibling keys.
		return false, maxCount
	}

	for _, key := range keys {
		updated := append(pruned[key], now)
		w.entries[key] = updated
		if len(updated) > maxCount {
			maxCount = len(updated)
		}
	}

	return true, maxCount
}

// Count reports the live entries for one key without recording anything.
func (w *MemoryWindow) Count(key string) int {
	windowStart := w.now().Add(-w.window)

	w.mu.Lock()
	defer w.mu.Unlock()

	return len(pruneBefore(w.entries[key], windowStart))
}

// Sweep removes expired timestamps across the store and drops keys whose
// windows emptied out.
func (w *MemoryWindow) Sweep() {
	windowStart := w.now().Add(-w.window)

	w.mu.Lock()
	defer w.mu.Unlock()

	for key, stamps := range w.entries {
		valid := pruneBefore(stamps, windowStart)
		if len(valid) == 0 {
			delete(w.entries, key)
		} else {
			w.entries[key] = valid
		}
	}
}

// Len reports how many keys currently hold entries.
func (w *MemoryWindow) Len() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.entries)
}

func pruneBefore(stamps []time.Time, cutoff time.Time) []time.Time {
	// Timestamps are appended in order, so find the first live one.
	idx := 0
	for idx < len(stamps) && !stamps[idx].After(cutoff) {
		idx++
	}
	if idx == 0 {
		return stamps
	}
	return append([]time.Time(nil), stamps[idx:]...)
}
