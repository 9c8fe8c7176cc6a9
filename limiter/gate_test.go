package limiter

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeLedger is an in-memory Ledger with switchable failure modes.
type fakeLedger struct {
	mu      sync.Mutex
	records map[string]Record
	meta    map[string]Metadata

	findErr   error
	upsertErr error
	clearErr  error

	cleared [][]string
}

func newFakeLedger() *fakeLedger {
	return &fakeLedger{
		records: make(map[string]Record),
		meta:    make(map[string]Metadata),
	}
}

func (f *fakeLedger) Find(_ context.Context, keys []string) ([]Record, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.findErr != nil {
		return nil, f.findErr
	}

	var out []Record
	for _, key := range keys {
		if rec, ok := f.records[key]; ok {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (f *fakeLedger) ClearBlocks(_ context.Context, keys []string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.clearErr != nil {
		return f.clearErr
	}

	f.cleared = append(f.cleared, keys)
	for _, key := range keys {
		rec, ok := f.records[key]
		if !ok {
			continue
		}
		rec.LastBlockedAt = nil
		f.records[key] = rec
	}
	return nil
}

func (f *fakeLedger) Upsert(_ context.Context, rec Record, meta Metadata) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.upsertErr != nil {
		return f.upsertErr
	}

	f.records[rec.Key] = rec
	f.meta[rec.Key] = meta
	return nil
}

func newTestGate(ledger Ledger, clock *time.Time) *Gate {
	g := NewGate(DefaultConfig(), ledger)
	g.now = func() time.Time { return *clock }
	g.window.now = g.now
	g.patterns.now = g.now
	return g
}

func cleanRequest(ip, email string) Request {
	return NewRequest(ip, email, cleanHeaders())
}

func TestGateQuotaThenStrikeThenBlock(t *testing.T) {
	clock := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	ledger := newFakeLedger()
	g := newTestGate(ledger, &clock)
	ctx := context.Background()

	// Three rapid submissions from a clean sender all pass.
	for i := 0; i < 3; i++ {
		d := g.Check(ctx, cleanRequest("1.2.3.4", "a@test.com"))
		require.True(t, d.Allowed, "submission %d", i+1)
		assert.Equal(t, ReasonAllowed, d.Reason)
		assert.Equal(t, 0, d.Score)
		clock = clock.Add(time.Minute)
	}

	// The fourth inside the hour earns the first strike and a 2 hour block.
	d := g.Check(ctx, cleanRequest("1.2.3.4", "a@test.com"))
	require.False(t, d.Allowed)
	assert.Equal(t, ReasonRateLimited, d.Reason)
	assert.Equal(t, "Rate limit exceeded. Blocked for 2 hours. Strike 1/5.", d.Message)
	assert.Equal(t, 1, d.Strikes)
	assert.False(t, d.Permanent)

	// While the block holds, further attempts report it without escalating.
	clock = clock.Add(time.Minute)
	d = g.Check(ctx, cleanRequest("1.2.3.4", "a@test.com"))
	require.False(t, d.Allowed)
	assert.Equal(t, ReasonBlocked, d.Reason)
	assert.Equal(t, "You are blocked. Try again after 2 hours.", d.Message)
	assert.Equal(t, 1, d.Strikes)

	ledger.mu.Lock()
	rec := ledger.records["email_a@test.com"]
	ledger.mu.Unlock()
	assert.Equal(t, 1, rec.Strikes)
}

func TestGateTracksAllKeys(t *testing.T) {
	clock := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	ledger := newFakeLedger()
	g := newTestGate(ledger, &clock)
	ctx := context.Background()

	d := g.Check(ctx, cleanRequest("1.2.3.4", "a@test.com"))
	require.True(t, d.Allowed)
	require.Len(t, d.Keys, 4)

	for _, key := range d.Keys {
		assert.Equal(t, 1, g.WindowCount(key), key)
	}
}

func TestGateImmediateBlock(t *testing.T) {
	clock := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	ledger := newFakeLedger()
	g := newTestGate(ledger, &clock)

	// Bare headers plus a tooling agent and a throwaway address push the
	// score past the immediate threshold.
	r := NewRequest("1.2.3.4", "spam@tempmail.org", map[string]string{
		"User-Agent": "python-requests/2.31",
	})
	d := g.Check(context.Background(), r)

	require.False(t, d.Allowed)
	assert.Equal(t, ReasonSuspicious, d.Reason)
	assert.Equal(t, "Request blocked due to suspicious activity.", d.Message)
	assert.GreaterOrEqual(t, d.Score, 8)

	// An immediate block never consumes window quota.
	for _, key := range d.Keys {
		assert.Equal(t, 0, g.WindowCount(key), key)
	}

	// It does strike the ledger, at the triple multiplier.
	ledger.mu.Lock()
	rec := ledger.records["ip_1.2.3.4"]
	ledger.mu.Unlock()
	assert.Equal(t, 3, rec.Strikes)
	assert.Equal(t, "suspicious activity", ledger.meta["ip_1.2.3.4"].BlockReason)
}

func TestGateReducedQuota(t *testing.T) {
	clock := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	g := newTestGate(newFakeLedger(), &clock)
	ctx := context.Background()

	// A tooling agent with a digit-run address scores 3, dropping the
	// quota to 2.
	mkReq := func() Request {
		h := cleanHeaders()
		h["User-Agent"] = "curl/8.4.0"
		return NewRequest("1.2.3.4", "user99999@example.com", h)
	}

	for i := 0; i < 2; i++ {
		d := g.Check(ctx, mkReq())
		require.True(t, d.Allowed, "submission %d", i+1)
		assert.Equal(t, 3, d.Score)
	}

	d := g.Check(ctx, mkReq())
	require.False(t, d.Allowed)
	assert.Equal(t, "Rate limit exceeded. Blocked for 2 hours. Strike 1/5.", d.Message)
}

func TestGateStrictQuotaDoubleStrike(t *testing.T) {
	clock := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	g := newTestGate(newFakeLedger(), &clock)
	ctx := context.Background()

	// Disposable domain plus tooling agent scores 5: quota 1, strikes x2.
	mkReq := func() Request {
		h := cleanHeaders()
		h["User-Agent"] = "curl/8.4.0"
		return NewRequest("1.2.3.4", "spam@mailinator.com", h)
	}

	d := g.Check(ctx, mkReq())
	require.True(t, d.Allowed)
	assert.Equal(t, 5, d.Score)

	d = g.Check(ctx, mkReq())
	require.False(t, d.Allowed)
	assert.Equal(t, 2, d.Strikes)
	assert.Equal(t, "Rate limit exceeded. Blocked for 12 hours. Strike 2/5.", d.Message)
}

func TestGateEscalationToPermanent(t *testing.T) {
	clock := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	ledger := newFakeLedger()
	g := newTestGate(ledger, &clock)
	ctx := context.Background()

	// A re-armed key already at four strikes violates once more and caps
	// out.
	ledger.records["ip_1.2.3.4"] = Record{Key: "ip_1.2.3.4", Strikes: 4}

	// Burn the quota.
	for i := 0; i < 3; i++ {
		d := g.Check(ctx, cleanRequest("1.2.3.4", "a@test.com"))
		require.True(t, d.Allowed)
	}

	d := g.Check(ctx, cleanRequest("1.2.3.4", "a@test.com"))
	require.False(t, d.Allowed)
	assert.True(t, d.Permanent)
	assert.Equal(t, 5, d.Strikes)
	assert.Equal(t, "Permanently blocked due to repeated violations.", d.Message)
}

func TestGatePermanentBlockReadPath(t *testing.T) {
	clock := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	ledger := newFakeLedger()
	g := newTestGate(ledger, &clock)

	blockedAt := clock.Add(-time.Hour)
	ledger.records["ip_1.2.3.4"] = Record{Key: "ip_1.2.3.4", Strikes: 5, LastBlockedAt: &blockedAt}

	d := g.Check(context.Background(), cleanRequest("1.2.3.4", "a@test.com"))
	require.False(t, d.Allowed)
	assert.True(t, d.Permanent)
	assert.Equal(t, "You are permanently blocked from sending contact messages.", d.Message)
	assert.Zero(t, d.RetryAfter)
}

func TestGateReArmsExpiredBlocks(t *testing.T) {
	clock := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	ledger := newFakeLedger()
	g := newTestGate(ledger, &clock)

	// One strike means a 2 hour block; three hours have passed.
	blockedAt := clock.Add(-3 * time.Hour)
	ledger.records["ip_1.2.3.4"] = Record{Key: "ip_1.2.3.4", Strikes: 1, LastBlockedAt: &blockedAt}

	d := g.Check(context.Background(), cleanRequest("1.2.3.4", "a@test.com"))
	require.True(t, d.Allowed)

	// The block is cleared but the strike history survives for the next
	// escalation.
	ledger.mu.Lock()
	rec := ledger.records["ip_1.2.3.4"]
	ledger.mu.Unlock()
	assert.Nil(t, rec.LastBlockedAt)
	assert.Equal(t, 1, rec.Strikes)
	assert.Len(t, ledger.cleared, 1)
}

func TestGateFailsOpenOnLedgerErrors(t *testing.T) {
	clock := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	ledger := newFakeLedger()
	ledger.findErr = errors.New("connection refused")
	ledger.upsertErr = errors.New("connection refused")
	g := newTestGate(ledger, &clock)
	ctx := context.Background()

	// The quota still holds from memory alone.
	for i := 0; i < 3; i++ {
		d := g.Check(ctx, cleanRequest("1.2.3.4", "a@test.com"))
		require.True(t, d.Allowed, "submission %d", i+1)
	}

	d := g.Check(ctx, cleanRequest("1.2.3.4", "a@test.com"))
	require.False(t, d.Allowed)
	assert.Equal(t, ReasonRateLimited, d.Reason)
	assert.Equal(t, "Rate limit exceeded. Please try again later.", d.Message)
	assert.Zero(t, d.Strikes)
}

func TestGateStats(t *testing.T) {
	clock := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	g := newTestGate(newFakeLedger(), &clock)

	g.Check(context.Background(), cleanRequest("1.2.3.4", "a@test.com"))

	windowKeys, emailPatterns, ipPatterns := g.Stats()
	assert.Equal(t, 4, windowKeys)
	assert.Equal(t, 1, emailPatterns)
	assert.Equal(t, 1, ipPatterns)
}

func TestFormatRemaining(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{2 * time.Hour, "2 hours"},
		{time.Hour + time.Minute, "2 hours"},
		{time.Hour, "1 hours"},
		{59 * time.Minute, "59 minutes"},
		{90 * time.Second, "2 minutes"},
		{10 * time.Second, "1 minutes"},
		{0, "1 minutes"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, formatRemaining(tt.d), tt.d.String())
	}
}
