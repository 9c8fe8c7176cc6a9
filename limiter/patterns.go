package limiter

import (
	"sync"
	"time"
)

type emailPattern struct {
	ips       map[string]struct{}
	firstSeen time.Time
}

type ipPattern struct {
	agents    map[string]struct{}
	emails    map[string]struct{}
	firstSeen time.Time
}

// PatternTracker correlates one identity across others inside a fixed
// window anchored at first sight: the same email arriving from several IPs,
// or one IP cycling user agents or emails. Entries restart their window on
// the first observation after it lapses, and are purged outright once older
// than the max age.
type PatternTracker struct {
	mu     sync.Mutex
	emails map[string]*emailPattern
	ips    map[string]*ipPattern

	window time.Duration
	maxAge time.Duration

	now func() time.Time
}

func NewPatternTracker(cfg Config) *PatternTracker {
	return &PatternTracker{
		emails: make(map[string]*emailPattern),
		ips:    make(map[string]*ipPattern),
		window: cfg.PatternWindow,
		maxAge: cfg.PatternMaxAge,
		now:    time.Now,
	}
}

// Observe records the request's identities and returns how many distinct
// IPs the email has used, and how many distinct agents and emails the IP
// has used, within the current window. Counts outside the window report as
// zero so callers never score on stale correlations.
func (t *PatternTracker) Observe(ip, email, userAgent string) (emailIPs, ipAgents, ipEmails int) {
	now := t.now()

	t.mu.Lock()
	defer t.mu.Unlock()

	if email != "" {
		entry, ok := t.emails[email]
		if !ok || now.Sub(entry.firstSeen) >= t.window {
			entry = &emailPattern{ips: make(map[string]struct{}), firstSeen: now}
			t.emails[email] = entry
		}
		if ip != "" {
			entry.ips[ip] = struct{}{}
		}
		emailIPs = len(entry.ips)
	}

	if ip != "" {
		entry, ok := t.ips[ip]
		if !ok || now.Sub(entry.firstSeen) >= t.window {
			entry = &ipPattern{
				agents:    make(map[string]struct{}),
				emails:    make(map[string]struct{}),
				firstSeen: now,
			}
			t.ips[ip] = entry
		}
		if userAgent != "" {
			entry.agents[userAgent] = struct{}{}
		}
		if email != "" {
			entry.emails[email] = struct{}{}
		}
		ipAgents = len(entry.agents)
		ipEmails = len(entry.emails)
	}

	return emailIPs, ipAgents, ipEmails
}

// Sweep drops entries older than the max age to bound memory.
func (t *PatternTracker) Sweep() {
	cutoff := t.now().Add(-t.maxAge)

	t.mu.Lock()
	defer t.mu.Unlock()

	for email, entry := range t.emails {
		if entry.firstSeen.Before(cutoff) {
			delete(t.emails, email)
		}
	}
	for ip, entry := range t.ips {
		if entry.firstSeen.Before(cutoff) {
			delete(t.ips, ip)
		}
	}
}

// Len reports tracked entry counts, used by the stats endpoint.
func (t *PatternTracker) Len() (emails, ips int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.emails), len(t.ips)
}
