package limiter

import (
	"context"
	"fmt"
	"math"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"
)

// Deny reasons, surfaced so callers can label metrics without parsing
// messages.
const (
	ReasonAllowed     = "allowed"
	ReasonSuspicious  = "suspicious"
	ReasonBlocked     = "blocked"
	ReasonRateLimited = "rate_limited"
)

// Decision is the gate's verdict for one request.
type Decision struct {
	Allowed bool
	Reason  string
	Message string

	Score     int
	Keys      []string
	Strikes   int
	Permanent bool
	// RetryAfter is set for temporary blocks so the transport layer can
	// emit a Retry-After header.
	RetryAfter time.Duration
}

// Gate composes the fingerprint, signal scoring, pattern tracking, sliding
// window and strike ledger into a single allow/deny decision. It owns the
// in-memory state and its background sweeps; construct one at server start
// and shut it down with the server.
type Gate struct {
	cfg      Config
	window   *MemoryWindow
	patterns *PatternTracker
	scorer   *Scorer
	ledger   Ledger

	now func() time.Time

	sweepStop chan struct{}
	sweepOnce sync.Once
}

func NewGate(cfg Config, ledger Ledger) *Gate {
	patterns := NewPatternTracker(cfg)
	return &Gate{
		cfg:       cfg,
		window:    NewMemoryWindow(cfg),
		patterns:  patterns,
		scorer:    NewScorer(cfg, patterns),
		ledger:    ledger,
		now:       time.Now,
		sweepStop: make(chan struct{}),
	}
}

// StartSweeps launches the periodic prune of the sliding window and the
// pattern tracker. Safe to call once; sweeps stop when Shutdown runs.
func (g *Gate) StartSweeps() {
	go func() {
		ticker := time.NewTicker(g.cfg.SweepInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				g.window.Sweep()
				g.patterns.Sweep()
			case <-g.sweepStop:
				return
			}
		}
	}()
}

func (g *Gate) Shutdown() {
	g.sweepOnce.Do(func() { close(g.sweepStop) })
}

// Check runs the full decision pipeline for one request. Persistence
// failures are logged and degrade the check to memory-only limiting; Check
// itself never returns an error.
func (g *Gate) Check(ctx context.Context, r Request) Decision {
	keys := r.TrackingKeys()
	score := g.scorer.Score(r)

	// Clearly automated traffic is denied before it can probe the quota.
	if score >= g.cfg.ImmediateBlockScore {
		g.applyStrikes(ctx, r, keys, score, "suspicious activity")
		return Decision{
			Reason:  ReasonSuspicious,
			Message: "Request blocked due to suspicious activity.",
			Score:   score,
			Keys:    keys,
		}
	}

	if status := g.checkBlocks(ctx, keys); status.blocked {
		d := Decision{
			Reason:    ReasonBlocked,
			Score:     score,
			Keys:      keys,
			Strikes:   status.strikes,
			Permanent: status.permanent,
		}
		if status.permanent {
			d.Message = "You are permanently blocked from sending contact messages."
		} else {
			d.Message = fmt.Sprintf("You are blocked. Try again after %s.", formatRemaining(status.remaining))
			d.RetryAfter = status.remaining
		}
		return d
	}

	if allowed, _ := g.window.CheckAndRecord(keys, g.cfg.effectiveLimit(score)); allowed {
		return Decision{
			Allowed: true,
			Reason:  ReasonAllowed,
			Score:   score,
			Keys:    keys,
		}
	}

	result := g.applyStrikes(ctx, r, keys, score, "rate limit exceeded")
	if result == nil {
		// Strike application failed everywhere; the memory window still
		// holds, so deny with the generic message.
		return Decision{
			Reason:  ReasonRateLimited,
			Message: "Rate limit exceeded. Please try again later.",
			Score:   score,
			Keys:    keys,
		}
	}

	d := Decision{
		Reason:    ReasonRateLimited,
		Score:     score,
		Keys:      keys,
		Strikes:   result.strikes,
		Permanent: result.permanent,
	}
	if result.permanent {
		d.Message = "Permanently blocked due to repeated violations."
	} else {
		d.Message = fmt.Sprintf("Rate limit exceeded. Blocked for %s. Strike %d/%d.",
			formatRemaining(result.duration), result.strikes, maxStrikes)
		d.RetryAfter = result.duration
	}
	return d
}

// checkBlocks is the ledger read path: is any of the request's keys under
// an active block right now. Expired blocks found along the way are
// re-armed (lastBlockedAt cleared, strikes kept). Ledger errors fail open.
func (g *Gate) checkBlocks(ctx context.Context, keys []string) blockStatus {
	records, err := g.ledger.Find(ctx, keys)
	if err != nil {
		log.WithError(err).Warn("Block check failed, continuing with memory limits only")
		return blockStatus{}
	}

	now := g.now()
	var expired []string

	for _, rec := range records {
		if rec.LastBlockedAt == nil {
			continue
		}

		duration := g.cfg.blockDuration(rec.Strikes)
		if duration == Permanent {
			return blockStatus{blocked: true, permanent: true, key: rec.Key, strikes: rec.Strikes}
		}

		elapsed := now.Sub(*rec.LastBlockedAt)
		if elapsed < duration {
			return blockStatus{
				blocked:   true,
				key:       rec.Key,
				strikes:   rec.Strikes,
				remaining: duration - elapsed,
			}
		}

		expired = append(expired, rec.Key)
	}

	if len(expired) > 0 {
		if err := g.ledger.ClearBlocks(ctx, expired); err != nil {
			log.WithError(err).Warn("Failed to re-arm expired blocks")
		}
	}

	return blockStatus{}
}

// applyStrikes is the ledger write path. Every key is upserted with the
// same escalated strike count; writes run concurrently and a partial
// failure on one key never blocks the others. Returns nil only when no
// write succeeded.
func (g *Gate) applyStrikes(ctx context.Context, r Request, keys []string, score int, reason string) *strikeResult {
	records, err := g.ledger.Find(ctx, keys)
	if err != nil {
		log.WithError(err).Warn("Strike lookup failed, skipping escalation")
		return nil
	}

	maxExisting := 0
	for _, rec := range records {
		if rec.Strikes > maxExisting {
			maxExisting = rec.Strikes
		}
	}

	newStrikes := maxExisting + g.cfg.strikeMultiplier(score)
	if newStrikes > maxStrikes {
		newStrikes = maxStrikes
	}

	now := g.now()
	meta := Metadata{
		IP:          r.IP,
		Email:       r.Email,
		UserAgent:   r.UserAgent(),
		BlockReason: reason,
		Location:    r.Location,
	}

	var wg sync.WaitGroup
	errs := make([]error, len(keys))
	for i, key := range keys {
		wg.Add(1)
		go func(i int, key string) {
			defer wg.Done()
			errs[i] = g.ledger.Upsert(ctx, Record{
				Key:             key,
				Strikes:         newStrikes,
				LastBlockedAt:   &now,
				SuspiciousScore: score,
			}, meta)
		}(i, key)
	}
	wg.Wait()

	succeeded := false
	for i, err := range errs {
		if err != nil {
			log.WithError(err).WithField("key", keys[i]).Warn("Strike write failed")
			continue
		}
		succeeded = true
	}
	if !succeeded {
		return nil
	}

	duration := g.cfg.blockDuration(newStrikes)

	if score >= g.cfg.ElevatedScore {
		log.WithFields(log.Fields{
			"key":     keys[0],
			"score":   score,
			"strikes": newStrikes,
		}).Warn("Suspicious activity blocked")
	}

	return &strikeResult{
		strikes:   newStrikes,
		duration:  duration,
		permanent: duration == Permanent,
	}
}

// WindowCount exposes the live window count for one key, used in tests and
// the stats endpoint.
func (g *Gate) WindowCount(key string) int {
	return g.window.Count(key)
}

// Stats reports the size of the in-memory state.
func (g *Gate) Stats() (windowKeys, emailPatterns, ipPatterns int) {
	emails, ips := g.patterns.Len()
	return g.window.Len(), emails, ips
}

// formatRemaining renders a duration as whole hours when at least an hour
// remains, otherwise whole minutes, both rounded up.
func formatRemaining(d time.Duration) string {
	if d >= time.Hour {
		hours := int(math.Ceil(d.Hours()))
		return fmt.Sprintf("%d hours", hours)
	}
	minutes := int(math.Ceil(d.Minutes()))
	if minutes < 1 {
		minutes = 1
	}
	return fmt.Sprintf("%d minutes", minutes)
}
