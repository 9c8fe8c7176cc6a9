package limiter

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config gathers every tunable of the contact limiter in one place so the
// heuristics can be adjusted without touching control flow.
type Config struct {
	// Base quota inside the sliding window.
	Points int
	// Rolling window length.
	Window time.Duration

	// Block duration per strike count, indexed by strikes-1 and clamped to
	// the last entry. A zero duration means a permanent block.
	BlockDurations []time.Duration

	// Score at or above which a request is denied outright, without
	// touching the sliding window.
	ImmediateBlockScore int

	// Reduced-quota thresholds: score >= StrictScore drops the effective
	// limit to 1, score >= ElevatedScore drops it to 2.
	StrictScore   int
	ElevatedScore int

	// Strike multipliers: score >= TripleStrikeScore adds 3 strikes per
	// violation, score >= DoubleStrikeScore adds 2, anything else adds 1.
	TripleStrikeScore int
	DoubleStrikeScore int

	// Correlation window for the pattern tracker and its purge horizon.
	PatternWindow time.Duration
	PatternMaxAge time.Duration

	// Interval for the background prune sweeps.
	SweepInterval time.Duration
}

// Permanent marks the terminal entry of the escalation table.
const Permanent = time.Duration(0)

const maxStrikes = 5

func DefaultConfig() Config {
	return Config{
		Points: 3,
		Window: time.Hour,
		BlockDurations: []time.Duration{
			2 * time.Hour,
			12 * time.Hour,
			48 * time.Hour,
			7 * 24 * time.Hour,
			Permanent,
		},
		ImmediateBlockScore: 8,
		StrictScore:         5,
		ElevatedScore:       3,
		TripleStrikeScore:   7,
		DoubleStrikeScore:   5,
		PatternWindow:       time.Hour,
		PatternMaxAge:       24 * time.Hour,
		SweepInterval:       10 * time.Minute,
	}
}

// ConfigFromEnv starts from the defaults and applies any CONTACT_LIMIT_*
// overrides present in the environment.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()

	if v := envInt("CONTACT_LIMIT_POINTS"); v > 0 {
		cfg.Points = v
	}
	if v := envInt("CONTACT_LIMIT_WINDOW_SECONDS"); v > 0 {
		cfg.Window = time.Duration(v) * time.Second
	}
	if v := envInt("CONTACT_LIMIT_IMMEDIATE_SCORE"); v > 0 {
		cfg.ImmediateBlockScore = v
	}
	if v := envInt("CONTACT_LIMIT_STRICT_SCORE"); v > 0 {
		cfg.StrictScore = v
	}
	if v := envInt("CONTACT_LIMIT_ELEVATED_SCORE"); v > 0 {
		cfg.ElevatedScore = v
	}
	if v := envInt("CONTACT_LIMIT_TRIPLE_STRIKE_SCORE"); v > 0 {
		cfg.TripleStrikeScore = v
	}
	if v := envInt("CONTACT_LIMIT_DOUBLE_STRIKE_SCORE"); v > 0 {
		cfg.DoubleStrikeScore = v
	}
	if v := envDurations("CONTACT_LIMIT_BLOCK_DURATIONS"); len(v) > 0 {
		cfg.BlockDurations = v
	}

	return cfg
}

// envDurations parses a comma-separated escalation table, e.g.
// "2h,12h,48h,168h,0". "0" marks the permanent terminal entry. A single
// malformed entry rejects the whole list.
func envDurations(key string) []time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}

	parts := strings.Split(v, ",")
	out := make([]time.Duration, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "0" {
			out = append(out, Permanent)
			continue
		}
		d, err := time.ParseDuration(part)
		if err != nil || d < 0 {
			return nil
		}
		out = append(out, d)
	}
	return out
}

func envInt(key string) int {
	v := os.Getenv(key)
	if v == "" {
		return 0
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0
	}
	return n
}

// effectiveLimit returns the quota a request with the given suspicion score
// is held to inside the sliding window.
func (c Config) effectiveLimit(score int) int {
	switch {
	case score >= c.StrictScore:
		return 1
	case score >= c.ElevatedScore:
		return 2
	default:
		return c.Points
	}
}

// strikeMultiplier returns how many strikes a single violation is worth.
func (c Config) strikeMultiplier(score int) int {
	switch {
	case score >= c.TripleStrikeScore:
		return 3
	case score >= c.DoubleStrikeScore:
		return 2
	default:
		return 1
	}
}

// blockDuration maps a strike count onto the escalation table.
func (c Config) blockDuration(strikes int) time.Duration {
	if strikes < 1 {
		strikes = 1
	}
	idx := strikes - 1
	if idx >= len(c.BlockDurations) {
		idx = len(c.BlockDurations) - 1
	}
	return c.BlockDurations[idx]
}
