package limiter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestBlockDurationEscalation(t *testing.T) {
	cfg := DefaultConfig()

	tests := []struct {
		name    string
		strikes int
		want    time.Duration
	}{
		{"zero strikes clamps to first entry", 0, 2 * time.Hour},
		{"first strike", 1, 2 * time.Hour},
		{"second strike", 2, 12 * time.Hour},
		{"third strike", 3, 48 * time.Hour},
		{"fourth strike", 4, 7 * 24 * time.Hour},
		{"fifth strike is permanent", 5, Permanent},
		{"beyond the table clamps to permanent", 9, Permanent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, cfg.blockDuration(tt.strikes))
		})
	}
}

func TestStrikeMultiplier(t *testing.T) {
	cfg := DefaultConfig()

	tests := []struct {
		score int
		want  int
	}{
		{0, 1},
		{4, 1},
		{5, 2},
		{6, 2},
		{7, 3},
		{12, 3},
	}

	for _, tt := range tests {
		require.Equal(t, tt.want, cfg.strikeMultiplier(tt.score), "score %d", tt.score)
	}
}

func TestConfigFromEnvOverrides(t *testing.T) {
	t.Setenv("CONTACT_LIMIT_POINTS", "5")
	t.Setenv("CONTACT_LIMIT_WINDOW_SECONDS", "120")
	t.Setenv("CONTACT_LIMIT_IMMEDIATE_SCORE", "10")
	t.Setenv("CONTACT_LIMIT_STRICT_SCORE", "6")
	t.Setenv("CONTACT_LIMIT_ELEVATED_SCORE", "4")
	t.Setenv("CONTACT_LIMIT_TRIPLE_STRIKE_SCORE", "9")
	t.Setenv("CONTACT_LIMIT_DOUBLE_STRIKE_SCORE", "6")
	t.Setenv("CONTACT_LIMIT_BLOCK_DURATIONS", "1h, 4h, 0")

	cfg := ConfigFromEnv()

	require.Equal(t, 5, cfg.Points)
	require.Equal(t, 2*time.Minute, cfg.Window)
	require.Equal(t, 10, cfg.ImmediateBlockScore)
	require.Equal(t, 6, cfg.StrictScore)
	require.Equal(t, 4, cfg.ElevatedScore)
	require.Equal(t, 9, cfg.TripleStrikeScore)
	require.Equal(t, 6, cfg.DoubleStrikeScore)
	require.Equal(t, []time.Duration{time.Hour, 4 * time.Hour, Permanent}, cfg.BlockDurations)
}

func TestConfigFromEnvRejectsMalformedDurations(t *testing.T) {
	t.Setenv("CONTACT_LIMIT_BLOCK_DURATIONS", "2h,banana,48h")

	cfg := ConfigFromEnv()

	require.Equal(t, DefaultConfig().BlockDurations, cfg.BlockDurations)
}
