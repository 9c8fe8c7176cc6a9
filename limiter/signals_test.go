package limiter

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

// cleanHeaders carries every header a regular browser sends, so a request
// built from it scores zero before any email or correlation heuristics.
func cleanHeaders() map[string]string {
	return map[string]string{
		"User-Agent":      "Mozilla/5.0 (X11; Linux x86_64) Firefox/128.0",
		"Accept-Language": "en-US,en;q=0.9",
		"Accept-Encoding": "gzip, deflate, br",
		"Accept":          "text/html",
		"Sec-CH-UA":       `"Firefox";v="128"`,
	}
}

func newScorer() *Scorer {
	cfg := DefaultConfig()
	return NewScorer(cfg, NewPatternTracker(cfg))
}

func TestScoreCleanRequest(t *testing.T) {
	s := newScorer()
	score := s.Score(NewRequest("1.2.3.4", "alice@example.com", cleanHeaders()))
	assert.Equal(t, 0, score)
}

func TestScoreHeaderSignals(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(h map[string]string)
		want   int
	}{
		{
			name:   "single proxy header",
			mutate: func(h map[string]string) { h["X-Forwarded-For"] = "9.9.9.9" },
			want:   1,
		},
		{
			name: "all proxy headers",
			mutate: func(h map[string]string) {
				for _, ph := range proxyHeaders {
					h[ph] = "x"
				}
			},
			want: 6,
		},
		{
			// Absent accept-language counts once in the proxy checks and
			// once in the missing-header checks.
			name:   "missing accept-language",
			mutate: func(h map[string]string) { delete(h, "Accept-Language") },
			want:   2,
		},
		{
			name:   "missing client hints",
			mutate: func(h map[string]string) { delete(h, "Sec-CH-UA") },
			want:   1,
		},
		{
			name:   "missing accept-encoding",
			mutate: func(h map[string]string) { delete(h, "Accept-Encoding") },
			want:   1,
		},
		{
			name:   "bot user agent",
			mutate: func(h map[string]string) { h["User-Agent"] = "curl/8.4.0" },
			want:   2,
		},
		{
			name:   "bot marker is case-insensitive",
			mutate: func(h map[string]string) { h["User-Agent"] = "My PostMan Runtime" },
			want:   2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := cleanHeaders()
			tt.mutate(h)
			score := newScorer().Score(NewRequest("1.2.3.4", "", h))
			assert.Equal(t, tt.want, score)
		})
	}
}

func TestScoreEmailSignals(t *testing.T) {
	tests := []struct {
		email string
		want  int
	}{
		{"alice@example.com", 0},
		{"alice@tempmail.org", 3},
		{"bot12345@example.com", 1},
		{"a.b.c.d.e@example.com", 1},
		{"someone-with-an-extremely-long-local-part-here@example-domain.com", 1},
		{"bot12345@10minutemail.com", 4},
	}

	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			score := newScorer().Score(NewRequest("1.2.3.4", tt.email, cleanHeaders()))
			assert.Equal(t, tt.want, score)
		})
	}
}

func TestScoreEmailHopping(t *testing.T) {
	// P7: the same email from three distinct IPs within the hour picks up
	// the hopping penalty on the third submission.
	s := newScorer()

	assert.Equal(t, 0, s.Score(NewRequest("1.1.1.1", "hopper@example.com", cleanHeaders())))
	assert.Equal(t, 0, s.Score(NewRequest("2.2.2.2", "hopper@example.com", cleanHeaders())))

	score := s.Score(NewRequest("3.3.3.3", "hopper@example.com", cleanHeaders()))
	assert.Equal(t, scoreEmailHopping, score)
}

func TestScoreAgentSpoofing(t *testing.T) {
	s := newScorer()

	for i, ua := range []string{"Mozilla/5.0 A", "Mozilla/5.0 B", "Mozilla/5.0 C"} {
		h := cleanHeaders()
		h["User-Agent"] = ua
		score := s.Score(NewRequest("5.5.5.5", "", h))
		if i < 2 {
			assert.Equal(t, 0, score)
		} else {
			assert.Equal(t, scoreAgentSpoofing, score)
		}
	}
}

func TestScoreEmailFarming(t *testing.T) {
	s := newScorer()

	var score int
	for i := 0; i < 3; i++ {
		email := fmt.Sprintf("user%d@example.com", i)
		score = s.Score(NewRequest("6.6.6.6", email, cleanHeaders()))
	}

	assert.Equal(t, scoreEmailFarming, score)
}
