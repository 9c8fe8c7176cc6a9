package limiter

import (
	"regexp"
	"strings"
)

// Score weights for each heuristic. These are additive; the thresholds that
// act on the resulting score live in Config.
const (
	scoreProxyHeader     = 1
	scoreMissingLanguage = 1
	scoreMissingHints    = 1
	scoreMissingEncoding = 1

	scoreDisposableDomain = 3
	scoreDigitRun         = 1
	scoreLongEmail        = 1
	scoreManyDots         = 1

	scoreBotAgent = 2

	scoreEmailHopping  = 4
	scoreAgentSpoofing = 2
	scoreEmailFarming  = 3

	correlationFanout = 3
	longEmailLength   = 50
	maxEmailDots      = 3
)

// Headers added by proxies and VPN gateways. Each one present adds to the
// score independently.
var proxyHeaders = []string{
	"X-Forwarded-For",
	"X-Real-IP",
	"Via",
	"Forwarded",
	"X-Proxy-ID",
	"X-ProxyUser-IP",
}

// Disposable email providers, matched as domain substrings.
var disposableDomains = []string{
	"tempmail",
	"throwaway",
	"10minutemail",
	"guerrillamail",
	"mailinator",
	"maildrop",
	"trashmail",
	"yopmail",
}

// Tooling and crawler markers, matched case-insensitively in the user agent.
var botAgents = []string{
	"curl",
	"wget",
	"python",
	"bot",
	"crawler",
	"scraper",
	"insomnia",
	"httpie",
	"postman",
}

var digitRun = regexp.MustCompile(`\d{5,}`)

// Scorer turns a request into a suspicion score. Scoring is not purely
// functional: the cross-request terms read and update the pattern tracker
// on every invocation.
type Scorer struct {
	cfg      Config
	patterns *PatternTracker
}

func NewScorer(cfg Config, patterns *PatternTracker) *Scorer {
	return &Scorer{cfg: cfg, patterns: patterns}
}

func (s *Scorer) Score(r Request) int {
	score := proxySignals(r)

	if r.Email != "" {
		score += emailSignals(r.Email)
	}

	if ua := r.UserAgent(); ua != "" {
		lower := strings.ToLower(ua)
		for _, marker := range botAgents {
			if strings.Contains(lower, marker) {
				score += scoreBotAgent
				break
			}
		}
	}

	if r.Header("Accept-Language") == "" {
		score += scoreMissingLanguage
	}
	if r.Header("Accept-Encoding") == "" {
		score += scoreMissingEncoding
	}

	emailIPs, ipAgents, ipEmails := s.patterns.Observe(r.IP, r.Email, r.UserAgent())
	if emailIPs >= correlationFanout {
		score += scoreEmailHopping
	}
	if ipAgents >= correlationFanout {
		score += scoreAgentSpoofing
	}
	if ipEmails >= correlationFanout {
		score += scoreEmailFarming
	}

	return score
}

// proxySignals checks for proxy-injected headers and the header gaps VPN
// gateways tend to leave. The accept-language check here is deliberately
// separate from the missing-header check in Score; an absent language
// header counts under both.
func proxySignals(r Request) int {
	score := 0

	for _, h := range proxyHeaders {
		if r.Header(h) != "" {
			score += scoreProxyHeader
		}
	}

	if r.Header("Accept-Language") == "" {
		score += scoreMissingLanguage
	}
	if r.Header("Sec-CH-UA") == "" {
		score += scoreMissingHints
	}

	return score
}

func emailSignals(email string) int {
	score := 0

	if at := strings.LastIndex(email, "@"); at >= 0 && at < len(email)-1 {
		domain := strings.ToLower(email[at+1:])
		for _, d := range disposableDomains {
			if strings.Contains(domain, d) {
				score += scoreDisposableDomain
				break
			}
		}
	}

	if digitRun.MatchString(email) {
		score += scoreDigitRun
	}
	if len(email) > longEmailLength {
		score += scoreLongEmail
	}
	if strings.Count(email, ".") > maxEmailDots {
		score += scoreManyDots
	}

	return score
}
