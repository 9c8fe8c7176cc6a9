package services

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/lac-hong-legacy/folio_api/limiter"
)

func TestWriteDenyAlwaysAnswers429(t *testing.T) {
	tests := []struct {
		name       string
		decision   limiter.Decision
		retryAfter string
	}{
		{
			name: "rate limited with temporary block",
			decision: limiter.Decision{
				Reason:     limiter.ReasonRateLimited,
				Message:    "Rate limit exceeded. Blocked for 2 hours. Strike 1/5.",
				RetryAfter: 2 * time.Hour,
			},
			retryAfter: "7200",
		},
		{
			name: "suspicious activity",
			decision: limiter.Decision{
				Reason:  limiter.ReasonSuspicious,
				Message: "Request blocked due to suspicious activity.",
			},
		},
		{
			name: "permanent block",
			decision: limiter.Decision{
				Reason:    limiter.ReasonBlocked,
				Message:   "You are permanently blocked from sending contact messages.",
				Permanent: true,
			},
		},
		{
			name: "active temporary block",
			decision: limiter.Decision{
				Reason:     limiter.ReasonBlocked,
				Message:    "You are blocked. Try again after 2 hours.",
				RetryAfter: 90 * time.Minute,
			},
			retryAfter: "5400",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New()
			app.Post("/contact", func(c *fiber.Ctx) error {
				return writeDeny(c, tt.decision)
			})

			resp, err := app.Test(httptest.NewRequest("POST", "/contact", nil))
			require.NoError(t, err)
			defer resp.Body.Close()

			require.Equal(t, fiber.StatusTooManyRequests, resp.StatusCode)
			require.Equal(t, tt.retryAfter, resp.Header.Get("Retry-After"))

			body, err := io.ReadAll(resp.Body)
			require.NoError(t, err)
			require.Contains(t, string(body), tt.decision.Message)
		})
	}
}

func TestPeekEmail(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"address field", `{"address":"alice@example.com"}`, "alice@example.com"},
		{"email fallback", `{"email":"bob@example.com"}`, "bob@example.com"},
		{"address wins over email", `{"address":"alice@example.com","email":"bob@example.com"}`, "alice@example.com"},
		{"neither present", `{"subject":"hi"}`, ""},
		{"malformed body", `{"address":`, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New()
			app.Post("/contact", func(c *fiber.Ctx) error {
				return c.SendString(peekEmail(c))
			})

			req := httptest.NewRequest("POST", "/contact", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")

			resp, err := app.Test(req)
			require.NoError(t, err)
			defer resp.Body.Close()

			got, err := io.ReadAll(resp.Body)
			require.NoError(t, err)
			require.Equal(t, tt.want, string(got))
		})
	}
}
