package services

import (
	"net/http"
	"os"
	"strconv"

	"github.com/lac-hong-legacy/folio_api/dto"
	"github.com/lac-hong-legacy/folio_api/limiter"
	"github.com/lac-hong-legacy/folio_api/shared"

	"github.com/alphabatem/common/context"
	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
)

// ContactService owns the abuse gate for the public contact endpoint. The
// fiber middleware it exposes runs every submission through the gate
// before the handler ever sees it; the handler then validates the payload
// and forwards it over SMTP.
type ContactService struct {
	context.DefaultService

	gate *limiter.Gate

	postgresSvc   *PostgresService
	emailSvc      *EmailService
	geoSvc        *GeolocationService
	monitoringSvc *MonitoringService
}

const CONTACT_SVC = "contact_svc"

func (svc ContactService) Id() string {
	return CONTACT_SVC
}

func (svc *ContactService) Configure(ctx *context.Context) error {
	svc.postgresSvc = ctx.Service(POSTGRES_SVC).(*PostgresService)
	svc.emailSvc = ctx.Service(EMAIL_SVC).(*EmailService)
	svc.geoSvc = ctx.Service(GEOLOCATION_SVC).(*GeolocationService)
	svc.monitoringSvc = ctx.Service(MONITORING_SVC).(*MonitoringService)

	svc.gate = limiter.NewGate(limiter.ConfigFromEnv(), svc.postgresSvc)

	return svc.DefaultService.Configure(ctx)
}

func (svc *ContactService) Start() error {
	svc.gate.StartSweeps()
	return nil
}

func (svc *ContactService) Shutdown() {
	svc.gate.Shutdown()
}

func (svc *ContactService) Gate() *limiter.Gate {
	return svc.gate
}

// ContactLimiter is the fiber guard in front of POST /contact. A panic
// anywhere in the decision path fails open: losing abuse protection for
// one request is better than dropping a legitimate message.
func (svc *ContactService) ContactLimiter() fiber.Handler {
	return func(c *fiber.Ctx) (err error) {
		defer func() {
			if r := recover(); r != nil {
				log.WithField("panic", r).Error("Contact limiter panicked, failing open")
				err = c.Next()
			}
		}()

		r := svc.buildRequest(c)

		decision := svc.gate.Check(c.Context(), r)
		svc.monitoringSvc.RecordContactDecision(decision.Reason, decision.Score, decision.Strikes)

		if decision.Allowed {
			return c.Next()
		}

		return writeDeny(c, decision)
	}
}

// writeDeny emits the deny response. Every variant answers 429, permanent
// blocks included; the message carries the distinction.
func writeDeny(c *fiber.Ctx, decision limiter.Decision) error {
	if decision.RetryAfter > 0 {
		c.Set("Retry-After", strconv.Itoa(int(decision.RetryAfter.Seconds())))
	}

	return shared.ResponseJSON(c, http.StatusTooManyRequests, decision.Message, nil)
}

// buildRequest assembles the gate's request descriptor: client IP, the raw
// header set and the email peeked from the JSON body. Location enrichment
// is best effort.
func (svc *ContactService) buildRequest(c *fiber.Ctx) limiter.Request {
	headers := make(map[string]string)
	for name, values := range c.GetReqHeaders() {
		if len(values) > 0 {
			headers[name] = values[0]
		}
	}

	r := limiter.NewRequest(clientIP(c), peekEmail(c), headers)

	if location, err := svc.geoSvc.GetLocationByIP(r.IP); err == nil {
		r.Location = location
	}

	return r
}

// peekEmail reads the sender address out of the JSON body before the
// handler parses it. The form posts it as "address"; "email" is accepted
// as a fallback so renamed clients still hit the email tracking keys.
func peekEmail(c *fiber.Ctx) string {
	var body struct {
		Address string `json:"address"`
		Email   string `json:"email"`
	}
	if err := c.BodyParser(&body); err != nil {
		return ""
	}
	if body.Address != "" {
		return body.Address
	}
	return body.Email
}

// clientIP prefers the proxy-forwarded address when the app is deployed
// behind one, falling back to the socket peer.
func clientIP(c *fiber.Ctx) string {
	if os.Getenv("TRUST_PROXY_HEADERS") == "true" {
		if ips := c.IPs(); len(ips) > 0 {
			return ips[0]
		}
	}
	return c.IP()
}

// ==================== SECURITY DASHBOARD ====================

func (svc *ContactService) BlockHistory(limit, offset int) (*dto.BlockHistoryResponse, error) {
	rows, total, err := svc.postgresSvc.ListBlockHistory(limit, offset)
	if err != nil {
		return nil, err
	}

	entries := make([]dto.BlockHistoryEntry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, dto.BlockHistoryEntry{
			Key:             row.Key,
			Strikes:         row.Strikes,
			LastBlockedAt:   row.LastBlockedAt,
			SuspiciousScore: row.SuspiciousScore,
			IP:              row.IP,
			Email:           row.Email,
			UserAgent:       row.UserAgent,
			BlockReason:     row.BlockReason,
			Location:        row.Location,
			UpdatedAt:       row.UpdatedAt,
		})
	}

	return &dto.BlockHistoryResponse{Entries: entries, Total: total}, nil
}

func (svc *ContactService) SecurityStats() (*dto.SecurityStatsResponse, error) {
	stats, err := svc.postgresSvc.GetSecurityStats()
	if err != nil {
		return nil, err
	}

	windowKeys, emailPatterns, ipPatterns := svc.gate.Stats()

	return &dto.SecurityStatsResponse{
		TotalRecords:     stats.TotalRecords,
		CurrentlyBlocked: stats.CurrentlyBlocked,
		PermanentBans:    stats.PermanentBans,
		StrikeCounts:     stats.StrikeCounts,
		AvgSuspicion:     stats.AvgSuspicion,
		MaxSuspicion:     stats.MaxSuspicion,
		WindowKeys:       windowKeys,
		EmailPatterns:    emailPatterns,
		IPPatterns:       ipPatterns,
	}, nil
}

func (svc *ContactService) Unblock(key string) error {
	if err := svc.postgresSvc.UnblockKey(key); err != nil {
		return err
	}
	log.WithField("key", key).Info("Tracking key unblocked by admin")
	return nil
}

func (svc *ContactService) CleanupExpired() (*dto.CleanupResponse, error) {
	removed, err := svc.postgresSvc.CleanupOldRecords()
	if err != nil {
		return nil, err
	}
	cleared, err := svc.postgresSvc.ClearElapsedBlocks(limiter.ConfigFromEnv())
	if err != nil {
		return nil, err
	}
	return &dto.CleanupResponse{RemovedRecords: removed, ClearedBlocks: cleared}, nil
}

// ProcessContact handles a submission that passed the gate.
func (svc *ContactService) ProcessContact(req dto.ContactRequest) error {
	if err := svc.emailSvc.SendContactEmail(req); err != nil {
		return shared.NewInternalError(err, "Failed to deliver message")
	}

	log.WithFields(log.Fields{
		"from":    req.Address,
		"subject": req.Subject,
	}).Info("Contact message delivered")

	return nil
}
