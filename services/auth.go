package services

import (
	"net/http"
	"time"

	"github.com/lac-hong-legacy/folio_api/dto"
	"github.com/lac-hong-legacy/folio_api/model"
	"github.com/lac-hong-legacy/folio_api/shared"

	"github.com/alphabatem/common/context"
	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

// AuthService implements the admin session lifecycle: bcrypt login, jti
// persistence, logout and the fiber guard for the admin routes.
type AuthService struct {
	context.DefaultService

	postgresSvc *PostgresService
	jwtSvc      *JWTService
}

const AUTH_SVC = "auth_svc"

func (svc AuthService) Id() string {
	return AUTH_SVC
}

func (svc *AuthService) Configure(ctx *context.Context) error {
	svc.postgresSvc = ctx.Service(POSTGRES_SVC).(*PostgresService)
	svc.jwtSvc = ctx.Service(JWT_SVC).(*JWTService)
	return svc.DefaultService.Configure(ctx)
}

func (svc *AuthService) Start() error {
	return nil
}

func (svc *AuthService) Login(req dto.LoginRequest, ip, userAgent string) (*dto.LoginResponse, error) {
	admin, err := svc.postgresSvc.GetAdminByUsername(req.Username)
	if err != nil {
		// Same response as a wrong password so usernames cannot be probed.
		return nil, shared.NewUnauthorizedError(nil, "Invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(req.Password)); err != nil {
		log.WithField("username", req.Username).Warn("Failed admin login attempt")
		return nil, shared.NewUnauthorizedError(nil, "Invalid credentials")
	}

	token, jti, expiresAt, err := svc.jwtSvc.GenerateToken(admin.ID)
	if err != nil {
		return nil, shared.NewInternalError(err, "Failed to generate token")
	}

	err = svc.postgresSvc.CreateJti(&model.AdminJti{
		AdminID:   admin.ID,
		Jti:       jti,
		IP:        ip,
		UserAgent: userAgent,
		ExpiresAt: expiresAt,
		CreatedAt: time.Now(),
	})
	if err != nil {
		return nil, shared.NewInternalError(err, "Failed to persist session")
	}

	log.WithFields(log.Fields{"username": req.Username, "ip": ip}).Info("Admin logged in")

	return &dto.LoginResponse{
		AccessToken: token,
		ExpiresIn:   int64(svc.jwtSvc.AccessTokenDuration.Seconds()),
	}, nil
}

func (svc *AuthService) Logout(jti string) error {
	if err := svc.postgresSvc.DeleteJti(jti); err != nil {
		return shared.NewInternalError(err, "Failed to revoke session")
	}
	return nil
}

func (svc *AuthService) ChangePassword(adminID string, req dto.ChangePasswordRequest) error {
	admin, err := svc.postgresSvc.GetAdmin(adminID)
	if err != nil {
		return shared.NewNotFoundError(err, "Admin not found")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(req.CurrentPassword)); err != nil {
		return shared.NewUnauthorizedError(nil, "Current password is incorrect")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return shared.NewInternalError(err, "Failed to hash password")
	}

	return svc.postgresSvc.UpdateAdminPassword(adminID, string(hashed))
}

func (svc *AuthService) Verify(adminID string) (*dto.VerifyResponse, error) {
	admin, err := svc.postgresSvc.GetAdmin(adminID)
	if err != nil {
		return nil, shared.NewUnauthorizedError(err, "Unknown admin")
	}
	return &dto.VerifyResponse{Valid: true, Username: admin.Username}, nil
}

// RequiredAuth guards the admin routes. The token must verify and its jti
// row must still exist.
func (svc *AuthService) RequiredAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		token, err := svc.jwtSvc.ExtractTokenFromHeader(authHeader)
		if err != nil {
			return shared.ResponseJSON(c, http.StatusUnauthorized, "Unauthorized", err.Error())
		}

		adminID, jti, err := svc.jwtSvc.VerifyToken(token)
		if err != nil {
			return shared.ResponseJSON(c, http.StatusUnauthorized, "Unauthorized", "Invalid JWT token")
		}

		if adminID == "" {
			return shared.ResponseJSON(c, http.StatusUnauthorized, "Unauthorized", "Invalid admin ID in token")
		}

		session, err := svc.postgresSvc.GetJti(jti)
		if err != nil {
			return shared.ResponseJSON(c, http.StatusUnauthorized, "Unauthorized", "Session revoked")
		}
		if session.ExpiresAt.Before(time.Now()) {
			_ = svc.postgresSvc.DeleteJti(jti)
			return shared.ResponseJSON(c, http.StatusUnauthorized, "Unauthorized", "Session expired")
		}

		c.Locals(shared.AdminID, adminID)
		c.Locals(shared.TokenID, jti)
		return c.Next()
	}
}
