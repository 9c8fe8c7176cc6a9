package services

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/alphabatem/common/context"
)

// JWTService issues and verifies the admin session tokens. Every token
// carries a jti that must still exist in the database, so a logout
// invalidates the token server side.
type JWTService struct {
	context.DefaultService

	AccessTokenDuration time.Duration
	jwtSecretKey        string
}

type AdminClaims struct {
	AdminID string `json:"admin_id"`
	jwt.RegisteredClaims
}

const JWT_SVC = "jwt_svc"

func (svc JWTService) Id() string {
	return JWT_SVC
}

func (svc *JWTService) Configure(ctx *context.Context) error {
	svc.AccessTokenDuration = 6 * time.Hour
	svc.jwtSecretKey = os.Getenv("JWT_SECRET")
	return svc.DefaultService.Configure(ctx)
}

func (svc *JWTService) Start() error {
	if svc.jwtSecretKey == "" {
		return errors.New("JWT_SECRET is not configured")
	}
	return nil
}

// GenerateToken signs a fresh admin token and returns it with its jti and
// expiry so the caller can persist the session row.
func (svc *JWTService) GenerateToken(adminID string) (token, jti string, expiresAt time.Time, err error) {
	id, _ := uuid.NewV7()
	jti = id.String()
	expiresAt = time.Now().Add(svc.AccessTokenDuration)

	claims := &AdminClaims{
		AdminID: adminID,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        jti,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    "folio_api",
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
		SignedString([]byte(svc.jwtSecretKey))
	if err != nil {
		return "", "", time.Time{}, fmt.Errorf("failed to sign token: %v", err)
	}

	return signed, jti, expiresAt, nil
}

// VerifyToken checks signature and expiry, returning the admin id and jti.
func (svc *JWTService) VerifyToken(jwtToken string) (adminID, jti string, err error) {
	token, err := jwt.ParseWithClaims(jwtToken, &AdminClaims{}, svc.getJWTKey)
	if err != nil || !token.Valid {
		return "", "", errors.New("invalid token")
	}

	claims, ok := token.Claims.(*AdminClaims)
	if !ok || claims == nil {
		return "", "", errors.New("unsupported JWT format")
	}

	expTime, err := claims.GetExpirationTime()
	if err != nil {
		return "", "", fmt.Errorf("failed to get expiration time: %v", err)
	}
	if expTime.Unix() < time.Now().Unix() {
		return "", "", errors.New("token has expired")
	}

	return claims.AdminID, claims.ID, nil
}

func (svc *JWTService) getJWTKey(token *jwt.Token) (interface{}, error) {
	if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
	}

	return []byte(svc.jwtSecretKey), nil
}

func (svc *JWTService) ExtractTokenFromHeader(authHeader string) (string, error) {
	if authHeader == "" {
		return "", errors.New("authorization header is missing")
	}

	if len(authHeader) < 7 || authHeader[:7] != "Bearer " {
		return "", errors.New("invalid authorization header format")
	}

	return authHeader[7:], nil
}
