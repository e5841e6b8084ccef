package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/empmgmt/employee-backend/internal/config"
)

// SubjectService is the fixed identity asserted by service-to-service tokens.
const SubjectService = "service"

// TokenService mints and validates the short-lived HMAC-signed bearer tokens
// the web tier uses to call the API. Expiry is the only bound on validity:
// there is no refresh flow and no revocation list.
type TokenService struct {
	cfg *config.Config
}

func NewTokenService(cfg *config.Config) *TokenService {
	return &TokenService{cfg: cfg}
}

// GenerateServiceToken creates a signed token asserting the service
// identity, with a unique jti per call and the configured
// issuer/audience/expiry.
func (s *TokenService) GenerateServiceToken() (string, error) {
	now := time.Now()

	claims := jwt.RegisteredClaims{
		ID:        uuid.New().String(),
		Subject:   SubjectService,
		Issuer:    s.cfg.JWTIssuer,
		Audience:  jwt.ClaimStrings{s.cfg.JWTAudience},
		NotBefore: jwt.NewNumericDate(now),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.JWTExpiry)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.cfg.JWTSecret))
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// ValidateToken parses a bearer token and verifies signature, issuer,
// audience and lifetime with zero clock-skew tolerance.
func (s *TokenService) ValidateToken(tokenStr string) (*jwt.RegisteredClaims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &jwt.RegisteredClaims{},
		func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
			}
			return []byte(s.cfg.JWTSecret), nil
		},
		jwt.WithIssuer(s.cfg.JWTIssuer),
		jwt.WithAudience(s.cfg.JWTAudience),
		jwt.WithExpirationRequired(),
		jwt.WithLeeway(0),
	)
	if err != nil {
		return nil, fmt.Errorf("parse token: %w", err)
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token claims")
	}
	return claims, nil
}
