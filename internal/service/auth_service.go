package service

import (
	"strings"
	"time"

	"github.com/spec-kit/verve-admin/internal/auth"
	"github.com/spec-kit/verve-admin/internal/config"
	apperrors "github.com/spec-kit/verve-admin/pkg/util"
)

// AuthService establishes admin sessions. It is the only surface of the
// identity provider this service exposes; everything finer grained stays
// external.
type AuthService struct {
	cfg    config.AuthConfig
	tokens *auth.TokenManager
}

// NewAuthService constructs the service.
func NewAuthService(cfg config.AuthConfig) *AuthService {
	return &AuthService{
		cfg:    cfg,
		tokens: auth.NewTokenManager(cfg.JWTSecret, cfg.AccessTokenTTLMinutes),
	}
}

// TokenManager exposes the token manager for the session gate.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokens
}

// Login verifies the admin credential and issues a session token.
func (s *AuthService) Login(email, password string) (string, time.Time, error) {
	if strings.TrimSpace(email) == "" || password == "" {
		return "", time.Time{}, apperrors.NewValidationError("email and password required", nil)
	}
	if s.cfg.AdminEmail == "" || s.cfg.AdminPasswordHash == "" {
		return "", time.Time{}, apperrors.NewUnauthorized("admin credential not configured")
	}
	if !strings.EqualFold(strings.TrimSpace(email), s.cfg.AdminEmail) {
		return "", time.Time{}, apperrors.NewUnauthorized("identifiants invalides")
	}
	if err := auth.ComparePassword(s.cfg.AdminPasswordHash, password); err != nil {
		return "", time.Time{}, apperrors.NewUnauthorized("identifiants invalides")
	}

	token, expiresAt, err := s.tokens.GenerateToken(s.cfg.AdminEmail)
	if err != nil {
		return "", time.Time{}, apperrors.MapError(err)
	}
	return token, expiresAt, nil
}
