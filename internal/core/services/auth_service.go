package services

import (
	"context"
	"fmt"
	"time"

	"github.com/SscSPs/journal_app/internal/apperrors"
	"github.com/SscSPs/journal_app/internal/core/domain"
	portssvc "github.com/SscSPs/journal_app/internal/core/ports/services"
	"github.com/SscSPs/journal_app/internal/platform/config"
	"github.com/SscSPs/journal_app/internal/utils"
)

// authService implements the single-password login gate.
type authService struct {
	secretPassword     string
	secretPasswordHash string
	tokens             portssvc.TokenSvcFacade
}

// NewAuthService creates a new login gate. When cfg.SecretPasswordHash is set it is
// used as a bcrypt hash and takes precedence over cfg.SecretPassword.
func NewAuthService(cfg *config.Config, tokens portssvc.TokenSvcFacade) portssvc.AuthSvcFacade {
	return &authService{
		secretPassword:     cfg.SecretPassword,
		secretPasswordHash: cfg.SecretPasswordHash,
		tokens:             tokens,
	}
}

// Login checks password and issues a session. An unconfigured secret returns an
// error matching both ErrUnauthorized and ErrConfiguration, so callers can log the
// misconfiguration while answering exactly as for a wrong password.
func (s *authService) Login(ctx context.Context, password string) (*domain.Session, error) {
	var ok bool
	switch {
	case s.secretPasswordHash != "":
		ok = utils.CheckPasswordHash(password, s.secretPasswordHash)
	case s.secretPassword != "":
		ok = utils.CheckPasswordPlain(password, s.secretPassword)
	default:
		cfgErr := &apperrors.ConfigurationError{Setting: "SECRET_PASSWORD", Message: "SECRET_PASSWORD is not set"}
		return nil, fmt.Errorf("%w: %w", apperrors.ErrUnauthorized, cfgErr)
	}
	if !ok {
		return nil, apperrors.ErrUnauthorized
	}

	session, err := s.tokens.GenerateSessionToken(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to issue session: %w", err)
	}
	return session, nil
}

// tokenService signs and verifies session JWTs.
type tokenService struct {
	secret string
	issuer string
	expiry time.Duration
}

// NewTokenService creates a new instance of tokenService.
func NewTokenService(cfg *config.Config) portssvc.TokenSvcFacade {
	return &tokenService{
		secret: cfg.JWTSecret,
		issuer: cfg.JWTIssuer,
		expiry: cfg.JWTExpiryDuration,
	}
}

// GenerateSessionToken signs a session for the single journal user.
func (s *tokenService) GenerateSessionToken(ctx context.Context) (*domain.Session, error) {
	token, expiresAt, err := utils.GenerateJWT(domain.JournalUserID, s.secret, s.expiry, s.issuer)
	if err != nil {
		return nil, err
	}
	return &domain.Session{Token: token, UserID: domain.JournalUserID, ExpiresAt: expiresAt}, nil
}

// ValidateSessionToken returns the session the token carries, or an error wrapping ErrUnauthorized.
func (s *tokenService) ValidateSessionToken(ctx context.Context, token string) (*domain.Session, error) {
	claims, err := utils.ParseAndValidateJWT(token, s.secret, s.issuer)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrUnauthorized, err)
	}
	if claims.Subject != domain.JournalUserID {
		return nil, fmt.Errorf("%w: unexpected subject %q", apperrors.ErrUnauthorized, claims.Subject)
	}
	session := &domain.Session{Token: token, UserID: claims.Subject}
	if claims.ExpiresAt != nil {
		session.ExpiresAt = claims.ExpiresAt.Time
	}
	return session, nil
}
