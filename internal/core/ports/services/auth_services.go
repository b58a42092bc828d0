package services

import (
	"context"

	"github.com/SscSPs/journal_app/internal/core/domain"
)

// AuthSvcFacade defines the login gate.
type AuthSvcFacade interface {
	// Login compares password with the configured secret and issues a session on match.
	// A mismatch and an unconfigured secret both return apperrors.ErrUnauthorized.
	Login(ctx context.Context, password string) (*domain.Session, error)
}

// TokenSvcFacade defines the interface for session token management.
type TokenSvcFacade interface {
	// GenerateSessionToken signs a new session token for the journal user.
	GenerateSessionToken(ctx context.Context) (*domain.Session, error)
	// ValidateSessionToken verifies a session token and returns the session it carries.
	ValidateSessionToken(ctx context.Context, token string) (*domain.Session, error)
}
