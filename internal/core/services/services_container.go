package services

import (
	portsrepo "github.com/SscSPs/journal_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/journal_app/internal/core/ports/services"
	"github.com/SscSPs/journal_app/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Token = NewTokenService(cfg)
	container.Auth = NewAuthService(cfg, container.Token)
	container.Upload = NewUploadService(
		repos.DocumentRepo,
		WithBucket(cfg.S3BucketName),
		WithMaxUploadBytes(cfg.MaxUploadBytes),
	)

	return container
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.UploadSvcFacade = (*uploadService)(nil)
	_ portssvc.AuthSvcFacade   = (*authService)(nil)
	_ portssvc.TokenSvcFacade  = (*tokenService)(nil)
)
