package storage

import (
	"context"
	"fmt"

	portsrepo "github.com/SscSPs/journal_app/internal/core/ports/repositories"
	"github.com/SscSPs/journal_app/internal/platform/config"
	"github.com/SscSPs/journal_app/internal/repositories/storage/memstore"
	"github.com/SscSPs/journal_app/internal/repositories/storage/miniostore"
	"github.com/SscSPs/journal_app/internal/repositories/storage/s3store"
)

// NewRepositoryProvider builds the document repository selected by STORAGE_DRIVER.
// The underlying client is created once here and shared by every request.
func NewRepositoryProvider(ctx context.Context, cfg *config.Config) (portsrepo.RepositoryProvider, error) {
	var docRepo portsrepo.DocumentRepositoryFacade

	switch cfg.StorageDriver {
	case config.StorageDriverS3, "":
		client, err := s3store.NewS3Client(ctx, s3store.Options{
			Region:          cfg.AWSRegion,
			AccessKeyID:     cfg.AWSAccessKeyID,
			SecretAccessKey: cfg.AWSSecretAccessKey,
			BaseEndpoint:    cfg.S3BaseEndpoint,
		})
		if err != nil {
			return portsrepo.RepositoryProvider{}, err
		}
		docRepo = s3store.NewS3DocumentRepository(client)
	case config.StorageDriverMinio:
		client, err := miniostore.NewMinioClient(miniostore.Options{
			Endpoint:        cfg.S3BaseEndpoint,
			Region:          cfg.AWSRegion,
			AccessKeyID:     cfg.AWSAccessKeyID,
			SecretAccessKey: cfg.AWSSecretAccessKey,
			UseSSL:          cfg.MinioUseSSL,
		})
		if err != nil {
			return portsrepo.RepositoryProvider{}, err
		}
		docRepo = miniostore.NewMinioDocumentRepository(client)
	case config.StorageDriverMemory:
		docRepo = memstore.NewMemoryDocumentRepository()
	default:
		return portsrepo.RepositoryProvider{}, fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
	}

	return portsrepo.RepositoryProvider{
		DocumentRepo: docRepo,
	}, nil
}
