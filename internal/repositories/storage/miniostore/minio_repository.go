package miniostore

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/SscSPs/journal_app/internal/apperrors"
	"github.com/SscSPs/journal_app/internal/core/domain"
	portsrepo "github.com/SscSPs/journal_app/internal/core/ports/repositories"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// Options configures the MinIO client.
type Options struct {
	Endpoint        string // "host:port" or a URL; an https scheme enables TLS
	Region          string
	AccessKeyID     string
	SecretAccessKey string
	UseSSL          bool
}

// MinioDocumentRepository stores journal documents in a MinIO bucket.
type MinioDocumentRepository struct {
	client *minio.Client
}

// Ensure implementation matches interface
var _ portsrepo.DocumentRepositoryFacade = (*MinioDocumentRepository)(nil)

// NewMinioClient builds the process-wide MinIO client.
func NewMinioClient(opts Options) (*minio.Client, error) {
	host, secure, err := splitEndpoint(opts.Endpoint)
	if err != nil {
		return nil, err
	}

	client, err := minio.New(host, &minio.Options{
		Creds:  credentials.NewStaticV4(opts.AccessKeyID, opts.SecretAccessKey, ""),
		Secure: secure || opts.UseSSL,
		Region: opts.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize minio client: %w", err)
	}
	return client, nil
}

// splitEndpoint strips an optional scheme from endpoint, since minio.New wants a bare host.
func splitEndpoint(endpoint string) (string, bool, error) {
	if !strings.Contains(endpoint, "://") {
		if endpoint == "" {
			return "", false, fmt.Errorf("minio endpoint is empty")
		}
		return endpoint, false, nil
	}
	u, err := url.Parse(endpoint)
	if err != nil {
		return "", false, fmt.Errorf("invalid minio endpoint %q: %w", endpoint, err)
	}
	if u.Host == "" {
		return "", false, fmt.Errorf("invalid minio endpoint %q: missing host", endpoint)
	}
	return u.Host, u.Scheme == "https", nil
}

// NewMinioDocumentRepository creates a repository backed by client.
func NewMinioDocumentRepository(client *minio.Client) *MinioDocumentRepository {
	return &MinioDocumentRepository{client: client}
}

// PutDocument writes the document in one PutObject call with a known size.
func (r *MinioDocumentRepository) PutDocument(ctx context.Context, bucket string, key string, doc domain.Document) error {
	_, err := r.client.PutObject(ctx, bucket, key, bytes.NewReader(doc.Content), int64(len(doc.Content)), minio.PutObjectOptions{
		ContentType: doc.StoredContentType(),
	})
	if err != nil {
		return fmt.Errorf("failed to put object %s/%s: %w", bucket, key, err)
	}
	return nil
}

// GetDocument reads the object stored at key.
func (r *MinioDocumentRepository) GetDocument(ctx context.Context, bucket string, key string) ([]byte, error) {
	obj, err := r.client.GetObject(ctx, bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to get object %s/%s: %w", bucket, key, err)
	}
	defer obj.Close()

	content, err := io.ReadAll(obj)
	if err != nil {
		if minio.ToErrorResponse(err).Code == "NoSuchKey" {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to read object %s/%s: %w", bucket, key, err)
	}
	return content, nil
}
