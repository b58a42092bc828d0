package s3store

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/SscSPs/journal_app/internal/apperrors"
	"github.com/SscSPs/journal_app/internal/core/domain"
	portsrepo "github.com/SscSPs/journal_app/internal/core/ports/repositories"
	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// Test seams for the AWS constructors.
var (
	loadDefaultAWSConfig  = awsconfig.LoadDefaultConfig
	newS3ClientFromConfig = s3.NewFromConfig
)

// Options configures the S3 client.
type Options struct {
	Region          string
	AccessKeyID     string
	SecretAccessKey string
	// BaseEndpoint targets an S3-compatible service instead of AWS. Path-style
	// addressing is used when it is set.
	BaseEndpoint string
}

// objectAPI is the subset of *s3.Client used by the repository.
type objectAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// S3DocumentRepository stores journal documents in an S3 bucket.
type S3DocumentRepository struct {
	client objectAPI
}

// Ensure implementation matches interface
var _ portsrepo.DocumentRepositoryFacade = (*S3DocumentRepository)(nil)

// NewS3Client builds the process-wide S3 client. Static credentials are used when
// both keys are given, otherwise the default AWS credential chain applies.
func NewS3Client(ctx context.Context, opts Options) (*s3.Client, error) {
	loadOpts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(opts.Region),
	}
	if opts.AccessKeyID != "" && opts.SecretAccessKey != "" {
		loadOpts = append(loadOpts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(opts.AccessKeyID, opts.SecretAccessKey, ""),
		))
	}

	cfg, err := loadDefaultAWSConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	client := newS3ClientFromConfig(cfg, func(o *s3.Options) {
		if opts.BaseEndpoint != "" {
			o.BaseEndpoint = aws.String(opts.BaseEndpoint)
			o.UsePathStyle = true
		}
	})
	return client, nil
}

// NewS3DocumentRepository creates a repository backed by client.
func NewS3DocumentRepository(client *s3.Client) *S3DocumentRepository {
	return &S3DocumentRepository{client: client}
}

func newS3DocumentRepositoryWithAPI(api objectAPI) *S3DocumentRepository {
	return &S3DocumentRepository{client: api}
}

// PutDocument writes the document with a single PutObject call.
func (r *S3DocumentRepository) PutDocument(ctx context.Context, bucket string, key string, doc domain.Document) error {
	_, err := r.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(doc.Content),
		ContentLength: aws.Int64(int64(len(doc.Content))),
		ContentType:   aws.String(doc.StoredContentType()),
	})
	if err != nil {
		return fmt.Errorf("failed to put object %s/%s: %w", bucket, key, err)
	}
	return nil
}

// GetDocument reads the object stored at key.
func (r *S3DocumentRepository) GetDocument(ctx context.Context, bucket string, key string) ([]byte, error) {
	out, err := r.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		var noSuchKey *types.NoSuchKey
		if errors.As(err, &noSuchKey) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get object %s/%s: %w", bucket, key, err)
	}
	defer out.Body.Close()

	content, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read object %s/%s: %w", bucket, key, err)
	}
	return content, nil
}
