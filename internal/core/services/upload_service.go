package services

import (
	"context"
	"fmt"

	"github.com/SscSPs/journal_app/internal/apperrors"
	"github.com/SscSPs/journal_app/internal/core/domain"
	portsrepo "github.com/SscSPs/journal_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/journal_app/internal/core/ports/services"
	"github.com/SscSPs/journal_app/internal/dto"
)

// DefaultMaxUploadBytes is the document size ceiling used when none is configured.
const DefaultMaxUploadBytes int64 = 2 * 1024 * 1024

// uploadService validates journal documents and writes them to object storage.
type uploadService struct {
	docRepo        portsrepo.DocumentWriter
	bucket         string
	maxUploadBytes int64
}

// UploadServiceOption configures an uploadService.
type UploadServiceOption func(*uploadService)

// WithBucket sets the destination bucket. An empty name is reported per request
// as a configuration error rather than at construction.
func WithBucket(bucket string) UploadServiceOption {
	return func(s *uploadService) {
		s.bucket = bucket
	}
}

// WithMaxUploadBytes sets the document size ceiling.
func WithMaxUploadBytes(n int64) UploadServiceOption {
	return func(s *uploadService) {
		if n > 0 {
			s.maxUploadBytes = n
		}
	}
}

// NewUploadService creates a new upload service writing through docRepo.
func NewUploadService(docRepo portsrepo.DocumentWriter, opts ...UploadServiceOption) portssvc.UploadSvcFacade {
	s := &uploadService{
		docRepo:        docRepo,
		maxUploadBytes: DefaultMaxUploadBytes,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// UploadEntry runs the document checks before the date checks, so a bad document is
// rejected no matter what date accompanies it. Every failure happens before the write.
func (s *uploadService) UploadEntry(ctx context.Context, form dto.UploadForm) (*domain.StoredDocument, error) {
	doc := form.Document
	if doc.Size == 0 {
		doc.Size = int64(len(doc.Content))
	}

	if !doc.IsPDF() {
		return nil, apperrors.NewValidationError(apperrors.MsgNotPDF)
	}
	if doc.Size > s.maxUploadBytes || int64(len(doc.Content)) > s.maxUploadBytes {
		return nil, apperrors.NewValidationError(apperrors.MsgTooLarge)
	}

	if !domain.MatchesEntryDatePattern(form.Date) {
		return nil, apperrors.NewValidationError(apperrors.MsgInvalidDateFormat)
	}
	entryDate, err := domain.ParseEntryDate(form.Date)
	if err != nil {
		return nil, apperrors.NewValidationError(fmt.Sprintf("%s: %s", apperrors.MsgInvalidDate, form.Date))
	}

	if s.bucket == "" {
		return nil, &apperrors.ConfigurationError{Setting: "S3_BUCKET_NAME", Message: apperrors.MsgBucketMissing}
	}

	key := entryDate.StorageKey()
	if err := s.docRepo.PutDocument(ctx, s.bucket, key, doc); err != nil {
		return nil, &apperrors.StorageError{Err: err}
	}

	return &domain.StoredDocument{
		Bucket: s.bucket,
		Key:    key,
		Size:   doc.Size,
	}, nil
}
