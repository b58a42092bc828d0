package services

import (
	"context"

	"github.com/SscSPs/journal_app/internal/core/domain"
	"github.com/SscSPs/journal_app/internal/dto"
)

// UploadSvcFacade defines the journal document upload operation.
type UploadSvcFacade interface {
	// UploadEntry validates the document and date, derives the storage key and
	// writes the document to the configured bucket.
	UploadEntry(ctx context.Context, form dto.UploadForm) (*domain.StoredDocument, error)
}
