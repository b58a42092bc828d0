package repositories

import (
	"context"

	"github.com/SscSPs/journal_app/internal/core/domain"
)

// DocumentWriter defines write operations for stored journal documents.
type DocumentWriter interface {
	// PutDocument writes the full document content to key in bucket,
	// replacing any object already stored there.
	PutDocument(ctx context.Context, bucket string, key string, doc domain.Document) error
}

// DocumentReader defines read operations for stored journal documents.
type DocumentReader interface {
	// GetDocument returns the content stored at key in bucket.
	// It returns apperrors.ErrNotFound when no object exists.
	GetDocument(ctx context.Context, bucket string, key string) ([]byte, error)
}

// DocumentRepositoryFacade combines all document-related repository interfaces
type DocumentRepositoryFacade interface {
	DocumentReader
	DocumentWriter
}
