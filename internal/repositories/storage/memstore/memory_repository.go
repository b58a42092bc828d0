package memstore

import (
	"context"
	"sync"

	"github.com/SscSPs/journal_app/internal/apperrors"
	"github.com/SscSPs/journal_app/internal/core/domain"
	portsrepo "github.com/SscSPs/journal_app/internal/core/ports/repositories"
)

type object struct {
	contentType string
	content     []byte
}

// MemoryDocumentRepository keeps documents in process memory. It backs local
// development and tests; contents are lost on restart.
type MemoryDocumentRepository struct {
	mu      sync.RWMutex
	buckets map[string]map[string]object
}

// Ensure implementation matches interface
var _ portsrepo.DocumentRepositoryFacade = (*MemoryDocumentRepository)(nil)

// NewMemoryDocumentRepository creates an empty repository.
func NewMemoryDocumentRepository() *MemoryDocumentRepository {
	return &MemoryDocumentRepository{buckets: make(map[string]map[string]object)}
}

// PutDocument stores a copy of the content, replacing any previous object at key.
func (r *MemoryDocumentRepository) PutDocument(ctx context.Context, bucket string, key string, doc domain.Document) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	content := make([]byte, len(doc.Content))
	copy(content, doc.Content)

	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.buckets[bucket]
	if !ok {
		b = make(map[string]object)
		r.buckets[bucket] = b
	}
	b[key] = object{contentType: doc.StoredContentType(), content: content}
	return nil
}

// GetDocument returns a copy of the content stored at key.
func (r *MemoryDocumentRepository) GetDocument(ctx context.Context, bucket string, key string) ([]byte, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	obj, ok := r.buckets[bucket][key]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	content := make([]byte, len(obj.content))
	copy(content, obj.content)
	return content, nil
}

// Keys lists the keys stored in bucket, in no particular order.
func (r *MemoryDocumentRepository) Keys(bucket string) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	keys := make([]string, 0, len(r.buckets[bucket]))
	for k := range r.buckets[bucket] {
		keys = append(keys, k)
	}
	return keys
}
