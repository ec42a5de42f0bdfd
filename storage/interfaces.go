package storage

import (
	"context"

	"github.com/poiesic/wordspace/core"
)

// Repository provides common storage operations shared across all repositories.
// Implementations must be thread-safe and support concurrent access.
type Repository interface {
	// WithTransaction executes a function within a transaction.
	// If fn returns an error, the transaction is rolled back.
	// If fn returns nil, the transaction is committed.
	// The context passed to fn may contain transaction state.
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error

	// Close closes the storage backend and releases resources.
	Close() error
}

// DocumentRepository provides operations for managing normalized corpus
// documents.
type DocumentRepository interface {
	Repository
	// AddDocuments adds one or more documents to storage.
	// Documents carry content-based IDs, so re-adding the same token
	// sequence overwrites the existing record rather than duplicating it.
	AddDocuments(ctx context.Context, docs ...*core.Document) error

	// GetDocument retrieves a single document by ID.
	// Returns ErrNotFound if the document doesn't exist.
	GetDocument(ctx context.Context, id core.ID) (*core.Document, error)

	// DeleteDocuments removes documents by their IDs.
	// Returns ErrNotFound if any document doesn't exist.
	DeleteDocuments(ctx context.Context, ids ...core.ID) error

	// AllDocuments streams every stored document to fn in key order.
	// Iteration stops early if fn returns an error, which is passed
	// through to the caller.
	AllDocuments(ctx context.Context, fn func(doc *core.Document) error) error

	// CountDocuments returns the number of stored documents.
	CountDocuments(ctx context.Context) (int, error)
}

// VectorRepository provides operations for managing persisted word vectors.
// All vectors in one store share a single dimensionality, fixed by the
// first write.
type VectorRepository interface {
	Repository
	// PutVectors stores one or more token vectors, overwriting existing
	// entries for the same token. Returns ErrDimensionConflict if an
	// entry's width disagrees with the store's recorded dimensionality.
	PutVectors(ctx context.Context, entries ...*core.VectorEntry) error

	// GetVector retrieves the vector for a token.
	// Returns ErrNotFound if the token has no stored vector.
	GetVector(ctx context.Context, token string) (*core.VectorEntry, error)

	// AllVectors streams every stored vector entry to fn in token order.
	// Iteration stops early if fn returns an error, which is passed
	// through to the caller.
	AllVectors(ctx context.Context, fn func(entry *core.VectorEntry) error) error

	// Dim returns the store's recorded vector dimensionality, or 0 when
	// no vectors have been stored yet.
	Dim(ctx context.Context) (int, error)

	// CountVectors returns the number of stored token vectors.
	CountVectors(ctx context.Context) (int, error)
}
