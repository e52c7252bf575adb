package domain

import "context"

// Collection names used by the record endpoints.
const (
	CollectionCareers     = "careers"
	CollectionQuizResults = "quizResults"
)

// Document is an opaque record; this service never validates its schema.
type Document map[string]interface{}

// SortField orders Find results by a top-level field.
type SortField struct {
	Field      string
	Descending bool
}

// FindOptions narrows a Find call. A zero Limit means no limit.
type FindOptions struct {
	Sort  []SortField
	Limit int64
}

// DocumentStore is the port for the external document database.
//
// Implementations connect lazily on first use, return a StoreUnavailable
// DomainError when no connection can be made, and wrap operation failures
// as StoreOperation DomainErrors.
type DocumentStore interface {
	Insert(ctx context.Context, collection string, doc Document) (string, error)
	Find(ctx context.Context, collection string, filter Document, opts FindOptions) ([]Document, error)
	Close(ctx context.Context) error
}
