// Package remote defines the remote document store contract and its
// implementations. The remote side is schema-less: one collection per entity
// kind, each document a flat string-keyed map stored under the decimal
// string of the entity's local id. Nothing here enforces referential
// integrity; the sync engine's pull ordering carries that burden.
package remote

import (
	"context"
	"errors"

	"github.com/aivanenka/studyplanner/internal/document"
)

// ErrNotFound is returned by Get when no document exists under the key.
var ErrNotFound = errors.New("document not found")

// Store is the remote document store contract.
type Store interface {
	// Get fetches one document, ErrNotFound when absent.
	Get(ctx context.Context, collection, key string) (document.Document, error)

	// GetAll fetches the whole collection, keyed by document key.
	GetAll(ctx context.Context, collection string) (map[string]document.Document, error)

	// Set upserts one document under key.
	Set(ctx context.Context, collection, key string, doc document.Document) error
}
