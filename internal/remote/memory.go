package remote

import (
	"context"
	"maps"
	"sync"

	"github.com/aivanenka/studyplanner/internal/document"
)

// MemoryStore is an in-memory Store used by tests and offline runs.
type MemoryStore struct {
	mu          sync.RWMutex
	collections map[string]map[string]document.Document
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{collections: make(map[string]map[string]document.Document)}
}

func (s *MemoryStore) Get(ctx context.Context, collection, key string) (document.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	doc, ok := s.collections[collection][key]
	if !ok {
		return nil, ErrNotFound
	}
	return maps.Clone(doc), nil
}

func (s *MemoryStore) GetAll(ctx context.Context, collection string) (map[string]document.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make(map[string]document.Document, len(s.collections[collection]))
	for key, doc := range s.collections[collection] {
		result[key] = maps.Clone(doc)
	}
	return result, nil
}

func (s *MemoryStore) Set(ctx context.Context, collection, key string, doc document.Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	coll, ok := s.collections[collection]
	if !ok {
		coll = make(map[string]document.Document)
		s.collections[collection] = coll
	}
	coll[key] = maps.Clone(doc)
	return nil
}
