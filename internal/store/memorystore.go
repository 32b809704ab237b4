package store

import (
	"context"
	"sort"
	"sync"
)

// MemoryStore is an in-process Store used by tests and local development.
// Individual operations are atomic; sequences of operations are not, which
// is exactly the consistency model the Redis backend provides.
type MemoryStore struct {
	mu   sync.RWMutex
	docs map[string]map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{docs: make(map[string]map[string][]byte)}
}

func (s *MemoryStore) Get(_ context.Context, collection, id string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, ok := s.docs[collection][id]
	if !ok {
		return nil, ErrNotFound
	}
	out := make([]byte, len(data))
	copy(out, data)
	return out, nil
}

func (s *MemoryStore) Put(_ context.Context, collection, id string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.docs[collection] == nil {
		s.docs[collection] = make(map[string][]byte)
	}
	stored := make([]byte, len(data))
	copy(stored, data)
	s.docs[collection][id] = stored
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, collection, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.docs[collection], id)
	return nil
}

func (s *MemoryStore) Query(_ context.Context, collection string, filter *Filter) ([]Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]string, 0, len(s.docs[collection]))
	for id := range s.docs[collection] {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	var out []Document
	for _, id := range ids {
		data := s.docs[collection][id]
		if !matches(data, filter) {
			continue
		}
		cp := make([]byte, len(data))
		copy(cp, data)
		out = append(out, Document{ID: id, Data: cp})
	}
	return out, nil
}

// Ping always succeeds; it exists so health probes can treat backends
// uniformly.
func (s *MemoryStore) Ping(_ context.Context) error {
	return nil
}
