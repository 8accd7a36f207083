package intake

import (
	"context"
	"sync"
)

// ContextStore holds one conversation record per identity. GetOrCreate
// returns the existing record or a fresh one in the initial state; Save
// persists the mutated record after a transition.
type ContextStore interface {
	GetOrCreate(ctx context.Context, identity string) (*Record, error)
	Save(ctx context.Context, rec *Record) error
}

// MemoryStore keeps records in process memory. The default backend for
// development and tests; records do not survive a restart.
type MemoryStore struct {
	mu      sync.RWMutex
	records map[string]*Record
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{records: make(map[string]*Record)}
}

func (s *MemoryStore) GetOrCreate(_ context.Context, identity string) (*Record, error) {
	s.mu.RLock()
	rec, ok := s.records[identity]
	s.mu.RUnlock()
	if ok {
		return rec.Clone(), nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if rec, ok := s.records[identity]; ok {
		return rec.Clone(), nil
	}
	rec = NewRecord(identity)
	s.records[identity] = rec.Clone()
	return rec, nil
}

func (s *MemoryStore) Save(_ context.Context, rec *Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[rec.Identity] = rec.Clone()
	return nil
}
