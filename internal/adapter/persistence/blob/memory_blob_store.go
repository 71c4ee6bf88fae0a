package blob

import (
	"context"
	"sync"

	"invoicer/internal/usecase/interfaces"
)

// MemoryBlobStore keeps blobs in process memory. Values are copied on the way
// in and out so callers cannot alias stored bytes.
type MemoryBlobStore struct {
	mu    sync.RWMutex
	blobs map[string][]byte
}

var _ interfaces.IBlobStore = (*MemoryBlobStore)(nil)

func NewMemoryBlobStore() *MemoryBlobStore {
	return &MemoryBlobStore{blobs: map[string][]byte{}}
}

// Seed stores raw bytes under key; used to load fixtures (including corrupt ones).
func (s *MemoryBlobStore) Seed(key string, value []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.blobs[key] = append([]byte(nil), value...)
}

func (s *MemoryBlobStore) Get(_ context.Context, key string) ([]byte, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.blobs[key]
	if !ok {
		return nil, false, nil
	}
	return append([]byte(nil), v...), true, nil
}

func (s *MemoryBlobStore) Put(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.blobs[key] = append([]byte(nil), value...)
	return nil
}
