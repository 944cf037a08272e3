package verification

import (
	"context"
	"sync"
	"time"
)

// MemoryStore keeps pending codes in a process-local map. Codes do not
// survive a restart; outstanding ones are silently invalidated.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string]Record
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		data: make(map[string]Record),
	}
}

func (s *MemoryStore) Put(_ context.Context, destination, code string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data[destination] = Record{
		Destination: destination,
		Code:        code,
		ExpiresAt:   time.Now().Add(ttl),
	}

	return nil
}

func (s *MemoryStore) Get(_ context.Context, destination string) (*Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	record, exists := s.data[destination]
	if !exists {
		return nil, ErrCodeNotFound
	}

	return &record, nil
}

func (s *MemoryStore) Remove(_ context.Context, destination string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.data, destination)

	return nil
}

func (s *MemoryStore) PurgeExpired(_ context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	var purged int64

	for destination, record := range s.data {
		if record.Expired(now) {
			delete(s.data, destination)
			purged++
		}
	}

	return purged, nil
}
