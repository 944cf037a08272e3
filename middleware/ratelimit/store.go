package ratelimit

import (
	"sync"
	"time"
)

type Store interface {
	Increment(key string, windowEnd time.Time) (count int, reset time.Time)
	Reset(key string)
}

type MemoryStore struct {
	mu   sync.Mutex
	data map[string]*window
}

type window struct {
	count   int
	resetAt time.Time
}

func NewMemoryStore() *MemoryStore {
	store := &MemoryStore{
		data: make(map[string]*window),
	}

	go store.cleanup()

	return store
}

func (s *MemoryStore) Increment(key string, windowEnd time.Time) (int, time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if w, exists := s.data[key]; exists && time.Now().Before(w.resetAt) {
		w.count++
		return w.count, w.resetAt
	}

	s.data[key] = &window{
		count:   1,
		resetAt: windowEnd,
	}

	return 1, windowEnd
}

func (s *MemoryStore) Reset(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.data, key)
}

func (s *MemoryStore) cleanup() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		s.mu.Lock()
		now := time.Now()

		for key, w := range s.data {
			if now.After(w.resetAt) {
				delete(s.data, key)
			}
		}

		s.mu.Unlock()
	}
}
