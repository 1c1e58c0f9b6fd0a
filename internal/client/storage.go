package client

import "sync"

// Storage is the persistence the credential store writes through. It is
// injected so tests and alternative front ends can supply their own
// medium; the contract mirrors a browser's session storage.
type Storage interface {
	Get(key string) string
	Set(key, value string)
	Delete(key string)
	Clear()
}

// MemoryStorage is the default Storage: process-lifetime only, so a
// restart forces re-authentication.
type MemoryStorage struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMemoryStorage creates an empty MemoryStorage
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{values: make(map[string]string)}
}

func (s *MemoryStorage) Get(key string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.values[key]
}

func (s *MemoryStorage) Set(key, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
}

func (s *MemoryStorage) Delete(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.values, key)
}

func (s *MemoryStorage) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values = make(map[string]string)
}
