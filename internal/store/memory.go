package store

import (
	"encoding/json"
	"sync"

	"worklog/internal/errors"
)

// MemoryStore is an in-memory Store used by tests and as the recovery target
// when durable storage is unavailable.
type MemoryStore struct {
	mu   sync.Mutex
	data map[string]json.RawMessage
}

// NewMemory creates an empty in-memory store.
func NewMemory() *MemoryStore {
	return &MemoryStore{data: make(map[string]json.RawMessage)}
}

// Get reads the value under key into out.
func (s *MemoryStore) Get(key string, out interface{}) (bool, error) {
	s.mu.Lock()
	raw, ok := s.data[key]
	s.mu.Unlock()
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return false, errors.NewStorageError("decode key "+key, err)
	}
	return true, nil
}

// Set stores value under key.
func (s *MemoryStore) Set(key string, value interface{}) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return errors.NewStorageError("encode key "+key, err)
	}
	s.mu.Lock()
	s.data[key] = raw
	s.mu.Unlock()
	return nil
}

// Delete removes the value under key.
func (s *MemoryStore) Delete(key string) error {
	s.mu.Lock()
	delete(s.data, key)
	s.mu.Unlock()
	return nil
}

// Close is a no-op for the in-memory store.
func (s *MemoryStore) Close() error {
	return nil
}

// SetRaw stores a raw JSON document under key, bypassing marshalling.
// Tests use it to simulate corrupt stored data.
func (s *MemoryStore) SetRaw(key string, raw []byte) {
	s.mu.Lock()
	s.data[key] = json.RawMessage(raw)
	s.mu.Unlock()
}
