package kv

import (
	"context"
	"errors"
	"sync"
)

// memoryStore implements the Store interface with a map
type memoryStore struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMemory creates an empty in-process store
func NewMemory() *memoryStore {
	return &memoryStore{
		values: make(map[string]string),
	}
}

// Get returns the value stored under key
func (m *memoryStore) Get(_ context.Context, key string) (string, error) {
	if key == "" {
		return "", errors.New("key cannot be empty")
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	value, ok := m.values[key]
	if !ok {
		return "", ErrKeyNotFound
	}
	return value, nil
}

// Set stores value under key
func (m *memoryStore) Set(_ context.Context, key, value string) error {
	if key == "" {
		return errors.New("key cannot be empty")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.values[key] = value
	return nil
}

// Remove deletes key
func (m *memoryStore) Remove(_ context.Context, key string) error {
	if key == "" {
		return errors.New("key cannot be empty")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.values, key)
	return nil
}
