package kv

//go:generate mockgen -package=mocks -destination=mocks/mock_store.go github.com/KirkDiggler/dutch/internal/repositories/kv Store

import (
	"context"
	"errors"
)

// ErrKeyNotFound is returned by Get when nothing is stored under the key
var ErrKeyNotFound = errors.New("key not found")

// Store is the string key-value contract every repository persists through.
// Writes are last-write-wins with no transactions.
type Store interface {
	// Get returns the value stored under key
	Get(ctx context.Context, key string) (string, error)

	// Set stores value under key, replacing any previous value
	Set(ctx context.Context, key, value string) error

	// Remove deletes key; removing a missing key is not an error
	Remove(ctx context.Context, key string) error
}

// ScopedKey appends scope to a base key so every channel keeps its own copy.
// An empty scope returns the base key unchanged.
func ScopedKey(base, scope string) string {
	if scope == "" {
		return base
	}
	return base + ":" + scope
}
