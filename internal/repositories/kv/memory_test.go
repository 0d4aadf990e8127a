package kv

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	store := NewMemory()

	_, err := store.Get(ctx, "dutch_games")
	assert.ErrorIs(t, err, ErrKeyNotFound)

	require.NoError(t, store.Set(ctx, "dutch_games", "[]"))
	value, err := store.Get(ctx, "dutch_games")
	require.NoError(t, err)
	assert.Equal(t, "[]", value)

	require.NoError(t, store.Remove(ctx, "dutch_games"))
	_, err = store.Get(ctx, "dutch_games")
	assert.ErrorIs(t, err, ErrKeyNotFound)

	assert.Error(t, store.Set(ctx, "", "x"))
}

func TestMemoryStoreConcurrentWriters(t *testing.T) {
	ctx := context.Background()
	store := NewMemory()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = store.Set(ctx, "k", "v")
			_, _ = store.Get(ctx, "k")
		}()
	}
	wg.Wait()

	value, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "v", value)
}

func TestScopedKey(t *testing.T) {
	assert.Equal(t, "current_dutch_game", ScopedKey("current_dutch_game", ""))
	assert.Equal(t, "current_dutch_game:123", ScopedKey("current_dutch_game", "123"))
}
