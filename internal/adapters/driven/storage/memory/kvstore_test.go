package memory

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyValueStore_GetSetDelete(t *testing.T) {
	store := NewKeyValueStore()

	_, ok := store.TryGet("missing")
	assert.False(t, ok)

	require.True(t, store.TrySet("key", "value"))
	value, ok := store.TryGet("key")
	require.True(t, ok)
	assert.Equal(t, "value", value)

	require.True(t, store.TrySet("key", "replaced"))
	value, _ = store.TryGet("key")
	assert.Equal(t, "replaced", value)

	store.TryDelete("key")
	_, ok = store.TryGet("key")
	assert.False(t, ok)
}

func TestKeyValueStore_ConcurrentAccess(t *testing.T) {
	store := NewKeyValueStore()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			store.TrySet("shared", "value")
			store.TryGet("shared")
			store.TryDelete("other")
		}()
	}
	wg.Wait()

	assert.NoError(t, store.Close())
}
