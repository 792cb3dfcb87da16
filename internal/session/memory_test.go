// internal/session/memory_test.go
package session

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreCartRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	cart, err := store.GetCart(ctx, "v1")
	require.NoError(t, err)
	assert.Empty(t, cart)

	require.NoError(t, store.SaveCart(ctx, "v1", map[string]int{"a": 2, "b": 1}))

	cart, err = store.GetCart(ctx, "v1")
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"a": 2, "b": 1}, cart)

	// The returned map is a copy; mutating it does not touch the store.
	cart["a"] = 99
	fresh, err := store.GetCart(ctx, "v1")
	require.NoError(t, err)
	assert.Equal(t, 2, fresh["a"])
}

func TestMemoryStoreSaveEmptyCartClears(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	require.NoError(t, store.SaveCart(ctx, "v1", map[string]int{"a": 1}))
	require.NoError(t, store.SaveCart(ctx, "v1", map[string]int{}))

	cart, err := store.GetCart(ctx, "v1")
	require.NoError(t, err)
	assert.Empty(t, cart)
}

func TestMemoryStoreBatchPoppedOnce(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	require.NoError(t, store.SaveBatch(ctx, "v1", []string{"o1", "o2"}))

	ids, err := store.PopBatch(ctx, "v1")
	require.NoError(t, err)
	assert.Equal(t, []string{"o1", "o2"}, ids)

	ids, err = store.PopBatch(ctx, "v1")
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestMemoryStoreVisitorsIsolated(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	require.NoError(t, store.SaveCart(ctx, "v1", map[string]int{"a": 1}))
	require.NoError(t, store.SaveBatch(ctx, "v1", []string{"o1"}))

	cart, err := store.GetCart(ctx, "v2")
	require.NoError(t, err)
	assert.Empty(t, cart)

	ids, err := store.PopBatch(ctx, "v2")
	require.NoError(t, err)
	assert.Empty(t, ids)
}
