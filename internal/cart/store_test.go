package cart

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_GetUnknownSessionReturnsEmptyCart(t *testing.T) {
	store := CreateMemoryStore()

	c, err := store.Get(context.Background(), "nobody")

	require.NoError(t, err)
	assert.Empty(t, c.Lines)
}

func TestMemoryStore_SaveThenGetRoundTrips(t *testing.T) {
	store := CreateMemoryStore()
	ctx := context.Background()

	saved := &Cart{Lines: []Line{{ID: "a", Name: "Maple Neck", Price: 199.99, Quantity: 2}}}
	require.NoError(t, store.Save(ctx, "session-1", saved))

	got, err := store.Get(ctx, "session-1")
	require.NoError(t, err)
	require.Len(t, got.Lines, 1)
	assert.Equal(t, saved.Lines[0], got.Lines[0])
}

func TestMemoryStore_SessionsAreIsolated(t *testing.T) {
	store := CreateMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "session-1", &Cart{Lines: []Line{{ID: "a", Quantity: 1}}}))

	other, err := store.Get(ctx, "session-2")
	require.NoError(t, err)
	assert.Empty(t, other.Lines)
}

func TestMemoryStore_GetReturnsCopy(t *testing.T) {
	store := CreateMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "session-1", &Cart{Lines: []Line{{ID: "a", Quantity: 1}}}))

	first, err := store.Get(ctx, "session-1")
	require.NoError(t, err)
	first.Lines[0].Quantity = 99

	second, err := store.Get(ctx, "session-1")
	require.NoError(t, err)
	assert.Equal(t, int64(1), second.Lines[0].Quantity)
}

func TestMemoryStore_Delete(t *testing.T) {
	store := CreateMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "session-1", &Cart{Lines: []Line{{ID: "a", Quantity: 1}}}))
	require.NoError(t, store.Delete(ctx, "session-1"))

	got, err := store.Get(ctx, "session-1")
	require.NoError(t, err)
	assert.Empty(t, got.Lines)
}
