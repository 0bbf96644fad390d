package history

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/okhotnikov/storefront/internal/models"
	"github.com/okhotnikov/storefront/internal/storage"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	kv, err := storage.Open(filepath.Join(t.TempDir(), "history.db"), "")
	require.NoError(t, err)
	t.Cleanup(func() { _ = kv.Close() })
	return &Store{KV: kv}
}

func TestHistory_SaveLoadRoundtrip(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	ctx := context.Background()
	orders := []models.Order{
		{OrderID: "ORD-2", Status: "completed", Timestamp: time.Now().UTC().Truncate(time.Second)},
		{OrderID: "ORD-1", Status: "completed", Timestamp: time.Now().UTC().Truncate(time.Second)},
	}

	require.NoError(t, s.Save(ctx, orders))

	got, err := s.Load(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "ORD-2", got[0].OrderID)
}

func TestHistory_MissingIsEmpty(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	got, err := s.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestHistory_CorruptedEntryResets(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	ctx := context.Background()
	require.NoError(t, s.KV.Put(ctx, "order_history", "{corrupted"))

	got, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, got)

	// The corrupted entry is gone for good.
	_, err = s.KV.Get(ctx, "order_history")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}
