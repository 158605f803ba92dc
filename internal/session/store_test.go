package session

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/bramapp/bram/internal/models"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	db, err := OpenDatabase(context.Background(), filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewStore(db)
}

func TestStore_SaveLoadRoundTrip(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	profile := models.Profile{Username: "maria", Email: "m@example.com", Location: "Riverside"}
	require.NoError(t, store.Save(ctx, profile))

	got, err := store.Load(ctx)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, profile, *got)
}

func TestStore_LoadWithoutSession(t *testing.T) {
	store := newTestStore(t)

	got, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestStore_SaveReplacesPrevious(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, models.Profile{Username: "maria"}))
	require.NoError(t, store.Save(ctx, models.Profile{Username: "maria", Location: "Hillside"}))

	got, err := store.Load(ctx)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Hillside", got.Location)
}

func TestStore_Clear(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, models.Profile{Username: "maria"}))
	require.NoError(t, store.Clear(ctx))

	got, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Nil(t, got)

	// clearing an absent session is not an error
	require.NoError(t, store.Clear(ctx))
}
