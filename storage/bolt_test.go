package storage

import (
	"path/filepath"
	"testing"

	"hotelops/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestStore(t *testing.T) *BoltStore {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	store, err := NewBoltStore(path, zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestLoad_MissingKeyReportsNotFound(t *testing.T) {
	store := newTestStore(t)

	var rooms []models.Room
	found, err := store.Load(KeyRooms, &rooms)
	require.NoError(t, err)
	assert.False(t, found)
	assert.Nil(t, rooms)
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	store := newTestStore(t)

	in := []models.Room{
		{Room: "305", PropertyID: "hyatt-san-antonio-nw", Status: models.RoomPending},
	}
	require.NoError(t, store.Save(KeyRooms, in))

	var out []models.Room
	found, err := store.Load(KeyRooms, &out)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, in, out)
}

func TestLoad_UnreadableValueMasksFailure(t *testing.T) {
	store := newTestStore(t)

	// A settings blob where rooms are expected cannot unmarshal into a slice.
	require.NoError(t, store.Save(KeyRooms, models.DefaultSettings()))

	var out []models.Room
	found, err := store.Load(KeyRooms, &out)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestClear_RemovesAllKeys(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.Save(KeySettings, models.DefaultSettings()))
	require.NoError(t, store.Save(KeySelectedProperty, "hyatt-san-antonio-nw"))
	require.NoError(t, store.Clear())

	var selected string
	found, err := store.Load(KeySelectedProperty, &selected)
	require.NoError(t, err)
	assert.False(t, found)
}
