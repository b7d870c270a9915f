package history

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(":memory:")
	require.NoError(t, err, "open store")
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestOpen_CreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "history.db")
	store, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, store.Close())

	assert.FileExists(t, path)

	// Reopening applies the schema idempotently
	store, err = Open(path)
	require.NoError(t, err)
	require.NoError(t, store.Close())
}

func TestStore_StartRun(t *testing.T) {
	store := setupTestStore(t)

	r := &Run{Playlist: "Favorites", Destination: "/mnt/player"}
	require.NoError(t, store.StartRun(r))

	assert.NotEmpty(t, r.ID, "ID should be set after StartRun")
	assert.False(t, r.StartedAt.IsZero(), "StartedAt should be set")
	assert.Equal(t, StatusRunning, r.Status)

	got, err := store.GetRun(r.ID)
	require.NoError(t, err)
	assert.Equal(t, "Favorites", got.Playlist)
	assert.Equal(t, StatusRunning, got.Status)
	assert.Nil(t, got.FinishedAt)
}

func TestStore_StartRun_Duplicate(t *testing.T) {
	store := setupTestStore(t)

	require.NoError(t, store.StartRun(&Run{ID: "fixed", Playlist: "A", Destination: "/d"}))
	err := store.StartRun(&Run{ID: "fixed", Playlist: "B", Destination: "/d"})
	assert.ErrorIs(t, err, ErrDuplicate)
}

func TestStore_FinishRun(t *testing.T) {
	store := setupTestStore(t)

	r := &Run{Playlist: "Favorites", Destination: "/mnt/player", DryRun: true}
	require.NoError(t, store.StartRun(r))

	r.Status = StatusComplete
	r.Copied, r.Skipped, r.Failed, r.Bytes = 3, 2, 1, 4096
	require.NoError(t, store.FinishRun(r))
	require.NotNil(t, r.FinishedAt)

	got, err := store.GetRun(r.ID)
	require.NoError(t, err)
	assert.Equal(t, StatusComplete, got.Status)
	assert.True(t, got.DryRun)
	assert.Equal(t, 3, got.Copied)
	assert.Equal(t, 2, got.Skipped)
	assert.Equal(t, 1, got.Failed)
	assert.Equal(t, int64(4096), got.Bytes)
	assert.NotNil(t, got.FinishedAt)
}

func TestStore_FinishRun_Unknown(t *testing.T) {
	store := setupTestStore(t)

	err := store.FinishRun(&Run{ID: "missing", Status: StatusComplete})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStore_GetRun_NotFound(t *testing.T) {
	store := setupTestStore(t)

	_, err := store.GetRun("missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStore_RunTracks(t *testing.T) {
	store := setupTestStore(t)

	r := &Run{Playlist: "Favorites", Destination: "/d"}
	require.NoError(t, store.StartRun(r))

	records := []*TrackRecord{
		{RunID: r.ID, Position: 2, TrackKey: 11, Title: "Two", Outcome: "skipped"},
		{RunID: r.ID, Position: 1, TrackKey: 10, Title: "One", Outcome: "copied", DestPath: "/d/One.mp3"},
		{RunID: r.ID, Position: 3, TrackKey: 12, Title: "Three", Outcome: "failed", Error: "boom"},
	}
	for _, rec := range records {
		require.NoError(t, store.RecordTrack(rec))
	}

	got, err := store.RunTracks(r.ID)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "One", got[0].Title)
	assert.Equal(t, "/d/One.mp3", got[0].DestPath)
	assert.Equal(t, "Two", got[1].Title)
	assert.Equal(t, "boom", got[2].Error)
}

func TestStore_RecordTrack_InvalidOutcome(t *testing.T) {
	store := setupTestStore(t)

	r := &Run{Playlist: "Favorites", Destination: "/d"}
	require.NoError(t, store.StartRun(r))

	err := store.RecordTrack(&TrackRecord{RunID: r.ID, Position: 1, Outcome: "exploded"})
	assert.Error(t, err)
}

func TestStore_ListRuns(t *testing.T) {
	store := setupTestStore(t)

	base := time.Now().Add(-time.Hour)
	for i, name := range []string{"A", "B", "A"} {
		r := &Run{Playlist: name, Destination: "/d", StartedAt: base.Add(time.Duration(i) * time.Minute)}
		require.NoError(t, store.StartRun(r))
	}

	runs, err := store.ListRuns(RunFilter{})
	require.NoError(t, err)
	assert.Len(t, runs, 3)
	for i := 1; i < len(runs); i++ {
		assert.False(t, runs[i].StartedAt.After(runs[i-1].StartedAt),
			"runs should be ordered by most recent first")
	}

	name := "A"
	runs, err = store.ListRuns(RunFilter{Playlist: &name})
	require.NoError(t, err, "List by playlist")
	assert.Len(t, runs, 2)

	status := StatusComplete
	runs, err = store.ListRuns(RunFilter{Status: &status})
	require.NoError(t, err, "List by status")
	assert.Empty(t, runs)

	runs, err = store.ListRuns(RunFilter{Limit: 2})
	require.NoError(t, err, "List with limit")
	assert.Len(t, runs, 2)
}
