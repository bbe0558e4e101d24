package state

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadStateMissing(t *testing.T) {
	st := LoadState(filepath.Join(t.TempDir(), "state.json"))
	require.NotNil(t, st)
	assert.Empty(t, st.LastProfile)
	assert.Nil(t, st.LastRun)
}

func TestLoadStateCorrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	st := LoadState(path)
	require.NotNil(t, st)
	assert.Empty(t, st.LastProfile)
}

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "state.json")
	finished := time.Date(2026, 10, 15, 9, 30, 0, 0, time.UTC)

	st := &State{}
	st.Record(RunRecord{
		Profile:        "ux",
		Dotfiles:       true,
		Status:         "aborted",
		FailedStep:     2,
		ElapsedSeconds: 12.5,
		FinishedAt:     finished,
	})
	require.NoError(t, SaveState(path, st))

	loaded := LoadState(path)
	assert.Equal(t, "ux", loaded.LastProfile)
	require.NotNil(t, loaded.LastRun)
	assert.Equal(t, 2, loaded.LastRun.FailedStep)
	assert.True(t, loaded.LastRun.FinishedAt.Equal(finished))

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp files must not be left behind")
}

func TestAcquireLock(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")

	first, err := AcquireLock(path)
	require.NoError(t, err)

	_, err = AcquireLock(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrLocked)

	require.NoError(t, first.Release())

	again, err := AcquireLock(path)
	require.NoError(t, err)
	require.NoError(t, again.Release())
}
