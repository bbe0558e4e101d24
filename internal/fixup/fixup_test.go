package fixup

import (
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryStore struct {
	values map[string]string
	writes []string
	getErr error
	setErr error
}

func newMemoryStore(initial map[string]string) *memoryStore {
	values := make(map[string]string)
	for k, v := range initial {
		values[k] = v
	}
	return &memoryStore{values: values}
}

func (m *memoryStore) Get(key string) (string, bool, error) {
	if m.getErr != nil {
		return "", false, m.getErr
	}
	v, ok := m.values[key]
	return v, ok, nil
}

func (m *memoryStore) Set(key, value string) error {
	if m.setErr != nil {
		return m.setErr
	}
	m.writes = append(m.writes, key)
	m.values[key] = value
	return nil
}

func TestEnsureIsIdempotent(t *testing.T) {
	store := newMemoryStore(map[string]string{"core.pager": "less", "pager.log": "delta"})
	var notices [][]string
	e := &Ensurer{Store: store, Notify: func(changed []string) { notices = append(notices, changed) }}

	require.NoError(t, e.Ensure("delta", DefaultPagerKeys))
	assert.Equal(t, []string{"core.pager", "pager.diff", "pager.show"}, store.writes)
	require.Len(t, notices, 1)

	require.NoError(t, e.Ensure("delta", DefaultPagerKeys))
	assert.Len(t, store.writes, 3, "second call must not write")
	assert.Len(t, notices, 1, "second call must not notify")

	for _, key := range DefaultPagerKeys {
		assert.Equal(t, "delta", store.values[key])
	}
}

func TestEnsureNoChangesNoNotice(t *testing.T) {
	store := newMemoryStore(map[string]string{
		"core.pager": "delta", "pager.log": "delta", "pager.diff": "delta", "pager.show": "delta",
	})
	notified := false
	e := &Ensurer{Store: store, Notify: func([]string) { notified = true }}

	require.NoError(t, e.Ensure("delta", DefaultPagerKeys))
	assert.Empty(t, store.writes)
	assert.False(t, notified)
}

func TestEnsureProbeAbsent(t *testing.T) {
	store := newMemoryStore(nil)
	e := &Ensurer{Store: store, Probe: func() bool { return false }}

	require.NoError(t, e.Ensure("delta", DefaultPagerKeys))
	assert.Empty(t, store.writes)
}

func TestEnsureErrors(t *testing.T) {
	boom := errors.New("boom")

	tests := []struct {
		name  string
		store *memoryStore
		want  string
	}{
		{"read failure", &memoryStore{values: map[string]string{}, getErr: boom}, "read core.pager"},
		{"write failure", &memoryStore{values: map[string]string{}, setErr: boom}, "set core.pager"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := (&Ensurer{Store: tt.store}).Ensure("delta", DefaultPagerKeys)
			require.Error(t, err)
			assert.ErrorIs(t, err, boom)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLookPathProbe(t *testing.T) {
	assert.False(t, LookPathProbe("definitely-not-a-real-binary-xyz")())
}

func TestGitConfigRoundTrip(t *testing.T) {
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not available")
	}
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, ".config"))
	t.Setenv("GIT_CONFIG_NOSYSTEM", "1")
	t.Setenv("GIT_CONFIG_GLOBAL", filepath.Join(home, ".gitconfig"))

	e := NewGitPagers("git", nil)
	require.NoError(t, e.Ensure("delta", DefaultPagerKeys))

	store := GitConfig{Binary: "git"}
	for _, key := range DefaultPagerKeys {
		v, ok, err := store.Get(key)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, "delta", v)
	}

	_, err := os.Stat(filepath.Join(home, ".gitconfig"))
	assert.NoError(t, err)
}
