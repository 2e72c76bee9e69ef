package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/widgetkit/internal/logger"
)

func nextEvent(t *testing.T, w *Watcher) ThemeEvent {
	t.Helper()

	select {
	case ev, ok := <-w.Events():
		require.True(t, ok, "events closed early")
		return ev
	case <-time.After(3 * time.Second):
		t.Fatal("no theme event")
		return ThemeEvent{}
	}
}

func TestWatcherReloadsTheme(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "theme.yaml")
	require.NoError(t, os.WriteFile(path, []byte("name: first\n"), 0o600))

	w, err := WatchTheme(path, 50*time.Millisecond, logger.Nop())
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(path, []byte("name: second\nextends: dark\n"), 0o600))
	ev := nextEvent(t, w)
	require.NoError(t, ev.Err)
	assert.Equal(t, "second", ev.Theme.Name)

	require.NoError(t, os.WriteFile(path, []byte("extends: sepia\n"), 0o600))
	ev = nextEvent(t, w)
	assert.Error(t, ev.Err)
}

func TestWatcherIgnoresSiblings(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "theme.yaml")
	require.NoError(t, os.WriteFile(path, []byte("name: first\n"), 0o600))

	w, err := WatchTheme(path, 20*time.Millisecond, nil)
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.yaml"), []byte("x: 1\n"), 0o600))

	select {
	case ev := <-w.Events():
		t.Fatalf("unexpected event %+v", ev)
	case <-time.After(200 * time.Millisecond):
	}
}

func TestWatcherCloseClosesEvents(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "theme.yaml")
	require.NoError(t, os.WriteFile(path, []byte("name: first\n"), 0o600))

	w, err := WatchTheme(path, time.Hour, nil)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(path, []byte("name: pending\n"), 0o600))
	require.NoError(t, w.Close())
	require.NoError(t, w.Close(), "close is idempotent")

	_, ok := <-w.Events()
	assert.False(t, ok)
}

func TestWatchThemeMissingDirectory(t *testing.T) {
	_, err := WatchTheme(filepath.Join(t.TempDir(), "nope", "theme.yaml"), 0, nil)
	assert.Error(t, err)
}
