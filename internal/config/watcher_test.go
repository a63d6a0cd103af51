package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatcherReloadsOnWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[logging]\nlevel = \"info\"\n"), 0o644))

	w, err := NewWatcher(path, WithDebounce(10*time.Millisecond))
	require.NoError(t, err)
	defer w.Close()

	changes := make(chan *Config, 4)
	w.OnChange(func(cfg *Config) {
		changes <- cfg
	})

	require.NoError(t, os.WriteFile(path, []byte("[logging]\nlevel = \"debug\"\n"), 0o644))

	select {
	case cfg := <-changes:
		assert.Equal(t, "debug", cfg.Logging.Level)
	case <-time.After(2 * time.Second):
		t.Fatal("no reload after write")
	}
}

func TestWatcherIgnoresInvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	w, err := NewWatcher(path, WithDebounce(10*time.Millisecond))
	require.NoError(t, err)
	defer w.Close()

	changes := make(chan *Config, 4)
	w.OnChange(func(cfg *Config) {
		changes <- cfg
	})

	require.NoError(t, os.WriteFile(path, []byte("[logging\n"), 0o644))

	select {
	case <-changes:
		t.Fatal("handler called for invalid config")
	case <-time.After(200 * time.Millisecond):
	}
}

func TestWatcherIgnoresSiblingFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	w, err := NewWatcher(path, WithDebounce(10*time.Millisecond))
	require.NoError(t, err)
	defer w.Close()

	changes := make(chan *Config, 4)
	w.OnChange(func(cfg *Config) {
		changes <- cfg
	})

	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.toml"), []byte("x = 1\n"), 0o644))

	select {
	case <-changes:
		t.Fatal("handler called for unrelated file")
	case <-time.After(200 * time.Millisecond):
	}
}

func TestWatcherCloseTwice(t *testing.T) {
	w, err := NewWatcher(filepath.Join(t.TempDir(), "config.toml"))
	require.NoError(t, err)

	require.NoError(t, w.Close())
	assert.ErrorIs(t, w.Close(), ErrWatcherClosed)
}
