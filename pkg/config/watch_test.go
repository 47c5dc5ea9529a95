package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gldemos/internal/logger"
)

func TestWatcherDeliversValidChanges(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "demos.yaml")
	require.NoError(t, os.WriteFile(path, []byte("demo: cubes\n"), 0644))

	var logs bytes.Buffer
	w, err := Watch(path, logger.New("debug", &logs))
	require.NoError(t, err)
	defer w.Close()

	// Unrelated files in the same directory are ignored
	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.yaml"), []byte("demo: flag\n"), 0644))

	require.NoError(t, os.WriteFile(path, []byte("demo: flag\n"), 0644))

	// Truncation can surface as an empty, still valid, intermediate config
	timeout := time.After(5 * time.Second)
	for {
		select {
		case cfg := <-w.Updates():
			if cfg.Demo == "flag" {
				return
			}
			assert.Equal(t, DefaultConfig().Demo, cfg.Demo)
		case <-timeout:
			t.Fatal("no config update received")
		}
	}
}

func TestWatcherSkipsInvalidConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "demos.yaml")
	require.NoError(t, os.WriteFile(path, []byte("demo: cubes\n"), 0644))

	var logs bytes.Buffer
	w, err := Watch(path, logger.New("debug", &logs))
	require.NoError(t, err)
	defer w.Close()

	// Replace atomically so no truncated intermediate version is seen
	tmp := filepath.Join(dir, "demos.yaml.tmp")
	require.NoError(t, os.WriteFile(tmp, []byte("flag:\n  density: 0\n"), 0644))
	require.NoError(t, os.Rename(tmp, path))

	select {
	case cfg := <-w.Updates():
		t.Fatalf("unexpected update %+v", cfg)
	case <-time.After(500 * time.Millisecond):
	}
}

func TestWatchMissingDirectory(t *testing.T) {
	var logs bytes.Buffer
	_, err := Watch(filepath.Join(t.TempDir(), "missing", "demos.yaml"), logger.New("info", &logs))
	assert.Error(t, err)
}
