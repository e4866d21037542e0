package cli

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileWatcher_RerunsOnWrite(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "value.yaml")
	other := filepath.Join(dir, "other.yaml")
	require.NoError(t, os.WriteFile(target, []byte("a: 1\n"), 0o644))

	w, err := newFileWatcher([]string{target}, 20*time.Millisecond, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	changed := make(chan struct{}, 8)
	done := make(chan error, 1)
	go func() {
		done <- w.Run(ctx, func() { changed <- struct{}{} })
	}()

	// Unwatched files in the same directory are ignored.
	require.NoError(t, os.WriteFile(other, []byte("b: 2\n"), 0o644))
	select {
	case <-changed:
		t.Fatal("change to unwatched file triggered a rerun")
	case <-time.After(150 * time.Millisecond):
	}

	require.NoError(t, os.WriteFile(target, []byte("a: 2\n"), 0o644))
	select {
	case <-changed:
	case <-time.After(5 * time.Second):
		t.Fatal("no rerun after write")
	}

	// Replacing the file by rename counts as a change.
	tmp := filepath.Join(dir, "value.yaml.tmp")
	require.NoError(t, os.WriteFile(tmp, []byte("a: 3\n"), 0o644))
	require.NoError(t, os.Rename(tmp, target))
	select {
	case <-changed:
	case <-time.After(5 * time.Second):
		t.Fatal("no rerun after rename")
	}

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestFileWatcher_MissingDir(t *testing.T) {
	_, err := newFileWatcher([]string{filepath.Join(t.TempDir(), "no", "such", "file.yaml")}, time.Millisecond, slog.New(slog.NewTextHandler(io.Discard, nil)))
	assert.Error(t, err)
}

func TestCheck_WatchStopsOnCancel(t *testing.T) {
	env := newTestEnv(t)
	defFile := env.writeFile("def.yaml", movieDataYAML)
	value := env.writeFile("value.json", `{"title": "Alien", "year": 1979}`)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	root := NewRootCmd()
	var stdout, stderr bytes.Buffer
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	code := run(ctx, root, []string{
		"--config-dir", env.configDir, "--data-dir", env.dataDir,
		"check", value, "--def", defFile, "--watch",
	})

	assert.Equal(t, exitSuccess, code, "stderr: %s", stderr.String())
	assert.Equal(t, "ok\n", stdout.String())
}
