package catalog

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteReadJSONL(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.jsonl")
	records := []json.RawMessage{
		json.RawMessage(`{"a":1}`),
		json.RawMessage(`{"b":2}`),
	}

	require.NoError(t, writeJSONL(path, records))
	got, err := readJSONL(path)
	require.NoError(t, err)
	assert.Equal(t, records, got)

	// Overwrite replaces the file.
	require.NoError(t, writeJSONL(path, records[:1]))
	got, err = readJSONL(path)
	require.NoError(t, err)
	assert.Len(t, got, 1)

	leftovers, err := filepath.Glob(filepath.Join(filepath.Dir(path), ".jsonl-*.tmp"))
	require.NoError(t, err)
	assert.Empty(t, leftovers, "temp files are renamed away")
}

func TestReadJSONL_SkipsMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "in.jsonl")
	require.NoError(t, os.WriteFile(path, []byte("{\"ok\":true}\n{broken\n\n[1,2]\n"), 0o644))

	got, err := readJSONL(path)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.JSONEq(t, `{"ok":true}`, string(got[0]))
	assert.JSONEq(t, `[1,2]`, string(got[1]))
}

func TestReadJSONL_LongLines(t *testing.T) {
	dir := t.TempDir()

	// A line past bufio's default token size still reads.
	long := `{"pad":"` + strings.Repeat("x", 1<<20) + `"}`
	path := filepath.Join(dir, "long.jsonl")
	require.NoError(t, os.WriteFile(path, []byte(long+"\n{\"b\":2}\n"), 0o644))

	got, err := readJSONL(path)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Len(t, got[0], len(long))

	// A line over the limit fails instead of being silently truncated.
	huge := `{"pad":"` + strings.Repeat("x", maxLineSize) + `"}`
	path = filepath.Join(dir, "huge.jsonl")
	require.NoError(t, os.WriteFile(path, []byte(huge+"\n"), 0o644))

	_, err = readJSONL(path)
	assert.ErrorIs(t, err, bufio.ErrTooLong)
}

func TestReadJSONL_MissingFile(t *testing.T) {
	_, err := readJSONL(filepath.Join(t.TempDir(), "absent.jsonl"))
	assert.Error(t, err)
}

func TestWriteJSONL_MissingDir(t *testing.T) {
	err := writeJSONL(filepath.Join(t.TempDir(), "no", "such", "dir.jsonl"), nil)
	assert.Error(t, err)
}

func TestEnsureJSONL(t *testing.T) {
	path := filepath.Join(t.TempDir(), "defs.jsonl")
	require.NoError(t, ensureJSONL(path))
	assert.FileExists(t, path)

	require.NoError(t, os.WriteFile(path, []byte("{\"x\":1}\n"), 0o644))
	require.NoError(t, ensureJSONL(path))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "{\"x\":1}\n", string(data), "existing content is kept")
}
