package filestorages

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStorage(t *testing.T) (FileStorage, string) {
	t.Helper()
	dir := t.TempDir()
	storage, err := NewFileStorage(dir)
	require.NoError(t, err)
	return storage, dir
}

func TestNewFileStorage_EmptyRootDir(t *testing.T) {
	t.Parallel()

	storage, err := NewFileStorage("")
	assert.Nil(t, storage)
	assert.ErrorIs(t, err, ErrInvalidRootDir)
}

func TestFileStorage_PutAndGet(t *testing.T) {
	t.Parallel()

	storage, _ := newTestStorage(t)

	result, err := storage.Put(context.Background(), "out.json", strings.NewReader(`{"totalBytes": 0}`))
	require.NoError(t, err)
	assert.Equal(t, "out.json", result.FileKey)

	reader, err := storage.Get(context.Background(), "out.json")
	require.NoError(t, err)
	defer func() { _ = reader.Close() }()

	data, err := io.ReadAll(reader)
	require.NoError(t, err)
	assert.Equal(t, `{"totalBytes": 0}`, string(data))
}

func TestFileStorage_Put_OverwritesExisting(t *testing.T) {
	t.Parallel()

	storage, dir := newTestStorage(t)

	_, err := storage.Put(context.Background(), "out.txt", strings.NewReader("first"))
	require.NoError(t, err)
	_, err = storage.Put(context.Background(), "out.txt", strings.NewReader("second"))
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, "out.txt"))
	require.NoError(t, err)
	assert.Equal(t, "second", string(data))
}

func TestFileStorage_Put_CreatesNestedDirs(t *testing.T) {
	t.Parallel()

	storage, dir := newTestStorage(t)

	_, err := storage.Put(context.Background(), "reports/2026/out.json", strings.NewReader("{}"))
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(dir, "reports", "2026", "out.json"))
	assert.NoError(t, err)
}

func TestFileStorage_Put_LeavesNoTempFiles(t *testing.T) {
	t.Parallel()

	storage, dir := newTestStorage(t)

	_, err := storage.Put(context.Background(), "out.json", strings.NewReader("{}"))
	require.NoError(t, err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "out.json", entries[0].Name())
}

func TestFileStorage_Get_NotFound(t *testing.T) {
	t.Parallel()

	storage, _ := newTestStorage(t)

	reader, err := storage.Get(context.Background(), "missing.json")
	assert.Nil(t, reader)
	assert.ErrorIs(t, err, ErrFileNotFound)
}

func TestFileStorage_InvalidKeys(t *testing.T) {
	t.Parallel()

	storage, _ := newTestStorage(t)

	tests := []struct {
		name string
		key  string
	}{
		{name: "empty", key: ""},
		{name: "absolute path", key: "/etc/passwd"},
		{name: "parent traversal", key: "../escape.txt"},
		{name: "nested traversal", key: "a/../../escape.txt"},
		{name: "dot", key: "."},
		{name: "dot dot", key: ".."},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := storage.Put(context.Background(), tt.key, strings.NewReader("x"))
			assert.ErrorIs(t, err, ErrInvalidKey)

			_, err = storage.Get(context.Background(), tt.key)
			assert.ErrorIs(t, err, ErrInvalidKey)
		})
	}
}
