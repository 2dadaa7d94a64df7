package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runContract exercises the behavior every backend must share
func runContract(t *testing.T, s Storage) {
	t.Helper()
	ctx := context.Background()
	key := "resume-data-contract"
	t.Cleanup(func() { _ = s.Delete(ctx, key) })

	_, err := s.Get(ctx, key)
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, s.Set(ctx, key, `{"summary":"first"}`))
	v, err := s.Get(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, `{"summary":"first"}`, v)

	require.NoError(t, s.Set(ctx, key, `{"summary":"second"}`))
	v, err = s.Get(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, `{"summary":"second"}`, v, "set overwrites")

	require.NoError(t, s.Delete(ctx, key))
	_, err = s.Get(ctx, key)
	assert.ErrorIs(t, err, ErrNotFound)

	assert.NoError(t, s.Delete(ctx, key), "deleting a missing key is not an error")
}

func TestMemoryStorage_Contract(t *testing.T) {
	runContract(t, NewMemoryStorage())
}

func TestFileStorage_Contract(t *testing.T) {
	s, err := NewFileStorage(t.TempDir())
	require.NoError(t, err)
	runContract(t, s)
}

func TestFileStorage_KeyEscaping(t *testing.T) {
	dir := t.TempDir()
	s, err := NewFileStorage(dir)
	require.NoError(t, err)

	require.NoError(t, s.Set(context.Background(), "../escape/attempt", "x"))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.NotContains(t, entries[0].Name(), "/")
	_, err = os.Stat(filepath.Join(dir, "..", "escape"))
	assert.True(t, os.IsNotExist(err))
}

func TestFileStorage_EmptyDir(t *testing.T) {
	_, err := NewFileStorage("")
	assert.Error(t, err)
}

func TestOpen_Memory(t *testing.T) {
	s, err := Open(context.Background(), Options{Backend: BackendMemory})
	require.NoError(t, err)
	assert.IsType(t, &MemoryStorage{}, s)
}

func TestOpen_FileDefault(t *testing.T) {
	s, err := Open(context.Background(), Options{Path: t.TempDir()})
	require.NoError(t, err)
	assert.IsType(t, &FileStorage{}, s)
}

func TestOpen_MissingURLs(t *testing.T) {
	_, err := Open(context.Background(), Options{Backend: BackendRedis})
	assert.Error(t, err)
	_, err = Open(context.Background(), Options{Backend: BackendPostgres})
	assert.Error(t, err)
	_, err = Open(context.Background(), Options{Backend: "s3"})
	assert.Error(t, err)
}
