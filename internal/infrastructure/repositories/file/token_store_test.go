package file

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"skateplan/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileTokenStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "token")
	store := NewFileTokenStore(path)

	_, err := store.Load(ctx)
	assert.ErrorIs(t, err, domain.ErrNoToken)

	require.NoError(t, store.Save(ctx, "9944b09199c62bcf"))
	token, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "9944b09199c62bcf", token)

	if runtime.GOOS != "windows" {
		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
	}

	require.NoError(t, store.Save(ctx, "replacement"))
	token, err = store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "replacement", token)

	require.NoError(t, store.Clear(ctx))
	require.NoError(t, store.Clear(ctx), "clearing twice is fine")
	_, err = store.Load(ctx)
	assert.ErrorIs(t, err, domain.ErrNoToken)
}

func TestFileTokenStore_BlankFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token")
	require.NoError(t, os.WriteFile(path, []byte("  \n"), 0o600))

	_, err := NewFileTokenStore(path).Load(context.Background())
	assert.ErrorIs(t, err, domain.ErrNoToken)
}

func TestFileTokenStore_LeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	store := NewFileTokenStore(filepath.Join(dir, "token"))
	require.NoError(t, store.Save(context.Background(), "abc"))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "token", entries[0].Name())
}
