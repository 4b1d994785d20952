package filesystem

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOS_ExistsAndRemove(t *testing.T) {
	fsys := NewOS()
	path := filepath.Join(t.TempDir(), "a.txt")

	exists, err := fsys.Exists(path)
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, os.WriteFile(path, []byte("x"), 0644))
	exists, err = fsys.Exists(path)
	require.NoError(t, err)
	assert.True(t, exists)

	require.NoError(t, fsys.Remove(path))
	assert.Error(t, fsys.Remove(path))
}

func TestOS_Open(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a.txt")
	require.NoError(t, os.WriteFile(path, []byte("hello"), 0644))

	rc, err := NewOS().Open(path)
	require.NoError(t, err)
	defer rc.Close()

	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(data))
}

func TestEnsureParentDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "deeper", "file.json")
	require.NoError(t, EnsureParentDir(path))

	info, err := os.Stat(filepath.Dir(path))
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
