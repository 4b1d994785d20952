package tarball

import (
	"archive/tar"
	"errors"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPack_IncludesOnlyExistingFiles(t *testing.T) {
	src := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(src, "a.txt"), []byte("alpha"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(src, "b.json"), []byte("{}"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(src, "ignored.txt"), []byte("nope"), 0644))

	dest := filepath.Join(t.TempDir(), "snap", "artifacts.tar")
	packed, err := NewArchiver().Pack(dest, src, []string{"a.txt", "b.json", "missing.txt"})
	require.NoError(t, err)
	assert.Equal(t, []string{"a.txt", "b.json"}, packed)

	f, err := os.Open(dest)
	require.NoError(t, err)
	defer f.Close()

	var names []string
	tr := tar.NewReader(f)
	for {
		hdr, err := tr.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		require.NoError(t, err)
		names = append(names, strings.TrimPrefix(hdr.Name, "./"))
	}
	sort.Strings(names)
	assert.Equal(t, []string{"a.txt", "b.json"}, names)
}

func TestPack_NothingToPack(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "artifacts.tar")
	packed, err := NewArchiver().Pack(dest, t.TempDir(), []string{"missing.txt"})
	require.NoError(t, err)
	assert.Empty(t, packed)

	_, err = os.Stat(dest)
	assert.True(t, os.IsNotExist(err))
}
