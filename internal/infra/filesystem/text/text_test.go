package text

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/compose-network/filedemo/internal/outcome"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteAppendRead(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "notes.txt")
	w := NewWriter()
	r := NewReader()

	require.NoError(t, w.WriteLines(path, "one", "two"))
	require.NoError(t, w.AppendLines(path, "three", "four"))

	content, err := r.ReadAll(path)
	require.NoError(t, err)
	assert.Equal(t, "one\ntwo\nthree\nfour\n", content)

	lines, err := r.ReadLines(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"one\n", "two\n", "three\n", "four\n"}, lines)
	assert.Equal(t, content, strings.Join(lines, ""))
}

func TestWriteLines_Truncates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.txt")
	require.NoError(t, os.WriteFile(path, []byte("old content that is longer\n"), 0644))

	require.NoError(t, NewWriter().WriteLines(path, "new"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "new\n", string(data))
}

func TestEachLine_NumbersFromOneAndKeepsUnterminatedTail(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.txt")
	require.NoError(t, os.WriteFile(path, []byte("a\nb\nc"), 0644))

	var nums []int
	var got []string
	require.NoError(t, NewReader().EachLine(path, func(num int, line string) {
		nums = append(nums, num)
		got = append(got, line)
	}))

	assert.Equal(t, []int{1, 2, 3}, nums)
	assert.Equal(t, []string{"a\n", "b\n", "c"}, got)
}

func TestReaders_MissingFileIsNotFound(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absent.txt")
	r := NewReader()

	_, err := r.ReadAll(path)
	assert.Equal(t, outcome.NotFound, outcome.Classify(err))

	err = r.EachLine(path, func(int, string) {})
	assert.Equal(t, outcome.NotFound, outcome.Classify(err))

	_, err = r.ReadLines(path)
	assert.Equal(t, outcome.NotFound, outcome.Classify(err))
}
