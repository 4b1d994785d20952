package filesystem

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

type (
	Reader interface {
		ReadJSON(path string, target any) error
	}
	Writer interface {
		WriteJSON(path string, data any) error
	}
	TextReader interface {
		ReadAll(path string) (string, error)
		EachLine(path string, fn func(num int, line string)) error
		ReadLines(path string) ([]string, error)
	}
	TextWriter interface {
		WriteLines(path string, lines ...string) error
		AppendLines(path string, lines ...string) error
	}
	// Opener hands out a handle the caller must close.
	Opener interface {
		Open(path string) (io.ReadCloser, error)
	}
	Remover interface {
		Exists(path string) (bool, error)
		Remove(path string) error
	}
)

// OS is the Opener and Remover backed by the real filesystem.
type OS struct{}

func NewOS() *OS {
	return &OS{}
}

func (o *OS) Open(path string) (io.ReadCloser, error) {
	return os.Open(path)
}

// Exists reports whether path is present. A missing path is not an error.
func (o *OS) Exists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, err
}

func (o *OS) Remove(path string) error {
	return os.Remove(path)
}

// EnsureParentDir creates the parent directory of a file if needed.
func EnsureParentDir(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}
	return nil
}
