package text

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/compose-network/filedemo/internal/infra/filesystem"
)

// Writer writes newline terminated lines.
type Writer struct{}

func NewWriter() *Writer {
	return &Writer{}
}

// WriteLines creates or truncates path and writes lines to it.
func (w *Writer) WriteLines(path string, lines ...string) error {
	if err := filesystem.EnsureParentDir(path); err != nil {
		return err
	}
	return writeLines(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, lines)
}

// AppendLines adds lines to the end of path, creating it when absent.
func (w *Writer) AppendLines(path string, lines ...string) error {
	return writeLines(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, lines)
}

func writeLines(path string, flag int, lines []string) (err error) {
	f, err := os.OpenFile(path, flag, 0644)
	if err != nil {
		return fmt.Errorf("failed to open file: %w", err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil {
			err = errors.Join(err, fmt.Errorf("failed to close file: %w", closeErr))
		}
	}()

	var sb strings.Builder
	for _, line := range lines {
		sb.WriteString(line)
		sb.WriteByte('\n')
	}
	if _, err := f.WriteString(sb.String()); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	return nil
}
