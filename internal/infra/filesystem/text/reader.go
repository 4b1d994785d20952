package text

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// Reader reads plain text files. Every method opens and closes its own
// handle.
type Reader struct{}

func NewReader() *Reader {
	return &Reader{}
}

// ReadAll returns the whole file content.
func (r *Reader) ReadAll(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()

	var sb strings.Builder
	if _, err := io.Copy(&sb, f); err != nil {
		return "", fmt.Errorf("failed to read file: %w", err)
	}
	return sb.String(), nil
}

// EachLine calls fn for every line with its 1-based number. Lines keep
// their terminator; a final line without one is still delivered.
func (r *Reader) EachLine(path string, fn func(num int, line string)) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()

	br := bufio.NewReader(f)
	for num := 1; ; num++ {
		line, err := br.ReadString('\n')
		if line != "" {
			fn(num, line)
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to read line %d: %w", num, err)
		}
	}
}

// ReadLines returns every line, terminators included, in file order.
func (r *Reader) ReadLines(path string) ([]string, error) {
	var lines []string
	if err := r.EachLine(path, func(_ int, line string) {
		lines = append(lines, line)
	}); err != nil {
		return nil, err
	}
	return lines, nil
}
