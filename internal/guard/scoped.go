package guard

import (
	"fmt"
	"io"
	"log/slog"
	"unicode/utf8"

	"github.com/compose-network/filedemo/internal/infra/filesystem"
	"github.com/compose-network/filedemo/internal/logger"
	"github.com/compose-network/filedemo/internal/outcome"
)

// ScopedReader reads a whole file through a handle that is released on
// every exit path once it has been acquired.
type ScopedReader struct {
	opener filesystem.Opener
	logger *slog.Logger

	// Closed, when set, is called after a handle is released.
	Closed func(path string)
}

func NewScopedReader(opener filesystem.Opener) *ScopedReader {
	return &ScopedReader{opener: opener, logger: logger.Named("scoped_reader")}
}

// ReadLength reports the number of characters in path.
func (s *ScopedReader) ReadLength(path string) outcome.Result {
	handle, err := s.opener.Open(path)
	if err != nil {
		return s.failure(path, err)
	}
	defer func() {
		if err := handle.Close(); err != nil {
			s.logger.With("path", path, "err", err.Error()).Warn("failed to close file handle")
		}
		s.logger.With("path", path).Debug("file handle closed")
		if s.Closed != nil {
			s.Closed(path)
		}
	}()

	data, err := io.ReadAll(handle)
	if err != nil {
		return s.failure(path, fmt.Errorf("failed to read file: %w", err))
	}

	return outcome.Success("File content length: %d", utf8.RuneCount(data))
}

func (s *ScopedReader) failure(path string, err error) outcome.Result {
	switch outcome.Classify(err) {
	case outcome.NotFound:
		return outcome.Failure(err, "Error: File '%s' not found!", path)
	case outcome.PermissionDenied:
		return outcome.Failure(err, "Error: No permission to read '%s'!", path)
	default:
		return outcome.Failure(err, "Error: Could not read '%s': %v", path, err)
	}
}
