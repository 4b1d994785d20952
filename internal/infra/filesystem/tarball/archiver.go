package tarball

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/compose-network/filedemo/internal/infra/filesystem"
	"github.com/compose-network/filedemo/internal/logger"
	"github.com/moby/go-archive"
)

// Archiver packs files into an uncompressed tar.
type Archiver struct {
	logger *slog.Logger
}

func NewArchiver() *Archiver {
	return &Archiver{logger: logger.Named("archiver")}
}

// Pack writes the named files, relative to srcDir, into a tar at dest.
// Names that do not exist are skipped. It returns the names it packed;
// when that is none, dest is left untouched.
func (a *Archiver) Pack(dest, srcDir string, names []string) (packed []string, err error) {
	for _, name := range names {
		if _, statErr := os.Stat(filepath.Join(srcDir, name)); statErr != nil {
			a.logger.With("file", name, "err", statErr.Error()).Debug("skipping file for archive")
			continue
		}
		packed = append(packed, name)
	}
	if len(packed) == 0 {
		return nil, nil
	}

	stream, err := archive.TarWithOptions(srcDir, &archive.TarOptions{IncludeFiles: packed})
	if err != nil {
		return nil, fmt.Errorf("failed to create tar stream: %w", err)
	}
	defer stream.Close()

	if err := filesystem.EnsureParentDir(dest); err != nil {
		return nil, err
	}

	out, err := os.Create(dest)
	if err != nil {
		return nil, fmt.Errorf("failed to create archive file: %w", err)
	}
	defer func() {
		if closeErr := out.Close(); closeErr != nil {
			err = errors.Join(err, fmt.Errorf("failed to close archive file: %w", closeErr))
		}
	}()

	if _, err := io.Copy(out, stream); err != nil {
		return nil, fmt.Errorf("failed to write archive: %w", err)
	}

	a.logger.With("archive", dest, "files", len(packed)).Debug("artifacts archived")
	return packed, nil
}
