package demo

import (
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/compose-network/filedemo/internal/infra/filesystem"
	"github.com/compose-network/filedemo/internal/outcome"
)

// Archive packs the artifacts that still exist into the configured tar
// file. Artifacts outside the workdir are left out, and no file is written
// when nothing is left to pack.
func (r *Runner) Archive() outcome.Result {
	r.printf("\n=== Archive ===\n")

	dest := r.cfg.Resolve(r.cfg.Archive.Path)
	workdir, err := filepath.Abs(r.cfg.Workdir)
	if err != nil {
		result := outcome.Failure(err, "Error archiving artifacts: %v", err)
		r.printf("%s\n", result)
		return r.record("archive", result)
	}

	var names []string
	for _, path := range r.cfg.ArtifactPaths() {
		rel, ok := relativeTo(workdir, path)
		if !ok {
			r.logger.With("path", path).Warn("artifact outside workdir, not archived")
			continue
		}
		names = append(names, rel)
	}

	packed, err := r.archiver.Pack(dest, workdir, names)
	if err != nil {
		result := outcome.Failure(err, "Error archiving artifacts: %v", err)
		r.printf("%s\n", result)
		return r.record("archive", result)
	}

	result := outcome.Success("Archived %d artifact(s) to %s", len(packed), dest)
	if len(packed) == 0 {
		result = outcome.Success("Nothing to archive, %s not written", dest)
	}
	r.printf("%s\n", result)
	return r.record("archive", result)
}

// relativeTo returns path relative to the absolute dir, or false when path
// lies outside it.
func relativeTo(dir, path string) (string, bool) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", false
	}
	rel, err := filepath.Rel(dir, abs)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", false
	}
	return rel, true
}

// Cleanup removes every artifact of this run.
func (r *Runner) Cleanup() []outcome.Result {
	paths := r.cfg.ArtifactPaths()
	results := Cleanup(r.remover, paths, r.out, r.logger)
	for i, result := range results {
		r.record("cleanup "+filepath.Base(paths[i]), result)
	}
	return results
}

// Cleanup removes each path that exists, independently of the others.
// Missing paths are skipped silently, so running it twice is harmless.
// There is one result per path, in order.
func Cleanup(remover filesystem.Remover, paths []string, out io.Writer, log *slog.Logger) []outcome.Result {
	results := make([]outcome.Result, 0, len(paths))
	for _, path := range paths {
		results = append(results, removeOne(remover, path, out, log))
	}
	return results
}

func removeOne(remover filesystem.Remover, path string, out io.Writer, log *slog.Logger) outcome.Result {
	exists, err := remover.Exists(path)
	if err != nil {
		return removeFailure(path, err, out, log)
	}
	if !exists {
		log.With("path", path).Debug("artifact already absent")
		return outcome.Success("%s already absent", path)
	}

	if err := remover.Remove(path); err != nil {
		if outcome.Classify(err) == outcome.NotFound {
			return outcome.Success("%s already absent", path)
		}
		return removeFailure(path, err, out, log)
	}

	fmt.Fprintf(out, "Removed %s\n", path)
	return outcome.Success("Removed %s", path)
}

func removeFailure(path string, err error, out io.Writer, log *slog.Logger) outcome.Result {
	log.With("path", path, "err", err.Error()).Warn("failed to remove artifact")
	result := outcome.Failure(err, "Error removing %s: %v", path, err)
	fmt.Fprintf(out, "%s\n", result)
	return result
}
