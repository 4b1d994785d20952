package demo

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/compose-network/filedemo/configs"
	"github.com/compose-network/filedemo/internal/infra/filesystem"
	"github.com/compose-network/filedemo/internal/infra/filesystem/json"
	"github.com/compose-network/filedemo/internal/infra/filesystem/tarball"
	"github.com/compose-network/filedemo/internal/infra/filesystem/text"
	"github.com/compose-network/filedemo/internal/logger"
	"github.com/compose-network/filedemo/internal/outcome"
	"github.com/compose-network/filedemo/internal/report"
	"github.com/google/uuid"
)

type (
	Archiver interface {
		Pack(dest, srcDir string, names []string) ([]string, error)
	}

	// Runner executes the demo steps in a fixed order. Every step records
	// its outcome and none of them stops the run.
	Runner struct {
		cfg configs.Config

		jsonReader filesystem.Reader
		jsonWriter filesystem.Writer
		textReader filesystem.TextReader
		textWriter filesystem.TextWriter
		remover    filesystem.Remover
		opener     filesystem.Opener
		archiver   Archiver

		out    io.Writer
		now    func() time.Time
		runID  string
		logger *slog.Logger
		report *report.Model
	}

	Option func(*Runner)
)

func WithOutput(w io.Writer) Option {
	return func(r *Runner) { r.out = w }
}

func WithClock(now func() time.Time) Option {
	return func(r *Runner) { r.now = now }
}

func WithRunID(id string) Option {
	return func(r *Runner) { r.runID = id }
}

func WithOpener(o filesystem.Opener) Option {
	return func(r *Runner) { r.opener = o }
}

func WithTextReader(tr filesystem.TextReader) Option {
	return func(r *Runner) { r.textReader = tr }
}

func WithTextWriter(tw filesystem.TextWriter) Option {
	return func(r *Runner) { r.textWriter = tw }
}

func WithJSONReader(jr filesystem.Reader) Option {
	return func(r *Runner) { r.jsonReader = jr }
}

func WithRemover(rm filesystem.Remover) Option {
	return func(r *Runner) { r.remover = rm }
}

func WithArchiver(a Archiver) Option {
	return func(r *Runner) { r.archiver = a }
}

func NewRunner(cfg configs.Config, opts ...Option) *Runner {
	osfs := filesystem.NewOS()
	r := &Runner{
		cfg:        cfg,
		jsonReader: json.NewReader(),
		jsonWriter: json.NewWriter(),
		textReader: text.NewReader(),
		textWriter: text.NewWriter(),
		remover:    osfs,
		opener:     osfs,
		archiver:   tarball.NewArchiver(),
		out:        os.Stdout,
		now:        time.Now,
		runID:      uuid.NewString(),
	}
	for _, opt := range opts {
		opt(r)
	}

	r.logger = logger.Named("demo").With("run_id", r.runID)
	r.report = report.New(r.runID)
	return r
}

// Run executes every step and returns the run report.
func (r *Runner) Run(_ context.Context) *report.Model {
	r.logger.With("workdir", r.cfg.Workdir).Info("starting demo run")
	r.printf("=== Go File Handling and Error Demo ===\n")

	r.CreateArtifacts()
	r.ReadText()
	r.WriteAndAppend()
	r.UpdateStructured()
	r.Demonstrate()

	if r.cfg.Archive.Enabled {
		r.Archive()
	}

	r.printf("\n=== Cleanup ===\n")
	r.Cleanup()

	r.logger.With("steps", len(r.report.Steps), "failures", r.report.Failures()).Info("demo run finished")
	return r.report
}

func (r *Runner) textPath() string {
	return r.cfg.Resolve(r.cfg.Artifacts.Text)
}

func (r *Runner) structuredPath() string {
	return r.cfg.Resolve(r.cfg.Artifacts.Structured)
}

func (r *Runner) outputPath() string {
	return r.cfg.Resolve(r.cfg.Artifacts.Output)
}

func (r *Runner) record(step string, result outcome.Result) outcome.Result {
	r.report.Record(step, result)

	log := r.logger.With("step", step, "kind", result.Kind.String())
	if result.Failed() {
		if result.Err != nil {
			log = log.With("err", result.Err.Error())
		}
		log.Warn("step failed")
	} else {
		log.Debug("step completed")
	}
	return result
}

func (r *Runner) printf(format string, args ...any) {
	fmt.Fprintf(r.out, format, args...)
}

// timestamp formats t as an ISO-8601 (RFC 3339) string with nanoseconds.
func timestamp(t time.Time) string {
	return t.Format(time.RFC3339Nano)
}

// stampAfter returns the current time, pushed forward if needed so that it
// sorts strictly after previous.
func (r *Runner) stampAfter(previous string) string {
	now := r.now()
	if prev, err := time.Parse(time.RFC3339Nano, previous); err == nil && !now.After(prev) {
		now = prev.Add(time.Nanosecond)
	}
	return timestamp(now)
}
