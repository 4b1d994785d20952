package configs

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
)

var Values Config

type (
	ReportFormat string
	LogFormat    string

	Config struct {
		Workdir   string    `mapstructure:"workdir"`
		Artifacts Artifacts `mapstructure:"artifacts"`
		Log       Log       `mapstructure:"log"`
		Report    Report    `mapstructure:"report"`
		Archive   Archive   `mapstructure:"archive"`
	}

	Artifacts struct {
		Text       string `mapstructure:"text"`
		Structured string `mapstructure:"structured"`
		Output     string `mapstructure:"output"`
	}

	Log struct {
		Level  string    `mapstructure:"level"`
		Format LogFormat `mapstructure:"format"`
	}

	Report struct {
		Format ReportFormat `mapstructure:"format"`
	}

	Archive struct {
		Enabled bool   `mapstructure:"enabled"`
		Path    string `mapstructure:"path"`
	}
)

const (
	ReportFormatTable    ReportFormat = "table"
	ReportFormatMarkdown ReportFormat = "markdown"
	ReportFormatYAML     ReportFormat = "yaml"
	ReportFormatNone     ReportFormat = "none"

	LogFormatJSON LogFormat = "json"
	LogFormatText LogFormat = "text"
)

// Validate reports every configuration problem at once.
func (c *Config) Validate() error {
	var errs []error

	if strings.TrimSpace(c.Workdir) == "" {
		errs = append(errs, errors.New("workdir is required"))
	}

	keys := []string{"artifacts.text", "artifacts.structured", "artifacts.output"}
	names := map[string]string{
		"artifacts.text":       c.Artifacts.Text,
		"artifacts.structured": c.Artifacts.Structured,
		"artifacts.output":     c.Artifacts.Output,
	}
	if c.Archive.Enabled && strings.TrimSpace(c.Archive.Path) != "" {
		keys = append(keys, "archive.path")
		names["archive.path"] = c.Archive.Path
	}

	seen := make(map[string]string, len(names))
	for _, key := range keys {
		name := strings.TrimSpace(names[key])
		if name == "" {
			errs = append(errs, fmt.Errorf("%s is required", key))
			continue
		}
		target := filepath.Clean(c.Resolve(name))
		if abs, err := filepath.Abs(target); err == nil {
			target = abs
		}
		if other, ok := seen[target]; ok {
			errs = append(errs, fmt.Errorf("%s and %s point to the same file %q", other, key, target))
			continue
		}
		seen[target] = key
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Log.Level)); err != nil {
		errs = append(errs, fmt.Errorf("log.level %q is invalid", c.Log.Level))
	}

	switch c.Log.Format {
	case LogFormatJSON, LogFormatText:
	default:
		errs = append(errs, fmt.Errorf("log.format must be either '%s' or '%s'", LogFormatJSON, LogFormatText))
	}

	switch c.Report.Format {
	case ReportFormatTable, ReportFormatMarkdown, ReportFormatYAML, ReportFormatNone:
	default:
		errs = append(errs, fmt.Errorf("report.format %q is not one of table, markdown, yaml, none", c.Report.Format))
	}

	if c.Archive.Enabled && strings.TrimSpace(c.Archive.Path) == "" {
		errs = append(errs, errors.New("archive.path is required when archive.enabled is set"))
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed: %w", errors.Join(errs...))
	}

	return nil
}

// LogLevel returns the parsed log level, falling back to info.
func (c *Config) LogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return slog.LevelInfo
	}
	return level
}

// ArtifactPaths returns the artifact paths resolved against the workdir,
// in creation order.
func (c *Config) ArtifactPaths() []string {
	return []string{
		c.Resolve(c.Artifacts.Text),
		c.Resolve(c.Artifacts.Structured),
		c.Resolve(c.Artifacts.Output),
	}
}

// Resolve joins a relative name onto the workdir. Absolute names are kept.
func (c *Config) Resolve(name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(c.Workdir, name)
}
