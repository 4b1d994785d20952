package main

import (
	"github.com/compose-network/filedemo/configs"
	"github.com/spf13/viper"
)

type (
	flagType interface {
		string | bool
	}

	flagDef[T flagType] struct {
		name         string
		viperKey     string
		defaultValue T
		description  string
	}
)

func init() {
	defaults := configs.MustDefaultConfig()

	stringFlags := []flagDef[string]{
		{"workdir", "workdir", defaults.Workdir, "Directory the demo artifacts are created in"},
		{"text-file", "artifacts.text", defaults.Artifacts.Text, "Name of the plain text artifact"},
		{"structured-file", "artifacts.structured", defaults.Artifacts.Structured, "Name of the JSON artifact"},
		{"output-file", "artifacts.output", defaults.Artifacts.Output, "Name of the write/append artifact"},
		{"log-level", "log.level", defaults.Log.Level, "Log level (debug, info, warn, error)"},
		{"log-format", "log.format", string(defaults.Log.Format), "Log format (json or text)"},
		{"report-format", "report.format", string(defaults.Report.Format), "Run report format (table, markdown, yaml, none)"},
		{"archive-path", "archive.path", defaults.Archive.Path, "Tar file the artifacts are packed into before cleanup"},
	}

	boolFlags := []flagDef[bool]{
		{"archive", "archive.enabled", defaults.Archive.Enabled, "Pack the artifacts into a tar file before cleanup"},
	}

	if err := declareFlags(stringFlags); err != nil {
		panic(err)
	}
	if err := declareFlags(boolFlags); err != nil {
		panic(err)
	}
}

// declareFlags declares persistent flags and binds them to viper configuration keys.
func declareFlags[T flagType](flags []flagDef[T]) error {
	for _, flag := range flags {
		if err := declareFlag(flag.name, flag.viperKey, flag.defaultValue, flag.description); err != nil {
			return err
		}
	}
	return nil
}

func declareFlag[T flagType](flagName, viperKey string, defaultValue T, description string) error {
	switch v := any(defaultValue).(type) {
	case string:
		rootCmd.PersistentFlags().String(flagName, v, description)
	case bool:
		rootCmd.PersistentFlags().Bool(flagName, v, description)
	}
	return viper.BindPFlag(viperKey, rootCmd.PersistentFlags().Lookup(flagName))
}
