package main

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/compose-network/filedemo/configs"
	"github.com/compose-network/filedemo/internal/demo"
	"github.com/compose-network/filedemo/internal/guard"
	"github.com/compose-network/filedemo/internal/logger"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const appName = "filedemo"

var rootCmd = &cobra.Command{
	Use:   appName,
	Short: "File handling and error handling demo",
	Long: "filedemo creates scratch files, reads, writes, appends and parses them,\n" +
		"triggers representative errors without failing, and removes the files again.",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logger.Initialize(slog.LevelInfo, configs.LogFormatText, os.Stderr)

		viper.SetConfigName("config")
		viper.SetConfigType("yaml")

		if execPath, err := os.Executable(); err == nil {
			execDir := filepath.Dir(execPath)
			viper.AddConfigPath(execDir)
		}
		viper.AddConfigPath(".")
		viper.AddConfigPath("./configs")

		// A config file is optional; flags and embedded defaults cover everything.
		if err := viper.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if errors.As(err, &notFound) {
				slog.Debug("no config file found, will rely on flags and defaults")
			} else {
				const errMsg = "error reading config file"
				slog.With("err", err.Error()).Error(errMsg)
				return errors.Join(err, errors.New(errMsg))
			}
		}

		if err := viper.Unmarshal(&configs.Values); err != nil {
			const errMsg = "unable to decode application config"
			slog.With("err", err.Error()).Error(errMsg)
			return errors.Join(err, errors.New(errMsg))
		}

		logger.Initialize(configs.Values.LogLevel(), configs.Values.Log.Format, os.Stderr)
		if used := viper.ConfigFileUsed(); used != "" {
			slog.With("config_file", used).Debug("config file loaded")
		}
		slog.With("config", configs.Values).Debug("configuration loaded")

		return nil
	},
	RunE: demo.CMD.RunE,
}

func init() {
	rootCmd.AddCommand(demo.CMD)
	rootCmd.AddCommand(demo.CleanCMD)
	rootCmd.AddCommand(guard.CMD)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		slog.With("err", err.Error()).Error("failed to execute root command")
		os.Exit(1)
	}
}
