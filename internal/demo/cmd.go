package demo

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/compose-network/filedemo/configs"
	"github.com/compose-network/filedemo/internal/infra/filesystem"
	"github.com/compose-network/filedemo/internal/logger"
	"github.com/compose-network/filedemo/internal/report"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	CMD = &cobra.Command{
		Use:   "run",
		Short: "Create the demo artifacts, exercise them, then clean up",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			run(cmd.Context(), cfg, cmd.OutOrStdout())
			return nil
		},
	}

	CleanCMD = &cobra.Command{
		Use:   "clean",
		Short: "Remove demo artifacts left behind by an interrupted run",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			results := Cleanup(filesystem.NewOS(), cfg.ArtifactPaths(), cmd.OutOrStdout(), logger.Named("clean"))
			slog.With("paths", len(results)).Info("cleanup finished")
			return nil
		},
	}
)

func loadConfig() (configs.Config, error) {
	// Re-unmarshal to include flag overrides.
	if err := viper.Unmarshal(&configs.Values); err != nil {
		return configs.Config{}, fmt.Errorf("failed to unmarshal config with flag overrides: %w", err)
	}
	if err := configs.Values.Validate(); err != nil {
		return configs.Config{}, err
	}
	return configs.Values, nil
}

func run(ctx context.Context, cfg configs.Config, out io.Writer) {
	model := NewRunner(cfg, WithOutput(out)).Run(ctx)

	if cfg.Report.Format != configs.ReportFormatNone {
		fmt.Fprintln(out)
	}
	if err := report.Render(out, model, cfg.Report.Format); err != nil {
		slog.With("err", err.Error()).Warn("failed to render run report")
	}
}
