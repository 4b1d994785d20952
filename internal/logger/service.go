package logger

import (
	"io"
	"log/slog"

	"github.com/compose-network/filedemo/configs"
)

// Initialize installs the default slog logger. Text output is meant for
// terminals, JSON for everything else.
func Initialize(level slog.Level, format configs.LogFormat, w io.Writer) {
	opts := &slog.HandlerOptions{
		Level: level,
	}

	var handler slog.Handler
	switch format {
	case configs.LogFormatText:
		handler = slog.NewTextHandler(w, opts)
	default:
		handler = slog.NewJSONHandler(w, opts)
	}

	slog.SetDefault(slog.New(handler))
}

func Named(name string) *slog.Logger {
	logger := slog.Default()
	if logger == nil {
		return nil
	}

	return logger.With("name", name)
}
