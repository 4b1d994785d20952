package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/compose-network/filedemo/configs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitialize_JSONHandlerWithName(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	var buf bytes.Buffer
	Initialize(slog.LevelInfo, configs.LogFormatJSON, &buf)

	Named("demo").Debug("hidden")
	Named("demo").Info("visible", "step", "create")

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "visible", record["msg"])
	assert.Equal(t, "demo", record["name"])
	assert.Equal(t, "create", record["step"])
}

func TestInitialize_TextHandler(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	var buf bytes.Buffer
	Initialize(slog.LevelDebug, configs.LogFormatText, &buf)

	Named("guard").Debug("file handle closed", "path", "x.txt")

	assert.Contains(t, buf.String(), "name=guard")
	assert.Contains(t, buf.String(), "path=x.txt")
}
