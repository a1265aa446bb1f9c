package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevelForVerbosity(t *testing.T) {
	tests := []struct {
		verbosity int
		want      zerolog.Level
	}{
		{-1, zerolog.WarnLevel},
		{0, zerolog.WarnLevel},
		{1, zerolog.InfoLevel},
		{2, zerolog.DebugLevel},
		{3, zerolog.TraceLevel},
		{7, zerolog.TraceLevel},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, LevelForVerbosity(tt.verbosity), "verbosity %d", tt.verbosity)
	}
}

func TestSetupLogger(t *testing.T) {
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.TraceLevel) })

	tempDir := t.TempDir()
	t.Setenv("XDG_STATE_HOME", tempDir)

	SetupLogger(1)

	assert.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())
	_, err := os.Stat(filepath.Join(tempDir, AppDirName, AppDirName+".log"))
	assert.NoError(t, err, "log file should be created under XDG_STATE_HOME")
}

func TestSetupLoggerWithOptions_ConsoleOnly(t *testing.T) {
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.TraceLevel) })

	var buf bytes.Buffer
	SetupLoggerWithOptions(Options{Verbosity: 0, Console: &buf, NoFile: true})

	log.Info().Msg("hidden at warn level")
	log.Warn().Str("id", "circle").Msg("duplicate registration")

	out := buf.String()
	assert.NotContains(t, out, "hidden at warn level")
	assert.Contains(t, out, "duplicate registration")
	assert.Contains(t, out, "circle")
}

func TestSetupLoggerWithOptions_ExplicitFile(t *testing.T) {
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.TraceLevel) })

	path := filepath.Join(t.TempDir(), "nested", "custom.log")
	SetupLoggerWithOptions(Options{Verbosity: 1, Console: &bytes.Buffer{}, LogFile: path})

	log.Info().Msg("written to file")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "written to file")
}

func TestGetLogFilePath(t *testing.T) {
	t.Setenv("XDG_STATE_HOME", "/custom/state")
	assert.Equal(t, filepath.Join("/custom/state", "factory", "factory.log"), getLogFilePath())
}

func TestGetLoggerAddsComponent(t *testing.T) {
	var buf bytes.Buffer
	log.Logger = zerolog.New(&buf)

	logger := GetLogger("registry")
	logger.Warn().Msg("hello")

	assert.Contains(t, buf.String(), `"component":"registry"`)
}

func TestWithFields(t *testing.T) {
	var buf bytes.Buffer
	log.Logger = zerolog.New(&buf)

	logger := WithFields(map[string]interface{}{"interface": "shapes.Shape", "count": 2})
	logger.Warn().Msg("fields")

	out := buf.String()
	assert.Contains(t, out, `"interface":"shapes.Shape"`)
	assert.Contains(t, out, `"count":2`)
}

func TestLogOperationStart(t *testing.T) {
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.TraceLevel) })
	zerolog.SetGlobalLevel(zerolog.DebugLevel)

	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.DebugLevel)

	done := LogOperationStart(logger, "seal")
	done()

	out := buf.String()
	assert.Contains(t, out, "Operation started")
	assert.Contains(t, out, "Operation completed")
	assert.Contains(t, out, `"operation":"seal"`)
}
