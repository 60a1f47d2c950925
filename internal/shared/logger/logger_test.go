package logger

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sharedconfig "github.com/helpdeskhq/helpdesk/internal/shared/config"
)

func TestInit_ParsesConfiguredLevel(t *testing.T) {
	tests := []struct {
		name     string
		level    string
		expected slog.Level
	}{
		{"debug level", "debug", slog.LevelDebug},
		{"warn level", "warn", slog.LevelWarn},
		{"warning alias", "warning", slog.LevelWarn},
		{"error level", "error", slog.LevelError},
		{"empty defaults to info", "", slog.LevelInfo},
		{"unknown defaults to info", "verbose", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Init(&sharedconfig.LoggerConfig{Level: tt.level, OutputPath: "stdout"})
			require.NoError(t, err)
			require.NotNil(t, Logger)
			assert.Equal(t, tt.expected, atomicLevel.Level())
		})
	}
}

func TestInit_JSONFormat(t *testing.T) {
	err := Init(&sharedconfig.LoggerConfig{Level: "info", Format: "json", OutputPath: "stderr"})
	require.NoError(t, err)
	require.NotNil(t, Logger)
}

func TestSetLevel_AdjustsAtomicLevel(t *testing.T) {
	err := Init(&sharedconfig.LoggerConfig{Level: "info", OutputPath: "stdout"})
	require.NoError(t, err)

	SetLevel(slog.LevelError)
	assert.Equal(t, slog.LevelError, atomicLevel.Level())
}
