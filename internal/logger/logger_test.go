package logger_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	logpkg "github.com/maxviazov/storefront-pager/internal/logger"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name        string
		config      *logpkg.LoggerConfig
		expectError bool
		wantLevel   zerolog.Level
	}{
		{
			name: "valid production environment",
			config: &logpkg.LoggerConfig{
				ServiceName:    "test-service",
				ServiceVersion: "1.0.0",
				Env:            "prod",
				Level:          "info",
				TimeField:      "timestamp",
				Fields:         map[string]interface{}{"key": "value"},
			},
			wantLevel: zerolog.InfoLevel,
		},
		{
			name: "invalid configuration - wrong env",
			config: &logpkg.LoggerConfig{
				ServiceName: "bad-service",
				Env:         "wrong-env", // not allowed by validator
				Level:       "debug",
			},
			expectError: true,
		},
		{
			name: "invalid log level",
			config: &logpkg.LoggerConfig{
				Env:   "prod",
				Level: "invalid-level",
			},
			expectError: true,
		},
		{
			name: "invalid time format",
			config: &logpkg.LoggerConfig{
				Env:        "prod",
				TimeFormat: "iso8601",
			},
			expectError: true,
		},
		{
			name: "valid staging environment",
			config: &logpkg.LoggerConfig{
				ServiceVersion: "2.0.0",
				Env:            "staging",
				Level:          "warn",
				TimeFormat:     "unix",
				Stacktrace:     true,
			},
			wantLevel: zerolog.WarnLevel,
		},
		{
			name: "trace level for sql debugging",
			config: &logpkg.LoggerConfig{
				Env:    "prod",
				Level:  "trace",
				Format: "json",
			},
			wantLevel: zerolog.TraceLevel,
		},
		{
			name: "valid development environment without debug",
			config: &logpkg.LoggerConfig{
				Env:   "dev",
				Level: "info",
			},
			wantLevel: zerolog.InfoLevel,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := logpkg.New(test.config)
			if test.expectError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, test.wantLevel, zerolog.GlobalLevel())
		})
	}
}

func TestNew_AppliesEnvironmentDefaults(t *testing.T) {
	prod := &logpkg.LoggerConfig{}
	_, err := logpkg.New(prod)
	require.NoError(t, err)
	assert.Equal(t, "prod", prod.Env)
	assert.Equal(t, "info", prod.Level)
	assert.Equal(t, "json", prod.Format)
	assert.Equal(t, "stdout", prod.OutputTarget)
	assert.True(t, prod.Stacktrace)
	assert.Equal(t, "storefront-pager", prod.ServiceName)

	dev := &logpkg.LoggerConfig{Env: "dev", Level: "info"}
	_, err = logpkg.New(dev)
	require.NoError(t, err)
	assert.Equal(t, "console", dev.Format)
	assert.Equal(t, "stderr", dev.OutputTarget)
	assert.True(t, dev.WithCaller)
}

func TestNew_DebugFileInDev(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "debug.log")
	config := &logpkg.LoggerConfig{
		ServiceName: "integration-test",
		Env:         "dev",
		Level:       "debug",
		DebugFile:   path,
	}

	l, err := logpkg.New(config)
	require.NoError(t, err)
	l.Debug().Msg("hello from test")

	data, statErr := os.ReadFile(path)
	require.NoError(t, statErr)
	assert.Contains(t, string(data), "hello from test")
}

func TestNew_NoDebugFileOutsideDev(t *testing.T) {
	path := filepath.Join(t.TempDir(), "debug.log")
	_, err := logpkg.New(&logpkg.LoggerConfig{Env: "staging", Level: "debug", DebugFile: path})
	require.NoError(t, err)

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}
