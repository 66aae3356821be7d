package logger

import (
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"redditpersona/pkg/config"
)

func TestNew(t *testing.T) {
	t.Run("creates logger for valid levels", func(t *testing.T) {
		for _, level := range []string{"debug", "info", "warn", "error"} {
			log, err := New(&config.LoggingConfig{Level: level})
			require.NoError(t, err)
			assert.NotNil(t, log)
		}
	})

	t.Run("rejects unknown level", func(t *testing.T) {
		_, err := New(&config.LoggingConfig{Level: "loud"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid log level")
	})

	t.Run("file output writes to the given path", func(t *testing.T) {
		path := t.TempDir() + "/logs/run.log"
		log, err := New(&config.LoggingConfig{Level: "info", File: path})
		require.NoError(t, err)

		log.Info("hello")
		assert.FileExists(t, path)
	})
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		input   string
		want    zerolog.Level
		wantErr bool
	}{
		{"debug", zerolog.DebugLevel, false},
		{"info", zerolog.InfoLevel, false},
		{"warn", zerolog.WarnLevel, false},
		{"warning", zerolog.WarnLevel, false},
		{"ERROR", zerolog.ErrorLevel, false},
		{"disabled", zerolog.Disabled, false},
		{"loud", zerolog.InfoLevel, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			level, err := parseLogLevel(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, level)
		})
	}
}

func TestTestLogger(t *testing.T) {
	t.Run("captures messages with levels and fields", func(t *testing.T) {
		log := NewTestLogger()

		log.Info("starting")
		log.WarnWithFields("slow page", map[string]interface{}{"elapsed_ms": 1200})

		require.Len(t, log.GetMessages(), 2)
		assert.True(t, log.HasMessage("starting"))

		warnings := log.GetMessagesByLevel("WARN")
		require.Len(t, warnings, 1)
		assert.Equal(t, 1200, warnings[0].Fields["elapsed_ms"])
		assert.False(t, log.HasError())
	})

	t.Run("context carries fields and error into later calls", func(t *testing.T) {
		log := NewTestLogger()

		log.WithField("username", "kojied").WithError(errors.New("boom")).Error("fetch failed")

		errs := log.GetMessagesByLevel("ERROR")
		require.Len(t, errs, 1)
		assert.Equal(t, "kojied", errs[0].Fields["username"])
		assert.EqualError(t, errs[0].Error, "boom")
		assert.True(t, log.HasError())
	})

	t.Run("clear drops captured state", func(t *testing.T) {
		log := NewTestLogger()
		log.Info("one")

		log.Clear()

		assert.Empty(t, log.GetMessages())
		assert.Empty(t, log.String())
	})
}
