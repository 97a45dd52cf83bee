package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/dmitrymomot/l10ncheck/pkg/logger"
)

func TestNew(t *testing.T) {
	t.Run("defaults to text at info", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf))
		log.Debug("hidden")
		log.Info("hello")
		out := buf.String()
		assert.NotContains(t, out, "hidden")
		assert.Contains(t, out, "level=INFO")
		assert.Contains(t, out, "msg=hello")
	})

	t.Run("json format with static attributes", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(
			logger.WithOutput(buf),
			logger.WithFormat(logger.FormatJSON),
			logger.WithAttr(slog.String("app", "l10ncheck")),
		)
		log.Info("hello", logger.Catalog("messages"), logger.Locale(language.MustParse("fr-CA")))

		var entry map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		assert.Equal(t, "hello", entry["msg"])
		assert.Equal(t, "l10ncheck", entry["app"])
		assert.Equal(t, "messages", entry["catalog"])
		assert.Equal(t, "fr-CA", entry["locale"])
	})

	t.Run("level option", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf), logger.WithLevel(slog.LevelDebug))
		log.Debug("visible")
		assert.Contains(t, buf.String(), "visible")
	})

	t.Run("invalid format panics", func(t *testing.T) {
		assert.Panics(t, func() { logger.New(logger.WithFormat("xml")) })
	})

	t.Run("context values are injected", func(t *testing.T) {
		type ctxKey struct{}
		buf := &bytes.Buffer{}
		log := logger.New(
			logger.WithOutput(buf),
			logger.WithFormat(logger.FormatJSON),
			logger.WithContextValue("run", ctxKey{}),
		)
		ctx := context.WithValue(context.Background(), ctxKey{}, 7)
		log.With("component", "watch").InfoContext(ctx, "rerun")

		var entry map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		assert.Equal(t, float64(7), entry["run"])
		assert.Equal(t, "watch", entry["component"])

		buf.Reset()
		log.Info("no run")
		assert.NotContains(t, buf.String(), `"run"`)
	})
}

func TestParseLevel(t *testing.T) {
	t.Parallel()
	tests := []struct {
		input    string
		expected slog.Level
	}{
		{input: "debug", expected: slog.LevelDebug},
		{input: "INFO", expected: slog.LevelInfo},
		{input: " warn ", expected: slog.LevelWarn},
		{input: "error", expected: slog.LevelError},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			l, err := logger.ParseLevel(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, l)
		})
	}

	_, err := logger.ParseLevel("loud")
	assert.Error(t, err)
}

func TestAttrs(t *testing.T) {
	t.Parallel()

	err := errors.New("boom")
	attr := logger.Error(err)
	assert.Equal(t, "error", attr.Key)
	assert.Equal(t, err, attr.Value.Any())
	assert.True(t, logger.Error(nil).Equal(slog.Attr{}))

	assert.Equal(t, slog.String("key_type", "app.Messages"), logger.KeyType("app.Messages"))
	assert.Equal(t, slog.String("kind", "empty_catalog"), logger.Kind("empty_catalog"))
	assert.Equal(t, slog.String("source", "fs"), logger.Source("fs"))
	assert.Equal(t, slog.String("path", "a.yaml"), logger.Path("a.yaml"))
	assert.Equal(t, slog.Int("count", 3), logger.Count(3))
	assert.Equal(t, slog.String("component", "cli"), logger.Component("cli"))
}
