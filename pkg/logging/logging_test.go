package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWritesJSON(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf)

	logger.Info().Str("source", "docs").Int("apis", 3).Msg("extraction complete")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "docs", entry["source"])
	assert.Equal(t, float64(3), entry["apis"])
	assert.Equal(t, "extraction complete", entry["message"])
	assert.Contains(t, entry, "time")
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zerolog.DebugLevel, parseLevel("debug"))
	assert.Equal(t, zerolog.WarnLevel, parseLevel("warning"))
	assert.Equal(t, zerolog.InfoLevel, parseLevel(""))
	assert.Equal(t, zerolog.InfoLevel, parseLevel("bogus"))
	assert.Equal(t, zerolog.Disabled, parseLevel("off"))
}

func TestContextRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf)

	ctx := WithLogger(context.Background(), &logger)
	assert.Same(t, &logger, FromContext(ctx))
	assert.Same(t, &logger, Ctx(ctx))

	// Missing or nil context falls back to the default logger.
	assert.Same(t, Default(), FromContext(context.Background()))
	assert.Same(t, Default(), FromContext(nil)) //nolint:staticcheck // nil-safety is part of the contract
}

func TestWithFieldAccumulates(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf)

	ctx := WithLogger(context.Background(), &logger)
	ctx = WithSource(ctx, "code")
	ctx = WithAPI(ctx, "Client.request")

	Ctx(ctx).Info().Msg("indexed")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "code", entry["source"])
	assert.Equal(t, "Client.request", entry["api"])
}

func TestNewLoggerFromConfigDefaults(t *testing.T) {
	defer zerolog.SetGlobalLevel(zerolog.InfoLevel)

	logger := NewLoggerFromConfig(nil)
	assert.Equal(t, zerolog.InfoLevel, logger.GetLevel())

	logger = NewLoggerFromConfig(&Config{Level: "error", Output: "discard", Format: "json"})
	assert.Equal(t, zerolog.ErrorLevel, logger.GetLevel())
}
