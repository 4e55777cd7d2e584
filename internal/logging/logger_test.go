package logging_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/bnema/bridgehost/internal/logging"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]zerolog.Level{
		"trace":   zerolog.TraceLevel,
		"DEBUG":   zerolog.DebugLevel,
		"warn":    zerolog.WarnLevel,
		"warning": zerolog.WarnLevel,
		"error":   zerolog.ErrorLevel,
		"fatal":   zerolog.FatalLevel,
		"off":     zerolog.Disabled,
		"":        zerolog.InfoLevel,
		"bogus":   zerolog.InfoLevel,
	}

	for in, expected := range tests {
		t.Run(in, func(t *testing.T) {
			assert.Equal(t, expected, logging.ParseLevel(in))
		})
	}
}

func TestWithComponent_AddsField(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.NewWithWriter(logging.Config{Level: zerolog.DebugLevel, Format: "json"}, &buf)

	ctx := logging.WithContext(context.Background(), logger)
	ctx = logging.WithComponent(ctx, "permission")
	ctx = logging.WithOrigin(ctx, "https://meet.example.com")
	logging.FromContext(ctx).Info().Msg("hello")

	assert.Contains(t, buf.String(), `"component":"permission"`)
	assert.Contains(t, buf.String(), `"origin":"https://meet.example.com"`)
}

func TestNewWithFile_DisabledWithoutStderrIsNop(t *testing.T) {
	logger, cleanup, err := logging.NewWithFile(logging.DefaultConfig(), logging.FileConfig{})
	defer cleanup()

	assert.NoError(t, err)
	assert.Equal(t, zerolog.Disabled, logger.GetLevel())
}
