package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Config holds logging configuration
type Config struct {
	Level      zerolog.Level
	Format     string // "json" or "console"
	TimeFormat string
}

// FileConfig enables an additional rotated log file.
type FileConfig struct {
	Enabled       bool
	WriteToStderr bool
	Rotator       RotatorConfig
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Level:      zerolog.InfoLevel,
		Format:     "console",
		TimeFormat: time.RFC3339,
	}
}

// ParseLevel maps a level name to a zerolog level, defaulting to info.
func ParseLevel(level string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "fatal":
		return zerolog.FatalLevel
	case "disabled", "off":
		return zerolog.Disabled
	default:
		return zerolog.InfoLevel
	}
}

func writerFor(cfg Config, out io.Writer) io.Writer {
	if cfg.Format == "json" {
		return out
	}
	return zerolog.ConsoleWriter{Out: out, TimeFormat: cfg.TimeFormat}
}

// New creates a new zerolog logger writing to stderr
func New(cfg Config) zerolog.Logger {
	return NewWithWriter(cfg, os.Stderr)
}

// NewWithWriter creates a logger writing to out.
func NewWithWriter(cfg Config, out io.Writer) zerolog.Logger {
	return zerolog.New(writerFor(cfg, out)).
		Level(cfg.Level).
		With().
		Timestamp().
		Logger()
}

// NewWithFile creates a logger that also writes JSON lines to a rotated file.
// The returned cleanup closes the file and must always be called.
func NewWithFile(cfg Config, fileCfg FileConfig) (zerolog.Logger, func(), error) {
	noop := func() {}

	if !fileCfg.Enabled {
		if !fileCfg.WriteToStderr {
			return zerolog.Nop(), noop, nil
		}
		return New(cfg), noop, nil
	}

	rotator, err := NewLogRotator(fileCfg.Rotator)
	if err != nil {
		return New(cfg), noop, err
	}

	var out io.Writer = rotator
	if fileCfg.WriteToStderr {
		out = zerolog.MultiLevelWriter(writerFor(cfg, os.Stderr), rotator)
	}

	logger := zerolog.New(out).Level(cfg.Level).With().Timestamp().Logger()
	return logger, func() { _ = rotator.Close() }, nil
}

// NewFromConfigValues creates a stderr logger from string settings.
func NewFromConfigValues(level, format string) zerolog.Logger {
	cfg := DefaultConfig()
	cfg.Level = ParseLevel(level)
	if format == "json" || format == "console" {
		cfg.Format = format
	}
	return New(cfg)
}

// Environment variables read by NewFromEnv.
const (
	EnvLogLevel  = "BRIDGEHOST_LOG_LEVEL"
	EnvLogFormat = "BRIDGEHOST_LOG_FORMAT"
)

// LevelFromEnv returns the raw BRIDGEHOST_LOG_LEVEL value.
func LevelFromEnv() string {
	return os.Getenv(EnvLogLevel)
}

// NewFromEnv creates a logger based on environment variables
// BRIDGEHOST_LOG_LEVEL: trace, debug, info, warn, error (default: info)
// BRIDGEHOST_LOG_FORMAT: json, console (default: console)
func NewFromEnv() zerolog.Logger {
	return NewFromConfigValues(LevelFromEnv(), os.Getenv(EnvLogFormat))
}
