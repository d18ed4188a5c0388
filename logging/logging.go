// Package logging builds the zap loggers used by the command-line tools.
//
// LOG_FORMAT=development selects a colored console encoder; anything else
// gives JSON. LOG_LEVEL sets the minimum level. Logs always go to stderr so
// they never mix with command output on stdout.
package logging

import (
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LookupFunc reads a configuration variable. os.LookupEnv is the usual
// implementation.
type LookupFunc func(key string) (string, bool)

var baseLogger = zap.Must(NewConfig(os.LookupEnv).Build())

// NewConfig returns the logger configuration selected by LOG_FORMAT and
// LOG_LEVEL as reported by lookup.
func NewConfig(lookup LookupFunc) zap.Config {
	var config zap.Config

	format, _ := lookup("LOG_FORMAT")
	if format == "development" {
		config = newDevelopmentConfig()
	} else {
		config = newProductionConfig()
	}

	if level, ok := lookup("LOG_LEVEL"); ok {
		if lvl, err := ParseLevel(level); err == nil {
			config.Level = zap.NewAtomicLevelAt(lvl)
		}
	}

	return config
}

// ParseLevel is zapcore.ParseLevel, except that it is case-insensitive and
// also accepts "warning".
func ParseLevel(level string) (zapcore.Level, error) {
	level = strings.ToLower(strings.TrimSpace(level))
	if level == "warning" {
		level = "warn"
	}
	return zapcore.ParseLevel(level)
}

func newDevelopmentConfig() zap.Config {
	return zap.Config{
		Level:             zap.NewAtomicLevelAt(zap.DebugLevel),
		Development:       true,
		DisableStacktrace: true,
		Encoding:          "console",
		EncoderConfig:     newDevelopmentEncoderConfig(),
		OutputPaths:       []string{"stderr"},
		ErrorOutputPaths:  []string{"stderr"},
	}
}

func newProductionConfig() zap.Config {
	return zap.Config{
		Level:       zap.NewAtomicLevelAt(zap.InfoLevel),
		Development: false,
		Sampling: &zap.SamplingConfig{
			Initial:    100,
			Thereafter: 100,
		},
		Encoding:         "json",
		EncoderConfig:    newProductionEncoderConfig(),
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
	}
}

func newDevelopmentEncoderConfig() zapcore.EncoderConfig {
	encoderConfig := newProductionEncoderConfig()
	encoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	encoderConfig.NameKey = ""
	return encoderConfig
}

func newProductionEncoderConfig() zapcore.EncoderConfig {
	return zapcore.EncoderConfig{
		TimeKey:        "timestamp",
		LevelKey:       "severity",
		NameKey:        "logger",
		CallerKey:      "caller",
		FunctionKey:    zapcore.OmitKey,
		MessageKey:     "message",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}
}

// New creates a new logger with a default "logger" field so we can identify the
// source of log messages.
func New(name string) *zap.Logger {
	return baseLogger.Named(name)
}
