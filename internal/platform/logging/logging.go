// Package logging holds the process-wide zap logger.
package logging

import (
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	LevelDebug = "debug"
	LevelInfo  = "info"
	LevelWarn  = "warn"
	LevelError = "error"

	FormatConsole = "console"
	FormatJSON    = "json"
)

var (
	zapLevel = zap.NewAtomicLevelAt(zapcore.InfoLevel)

	// Default is the logger used across the module. Replace it in tests with
	// zap.NewNop().Sugar() or an observer core.
	Default = New(FormatConsole)
)

var encoderConfig = zapcore.EncoderConfig{
	TimeKey:        "ts",
	LevelKey:       "lvl",
	NameKey:        "name",
	CallerKey:      "caller",
	MessageKey:     "message",
	StacktraceKey:  "stacktrace",
	LineEnding:     zapcore.DefaultLineEnding,
	EncodeLevel:    zapcore.CapitalLevelEncoder,
	EncodeTime:     zapcore.RFC3339TimeEncoder,
	EncodeDuration: zapcore.MillisDurationEncoder,
	EncodeCaller:   zapcore.ShortCallerEncoder,
}

// New builds a sugared logger writing to stderr at the shared atomic level.
// Unknown formats fall back to console.
func New(format string) *zap.SugaredLogger {
	var enc zapcore.Encoder
	if strings.EqualFold(format, FormatJSON) {
		enc = zapcore.NewJSONEncoder(encoderConfig)
	} else {
		enc = zapcore.NewConsoleEncoder(encoderConfig)
	}

	return zap.New(
		zapcore.NewCore(enc, zapcore.AddSync(os.Stderr), zapLevel),
		zap.AddCaller(),
	).Sugar()
}

// SetLevel changes the level of every logger built by New.
// Unrecognized levels reset to info.
func SetLevel(level string) {
	switch strings.ToLower(level) {
	case LevelDebug:
		zapLevel.SetLevel(zapcore.DebugLevel)
	case LevelWarn:
		zapLevel.SetLevel(zapcore.WarnLevel)
	case LevelError:
		zapLevel.SetLevel(zapcore.ErrorLevel)
	default:
		zapLevel.SetLevel(zapcore.InfoLevel)
	}
}

// Configure applies level and format to Default.
func Configure(level, format string) {
	SetLevel(level)
	Default = New(format)
}
