package logging

import (
	"io"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// DebugEnv forces debug level when set to any non-empty value
const DebugEnv = "FORWARDTASK_DEBUG"

// New builds a console logger writing to w at the given level.
// An unknown level falls back to warn.
func New(level string, w io.Writer) *zap.Logger {
	encoderConfig := zap.NewDevelopmentEncoderConfig()
	encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderConfig),
		zapcore.Lock(zapcore.AddSync(w)),
		ParseLevel(level),
	)
	return zap.New(core, zap.AddCaller())
}

// NewStderr builds the logger used by the command line entry points
func NewStderr(level string) *zap.Logger {
	return New(level, os.Stderr)
}

// ParseLevel resolves the effective level, honoring FORWARDTASK_DEBUG
func ParseLevel(level string) zapcore.Level {
	if os.Getenv(DebugEnv) != "" {
		return zapcore.DebugLevel
	}
	lvl, err := zapcore.ParseLevel(strings.TrimSpace(level))
	if err != nil || strings.TrimSpace(level) == "" {
		return zapcore.WarnLevel
	}
	return lvl
}
