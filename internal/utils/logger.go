package utils

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewApplicationLogger constructs a zap logger configured for human-readable console output on stderr.
func NewApplicationLogger() (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	config.Encoding = "console"
	config.DisableCaller = true
	config.DisableStacktrace = true
	config.OutputPaths = []string{StandardErrorSink}
	config.ErrorOutputPaths = []string{StandardErrorSink}
	config.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	config.EncoderConfig.TimeKey = EmptyString
	config.EncoderConfig.NameKey = EmptyString
	config.EncoderConfig.CallerKey = EmptyString
	config.EncoderConfig.MessageKey = "message"
	config.EncoderConfig.StacktraceKey = EmptyString
	return config.Build()
}

// NewFallbackLogger returns the logger used when the console logger cannot be built.
func NewFallbackLogger() *zap.Logger {
	return zap.NewNop()
}
