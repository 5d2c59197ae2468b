// Package utils provides small helpers shared across repotxt: the
// application logger, version lookup, and size formatting.
package utils

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	// LoggerInitializationFailedMessageFormat reports a logger construction failure.
	LoggerInitializationFailedMessageFormat = "failed to initialize logger: %w"
	// ApplicationExecutionFailedMessage prefixes fatal command errors.
	ApplicationExecutionFailedMessage = "repotxt execution failed"
)

// NewApplicationLogger constructs a zap logger configured for human-readable
// console output: message only, no timestamps, callers, or stack traces.
func NewApplicationLogger() (*zap.Logger, error) {
	loggerConfiguration := zap.NewProductionConfig()
	loggerConfiguration.Encoding = "console"
	loggerConfiguration.DisableCaller = true
	loggerConfiguration.DisableStacktrace = true
	loggerConfiguration.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	loggerConfiguration.EncoderConfig.TimeKey = ""
	loggerConfiguration.EncoderConfig.LevelKey = ""
	loggerConfiguration.EncoderConfig.NameKey = ""
	loggerConfiguration.EncoderConfig.CallerKey = ""
	loggerConfiguration.EncoderConfig.MessageKey = "message"
	loggerConfiguration.EncoderConfig.StacktraceKey = ""
	return loggerConfiguration.Build()
}
