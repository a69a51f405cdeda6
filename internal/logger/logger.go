// Package logger builds the application's zap logger.
package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ParseLevel maps "debug", "info", "warn" and "error" to a zap level.
// Anything else is info.
func ParseLevel(level string) zapcore.Level {
	switch level {
	case "debug":
		return zapcore.DebugLevel
	case "warn":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// NewLogger creates a logger writing to stderr.
// level: "debug", "info", "warn", "error" (default "info")
// format: "json" or "console" (default "console")
// serviceName is attached to every entry when non-empty.
func NewLogger(level, format, serviceName string) (*zap.Logger, error) {
	var config zap.Config
	if format == "json" {
		config = zap.NewProductionConfig()
		config.EncoderConfig.TimeKey = "timestamp"
		config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	} else {
		config = zap.NewDevelopmentConfig()
	}
	config.Level = zap.NewAtomicLevelAt(ParseLevel(level))
	config.OutputPaths = []string{"stderr"}
	config.ErrorOutputPaths = []string{"stderr"}

	log, err := config.Build()
	if err != nil {
		return nil, err
	}
	if serviceName != "" {
		log = log.With(zap.String("service_name", serviceName))
	}
	return log, nil
}

// Must is NewLogger that falls back to a no-op logger on error.
func Must(level, format, serviceName string) *zap.Logger {
	log, err := NewLogger(level, format, serviceName)
	if err != nil {
		return zap.NewNop()
	}
	return log
}
