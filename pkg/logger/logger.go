package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is the structured logger used across the service
type Logger = zap.Logger

var global *zap.Logger = zap.NewNop()

// Init initializes the global logger at the given level ("debug", "info",
// "warn", "error"). Unknown levels fall back to info.
func Init(level string) {
	lvl := zapcore.InfoLevel
	if parsed, err := zapcore.ParseLevel(level); err == nil {
		lvl = parsed
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.EncoderConfig.TimeKey = "timestamp"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	log, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		panic(err)
	}
	global = log
}

// Get returns the global logger
func Get() *zap.Logger {
	return global
}

// Debug logs a message at debug level
func Debug(msg string, fields ...zap.Field) {
	global.Debug(msg, fields...)
}

// Info logs a message at info level
func Info(msg string, fields ...zap.Field) {
	global.Info(msg, fields...)
}

// Warn logs a message at warn level
func Warn(msg string, fields ...zap.Field) {
	global.Warn(msg, fields...)
}

// Error logs a message at error level
func Error(msg string, fields ...zap.Field) {
	global.Error(msg, fields...)
}

// Sync flushes any buffered log entries
func Sync() {
	_ = global.Sync()
}
