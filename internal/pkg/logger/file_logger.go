package logger

import (
	"log/slog"

	"github.com/natefinch/lumberjack"
)

// FileLogger is an implementation of Logger that logs JSON records to a
// rotated file.
type FileLogger struct {
	slogLogger
}

// NewFileLogger creates a new file logger with rotation settings.
func NewFileLogger(level string, filePath string, maxSize int, maxBackups int, maxAge int) Logger {
	writer := &lumberjack.Logger{
		Filename:   filePath,
		MaxSize:    maxSize,
		MaxBackups: maxBackups,
		MaxAge:     maxAge,
		Compress:   true,
	}

	opts := &slog.HandlerOptions{
		Level: parseLevel(level),
	}
	handler := slog.NewJSONHandler(writer, opts)

	return &FileLogger{slogLogger{logger: slog.New(handler)}}
}
