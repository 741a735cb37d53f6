package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
)

const (
	logDir      = "logs"
	logFileName = "word-traffic.log"
	maxLogSize  = 10 * 1024 * 1024 // 10MB
)

// setupLogging configures logging for terminal mode
// The terminal owns stdout and stderr, so logs go to a file and only with debug enabled
// Returns the open log file, nil when logging is disabled
func setupLogging(debug bool, level string) (zerolog.Logger, *os.File) {
	if !debug {
		return zerolog.New(io.Discard), nil
	}

	if err := os.MkdirAll(logDir, 0755); err != nil {
		return zerolog.New(io.Discard), nil
	}

	logPath := filepath.Join(logDir, logFileName)

	// Rotate oversized log
	if info, err := os.Stat(logPath); err == nil && info.Size() > maxLogSize {
		rotated := filepath.Join(logDir, fmt.Sprintf("word-traffic_%s.log", time.Now().Format("20060102_150405")))
		_ = os.Rename(logPath, rotated)
	}

	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return zerolog.New(io.Discard), nil
	}

	logger := zerolog.New(file).
		Level(parseLevel(level, zerolog.DebugLevel)).
		With().Timestamp().Logger()
	logger.Info().Str("path", logPath).Msg("logging started")
	return logger, file
}

// consoleLogger is used in headless mode where no terminal UI competes for stderr
func consoleLogger(out io.Writer, level string) zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{Out: out, TimeFormat: time.TimeOnly}).
		Level(parseLevel(level, zerolog.InfoLevel)).
		With().Timestamp().Logger()
}

func parseLevel(level string, def zerolog.Level) zerolog.Level {
	if level == "" {
		return def
	}
	if lvl, err := zerolog.ParseLevel(level); err == nil {
		return lvl
	}
	return def
}
