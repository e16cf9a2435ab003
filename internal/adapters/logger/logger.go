// Package logger implements a logging adapter using log/slog.
package logger

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	"go.trai.ch/locker/internal/core/ports"
)

// messager describes an error that can report its own message without the
// chain. This matches the Message() method of zerr.Error; if zerr's API
// changes, errors gracefully fall back to standard formatting.
type messager interface {
	Message() string
}

// Logger implements ports.Logger using log/slog.
type Logger struct {
	logger *slog.Logger
	mu     sync.RWMutex
	output io.Writer
}

// New creates a new Logger writing pretty output to stderr.
func New() ports.Logger {
	handler := NewPrettyHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	return &Logger{
		logger: slog.New(handler),
		output: os.Stderr,
	}
}

// SetOutput updates the logger's output destination. If w is nil, os.Stderr
// is used.
func (l *Logger) SetOutput(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if w == nil {
		w = os.Stderr
	}
	l.output = w
	l.logger = slog.New(NewPrettyHandler(w, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
}

// Info logs an informational message.
func (l *Logger) Info(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Info(msg)
}

// Warn logs a warning message.
func (l *Logger) Warn(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Warn(msg)
}

// Error logs an error, rendering a zerr chain as a main message followed by
// its causes.
func (l *Logger) Error(err error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if err == nil {
		return
	}

	// Collect messages by walking the error chain.
	var messages []string
	current := err

	for current != nil {
		if m, ok := current.(messager); ok {
			// zerr error: raw message without the chain
			messages = append(messages, m.Message())
			current = errors.Unwrap(current)
		} else {
			// Standard error: full Error() and stop
			messages = append(messages, current.Error())
			break
		}
	}

	// Joined errors carry embedded newlines; continuation lines are
	// indented under their message.
	var lines []string
	for i, msg := range messages {
		parts := strings.Split(msg, "\n")
		if i == 0 {
			lines = append(lines, "Error: "+parts[0])
			for _, part := range parts[1:] {
				lines = append(lines, "       "+part)
			}
			continue
		}
		if i == 1 {
			lines = append(lines, "", "  Caused by:")
		}
		lines = append(lines, "    → "+parts[0])
		for _, part := range parts[1:] {
			lines = append(lines, "      "+part)
		}
	}

	l.logger.Error(strings.Join(lines, "\n"))
}
