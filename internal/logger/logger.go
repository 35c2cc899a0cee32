// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger provides a thin wrapper around zerolog.Logger that adds
// convenience constructors and context-aware helpers used throughout the
// client.
//
// The Logger type embeds zerolog.Logger so all standard zerolog methods
// (Debug, Info, Warn, Error, Fatal, etc.) are available directly on *Logger.
// Application code passes *Logger by pointer; UI components obtain the
// logger attached to their render context via FromContext.
package logger

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger is a thin wrapper around zerolog.Logger.
type Logger struct {
	zerolog.Logger

	// file is the log file owned by a client logger; nil otherwise.
	file io.Closer
}

func configureGlobals() {
	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		return runtime.FuncForPC(pc).Name() // return function name
	}
	zerolog.CallerFieldName = "func"
}

func newLogger(w io.Writer, role string) zerolog.Logger {
	return zerolog.New(w).With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()
}

// NewLogger constructs a *Logger for the given role label writing JSON to
// os.Stdout at debug level.
//
// Every entry carries a "role" field, a timestamp, and a "func" caller field
// holding the fully-qualified function name.
func NewLogger(role string) *Logger {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	configureGlobals()

	return &Logger{Logger: newLogger(os.Stdout, role)}
}

// NewClientLogger constructs a *Logger that appends JSON entries to path.
//
// The terminal belongs to the UI while the client runs, so unlike NewLogger
// this never writes to stdout. A relative path is resolved next to the
// executable. level is a zerolog level name; an empty level means info.
func NewClientLogger(role, path, level string) (*Logger, error) {
	lvl := zerolog.InfoLevel
	if level != "" {
		parsed, err := zerolog.ParseLevel(level)
		if err != nil {
			return nil, fmt.Errorf("parse log level %q: %w", level, err)
		}
		lvl = parsed
	}
	configureGlobals()

	if !filepath.IsAbs(path) {
		if execPath, err := os.Executable(); err == nil {
			path = filepath.Join(filepath.Dir(execPath), path)
		}
	}

	logFile, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}

	return &Logger{Logger: newLogger(logFile, role).Level(lvl), file: logFile}, nil
}

// Nop returns a *Logger that discards all log output.
func Nop() *Logger {
	return &Logger{Logger: zerolog.Nop()}
}

// GetChildLogger returns a new *Logger that inherits all fields of the
// receiver. The child does not own the receiver's log file.
func (l *Logger) GetChildLogger() *Logger {
	return &Logger{Logger: l.With().Logger()}
}

// Close releases the log file opened by NewClientLogger. It is a no-op for
// every other logger and safe to call more than once.
func (l *Logger) Close() error {
	if l == nil || l.file == nil {
		return nil
	}
	err := l.file.Close()
	l.file = nil
	return err
}

// FromContext extracts the zerolog.Logger stored in ctx by zerolog's log.Ctx
// helper and returns it as a *Logger. It never returns nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{Logger: *log.Ctx(ctx)}
}
