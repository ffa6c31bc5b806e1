// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger wraps zerolog for go-sub-merger.
//
// *Logger embeds zerolog.Logger, so Debug, Info, Err and the rest of the
// zerolog API are called on it directly. The HTTP layer attaches a
// request-scoped child logger carrying the trace ID to the request context;
// code below it retrieves that logger with [FromContext] or [FromRequest].
package logger

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"runtime"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	roleField    = "role"
	traceIDField = "trace_id"
)

// Logger is a thin wrapper around zerolog.Logger.
type Logger struct {
	zerolog.Logger
}

// NewLogger returns a JSON logger writing to os.Stdout. See [New].
func NewLogger(role string) *Logger {
	return New(role, os.Stdout)
}

// New returns a JSON logger writing to out. Every entry carries the role,
// a timestamp and a "func" field with the calling function's name.
//
// New resets the global level to debug; narrow it afterwards with [SetLevel].
func New(role string, out io.Writer) *Logger {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	zerolog.CallerFieldName = "func"
	zerolog.CallerMarshalFunc = func(pc uintptr, _ string, _ int) string {
		return runtime.FuncForPC(pc).Name()
	}

	return &Logger{
		zerolog.New(out).With().
			Str(roleField, role).
			Timestamp().
			Caller().
			Logger(),
	}
}

// SetLevel parses level (e.g. "info", "warn") and installs it as the global
// zerolog level. An empty level leaves the current global level unchanged.
func SetLevel(level string) error {
	if level == "" {
		return nil
	}

	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("parse log level: %w", err)
	}

	zerolog.SetGlobalLevel(lvl)
	return nil
}

// Nop returns a *Logger that discards all log output.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// GetChildLogger returns a copy of l that can be enriched without affecting l.
func (l *Logger) GetChildLogger() *Logger {
	return &Logger{l.With().Logger()}
}

// WithTraceID returns a child logger that adds traceID to every entry.
func (l *Logger) WithTraceID(traceID string) *Logger {
	return &Logger{l.With().Str(traceIDField, traceID).Logger()}
}

// FromRequest returns the logger attached to the request context.
func FromRequest(r *http.Request) *Logger {
	return FromContext(r.Context())
}

// FromContext returns the logger attached to ctx. Without one it falls back
// to zerolog's default context logger, or a disabled logger, and never
// returns nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}
