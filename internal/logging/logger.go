// Package logging defines the structured-logging interface used across
// hotelbook. The only implementation wraps log/slog.
package logging

import "context"

// Logger is a context-aware, structured logger. Args are key/value pairs:
//
//	log.Info(ctx, "request", "method", "POST", "path", "/api/auth/login", "status", 200)
//
// Debug is off unless the configured level is "debug". Warn is used for
// client errors, Error for failures that end in a 500 or a stopped server.
type Logger interface {
	Debug(ctx context.Context, msg string, args ...any)
	Info(ctx context.Context, msg string, args ...any)
	Warn(ctx context.Context, msg string, args ...any)
	Error(ctx context.Context, msg string, args ...any)

	// With returns a child logger that adds args to every record, e.g.
	// With("module", "http_server").
	With(args ...any) Logger
}
