package logger

import (
	"context"
	"log/slog"
	"os"
)

// Log is the global logger instance. It falls back to slog's default
// handler until Setup is called.
var Log = slog.Default()

type organisationKey struct{}

// Setup initializes the global logger based on the environment
func Setup(env string) {
	opts := &slog.HandlerOptions{Level: slog.LevelInfo}
	if env == "development" {
		opts.Level = slog.LevelDebug
	}

	var handler slog.Handler
	if env == "production" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	Log = slog.New(handler)
	slog.SetDefault(Log)
}

// WithOrganisation returns a context whose log lines carry the tenant
func WithOrganisation(ctx context.Context, organisationID string) context.Context {
	return context.WithValue(ctx, organisationKey{}, organisationID)
}

// OrganisationFrom returns the tenant stored by WithOrganisation, if any
func OrganisationFrom(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(organisationKey{}).(string)
	return id, ok && id != ""
}

// FromContext returns the global logger, tagged with the tenant when the
// context carries one
func FromContext(ctx context.Context) *slog.Logger {
	if id, ok := OrganisationFrom(ctx); ok {
		return Log.With(slog.String("organisation_id", id))
	}
	return Log
}

// Info logs an info message
func Info(msg string, args ...any) {
	Log.Info(msg, args...)
}

// Error logs an error message
func Error(msg string, args ...any) {
	Log.Error(msg, args...)
}

// Debug logs a debug message
func Debug(msg string, args ...any) {
	Log.Debug(msg, args...)
}

// Warn logs a warning message
func Warn(msg string, args ...any) {
	Log.Warn(msg, args...)
}

// InfoContext logs an info message tagged with the context's tenant
func InfoContext(ctx context.Context, msg string, args ...any) {
	FromContext(ctx).InfoContext(ctx, msg, args...)
}

// ErrorContext logs an error message tagged with the context's tenant
func ErrorContext(ctx context.Context, msg string, args ...any) {
	FromContext(ctx).ErrorContext(ctx, msg, args...)
}

// DebugContext logs a debug message tagged with the context's tenant
func DebugContext(ctx context.Context, msg string, args ...any) {
	FromContext(ctx).DebugContext(ctx, msg, args...)
}

// WarnContext logs a warning message tagged with the context's tenant
func WarnContext(ctx context.Context, msg string, args ...any) {
	FromContext(ctx).WarnContext(ctx, msg, args...)
}
