// Package logger provides application logging built on log/slog.
//
// New returns a JSON logger writing to stdout. NewWithSentry additionally
// forwards warnings and errors to Sentry when a DSN is configured, falling
// back to stdout-only logging otherwise. NewNope returns a no-op logger
// for tests and defaults.
package logger
