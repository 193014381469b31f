// Package logger provides structured logging functionality for the application
// using Go's standard library log/slog package: JSON or text output, level
// selection from configuration, and request-scoped loggers and attributes
// carried in a context.Context.
package logger
