// Package logger builds the service's slog.Logger.
//
// It produces JSON logs by default (text in development), supports static
// attributes on every record, and can inject request-scoped values such as
// the request ID from context at log time through a handler decorator.
// Attribute helpers keep field names consistent across the codebase.
package logger
