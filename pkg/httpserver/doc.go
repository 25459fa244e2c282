// Package httpserver wraps http.Server with env-driven configuration and
// graceful shutdown on SIGINT/SIGTERM or context cancellation.
package httpserver
