// Package ratelimit throttles form submissions per client.
//
// The limiter is a fixed-window counter held in memory: the service runs as
// a single instance and losing counters on restart is acceptable for an
// abuse brake. The middleware keys requests by client IP, sets the usual
// X-RateLimit-* headers and fails open if the key cannot be resolved.
package ratelimit
