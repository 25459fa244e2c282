package ratelimit

import "errors"

var (
	// ErrInvalidLimit indicates a non-positive request limit.
	ErrInvalidLimit = errors.New("rate limit must be positive")
	// ErrInvalidWindow indicates a non-positive window duration.
	ErrInvalidWindow = errors.New("rate limit window must be positive")
	// ErrKeyRequired indicates an empty rate limit key.
	ErrKeyRequired = errors.New("rate limit key is required")
)
