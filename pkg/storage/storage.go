package storage

import "context"

// DocumentStore persists small immutable documents under relative paths.
type DocumentStore interface {
	// Write stores data at the given relative path, creating parent
	// directories as needed. An existing document at the same path is
	// overwritten.
	Write(ctx context.Context, path string, data []byte) error
	// Exists reports whether a document is present at the given path.
	Exists(ctx context.Context, path string) bool
}
