package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Local implements DocumentStore on the local filesystem. All writes are
// confined to the base directory; relative paths that resolve outside it are
// rejected. Safe for concurrent use - distinct submissions write distinct
// paths and the OS handles same-path races.
type Local struct {
	baseDir string // Absolute path; every document lives under it.
}

// NewLocal creates a filesystem document store rooted at baseDir. The
// directory is resolved to an absolute path and created if absent.
func NewLocal(baseDir string) (*Local, error) {
	if baseDir == "" {
		return nil, ErrInvalidConfig
	}

	absBaseDir, err := filepath.Abs(baseDir)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedToGetAbsolutePath, err)
	}

	if err := os.MkdirAll(absBaseDir, 0755); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedToCreateDirectory, err)
	}

	return &Local{baseDir: absBaseDir}, nil
}

// Write stores a document under the base directory with 0644 permissions,
// creating intermediate directories as needed.
func (s *Local) Write(ctx context.Context, path string, data []byte) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	absPath, err := s.resolvePath(path)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(absPath), 0755); err != nil {
		return fmt.Errorf("%w: %v", ErrFailedToCreateDirectory, err)
	}

	if err := os.WriteFile(absPath, data, 0644); err != nil {
		return fmt.Errorf("%w: %v", ErrFailedToWriteDocument, err)
	}

	return nil
}

// Exists reports whether a document is present. Invalid paths and canceled
// contexts report false.
func (s *Local) Exists(ctx context.Context, path string) bool {
	select {
	case <-ctx.Done():
		return false
	default:
	}

	absPath, err := s.resolvePath(path)
	if err != nil {
		return false
	}

	info, err := os.Stat(absPath)
	return err == nil && !info.IsDir()
}

// resolvePath validates and resolves a relative path within the base
// directory, rejecting anything that escapes it via ../ segments.
func (s *Local) resolvePath(path string) (string, error) {
	path = filepath.Clean(path)
	absPath, err := filepath.Abs(filepath.Join(s.baseDir, path))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrFailedToGetAbsolutePath, err)
	}

	if absPath != s.baseDir && !strings.HasPrefix(absPath, s.baseDir+string(filepath.Separator)) {
		return "", fmt.Errorf("%w: %s", ErrInvalidPath, path)
	}

	return absPath, nil
}
