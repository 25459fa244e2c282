package storage

import "errors"

var (
	ErrInvalidConfig = errors.New("invalid storage configuration")
	ErrInvalidPath   = errors.New("invalid document path") // Prevents path traversal attacks

	ErrFailedToWriteDocument   = errors.New("failed to write document")
	ErrFailedToCreateDirectory = errors.New("failed to create directory")
	ErrFailedToGetAbsolutePath = errors.New("failed to get absolute path")
	ErrFailedToLoadAWSConfig   = errors.New("failed to load AWS config")
)
