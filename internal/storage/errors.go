package storage

import "errors"

// Common storage errors
var (
	// ErrCorruptDocument indicates that a persisted document failed to
	// decode. There is no recovery path: the caller is expected to abort.
	ErrCorruptDocument = errors.New("persisted document is corrupt")

	// ErrStorageClosed indicates that storage is closed
	ErrStorageClosed = errors.New("storage is closed")
)
