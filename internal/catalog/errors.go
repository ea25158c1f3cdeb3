// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package catalog

import "errors"

// ErrNotFound reports that an operation targeted a paper id that does not
// exist in the catalog. It is distinct from storage failures: callers
// decide the next step.
var ErrNotFound = errors.New("paper not found")

// StorageError wraps an underlying persistence failure (driver error,
// constraint violation, unreadable file). It is never conflated with
// ErrNotFound or a validation error.
type StorageError struct {
	// Op describes the failing operation, e.g. "inserting paper".
	Op string

	// Err is the underlying error.
	Err error
}

func (e *StorageError) Error() string {
	return e.Op + ": " + e.Err.Error()
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

func storageErr(op string, err error) error {
	return &StorageError{Op: op, Err: err}
}
