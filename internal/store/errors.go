// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when no event matches the requested id,
	// including ids that cannot be parsed.
	ErrNotFound = errors.New("event not found")

	// ErrBackend classifies query and transport failures.
	ErrBackend = errors.New("backend error")

	// ErrMalformedRecord is returned when a stored row cannot be decoded,
	// for example an unparseable timestamp.
	ErrMalformedRecord = errors.New("malformed event record")
)

// BackendError wraps a driver error with the failing operation.
// It matches both ErrBackend and the underlying cause with errors.Is.
type BackendError struct {
	Op  string
	Err error
}

func (e *BackendError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

// Unwrap returns the driver error.
func (e *BackendError) Unwrap() error {
	return e.Err
}

// Is makes errors.Is(err, ErrBackend) true for every BackendError.
func (e *BackendError) Is(target error) bool {
	return target == ErrBackend
}

func backendError(op string, err error) error {
	return &BackendError{Op: op, Err: err}
}
