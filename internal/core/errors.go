package core

import "errors"

// Sentinel errors shared across services and repositories.
// Callers classify failures with errors.Is instead of string matching.
var (
	// ErrInvalid marks a record rejected at a write boundary before any
	// local or remote state was touched.
	ErrInvalid = errors.New("invalid record")

	// ErrNotFound marks a lookup miss for an id the caller required.
	ErrNotFound = errors.New("not found")
)
