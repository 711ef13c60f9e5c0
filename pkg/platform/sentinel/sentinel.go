// Package sentinel holds the storage facts that stores return (optionally
// wrapped) and services translate into domain errors.
//
// Validation failures do not belong here; use pkg/domain-errors.
package sentinel

import "errors"

var (
	// ErrNotFound means no row matches the key.
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists means a row with the same natural key is already stored.
	ErrAlreadyExists = errors.New("already exists")
)
