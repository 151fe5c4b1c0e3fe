package prize

import (
	"errors"
	"fmt"
)

// ErrPrizeNotFound is returned by update, delete and decrement when no
// prize with the given ID exists.
var ErrPrizeNotFound = errors.New("prize not found")

// ValidationError reports a rejected add/update request field. Raised by
// request validation in the caller layer, never by the service itself.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// StorageError wraps a failed persistence write. The in-memory collection
// keeps the mutation; the caller decides how to report the lost write.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }
