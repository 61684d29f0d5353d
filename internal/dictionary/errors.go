package dictionary

import (
	"errors"
	"fmt"
)

// ErrCorruptState reports that a persisted collection could not be decoded.
var ErrCorruptState = errors.New("corrupt dictionary state")

// ValidationError reports an empty required field.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s must not be empty", e.Field)
}

// DuplicateError reports a case-insensitive word collision.
type DuplicateError struct {
	Word string
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("an entry for %q already exists", e.Word)
}

// NotFoundError reports an operation that targeted a missing entry.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no entry with id %q", e.ID)
}

// ImportFormatError reports an import payload that does not parse as a JSON
// array of entries.
type ImportFormatError struct {
	Err error
}

func (e *ImportFormatError) Error() string {
	return fmt.Sprintf("import payload is not a JSON array of entries: %v", e.Err)
}

func (e *ImportFormatError) Unwrap() error {
	return e.Err
}
