package ledger

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when a referenced check, series, contact or
// check book does not exist.
var ErrNotFound = errors.New("record not found")

// ErrDuplicateCheckNumber is returned when a check number already exists
// within the same ledger.
var ErrDuplicateCheckNumber = errors.New("check number already exists in this ledger")

// ErrNoActiveCheckBook is returned when an outgoing series is created
// and no check book with status "active" exists to draw numbers from.
var ErrNoActiveCheckBook = errors.New("no active check book")

// ErrCheckBookExhausted is returned when the active check book does not
// have enough numbers left for a series.
var ErrCheckBookExhausted = errors.New("check book does not have enough numbers left")

// ValidationError reports bad input shape or range. The message is
// meant to be surfaced to the caller as-is.
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string { return e.msg }

// Validationf builds a ValidationError with a formatted message.
func Validationf(format string, args ...any) *ValidationError {
	return &ValidationError{msg: fmt.Sprintf(format, args...)}
}

// StateConflictError reports an operation that is not allowed in the
// check's current status, such as depositing a check that is not
// waiting for deposit.
type StateConflictError struct {
	msg string
}

func (e *StateConflictError) Error() string { return e.msg }

// StateConflictf builds a StateConflictError with a formatted message.
func StateConflictf(format string, args ...any) *StateConflictError {
	return &StateConflictError{msg: fmt.Sprintf(format, args...)}
}

// SeriesGenerationError wraps a failure while generating a check
// series. Generation is all-or-nothing: when this is returned, no
// series row and no child checks were persisted.
type SeriesGenerationError struct {
	Err error
}

func (e *SeriesGenerationError) Error() string {
	return fmt.Sprintf("series generation failed: %v", e.Err)
}

func (e *SeriesGenerationError) Unwrap() error { return e.Err }
