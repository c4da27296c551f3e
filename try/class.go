package try

import (
	"errors"
	"runtime"
)

// Class is the closed classification of error conditions, deciding whether
// a condition may be captured as a Failure (recoverable) or must always
// propagate to the caller (fatal).
type Class int

const (
	// ClassRecoverable conditions are captured by Of as a Failure.
	ClassRecoverable Class = iota
	// ClassFatal conditions re-panic through Of; masking them as values
	// would corrupt recovery logic higher up the stack.
	ClassFatal
)

func (c Class) String() string {
	switch c {
	case ClassRecoverable:
		return "recoverable"
	case ClassFatal:
		return "fatal"
	}
	return "invalid"
}

// fatalError marks a wrapped error as fatal.
type fatalError struct {
	cause error
}

func (e fatalError) Error() string {
	return "fatal: " + e.cause.Error()
}

func (e fatalError) Unwrap() error {
	return e.cause
}

func (e fatalError) Fatal() bool {
	return true
}

// Fatal wraps err so that it classifies as ClassFatal: returning or
// panicking with Fatal(err) from a computation makes Of re-panic instead
// of capturing a Failure.
func Fatal(err error) error {
	return fatalError{cause: err}
}

// Classify applies the fixed classification rules to a condition, which is
// either an error or an arbitrary panic value:
//
//   - runtime.Error panics (nil dereference, index out of range, …) are
//     programming defects: fatal.
//   - errors reporting Fatal() == true anywhere in their chain are fatal;
//     Fatal constructs such errors.
//   - panic values which are not errors at all are fatal, since nothing
//     recoverable can be said about them.
//   - every other error is recoverable.
func Classify(condition any) Class {
	switch c := condition.(type) {
	case runtime.Error:
		return ClassFatal
	case error:
		var f interface{ Fatal() bool }
		if errors.As(c, &f) && f.Fatal() {
			return ClassFatal
		}
		return ClassRecoverable
	}
	return ClassFatal
}
