/*
Package try provides Try, an immutable container for the outcome of a
computation that may fail: either Success holding the computed value, or
Failure holding the recoverable cause.

The dividing line between captured and propagated conditions is the closed
Class enumeration (see Classify): recoverable conditions become Failure
values at the Of boundary, fatal conditions — runtime errors, non-error
panics, errors marked with Fatal — always re-panic past it.
*/
package try

import (
	"errors"
	"fmt"

	"github.com/texasbruce/vavr/option"
)

// ErrFailureGet is the cause of the panic raised when Get is called on a
// Failure.
var ErrFailureGet = errors.New("called Get on Failure")

// ErrSuccessFailed is the cause held by the Failure that Failed returns
// for a Success.
var ErrSuccessFailed = errors.New("called Failed on Success")

// Try represents a computation outcome of type T. The zero value is a
// Success holding T's zero value.
type Try[T any] struct {
	value T
	cause error
}

// Success wraps a computed value.
func Success[T any](value T) Try[T] {
	return Try[T]{value: value}
}

// Failure wraps a recoverable cause. It panics when cause is nil or when
// cause classifies as fatal — a Failure may only ever hold a recoverable
// condition.
func Failure[T any](cause error) Try[T] {
	if cause == nil {
		panic(errors.New("Failure requires a non-nil cause"))
	}
	if Classify(cause) == ClassFatal {
		panic(cause)
	}
	return Try[T]{cause: cause}
}

// Of runs f and wraps its outcome: a normal return with a nil error is a
// Success, a returned or panicked recoverable condition is a Failure, and
// a fatal condition (see Classify) re-panics to the caller of Of instead
// of being wrapped.
func Of[T any](f func() (T, error)) (t Try[T]) {
	defer func() {
		if p := recover(); p != nil {
			if Classify(p) == ClassFatal {
				panic(p)
			}
			t = Try[T]{cause: p.(error)}
		}
	}()
	v, err := f()
	if err != nil {
		if Classify(err) == ClassFatal {
			panic(err)
		}
		return Try[T]{cause: err}
	}
	return Try[T]{value: v}
}

// Call is Of for computations that report failure by panicking only.
func Call[T any](f func() T) Try[T] {
	return Of(func() (T, error) {
		return f(), nil
	})
}

// IsSuccess reports whether the Try is a Success.
func (t Try[T]) IsSuccess() bool {
	return t.cause == nil
}

// IsFailure reports whether the Try is a Failure.
func (t Try[T]) IsFailure() bool {
	return t.cause != nil
}

// Get returns the computed value, panicking with an error wrapping both
// ErrFailureGet and the cause when called on a Failure.
func (t Try[T]) Get() T {
	if t.cause != nil {
		panic(fmt.Errorf("%w: %w", ErrFailureGet, t.cause))
	}
	return t.value
}

// Unwrap returns the computed value and the cause; exactly one of them is
// meaningful, the cause being nil for a Success.
func (t Try[T]) Unwrap() (T, error) {
	return t.value, t.cause
}

// Cause returns the captured cause, nil for a Success.
func (t Try[T]) Cause() error {
	return t.cause
}

// GetOrElse returns the computed value, or def for a Failure.
func (t Try[T]) GetOrElse(def T) T {
	if t.cause != nil {
		return def
	}
	return t.value
}

// OrElse returns the receiver if it is a Success, alt otherwise.
func (t Try[T]) OrElse(alt Try[T]) Try[T] {
	if t.cause != nil {
		return alt
	}
	return t
}

// Map applies f to the value of a Success; a Failure is passed through
// unchanged. A recoverable panic inside f turns the result into a new
// Failure, under the same classification rules as Of. For a result type
// different from T use the package-level Map.
func (t Try[T]) Map(f func(T) T) Try[T] {
	if t.cause != nil {
		return t
	}
	return Call(func() T {
		return f(t.value)
	})
}

// FlatMap applies f, which itself produces a Try, to the value of a
// Success; a Failure is passed through unchanged.
func (t Try[T]) FlatMap(f func(T) Try[T]) Try[T] {
	if t.cause != nil {
		return t
	}
	return protect(func() Try[T] {
		return f(t.value)
	})
}

// Recover converts a Failure into a Success by applying handler to the
// cause; a Success is left unchanged. A recoverable panic inside handler
// produces a new Failure.
func (t Try[T]) Recover(handler func(error) T) Try[T] {
	if t.cause == nil {
		return t
	}
	return Call(func() T {
		return handler(t.cause)
	})
}

// RecoverWith is Recover with a handler that itself reports success or
// failure as a Try.
func (t Try[T]) RecoverWith(handler func(error) Try[T]) Try[T] {
	if t.cause == nil {
		return t
	}
	return protect(func() Try[T] {
		return handler(t.cause)
	})
}

// Failed inverts the outcome: a Failure becomes a Success holding its
// cause, a Success becomes a Failure whose cause is ErrSuccessFailed.
func (t Try[T]) Failed() Try[error] {
	if t.cause != nil {
		return Success(t.cause)
	}
	return Failure[error](ErrSuccessFailed)
}

// ToOption converts a Success into Some and a Failure into None, dropping
// the cause.
func (t Try[T]) ToOption() option.Option[T] {
	if t.cause != nil {
		return option.None[T]()
	}
	return option.Some(t.value)
}

func (t Try[T]) String() string {
	if t.cause != nil {
		return fmt.Sprintf("Failure(%v)", t.cause)
	}
	return fmt.Sprintf("Success(%v)", t.value)
}

// protect runs f under the same panic-capture rules as Of and returns the
// Try it produces directly. Methods of Try use it instead of
// flatten(Call(...)) so that instantiating Try[T] does not require
// instantiating Try[Try[T]], which the compiler rejects as an
// instantiation cycle.
func protect[T any](f func() Try[T]) (out Try[T]) {
	defer func() {
		if p := recover(); p != nil {
			if Classify(p) == ClassFatal {
				panic(p)
			}
			out = Try[T]{cause: p.(error)}
		}
	}()
	return f()
}

func flatten[T any](tt Try[Try[T]]) Try[T] {
	inner, err := tt.Unwrap()
	if err != nil {
		return Try[T]{cause: err}
	}
	return inner
}

// Map applies f to the value of x, possibly changing the value type; the
// same panic-capture rules as Of apply to f.
func Map[T, S any](f func(T) S, x Try[T]) Try[S] {
	v, err := x.Unwrap()
	if err != nil {
		return Try[S]{cause: err}
	}
	return Call(func() S {
		return f(v)
	})
}

// AndThen chains f, which produces a Try of a possibly different type,
// over the value of x.
func AndThen[T, S any](f func(T) Try[S], x Try[T]) Try[S] {
	v, err := x.Unwrap()
	if err != nil {
		return Try[S]{cause: err}
	}
	return flatten(Call(func() Try[S] {
		return f(v)
	}))
}
