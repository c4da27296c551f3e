/*
Package option provides Option, an immutable container representing the
presence (Some) or absence (None) of a value.

Policy for nil-like values: Some preserves whatever it is given, including
zero values and nil-valued pointers/slices/maps — Some((*T)(nil)) is a
defined Option holding a nil pointer. Absence is produced only by the None
constructor (or by operations like Filter). Use FromPtr to collapse a nil
pointer into None instead.
*/
package option

import (
	"errors"
	"fmt"
)

// ErrNoneGet is the cause of the panic raised when Get is called on None.
var ErrNoneGet = errors.New("called Get on None")

// Option represents an optional value of type T. The zero value is None.
type Option[T any] struct {
	value   T
	defined bool
}

// Some wraps a present value, whatever it is (see package doc for the
// nil policy).
func Some[T any](value T) Option[T] {
	return Option[T]{value: value, defined: true}
}

// None returns the absent Option for type T.
func None[T any]() Option[T] {
	return Option[T]{}
}

// FromPtr converts a pointer into an Option, collapsing nil to None and
// dereferencing otherwise.
func FromPtr[T any](p *T) Option[T] {
	if p == nil {
		return None[T]()
	}
	return Some(*p)
}

// IsDefined reports whether the Option is Some.
func (o Option[T]) IsDefined() bool {
	return o.defined
}

// IsEmpty reports whether the Option is None.
func (o Option[T]) IsEmpty() bool {
	return !o.defined
}

// Get returns the contained value, panicking with an error wrapping
// ErrNoneGet when called on None. Prefer Unwrap or GetOrElse when absence
// is an expected case.
func (o Option[T]) Get() T {
	if !o.defined {
		panic(fmt.Errorf("%w", ErrNoneGet))
	}
	return o.value
}

// Unwrap returns the contained value and a presence flag.
func (o Option[T]) Unwrap() (T, bool) {
	return o.value, o.defined
}

// GetOrElse returns the contained value, or def when None.
func (o Option[T]) GetOrElse(def T) T {
	if o.defined {
		return o.value
	}
	return def
}

// OrElse returns the receiver if it is Some, alt otherwise.
func (o Option[T]) OrElse(alt Option[T]) Option[T] {
	if o.defined {
		return o
	}
	return alt
}

// Map applies f to the contained value, producing a new Some; None is
// passed through unchanged. For a result type different from T use the
// package-level Map.
func (o Option[T]) Map(f func(T) T) Option[T] {
	if o.defined {
		return Some(f(o.value))
	}
	return o
}

// FlatMap applies f, which itself produces an Option, to the contained
// value; the result is f's Option, un-nested. None is passed through.
func (o Option[T]) FlatMap(f func(T) Option[T]) Option[T] {
	if o.defined {
		return f(o.value)
	}
	return o
}

// Filter keeps Some(v) only if pred(v) holds, and becomes None otherwise.
func (o Option[T]) Filter(pred func(T) bool) Option[T] {
	if o.defined && pred(o.value) {
		return o
	}
	return None[T]()
}

// ForEach calls f with the contained value; a no-op on None.
func (o Option[T]) ForEach(f func(T)) {
	if o.defined {
		f(o.value)
	}
}

func (o Option[T]) String() string {
	if o.defined {
		return fmt.Sprintf("Some(%v)", o.value)
	}
	return "None"
}

// Map applies f to the value of x, possibly changing the value type.
func Map[T, S any](f func(T) S, x Option[T]) Option[S] {
	if v, ok := x.Unwrap(); ok {
		return Some(f(v))
	}
	return None[S]()
}

// AndThen chains f, which produces an Option of a possibly different type,
// over the value of x.
func AndThen[T, S any](f func(T) Option[S], x Option[T]) Option[S] {
	if v, ok := x.Unwrap(); ok {
		return f(v)
	}
	return None[S]()
}
