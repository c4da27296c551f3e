/*
Package either provides Either, an immutable container holding exactly one
of two independently typed alternatives, Left or Right.

The type itself carries no bias: which side an operation works on is a
property of the operation (MapLeft, MapRight, Fold), not of the container.
*/
package either

import "fmt"

// Either holds either a Left of type L or a Right of type R. The zero
// value is Left holding L's zero value.
type Either[L, R any] struct {
	left  L
	right R
	tag   bool // false = Left, true = Right
}

// Left constructs an Either holding the left alternative.
func Left[L, R any](value L) Either[L, R] {
	return Either[L, R]{left: value}
}

// Right constructs an Either holding the right alternative.
func Right[L, R any](value R) Either[L, R] {
	return Either[L, R]{right: value, tag: true}
}

// IsLeft reports whether the left alternative is held.
func (e Either[L, R]) IsLeft() bool {
	return !e.tag
}

// IsRight reports whether the right alternative is held.
func (e Either[L, R]) IsRight() bool {
	return e.tag
}

// Left returns the left value and whether it is the held alternative.
func (e Either[L, R]) Left() (L, bool) {
	return e.left, !e.tag
}

// Right returns the right value and whether it is the held alternative.
func (e Either[L, R]) Right() (R, bool) {
	return e.right, e.tag
}

// MapLeft applies f to a held Left value; a Right is passed through
// unchanged. For a result type different from L use the package-level
// MapLeft.
func (e Either[L, R]) MapLeft(f func(L) L) Either[L, R] {
	if e.tag {
		return e
	}
	return Left[L, R](f(e.left))
}

// MapRight applies f to a held Right value; a Left is passed through
// unchanged.
func (e Either[L, R]) MapRight(f func(R) R) Either[L, R] {
	if !e.tag {
		return e
	}
	return Right[L](f(e.right))
}

// Swap exchanges the Left and Right tags without touching the value.
func (e Either[L, R]) Swap() Either[R, L] {
	if e.tag {
		return Left[R, L](e.right)
	}
	return Right[R](e.left)
}

func (e Either[L, R]) String() string {
	if e.tag {
		return fmt.Sprintf("Right(%v)", e.right)
	}
	return fmt.Sprintf("Left(%v)", e.left)
}

// Fold collapses both alternatives into one result type, applying
// whichever function matches the held alternative.
func Fold[L, R, T any](e Either[L, R], onLeft func(L) T, onRight func(R) T) T {
	if v, ok := e.Right(); ok {
		return onRight(v)
	}
	l, _ := e.Left()
	return onLeft(l)
}

// MapLeft applies f to a held Left value, possibly changing the left type.
func MapLeft[L, M, R any](e Either[L, R], f func(L) M) Either[M, R] {
	if v, ok := e.Right(); ok {
		return Right[M](v)
	}
	l, _ := e.Left()
	return Left[M, R](f(l))
}

// MapRight applies f to a held Right value, possibly changing the right
// type.
func MapRight[L, R, S any](e Either[L, R], f func(R) S) Either[L, S] {
	if v, ok := e.Right(); ok {
		return Right[L, S](f(v))
	}
	l, _ := e.Left()
	return Left[L, S](l)
}
