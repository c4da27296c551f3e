package vavr

import "fmt"

// Matchable is an interface for types which define their own structural
// equality, making them usable as match prototypes (see Like).
type Matchable[T any] interface {
	Matches(other T) bool
}

// --- Pair ------------------------------------------------------------------

// Pair is an immutable 2-tuple. It is a pure data carrier: components are
// compared structurally and mapped per component.
type Pair[A, B comparable] struct {
	Left  A
	Right B
}

// P constructs a Pair, letting type inference do the work:
//
//	p := vavr.P(1, "one")
func P[A, B comparable](x A, y B) Pair[A, B] {
	return Pair[A, B]{x, y}
}

// Matches tests component-wise equality with other.
func (p Pair[A, B]) Matches(other Pair[A, B]) bool {
	return p.Left == other.Left && p.Right == other.Right
}

// Decompose returns both components.
func (p Pair[A, B]) Decompose() (A, B) {
	return p.Left, p.Right
}

// MapLeft returns a Pair with f applied to the left component.
func (p Pair[A, B]) MapLeft(f func(A) A) Pair[A, B] {
	return Pair[A, B]{f(p.Left), p.Right}
}

// MapRight returns a Pair with f applied to the right component.
func (p Pair[A, B]) MapRight(f func(B) B) Pair[A, B] {
	return Pair[A, B]{p.Left, f(p.Right)}
}

func (p Pair[A, B]) String() string {
	return fmt.Sprintf("(%v, %v)", p.Left, p.Right)
}

var _ Matchable[Pair[int, int]] = P(1, 2)
