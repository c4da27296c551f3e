package vavr

import (
	"errors"
	"fmt"

	tp "github.com/xlab/treeprint"
)

// ErrNoMatch is returned by Matcher.Apply when no case and no default
// handler accepts an input. Callers should branch with errors.Is.
var ErrNoMatch = errors.New("no case matches input")

// --- Builder ---------------------------------------------------------------

// Builder accumulates an ordered list of cases for a Matcher. It is the
// open phase of matcher construction: the only operations are registering
// cases and sealing. A Builder is not safe for concurrent registration;
// confine it to one goroutine until sealed.
type Builder[R any] struct {
	cases     []Case[R]
	otherwise *Case[R]
}

// NewMatcher starts building a Matcher producing results of type R.
func NewMatcher[R any]() *Builder[R] {
	return &Builder[R]{}
}

// Caze registers cases, to be tried in registration order. It returns the
// receiver for chaining. Cases must come from one of the constructors (Is,
// Eq, DeepEq, Like, When, OfSlice); a zero-value Case has no guard and is
// ignored.
func (b *Builder[R]) Caze(cases ...Case[R]) *Builder[R] {
	for _, c := range cases {
		if c.fire == nil {
			continue
		}
		b.cases = append(b.cases, c)
	}
	return b
}

// Otherwise registers the default handler, called when no case matches.
// It is a case whose guard always succeeds; registering it twice replaces
// the previous default.
func (b *Builder[R]) Otherwise(handler func(any) R) *Builder[R] {
	b.otherwise = &Case[R]{
		label: "otherwise",
		fire: func(in any) (R, bool) {
			return handler(in), true
		},
	}
	return b
}

// Seal freezes the case list into a Matcher. The Builder may be discarded
// afterwards; case registrations on it do not affect the sealed Matcher.
func (b *Builder[R]) Seal() Matcher[R] {
	frozen := make([]Case[R], len(b.cases))
	copy(frozen, b.cases)
	return Matcher[R]{cases: frozen, otherwise: b.otherwise}
}

// Apply seals the builder and dispatches in, in one go.
func (b *Builder[R]) Apply(in any) (R, error) {
	return b.Seal().Apply(in)
}

// --- Matcher ---------------------------------------------------------------

// Matcher is a frozen ordered sequence of cases plus an optional default
// handler. It is immutable: dispatching never mutates the case list, and a
// Matcher may be shared between goroutines without locking (thread-safety
// of the registered handlers themselves is the caller's business).
type Matcher[R any] struct {
	cases     []Case[R]
	otherwise *Case[R]
}

// Apply dispatches input value in: cases are tried in registration order
// and the first case whose guard accepts in has its handler invoked; its
// result is returned and no further cases are evaluated. Later cases never
// override an earlier match, even if they would match too.
//
// If no case accepts in, the default handler is invoked if one was
// registered with Otherwise; without a default, Apply returns an error
// wrapping ErrNoMatch which names the input's runtime type and value.
func (m Matcher[R]) Apply(in any) (R, error) {
	for i, c := range m.cases {
		if r, ok := c.fire(in); ok {
			tracer().Debugf("match: case #%d (%s) accepts input of type %T", i, c.label, in)
			return r, nil
		}
	}
	if m.otherwise != nil {
		tracer().Debugf("match: falling through to default handler for input of type %T", in)
		r, _ := m.otherwise.fire(in)
		return r, nil
	}
	var none R
	return none, fmt.Errorf("%w: %T (%v)", ErrNoMatch, in, in)
}

// MustApply is Apply, panicking on unmatched input.
func (m Matcher[R]) MustApply(in any) R {
	r, err := m.Apply(in)
	if err != nil {
		panic(err)
	}
	return r
}

// Dump renders the case list as a tree, for test logs and debugging.
func (m Matcher[R]) Dump() string {
	printer := tp.New()
	branch := printer.AddBranch(fmt.Sprintf("Matcher(%d cases)", len(m.cases)))
	for i, c := range m.cases {
		branch.AddNode(fmt.Sprintf("#%d %s", i, c.label))
	}
	if m.otherwise != nil {
		branch.AddNode("otherwise")
	}
	return printer.String()
}
