/*
Package vavr provides a small set of immutable algebraic container types and
a runtime dispatch engine selecting a handler for an input value by first
match.

The containers live in sub-packages: option.Option for optional values,
try.Try for computations which may fail, either.Either for two-alternative
values. This root package holds the match engine together with a handful of
function combinators.

A Matcher is built from an ordered list of guarded cases and dispatches an
input value to the handler of the first case whose guard succeeds:

	m := vavr.NewMatcher[string]().
		Caze(vavr.Eq("Moin", func(s string) string { return "greeting" })).
		Caze(vavr.Is(func(n int) string { return strconv.Itoa(n) })).
		Otherwise(func(v any) string { return "?" }).
		Seal()
	r, err := m.Apply(42)   // "42"

Guards are evaluated strictly in registration order; an input matching no
case (and no default) is an error, never silently dropped.

Status

Requires Go 1.18+ (generics).

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package vavr

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'vavr.match'.
func tracer() tracing.Trace {
	return tracing.Select("vavr.match")
}
