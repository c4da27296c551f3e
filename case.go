package vavr

import (
	"fmt"
	"reflect"
)

// Case is a single guarded handler of a Matcher: a guard deciding whether an
// input is accepted, fused with the handler producing the result R for an
// accepted input. Cases are created with the constructors in this file and
// registered with Builder.Caze.
type Case[R any] struct {
	label string
	fire  func(in any) (R, bool)
}

// String describes the case's guard, e.g. "is int" or "eq \"Moin\"".
func (c Case[R]) String() string {
	return c.label
}

// Is creates a type-guarded case: it accepts inputs whose runtime type is
// assignable to T and calls handler with the input narrowed to T. If T is an
// interface type, any implementation of it matches.
func Is[T any, R any](handler func(T) R) Case[R] {
	return Case[R]{
		label: "is " + typeName[T](),
		fire: func(in any) (R, bool) {
			if x, ok := in.(T); ok {
				return handler(x), true
			}
			var none R
			return none, false
		},
	}
}

// Eq creates a prototype-guarded case: it accepts inputs of type T which
// compare equal to proto and calls handler with the input.
func Eq[T comparable, R any](proto T, handler func(T) R) Case[R] {
	return Case[R]{
		label: fmt.Sprintf("eq %#v", proto),
		fire: func(in any) (R, bool) {
			if x, ok := in.(T); ok && x == proto {
				return handler(x), true
			}
			var none R
			return none, false
		},
	}
}

// DeepEq is Eq for prototypes of non-comparable types (slices, maps,
// structs containing them); equality is reflect.DeepEqual.
func DeepEq[T any, R any](proto T, handler func(T) R) Case[R] {
	return Case[R]{
		label: fmt.Sprintf("deep-eq %#v", proto),
		fire: func(in any) (R, bool) {
			if x, ok := in.(T); ok && reflect.DeepEqual(x, proto) {
				return handler(x), true
			}
			var none R
			return none, false
		},
	}
}

// Like creates a prototype-guarded case for types which implement Matchable,
// i.e. carry their own structural equality:
//
//	vavr.Like(vavr.P(1, "one"), func(p vavr.Pair[int, string]) string { … })
func Like[T Matchable[T], R any](proto T, handler func(T) R) Case[R] {
	return Case[R]{
		label: fmt.Sprintf("like %v", proto),
		fire: func(in any) (R, bool) {
			if x, ok := in.(T); ok && proto.Matches(x) {
				return handler(x), true
			}
			var none R
			return none, false
		},
	}
}

// When creates a predicate-guarded case: it accepts inputs of type T for
// which pred holds.
func When[T any, R any](pred func(T) bool, handler func(T) R) Case[R] {
	return Case[R]{
		label: "when " + typeName[T](),
		fire: func(in any) (R, bool) {
			if x, ok := in.(T); ok && pred(x) {
				return handler(x), true
			}
			var none R
			return none, false
		},
	}
}

func typeName[T any]() string {
	return reflect.TypeOf((*T)(nil)).Elem().String()
}
