package vavr

import "reflect"

// SliceKind enumerates the element kinds a slice-guarded case can dispatch
// on. Go slices of distinct element types share no common supertype, so a
// matcher covering "any slice" needs one case per element kind of interest
// plus KindRef for the rest; the engine does not synthesize these cases.
type SliceKind int

const (
	KindBool SliceKind = iota
	KindInt
	KindInt8
	KindInt16
	KindInt32
	KindInt64
	KindUint
	KindUint8 // covers []byte
	KindUint16
	KindUint32
	KindUint64
	KindFloat32
	KindFloat64
	KindComplex64
	KindComplex128
	KindString
	KindRef // slices of any other (reference or composite) element type
)

var sliceKindNames = []string{
	"bool", "int", "int8", "int16", "int32", "int64",
	"uint", "uint8", "uint16", "uint32", "uint64",
	"float32", "float64", "complex64", "complex128", "string", "ref",
}

func (k SliceKind) String() string {
	if k < KindBool || k > KindRef {
		return "invalid"
	}
	return sliceKindNames[k]
}

// KindOfSlice classifies a value's slice element kind. ok is false when in
// is not a slice at all. Note that []byte reports KindUint8 and []rune
// reports KindInt32, following Go's type identity rules.
func KindOfSlice(in any) (kind SliceKind, ok bool) {
	switch in.(type) {
	case []bool:
		return KindBool, true
	case []int:
		return KindInt, true
	case []int8:
		return KindInt8, true
	case []int16:
		return KindInt16, true
	case []int32:
		return KindInt32, true
	case []int64:
		return KindInt64, true
	case []uint:
		return KindUint, true
	case []uint8:
		return KindUint8, true
	case []uint16:
		return KindUint16, true
	case []uint32:
		return KindUint32, true
	case []uint64:
		return KindUint64, true
	case []float32:
		return KindFloat32, true
	case []float64:
		return KindFloat64, true
	case []complex64:
		return KindComplex64, true
	case []complex128:
		return KindComplex128, true
	case []string:
		return KindString, true
	}
	if reflect.ValueOf(in).Kind() == reflect.Slice {
		return KindRef, true
	}
	return 0, false
}

// OfSlice creates a case accepting slices of the given element kind. The
// handler receives the input un-narrowed and asserts the element type
// itself, which is safe after the kind check:
//
//	vavr.OfSlice(vavr.KindUint8, func(in any) int { return len(in.([]byte)) })
func OfSlice[R any](kind SliceKind, handler func(any) R) Case[R] {
	return Case[R]{
		label: "slice of " + kind.String(),
		fire: func(in any) (R, bool) {
			if k, ok := KindOfSlice(in); ok && k == kind {
				return handler(in), true
			}
			var none R
			return none, false
		},
	}
}
