// Package typedetect provides utilities for detecting numeric characteristics at runtime
// using unsafe operations for performance.
package typedetect

import (
	"math"
	"reflect"
	"unsafe"

	"golang.org/x/exp/constraints"
)

// Number represents all int, uint and float types.
type Number interface {
	constraints.Integer | constraints.Float
}

//go:generate stringer -type=FloatClass

// FloatClass is where a number sits among the special IEEE 754 values.
type FloatClass uint8

const (
	Finite FloatClass = 0
	NaN    FloatClass = 1
	PosInf FloatClass = 2
	NegInf FloatClass = 3
)

// IsFloat returns true if T is a floating point type.
func IsFloat[T Number]() bool {
	// Use NaN property: NaN != NaN only for floats
	switch unsafe.Sizeof(T(0)) {
	case 4:
		nanBits := uint32(0x7FC00000) // float32 NaN
		nan := *(*T)(unsafe.Pointer(&nanBits))
		return nan != nan
	case 8:
		nanBits := uint64(0x7FF8000000000000) // float64 NaN
		nan := *(*T)(unsafe.Pointer(&nanBits))
		return nan != nan
	default:
		return false
	}
}

// Class returns the FloatClass of n. Integers are always Finite.
func Class[T Number](n T) FloatClass {
	if !IsFloat[T]() {
		return Finite
	}
	return classOf(float64(n))
}

// ClassOf returns the FloatClass of the value held in rv. Anything that is not
// of a float kind is Finite, which includes pointers to floats.
func ClassOf(rv reflect.Value) FloatClass {
	switch rv.Kind() {
	case reflect.Float32, reflect.Float64:
		return classOf(rv.Float())
	}
	return Finite
}

func classOf(f float64) FloatClass {
	switch {
	case math.IsNaN(f):
		return NaN
	case math.IsInf(f, 1):
		return PosInf
	case math.IsInf(f, -1):
		return NegInf
	}
	return Finite
}
