// Package shallow holds the coarse, typeof-style classification of Go values.
package shallow

import (
	"math/big"
	"reflect"
)

//go:generate stringer -type=Type -linecomment

// Type is the coarse native type of a value. Distinct values may share a Type
// even when they are very different, an array and a map are both TObject.
type Type uint8

const (
	TUnknown   Type = 0 // unknown
	TUndefined Type = 1 // undefined
	TObject    Type = 2 // object
	TBoolean   Type = 3 // boolean
	TNumber    Type = 4 // number
	TString    Type = 5 // string
	TFunction  Type = 6 // function
	TSymbol    Type = 7 // symbol
	TBigInt    Type = 8 // bigint
)

// Catalog lets callers tell Of about types that carry their own Type. The
// root package registers its Undefined and Symbol types here.
type Catalog map[reflect.Type]Type

var (
	bigIntType    = reflect.TypeFor[big.Int]()
	bigIntPtrType = reflect.TypeFor[*big.Int]()
)

// Of returns the Type of v. An untyped nil is TObject, the same answer typeof
// gives for null. Pointers are boxes and are always TObject, except *big.Int
// which is the usual way to hold a big integer.
func Of(v any, cat Catalog) Type {
	if v == nil {
		return TObject
	}
	t := reflect.TypeOf(v)
	if st, ok := cat[t]; ok {
		return st
	}
	if t == bigIntType || t == bigIntPtrType {
		return TBigInt
	}

	switch t.Kind() {
	case reflect.Bool:
		return TBoolean
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return TNumber
	case reflect.String:
		return TString
	case reflect.Func:
		return TFunction
	}
	return TObject
}
