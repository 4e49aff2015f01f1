// Package realtype classifies Go values by their semantic "real" type.
//
// A value's real type is finer than its shallow type: a slice and a map are
// both ShallowObject, but their Tags are TagArray and TagObject. Two numeric
// markers get their own tags, NaN and positive Infinity, and keep the casing
// they are spelled with. Every other tag is lower case.
//
// Pointers are treated as boxes. A *string has ShallowObject as its shallow
// type but TagString as its tag, the same way a boxed string behaves in
// scripting runtimes.
//
// The package level functions use Default. Use New to build a Classifier
// that knows about your own types.
package realtype

import (
	"github.com/bearlytools/realtype/internal/shallow"
)

// Tag is the semantic type of a value as returned by Classify.
type Tag string

// The tags Classify can produce with the Default catalog. Tags from types
// registered with WithType or reported by a Tagger extend this list.
const (
	TagBoolean           Tag = "boolean"
	TagNumber            Tag = "number"
	TagString            Tag = "string"
	TagArray             Tag = "array"
	TagObject            Tag = "object"
	TagFunction          Tag = "function"
	TagUndefined         Tag = "undefined"
	TagNull              Tag = "null"
	TagNaN               Tag = "NaN"
	TagInfinity          Tag = "Infinity"
	TagDate              Tag = "date"
	TagRegExp            Tag = "regexp"
	TagSet               Tag = "set"
	TagMap               Tag = "map"
	TagWeakMap           Tag = "weakmap"
	TagWeakSet           Tag = "weakset"
	TagAsyncFunction     Tag = "asyncfunction"
	TagPromise           Tag = "promise"
	TagGeneratorFunction Tag = "generatorfunction"
	TagError             Tag = "error"
	TagSymbol            Tag = "symbol"
	TagBigInt            Tag = "bigint"
)

// TypeCount is the number of times a Tag was seen. See CountByType.
type TypeCount struct {
	Tag   Tag
	Count int
}

// ShallowType is the coarse, typeof style type of a value.
type ShallowType = shallow.Type

const (
	ShallowUndefined = shallow.TUndefined
	ShallowObject    = shallow.TObject
	ShallowBoolean   = shallow.TBoolean
	ShallowNumber    = shallow.TNumber
	ShallowString    = shallow.TString
	ShallowFunction  = shallow.TFunction
	ShallowSymbol    = shallow.TSymbol
	ShallowBigInt    = shallow.TBigInt
)
