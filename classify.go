package realtype

import (
	"reflect"
	"strings"

	"github.com/bearlytools/realtype/internal/typedetect"
)

// maxDeref bounds how many pointers we follow. Recursive pointer types such as
// "type P *P" can form cycles.
const maxDeref = 64

var errorType = reflect.TypeFor[error]()

// Classify returns the real type of v using Default.
func Classify(v any) Tag {
	return Default.Classify(v)
}

// Classify returns the real type of v. It never panics.
//
// Resolution is a priority chain:
//  1. A float holding NaN is TagNaN.
//  2. A float holding positive infinity is TagInfinity. Negative infinity
//     is not special and falls through to TagNumber.
//  3. Anything else is probed for the name of its type, which is lower cased.
func (c *Classifier) Classify(v any) Tag {
	switch x := v.(type) {
	case nil:
		return TagNull
	case float64:
		if t, ok := special(x); ok {
			return t
		}
	case float32:
		if t, ok := special(x); ok {
			return t
		}
	}

	rv := reflect.ValueOf(v)
	switch typedetect.ClassOf(rv) {
	case typedetect.NaN:
		return TagNaN
	case typedetect.PosInf:
		return TagInfinity
	}
	return Tag(strings.ToLower(c.probe(rv, 0)))
}

// special handles the numeric special cases for the common float types
// without going through reflection.
func special[F float32 | float64](f F) (Tag, bool) {
	switch typedetect.Class(f) {
	case typedetect.NaN:
		return TagNaN, true
	case typedetect.PosInf:
		return TagInfinity, true
	}
	return "", false
}

// probe returns the name of rv's type. Names come back in their display case
// ("RegExp") and are lower cased by Classify.
func (c *Classifier) probe(rv reflect.Value, depth int) string {
	switch rv.Kind() {
	case reflect.Pointer:
		if rv.IsNil() {
			return "Null"
		}
	case reflect.Interface:
		// Only reachable through a pointer to an interface.
		if rv.IsNil() {
			return "Null"
		}
		return c.probe(rv.Elem(), depth)
	}

	if rv.CanInterface() {
		if name := tagOf(rv.Interface()); name != "" {
			return name
		}
	}
	if name, ok := c.types[rv.Type()]; ok {
		return name
	}
	if rv.Type().Implements(errorType) {
		return "Error"
	}

	if rv.Kind() == reflect.Pointer {
		if depth >= maxDeref {
			return "Object"
		}
		return c.probe(rv.Elem(), depth+1)
	}
	return kindName(rv.Type())
}

// tagOf asks a Tagger for its name. A Tagger that panics is treated as if it
// returned an empty name.
func tagOf(v any) (name string) {
	t, ok := v.(Tagger)
	if !ok {
		return ""
	}
	defer func() {
		if r := recover(); r != nil {
			name = ""
		}
	}()
	return strings.TrimSpace(t.RealType())
}

// kindName maps a type with no registered name to the name of its real type
// by looking at its kind and shape.
func kindName(t reflect.Type) string {
	switch t.Kind() {
	case reflect.Bool:
		return "Boolean"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return "Number"
	case reflect.String:
		return "String"
	case reflect.Slice, reflect.Array:
		return "Array"
	case reflect.Map:
		switch {
		case isEmptyStruct(t.Elem()):
			return "Set"
		case t.Key().Kind() == reflect.String:
			return "Object"
		}
		return "Map"
	case reflect.Struct:
		return "Object"
	case reflect.Chan:
		return "Promise"
	case reflect.Func:
		switch {
		case isGenerator(t):
			return "GeneratorFunction"
		case isAsync(t):
			return "AsyncFunction"
		}
		return "Function"
	}
	return t.Kind().String()
}

func isEmptyStruct(t reflect.Type) bool {
	return t.Kind() == reflect.Struct && t.NumField() == 0
}

// isGenerator reports if t has the shape of an iterator: func(yield func(...) bool).
func isGenerator(t reflect.Type) bool {
	if t.NumIn() != 1 || t.NumOut() != 0 || t.IsVariadic() {
		return false
	}
	y := t.In(0)
	return y.Kind() == reflect.Func && y.NumOut() == 1 && y.Out(0).Kind() == reflect.Bool
}

// isAsync reports if t hands its result back on a channel the caller can receive from.
func isAsync(t reflect.Type) bool {
	if t.NumOut() == 0 {
		return false
	}
	out := t.Out(t.NumOut() - 1)
	return out.Kind() == reflect.Chan && out.ChanDir()&reflect.RecvDir != 0
}
