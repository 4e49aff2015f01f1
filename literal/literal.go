// Package literal parses a small script-like literal syntax into Go values
// that realtype can classify. It exists so values that are awkward to build
// in Go, boxed strings or NaN or an async function, can be written as text:
//
//	[1, "two", null], new String("12"), NaN
//	!null, /ab+c/i, async () => {}
//
// Values are separated by commas or newlines. Lines starting with // are
// comments. The Go value each form produces:
//
//	true, false                bool
//	null                       nil
//	undefined                  realtype.Undefined
//	1, -2.5e3, NaN, Infinity   float64
//	10n                        *big.Int
//	"s", 's'                   string
//	[...]                      []any
//	{k: v, "k": v}             map[string]any
//	/src/flags                 *regexp.Regexp
//	!v                         bool, by truthiness of v
//	Symbol("d")                realtype.Symbol
//	new String(v)              *string (also Number, Boolean)
//	new Date(v)                time.Time
//	new Map(), new Set()       map[any]any, map[any]struct{}
//	new WeakMap(), new WeakSet()  *weakref.Map[any, any], *weakref.Set[any]
//	new Error(msg)             error
//	new RegExp(src, flags)     *regexp.Regexp
//	new Promise()              chan any
//	function () {}, () => {}   func()
//	function* () {}            iter.Seq[any]
//	async function () {}       func() <-chan any
package literal

import (
	"context"
	"strings"
)

// Parse parses text and returns the values in the order they appear.
func Parse(ctx context.Context, text string) ([]any, error) {
	if strings.TrimSpace(text) == "" {
		return []any{}, nil
	}
	toks, err := tokenize(ctx, text)
	if err != nil {
		return nil, err
	}
	p := &parser{toks: toks}
	return p.list()
}
