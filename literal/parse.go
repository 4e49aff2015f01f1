package literal

import (
	"fmt"
	"iter"
	"math"
	"math/big"
	"reflect"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/bearlytools/realtype"
	"github.com/bearlytools/realtype/errors"
	"github.com/bearlytools/realtype/weakref"
)

type parser struct {
	toks []token
	pos  int
}

func (p *parser) eof() bool {
	return p.pos >= len(p.toks)
}

func (p *parser) peek() token {
	if p.eof() {
		return token{kind: tEOF, line: p.lastLine()}
	}
	return p.toks[p.pos]
}

func (p *parser) next() token {
	t := p.peek()
	if !p.eof() {
		p.pos++
	}
	return t
}

func (p *parser) lastLine() int {
	if len(p.toks) == 0 {
		return 0
	}
	return p.toks[len(p.toks)-1].line
}

func (p *parser) isPunct(val string) bool {
	t := p.peek()
	return t.kind == tPunct && t.val == val
}

func (p *parser) expect(val string) error {
	t := p.next()
	if t.kind != tPunct || t.val != val {
		return p.errorf(t, "expected %q, got %s", val, describe(t))
	}
	return nil
}

func (p *parser) errorf(t token, format string, args ...any) error {
	return fmt.Errorf("[Line %d]: %s", t.line, fmt.Sprintf(format, args...))
}

func describe(t token) string {
	switch t.kind {
	case tEOF:
		return "end of input"
	case tString:
		return strconv.Quote(t.val)
	case tRegexp:
		return "/" + t.val + "/" + t.flags
	}
	return fmt.Sprintf("%q", t.val)
}

// list parses the top level: values separated by commas or line breaks.
func (p *parser) list() ([]any, error) {
	vals := []any{}
	for !p.eof() {
		if p.isPunct(",") {
			p.next()
			continue
		}
		v, err := p.value()
		if err != nil {
			return nil, err
		}
		vals = append(vals, v)

		if p.eof() || p.isPunct(",") {
			continue
		}
		if prev := p.toks[p.pos-1]; p.peek().line == prev.line {
			return nil, p.errorf(p.peek(), "expected ',' or a new line, got %s", describe(p.peek()))
		}
	}
	return vals, nil
}

func (p *parser) value() (any, error) {
	t := p.next()
	switch t.kind {
	case tString:
		return t.val, nil
	case tNumber:
		return parseNumber(t)
	case tBigInt:
		b, ok := new(big.Int).SetString(strings.ReplaceAll(t.val, "_", ""), 0)
		if !ok {
			return nil, p.errorf(t, "invalid bigint %sn", t.val)
		}
		return b, nil
	case tRegexp:
		re, err := compileRegexp(t.val, t.flags)
		if err != nil {
			return nil, p.errorf(t, "%s", err)
		}
		return re, nil
	case tPunct:
		return p.punct(t)
	case tIdent:
		return p.ident(t)
	}
	return nil, p.errorf(t, "expected a value, got %s", describe(t))
}

func (p *parser) punct(t token) (any, error) {
	switch t.val {
	case "[":
		return p.array()
	case "{":
		return p.object()
	case "!":
		v, err := p.value()
		if err != nil {
			return nil, err
		}
		return !truthy(v), nil
	case "-":
		n := p.next()
		switch {
		case n.kind == tNumber:
			f, err := parseNumber(n)
			if err != nil {
				return nil, err
			}
			return -f, nil
		case n.kind == tIdent && n.val == "Infinity":
			return math.Inf(-1), nil
		case n.kind == tIdent && n.val == "NaN":
			return math.NaN(), nil
		case n.kind == tBigInt:
			b, ok := new(big.Int).SetString(strings.ReplaceAll(n.val, "_", ""), 0)
			if !ok {
				return nil, p.errorf(n, "invalid bigint %sn", n.val)
			}
			return b.Neg(b), nil
		}
		return nil, p.errorf(n, "expected a number after '-', got %s", describe(n))
	case "(":
		if err := p.arrow(); err != nil {
			return nil, err
		}
		return func() {}, nil
	}
	return nil, p.errorf(t, "unexpected %s", describe(t))
}

func (p *parser) ident(t token) (any, error) {
	switch t.val {
	case "true":
		return true, nil
	case "false":
		return false, nil
	case "null":
		return nil, nil
	case "undefined":
		return realtype.Undefined, nil
	case "NaN":
		return math.NaN(), nil
	case "Infinity":
		return math.Inf(1), nil
	case "Symbol":
		args, err := p.args()
		if err != nil {
			return nil, err
		}
		if len(args) == 0 || args[0] == realtype.Undefined {
			return realtype.NewSymbol(""), nil
		}
		return realtype.NewSymbol(toString(args[0])), nil
	case "new":
		return p.construct()
	case "function":
		gen := false
		if p.isPunct("*") {
			p.next()
			gen = true
		}
		if err := p.functionRest(); err != nil {
			return nil, err
		}
		if gen {
			return iter.Seq[any](func(yield func(any) bool) {}), nil
		}
		return func() {}, nil
	case "async":
		n := p.next()
		switch {
		case n.kind == tIdent && n.val == "function":
			if err := p.functionRest(); err != nil {
				return nil, err
			}
		case n.kind == tPunct && n.val == "(":
			if err := p.arrow(); err != nil {
				return nil, err
			}
		default:
			return nil, p.errorf(n, "expected a function after async, got %s", describe(n))
		}
		return asyncFunc, nil
	}
	return nil, p.errorf(t, "unknown identifier %q", t.val)
}

func asyncFunc() <-chan any {
	ch := make(chan any)
	close(ch)
	return ch
}

// functionRest parses an optional name, an empty parameter list and an empty body.
func (p *parser) functionRest() error {
	if p.peek().kind == tIdent {
		p.next()
	}
	if err := p.expect("("); err != nil {
		return err
	}
	if err := p.expect(")"); err != nil {
		return err
	}
	return p.body()
}

// arrow parses the rest of "() => {}" after the opening parenthesis.
func (p *parser) arrow() error {
	if err := p.expect(")"); err != nil {
		return err
	}
	if err := p.expect("=>"); err != nil {
		return err
	}
	return p.body()
}

func (p *parser) body() error {
	if err := p.expect("{"); err != nil {
		return err
	}
	if !p.isPunct("}") {
		return p.errorf(p.peek(), "function bodies must be empty, got %s", describe(p.peek()))
	}
	p.next()
	return nil
}

func (p *parser) array() (any, error) {
	arr := []any{}
	for {
		if p.isPunct("]") {
			p.next()
			return arr, nil
		}
		if p.eof() {
			return nil, p.errorf(p.peek(), "unterminated array")
		}
		v, err := p.value()
		if err != nil {
			return nil, err
		}
		arr = append(arr, v)

		if p.isPunct(",") {
			p.next()
			continue
		}
		if !p.isPunct("]") {
			return nil, p.errorf(p.peek(), "expected ',' or ']', got %s", describe(p.peek()))
		}
	}
}

func (p *parser) object() (any, error) {
	obj := map[string]any{}
	for {
		if p.isPunct("}") {
			p.next()
			return obj, nil
		}
		k := p.next()
		switch k.kind {
		case tIdent, tString, tNumber:
		case tEOF:
			return nil, p.errorf(k, "unterminated object")
		default:
			return nil, p.errorf(k, "expected an object key, got %s", describe(k))
		}
		if err := p.expect(":"); err != nil {
			return nil, err
		}
		v, err := p.value()
		if err != nil {
			return nil, err
		}
		obj[k.val] = v

		if p.isPunct(",") {
			p.next()
			continue
		}
		if !p.isPunct("}") {
			return nil, p.errorf(p.peek(), "expected ',' or '}', got %s", describe(p.peek()))
		}
	}
}

// args parses a parenthesized argument list.
func (p *parser) args() ([]any, error) {
	if err := p.expect("("); err != nil {
		return nil, err
	}
	var args []any
	for {
		if p.isPunct(")") {
			p.next()
			return args, nil
		}
		if p.eof() {
			return nil, p.errorf(p.peek(), "unterminated argument list")
		}
		v, err := p.value()
		if err != nil {
			return nil, err
		}
		args = append(args, v)

		if p.isPunct(",") {
			p.next()
			continue
		}
		if !p.isPunct(")") {
			return nil, p.errorf(p.peek(), "expected ',' or ')', got %s", describe(p.peek()))
		}
	}
}

// construct handles "new Name(args)".
func (p *parser) construct() (any, error) {
	name := p.next()
	if name.kind != tIdent {
		return nil, p.errorf(name, "expected a constructor name after new, got %s", describe(name))
	}
	var args []any
	if p.isPunct("(") {
		var err error
		if args, err = p.args(); err != nil {
			return nil, err
		}
	}
	arg := func(i int) any {
		if i < len(args) {
			return args[i]
		}
		return realtype.Undefined
	}

	switch name.val {
	case "String":
		s := ""
		if len(args) > 0 {
			s = toString(args[0])
		}
		return &s, nil
	case "Number":
		f := 0.0
		if len(args) > 0 {
			f = toNumber(args[0])
		}
		return &f, nil
	case "Boolean":
		b := truthy(arg(0))
		return &b, nil
	case "Date":
		return newDate(p, name, args)
	case "Object":
		return map[string]any{}, nil
	case "Array":
		return append([]any{}, args...), nil
	case "Map":
		return newMap(p, name, arg(0))
	case "Set":
		return newSet(p, name, arg(0))
	case "WeakMap":
		return weakref.NewMap[any, any](), nil
	case "WeakSet":
		return weakref.NewSet[any](), nil
	case "Error":
		msg := ""
		if a := arg(0); a != realtype.Undefined {
			msg = toString(a)
		}
		return errors.New(msg), nil
	case "RegExp":
		flags := ""
		if a := arg(1); a != realtype.Undefined {
			flags = toString(a)
		}
		if re, ok := arg(0).(*regexp.Regexp); ok {
			return re, nil
		}
		re, err := compileRegexp(toString(arg(0)), flags)
		if err != nil {
			return nil, p.errorf(name, "%s", err)
		}
		return re, nil
	case "Promise":
		return make(chan any), nil
	case "Function":
		return func() {}, nil
	}
	return nil, p.errorf(name, "unknown constructor %q", name.val)
}

// maxDateMillis is the largest distance from the epoch a Date can hold.
const maxDateMillis = 8.64e15

func newDate(p *parser, name token, args []any) (any, error) {
	if len(args) == 0 {
		return time.Now(), nil
	}
	switch a := args[0].(type) {
	case float64:
		if math.IsNaN(a) || math.Abs(a) > maxDateMillis {
			return nil, p.errorf(name, "invalid date %v", a)
		}
		return time.UnixMilli(int64(a)).UTC(), nil
	case string:
		t, err := time.Parse(time.RFC3339, a)
		if err != nil {
			return nil, p.errorf(name, "invalid date %q: %s", a, err)
		}
		return t, nil
	}
	return nil, p.errorf(name, "Date wants a number or an RFC 3339 string, got %T", args[0])
}

func newMap(p *parser, name token, init any) (any, error) {
	m := map[any]any{}
	if init == realtype.Undefined || init == nil {
		return m, nil
	}
	entries, ok := init.([]any)
	if !ok {
		return nil, p.errorf(name, "Map wants an array of [key, value] entries, got %T", init)
	}
	for _, e := range entries {
		kv, ok := e.([]any)
		if !ok || len(kv) != 2 {
			return nil, p.errorf(name, "Map entries must be [key, value] pairs")
		}
		if !hashable(kv[0]) {
			return nil, p.errorf(name, "Map key of type %T can't be used as a key", kv[0])
		}
		m[kv[0]] = kv[1]
	}
	return m, nil
}

func newSet(p *parser, name token, init any) (any, error) {
	s := map[any]struct{}{}
	if init == realtype.Undefined || init == nil {
		return s, nil
	}
	items, ok := init.([]any)
	if !ok {
		return nil, p.errorf(name, "Set wants an array, got %T", init)
	}
	for _, item := range items {
		if !hashable(item) {
			return nil, p.errorf(name, "Set member of type %T can't be used as a key", item)
		}
		s[item] = struct{}{}
	}
	return s, nil
}

func hashable(v any) bool {
	if v == nil {
		return true
	}
	return reflect.TypeOf(v).Comparable()
}

func parseNumber(t token) (float64, error) {
	s := strings.ReplaceAll(t.val, "_", "")
	if len(s) > 1 && s[0] == '0' && strings.ContainsAny(s[1:2], "xXoObB") {
		n, err := strconv.ParseUint(s, 0, 64)
		if err != nil {
			return 0, fmt.Errorf("[Line %d]: invalid number %q", t.line, t.val)
		}
		return float64(n), nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		// Too large to hold overflows to Infinity.
		if errors.Is(err, strconv.ErrRange) {
			return f, nil
		}
		return 0, fmt.Errorf("[Line %d]: invalid number %q", t.line, t.val)
	}
	return f, nil
}

func compileRegexp(src, flags string) (*regexp.Regexp, error) {
	var inline strings.Builder
	for _, f := range flags {
		switch f {
		case 'i', 'm', 's':
			inline.WriteRune(f)
		case 'g', 'y', 'u', 'd', 'v':
			// No Go equivalent, they change how a match is run, not what matches.
		default:
			return nil, fmt.Errorf("invalid regular expression flag %q", f)
		}
	}
	if inline.Len() > 0 {
		src = "(?" + inline.String() + ")" + src
	}
	re, err := regexp.Compile(src)
	if err != nil {
		return nil, fmt.Errorf("invalid regular expression: %w", err)
	}
	return re, nil
}

// truthy reports if v counts as true in a boolean context. The falsy values
// are false, 0, NaN, "", null, undefined and 0n.
func truthy(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case bool:
		return x
	case float64:
		return x != 0 && !math.IsNaN(x)
	case string:
		return x != ""
	case realtype.UndefinedType:
		return false
	case *big.Int:
		return x.Sign() != 0
	}
	return true
}

func toString(v any) string {
	switch x := v.(type) {
	case nil:
		return "null"
	case string:
		return x
	case bool:
		return strconv.FormatBool(x)
	case float64:
		switch {
		case math.IsNaN(x):
			return "NaN"
		case math.IsInf(x, 1):
			return "Infinity"
		case math.IsInf(x, -1):
			return "-Infinity"
		}
		return strconv.FormatFloat(x, 'g', -1, 64)
	case realtype.UndefinedType:
		return "undefined"
	case *string:
		return *x
	}
	return fmt.Sprint(v)
}

func toNumber(v any) float64 {
	switch x := v.(type) {
	case nil:
		return 0
	case float64:
		return x
	case bool:
		if x {
			return 1
		}
		return 0
	case string:
		s := strings.TrimSpace(x)
		if s == "" {
			return 0
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return math.NaN()
		}
		return f
	case *float64:
		return *x
	}
	return math.NaN()
}
