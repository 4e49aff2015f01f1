package realtype

import (
	"fmt"
	"math/big"
	"reflect"
	"regexp"
	"strings"
	"time"

	"github.com/bearlytools/realtype/errors"
	"github.com/bearlytools/realtype/internal/shallow"
	"github.com/gostdlib/base/context"
)

// defaultTypes is the catalog of standard library types that have a real type
// of their own. Kind based classification would call all of these "object".
// Review this list when the standard library grows a new value type that
// has a natural tag.
var defaultTypes = []registration{
	{t: reflect.TypeFor[time.Time](), name: "Date"},
	{t: reflect.TypeFor[regexp.Regexp](), name: "RegExp"},
	{t: reflect.TypeFor[big.Int](), name: "BigInt"},
}

// reserved names belong to the numeric special cases and can't be registered.
var reserved = map[string]bool{
	"nan":      true,
	"infinity": true,
}

var shallowCatalog = shallow.Catalog{
	reflect.TypeFor[UndefinedType](): shallow.TUndefined,
	reflect.TypeFor[Symbol]():        shallow.TSymbol,
}

type registration struct {
	t    reflect.Type
	name string
}

type options struct {
	noDefaults bool
	types      []registration
}

// Option is an optional argument to New.
type Option func(options) (options, error)

// WithType registers an exact type with the name of its real type. Values of
// type t, or pointers to t, classify as strings.ToLower(name). Registering the
// same type twice keeps the last name.
func WithType(t reflect.Type, name string) Option {
	return func(o options) (options, error) {
		o.types = append(o.types, registration{t: t, name: name})
		return o, nil
	}
}

// WithoutDefaults starts the Classifier with an empty catalog instead of the
// standard library types (time.Time, regexp.Regexp, big.Int).
func WithoutDefaults() Option {
	return func(o options) (options, error) {
		o.noDefaults = true
		return o, nil
	}
}

// Classifier resolves values to Tags. A Classifier is immutable once built
// and is safe for concurrent use.
type Classifier struct {
	types map[reflect.Type]string
}

// Default is the Classifier used by the package level functions.
var Default = mustNew()

func mustNew() *Classifier {
	c, err := New(context.Background())
	if err != nil {
		panic(err)
	}
	return c
}

// New creates a Classifier.
func New(ctx context.Context, options ...Option) (*Classifier, error) {
	opts := defaultOptions()
	for _, o := range options {
		var err error
		opts, err = o(opts)
		if err != nil {
			return nil, err
		}
	}

	var regs []registration
	if !opts.noDefaults {
		regs = append(regs, defaultTypes...)
	}
	regs = append(regs, opts.types...)

	c := &Classifier{types: make(map[reflect.Type]string, len(regs))}
	for _, r := range regs {
		if err := validate(ctx, r); err != nil {
			return nil, err
		}
		c.types[r.t] = strings.TrimSpace(r.name)
	}
	return c, nil
}

func defaultOptions() options {
	return options{}
}

func validate(ctx context.Context, r registration) error {
	if r.t == nil {
		return errors.E(ctx, errors.CatUser, errors.TypeParameter, errors.New("WithType() called with a nil reflect.Type"))
	}
	name := strings.TrimSpace(r.name)
	if name == "" {
		return errors.E(ctx, errors.CatUser, errors.TypeParameter, fmt.Errorf("WithType(%v) called with an empty name", r.t))
	}
	if reserved[strings.ToLower(name)] {
		return errors.E(ctx, errors.CatUser, errors.TypeRegistry, fmt.Errorf("WithType(%v): name %q is reserved for a numeric special case", r.t, name))
	}
	return nil
}

// Lookup returns the registered name for exactly type t.
func (c *Classifier) Lookup(t reflect.Type) (name string, ok bool) {
	name, ok = c.types[t]
	return name, ok
}
