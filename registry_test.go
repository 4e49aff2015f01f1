package realtype_test

import (
	"math"
	"reflect"
	"testing"
	"time"

	"github.com/bearlytools/realtype"
	"github.com/bearlytools/realtype/errors"
	"github.com/gostdlib/base/context"
)

type point struct{ X, Y int }

type celsiusTemp float64

func TestNew(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		desc    string
		options []realtype.Option
		values  []any
		want    []realtype.Tag
		// errType is the Type of the returned errors.Error, TypeUnknown if there is no error.
		errType errors.Type
	}{
		{
			desc:   "Success: defaults",
			values: []any{time.Time{}, point{}},
			want:   []realtype.Tag{"date", "object"},
		},
		{
			desc:    "Success: registered type and its box",
			options: []realtype.Option{realtype.WithType(reflect.TypeFor[point](), "Point")},
			values:  []any{point{}, &point{}, (*point)(nil)},
			want:    []realtype.Tag{"point", "point", "null"},
		},
		{
			desc: "Success: last registration wins",
			options: []realtype.Option{
				realtype.WithType(reflect.TypeFor[point](), "Point"),
				realtype.WithType(reflect.TypeFor[point](), "Vector"),
			},
			values: []any{point{}},
			want:   []realtype.Tag{"vector"},
		},
		{
			desc:    "Success: without defaults",
			options: []realtype.Option{realtype.WithoutDefaults()},
			values:  []any{time.Time{}, realtype.Undefined, realtype.NewSymbol("")},
			want:    []realtype.Tag{"object", "undefined", "symbol"},
		},
		{
			desc:    "Success: NaN wins over a registered float type",
			options: []realtype.Option{realtype.WithType(reflect.TypeFor[celsiusTemp](), "Celsius")},
			values:  []any{celsiusTemp(1), celsiusTemp(math.NaN()), celsiusTemp(math.Inf(-1))},
			want:    []realtype.Tag{"celsius", "NaN", "celsius"},
		},
		{
			desc:    "Error: nil type",
			options: []realtype.Option{realtype.WithType(nil, "Nothing")},
			errType: errors.TypeParameter,
		},
		{
			desc:    "Error: empty name",
			options: []realtype.Option{realtype.WithType(reflect.TypeFor[point](), " ")},
			errType: errors.TypeParameter,
		},
		{
			desc:    "Error: NaN is reserved",
			options: []realtype.Option{realtype.WithType(reflect.TypeFor[point](), "NaN")},
			errType: errors.TypeRegistry,
		},
		{
			desc:    "Error: infinity is reserved in any case",
			options: []realtype.Option{realtype.WithType(reflect.TypeFor[point](), "infinity")},
			errType: errors.TypeRegistry,
		},
	}

	for _, test := range tests {
		c, err := realtype.New(ctx, test.options...)
		switch {
		case err == nil && test.errType != errors.TypeUnknown:
			t.Errorf("TestNew(%s): got err == nil, want err != nil", test.desc)
			continue
		case err != nil && test.errType == errors.TypeUnknown:
			t.Errorf("TestNew(%s): got err == %s, want err == nil", test.desc, err)
			continue
		case err != nil:
			var e errors.Error
			if !errors.As(err, &e) {
				t.Errorf("TestNew(%s): got err of type %T, want errors.Error", test.desc, err)
				continue
			}
			if e.Category != errors.CatUser {
				t.Errorf("TestNew(%s): got category %v, want %v", test.desc, e.Category, errors.CatUser)
			}
			if e.Type != test.errType {
				t.Errorf("TestNew(%s): got type %v, want %v", test.desc, e.Type, test.errType)
			}
			continue
		}

		got := c.ClassifyAll(test.values)
		if len(got) != len(test.want) {
			t.Errorf("TestNew(%s): got %v, want %v", test.desc, got, test.want)
			continue
		}
		for i := range got {
			if got[i] != test.want[i] {
				t.Errorf("TestNew(%s): value %d: got %q, want %q", test.desc, i, got[i], test.want[i])
			}
		}
	}
}

func TestLookup(t *testing.T) {
	name, ok := realtype.Default.Lookup(reflect.TypeFor[time.Time]())
	if !ok || name != "Date" {
		t.Errorf("TestLookup(time.Time): got (%q, %v), want (\"Date\", true)", name, ok)
	}
	if _, ok := realtype.Default.Lookup(reflect.TypeFor[point]()); ok {
		t.Errorf("TestLookup(point): got ok == true, want false")
	}
	// Symbol and Undefined name themselves through RealType, not the catalog.
	if _, ok := realtype.Default.Lookup(reflect.TypeFor[realtype.Symbol]()); ok {
		t.Errorf("TestLookup(Symbol): got ok == true, want false")
	}
}
