package errors

import (
	"testing"

	"github.com/gostdlib/base/context"
)

func TestStrings(t *testing.T) {
	tests := []struct {
		got  string
		want string
	}{
		{CatUser.Category(), "User"},
		{CatUnknown.Category(), "Unknown"},
		{Category(9).Category(), "Category(9)"},
		{TypeParameter.Type(), "Parameter"},
		{TypeRegistry.Type(), "Registry"},
		{Type(99).Type(), "Type(99)"},
	}

	for _, test := range tests {
		if test.got != test.want {
			t.Errorf("TestStrings: got %q, want %q", test.got, test.want)
		}
	}
}

func TestE(t *testing.T) {
	msg := New("bad name")
	var err error = E(context.Background(), CatUser, TypeParameter, msg)
	if err == nil {
		t.Fatalf("TestE: got nil error")
	}
	if !Is(err, msg) {
		t.Errorf("TestE: Is(err, msg) == false, want true")
	}
	var e Error
	if !As(err, &e) {
		t.Fatalf("TestE: As(err, *Error) == false, want true")
	}
	if e.Category != CatUser || e.Type != TypeParameter {
		t.Errorf("TestE: got (%v, %v), want (%v, %v)", e.Category, e.Type, CatUser, TypeParameter)
	}
	if e.Error() != "bad name" {
		t.Errorf("TestE: got message %q, want %q", e.Error(), "bad name")
	}
}
