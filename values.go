package realtype

// Tagger is implemented by types that name their own real type, much like a
// self-declared type tag. The name is lower cased before it is returned as a
// Tag. An empty name is ignored and classification continues as if the type
// did not implement Tagger.
type Tagger interface {
	RealType() string
}

// UndefinedType is the type of Undefined.
type UndefinedType struct{}

// RealType implements Tagger.
func (UndefinedType) RealType() string {
	return "Undefined"
}

// Undefined stands for a value that is absent, as opposed to nil which is a
// value that is present and null.
var Undefined = UndefinedType{}

// Symbol is a unique value. Symbols compare equal only to copies of themselves,
// two calls to NewSymbol with the same description give different Symbols.
type Symbol struct {
	s *symbol
}

type symbol struct {
	desc string
}

// NewSymbol creates a new unique Symbol with an optional description.
func NewSymbol(desc string) Symbol {
	return Symbol{s: &symbol{desc: desc}}
}

// Description returns the description given to NewSymbol.
func (s Symbol) Description() string {
	if s.s == nil {
		return ""
	}
	return s.s.desc
}

// String implements fmt.Stringer.
func (s Symbol) String() string {
	return "Symbol(" + s.Description() + ")"
}

// RealType implements Tagger.
func (Symbol) RealType() string {
	return "Symbol"
}
