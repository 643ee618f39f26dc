package symbol

import "github.com/jpx40/pilota/internal/keywords"

// Symbol is an immutable piece of identifier text. Equality, ordering and
// map-key behavior all follow the underlying string, so a Symbol can be
// used directly as a lookup key without allocating.
type Symbol string

// Text returns the raw text without any keyword escaping.
func (s Symbol) Text() string { return string(s) }

// String renders the symbol as Rust source text. The literal "Self" maps
// to "Self_" since Self cannot be raw-escaped; any other reserved word
// gets the r# raw-identifier prefix; everything else passes through
// unchanged. Escaped output fed back in as a new Symbol is not guaranteed
// to round-trip.
func (s Symbol) String() string {
	if s == "Self" {
		return "Self_"
	}
	if keywords.IsReserved(string(s)) {
		return "r#" + string(s)
	}
	return string(s)
}

// Ident is a Symbol used in identifier position in the IR. It is
// comparable and inherits the Symbol's ordering and rendering.
type Ident struct {
	Sym Symbol
}

// NewIdent wraps sym as an identifier.
func NewIdent(sym Symbol) Ident { return Ident{Sym: sym} }

// IdentFrom builds an identifier directly from raw text.
func IdentFrom(text string) Ident { return Ident{Sym: Symbol(text)} }

// Text returns the raw text without any keyword escaping.
func (i Ident) Text() string { return i.Sym.Text() }

// String renders the identifier as Rust source text.
func (i Ident) String() string { return i.Sym.String() }
