package symbol

import (
	"testing"

	"github.com/jpx40/pilota/internal/keywords"
)

func TestSymbolRenderEscapesEveryKeyword(t *testing.T) {
	for _, kw := range keywords.All() {
		want := "r#" + kw
		if kw == "Self" {
			want = "Self_"
		}
		if got := Symbol(kw).String(); got != want {
			t.Errorf("Symbol(%q).String() = %q, want %q", kw, got, want)
		}
	}
}

func TestSymbolRenderPassthrough(t *testing.T) {
	for _, text := range []string{"", "foo", "UserId", "Type", "Fn", "self_", "my_field", "r#fn"} {
		if got := Symbol(text).String(); got != text {
			t.Errorf("Symbol(%q).String() = %q, want unchanged", text, got)
		}
	}
}

func TestSymbolRenderSelf(t *testing.T) {
	// The special case outranks generic keyword escaping.
	if got := Symbol("Self").String(); got != "Self_" {
		t.Errorf("Symbol(\"Self\").String() = %q, want \"Self_\"", got)
	}
	if got := Symbol("self").String(); got != "r#self" {
		t.Errorf("Symbol(\"self\").String() = %q, want \"r#self\"", got)
	}
}

// Feeding a rendered form back in as raw text is out of contract: it is
// not required to reproduce the original input, and this pins that down.
func TestSymbolRenderNoRoundTrip(t *testing.T) {
	escaped := Symbol("fn").String()
	if escaped != "r#fn" {
		t.Fatalf("Symbol(\"fn\").String() = %q, want \"r#fn\"", escaped)
	}
	if again := Symbol(escaped).String(); again == "fn" {
		t.Errorf("re-rendering %q yielded the original raw text; round-trip is not part of the contract", escaped)
	}
}

func TestSymbolText(t *testing.T) {
	if got := Symbol("fn").Text(); got != "fn" {
		t.Errorf("Text() = %q, want raw text without escaping", got)
	}
}

func TestSymbolAsMapKey(t *testing.T) {
	m := map[Symbol]int{
		Symbol("a"): 1,
		Symbol("b"): 2,
	}
	// Lookup through a plain string conversion, no intermediate type.
	if got := m[Symbol("b")]; got != 2 {
		t.Errorf("m[Symbol(\"b\")] = %d, want 2", got)
	}
}

func TestSymbolOrdering(t *testing.T) {
	if !(Symbol("abc") < Symbol("abd")) {
		t.Error("expected lexicographic ordering on Symbol")
	}
}

func TestIdent(t *testing.T) {
	id := NewIdent(Symbol("type"))
	if got := id.String(); got != "r#type" {
		t.Errorf("Ident.String() = %q, want \"r#type\"", got)
	}
	if got := id.Text(); got != "type" {
		t.Errorf("Ident.Text() = %q, want \"type\"", got)
	}
	if id != IdentFrom("type") {
		t.Error("NewIdent(Symbol(text)) and IdentFrom(text) should be equal")
	}
}

func TestHandles(t *testing.T) {
	files := map[FileID]string{1: "a.thrift", 2: "b.thrift"}
	if files[FileID(2)] != "b.thrift" {
		t.Error("FileID map lookup failed")
	}
	if !(DefID(3) < DefID(7)) {
		t.Error("expected numeric ordering on DefID")
	}
}

func TestEnumReprString(t *testing.T) {
	if got := EnumReprI32.String(); got != "i32" {
		t.Errorf("EnumReprI32.String() = %q, want \"i32\"", got)
	}
	if got := EnumRepr(99).String(); got != "unknown" {
		t.Errorf("EnumRepr(99).String() = %q, want \"unknown\"", got)
	}
}
