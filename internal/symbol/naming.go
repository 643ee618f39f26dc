package symbol

import "github.com/jpx40/pilota/internal/casing"

// IdentName is the role-based naming capability: one method per
// grammatical position an identifier can occupy in generated code. Type
// names use UpperCamelCase; module, function and field names use
// snake_case; constants use SHOUTY_SNAKE_CASE. Roles in the snake family
// take a nonstandard flag selecting the rustc-compatible word splitter.
//
// All methods are pure and total: any valid UTF-8 input, including the
// empty string, produces a result without error.
type IdentName interface {
	StructIdent() string
	EnumIdent() string
	TraitIdent() string
	NewtypeIdent() string
	VariantIdent() string
	ModIdent(nonstandard bool) string
	FnIdent(nonstandard bool) string
	FieldIdent(nonstandard bool) string
	ConstIdent(nonstandard bool) string
}

// Name adapts a plain string to the IdentName capability. Any string-like
// value converts to it, Symbol included.
type Name string

var _ IdentName = Name("")

func (n Name) StructIdent() string  { return casing.UpperCamel(string(n)) }
func (n Name) EnumIdent() string    { return casing.UpperCamel(string(n)) }
func (n Name) TraitIdent() string   { return casing.UpperCamel(string(n)) }
func (n Name) NewtypeIdent() string { return casing.UpperCamel(string(n)) }
func (n Name) VariantIdent() string { return casing.UpperCamel(string(n)) }

func (n Name) ModIdent(nonstandard bool) string { return casing.Snake(string(n), nonstandard) }
func (n Name) FnIdent(nonstandard bool) string  { return casing.Snake(string(n), nonstandard) }

func (n Name) FieldIdent(nonstandard bool) string { return casing.Snake(string(n), nonstandard) }

func (n Name) ConstIdent(nonstandard bool) string {
	return casing.ShoutySnake(string(n), nonstandard)
}

// Role identifies the grammatical position an identifier occupies in
// generated code.
type Role uint8

const (
	RoleStruct Role = iota
	RoleEnum
	RoleTrait
	RoleNewtype
	RoleVariant
	RoleMod
	RoleFn
	RoleField
	RoleConst
)

// Convert renders text in the naming convention for role. The nonstandard
// flag only affects the snake-case family of roles. The role mapping is
// fixed at compile time, so dispatch is a plain switch. An unrecognized
// role returns the text unchanged.
func Convert(text string, role Role, nonstandard bool) string {
	n := Name(text)
	switch role {
	case RoleStruct:
		return n.StructIdent()
	case RoleEnum:
		return n.EnumIdent()
	case RoleTrait:
		return n.TraitIdent()
	case RoleNewtype:
		return n.NewtypeIdent()
	case RoleVariant:
		return n.VariantIdent()
	case RoleMod:
		return n.ModIdent(nonstandard)
	case RoleFn:
		return n.FnIdent(nonstandard)
	case RoleField:
		return n.FieldIdent(nonstandard)
	case RoleConst:
		return n.ConstIdent(nonstandard)
	}
	return text
}
