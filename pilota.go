// Package pilota exposes the identifier normalization layer of the
// code generator: symbol and identifier value types with keyword-safe
// rendering, role-based naming conventions, and the emission options that
// drive them.
package pilota

import (
	"github.com/jpx40/pilota/internal/config"
	"github.com/jpx40/pilota/internal/symbol"
)

// Core value types and the naming capability.
type (
	Symbol    = symbol.Symbol
	Ident     = symbol.Ident
	Name      = symbol.Name
	IdentName = symbol.IdentName
	Role      = symbol.Role
	EnumRepr  = symbol.EnumRepr
	FileID    = symbol.FileID
	DefID     = symbol.DefID
	Config    = config.Config
)

// Identifier roles accepted by Convert.
const (
	RoleStruct  = symbol.RoleStruct
	RoleEnum    = symbol.RoleEnum
	RoleTrait   = symbol.RoleTrait
	RoleNewtype = symbol.RoleNewtype
	RoleVariant = symbol.RoleVariant
	RoleMod     = symbol.RoleMod
	RoleFn      = symbol.RoleFn
	RoleField   = symbol.RoleField
	RoleConst   = symbol.RoleConst
)

// EnumReprI32 backs enum discriminants with a 32-bit signed integer.
const EnumReprI32 = symbol.EnumReprI32

// ErrUnsupportedFormat reports an unrecognized config file extension.
var ErrUnsupportedFormat = config.ErrUnsupportedFormat

// NewIdent wraps sym as an identifier.
func NewIdent(sym Symbol) Ident { return symbol.NewIdent(sym) }

// IdentFrom builds an identifier directly from raw text.
func IdentFrom(text string) Ident { return symbol.IdentFrom(text) }

// Convert renders text in the naming convention for role.
func Convert(text string, role Role, nonstandard bool) string {
	return symbol.Convert(text, role, nonstandard)
}

// LoadConfig reads and validates an emission options file.
func LoadConfig(path string) (*Config, error) { return config.Load(path) }

// DefaultConfig returns the options used when no config file is present.
func DefaultConfig() *Config { return config.Default() }
