package symbol

// FileID identifies one source file within a compilation unit. Values are
// minted by the compiler's index allocator; this package only compares
// them and uses them as map keys.
type FileID uint32

// DefID identifies one definition within a compilation unit. Like FileID,
// values arrive pre-minted and are treated as opaque.
type DefID uint32

// EnumRepr describes the primitive type backing a generated enum's
// discriminant.
type EnumRepr uint8

// EnumReprI32 backs the discriminant with a 32-bit signed integer. It is
// the only representation recognized today.
const EnumReprI32 EnumRepr = iota

// String returns the Rust spelling of the representation.
func (r EnumRepr) String() string {
	if r == EnumReprI32 {
		return "i32"
	}
	return "unknown"
}
