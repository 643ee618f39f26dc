// Package symbol defines the name value types shared across the compiler
// IR and the role-based conventions used to render them as Rust source.
//
// A Symbol is an immutable piece of identifier text; an Ident is a Symbol
// standing in identifier position in a document. Rendering either one to
// source text escapes collisions with reserved words, so the emission
// engine never has to think about keywords:
//
//	symbol.Symbol("type").String()   // "r#type"
//	symbol.Symbol("Self").String()   // "Self_"
//	symbol.Name("UserIDs").FieldIdent(true) // "user_ids"
package symbol
