// Package keywords tracks the reserved words of the Rust target language.
package keywords

import "slices"

// reserved holds every word the target compiler refuses as a plain
// identifier: strict keywords, words reserved for future use, and the
// contextual async/await/dyn/try group. The list must stay in sync with
// the target language reference; a missing entry produces generated code
// that fails to compile.
var reserved = map[string]struct{}{
	"as":       {},
	"use":      {},
	"break":    {},
	"const":    {},
	"continue": {},
	"crate":    {},
	"else":     {},
	"if":       {},
	"enum":     {},
	"extern":   {},
	"false":    {},
	"fn":       {},
	"for":      {},
	"impl":     {},
	"in":       {},
	"let":      {},
	"loop":     {},
	"match":    {},
	"mod":      {},
	"move":     {},
	"mut":      {},
	"pub":      {},
	"ref":      {},
	"return":   {},
	"Self":     {},
	"self":     {},
	"static":   {},
	"struct":   {},
	"super":    {},
	"trait":    {},
	"true":     {},
	"type":     {},
	"unsafe":   {},
	"where":    {},
	"while":    {},
	"abstract": {},
	"alignof":  {},
	"become":   {},
	"box":      {},
	"do":       {},
	"final":    {},
	"macro":    {},
	"offsetof": {},
	"override": {},
	"priv":     {},
	"proc":     {},
	"pure":     {},
	"sizeof":   {},
	"typeof":   {},
	"unsized":  {},
	"virtual":  {},
	"yield":    {},
	"dyn":      {},
	"async":    {},
	"await":    {},
	"try":      {},
}

// IsReserved reports whether name exactly matches a reserved word.
// Matching is case-sensitive: "fn" is reserved, "Fn" is not.
func IsReserved(name string) bool {
	_, ok := reserved[name]
	return ok
}

// All returns the reserved words in sorted order.
func All() []string {
	words := make([]string, 0, len(reserved))
	for w := range reserved {
		words = append(words, w)
	}
	slices.Sort(words)
	return words
}
