// Package casing implements the case conversions applied to schema names
// before they are emitted as Rust identifiers.
//
// Each conversion comes in two flavors. The standard flavor uses generic
// word-boundary splitting; the nonstandard flavor uses a splitter that
// reproduces rustc's own rules, which keep acronym runs together ("IDs"
// stays one word instead of splitting into "i_ds"). The two flavors are
// deliberately separate code paths and must not be unified.
package casing

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/iancoleman/strcase"
)

// UpperCamel converts text to UpperCamelCase. Acronym runs are split and
// re-capitalized per word, so "HTTPServer" becomes "HttpServer".
func UpperCamel(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, word := range strings.Split(strcase.ToSnake(text), "_") {
		if word == "" {
			continue
		}
		r, size := utf8.DecodeRuneInString(word)
		b.WriteRune(unicode.ToUpper(r))
		b.WriteString(word[size:])
	}
	return b.String()
}

// Snake converts text to snake_case. When nonstandard is true the
// rustc-compatible splitter is used instead of the generic one.
func Snake(text string, nonstandard bool) string {
	if nonstandard {
		return rustcSnake(text)
	}
	return strcase.ToSnake(text)
}

// ShoutySnake converts text to SHOUTY_SNAKE_CASE. The nonstandard flavor
// is the nonstandard snake conversion upper-cased, not an independent
// algorithm, so the two flavors can disagree on word boundaries for
// acronym-heavy input ("IDs" yields "I_DS" standard but "IDS" nonstandard).
func ShoutySnake(text string, nonstandard bool) string {
	if nonstandard {
		return strings.ToUpper(rustcSnake(text))
	}
	return strcase.ToScreamingSnake(text)
}
