package casing

import (
	"strings"
	"unicode"
)

// rustcSnake splits text the way rustc's internal to_snake_case helper
// does. A word boundary is inserted only at a lower-to-upper transition;
// consecutive uppercase letters stay in one word, so "IDs" becomes "ids"
// and "HTTPServer" becomes "httpserver". Leading underscores are kept as
// empty words so they survive the final join; interior runs of
// underscores collapse to one.
func rustcSnake(text string) string {
	words := make([]string, 0, 4)

	i := 0
	for i < len(text) && text[i] == '_' {
		words = append(words, "")
		i++
	}

	for _, segment := range strings.Split(text[i:], "_") {
		if segment == "" {
			continue
		}
		var buf strings.Builder
		lastUpper := false
		for _, ch := range segment {
			upper := unicode.IsUpper(ch)
			// A buffer holding a lone apostrophe comes from
			// lifetime-style input and never ends a word.
			if buf.Len() > 0 && buf.String() != "'" && upper && !lastUpper {
				words = append(words, buf.String())
				buf.Reset()
			}
			lastUpper = upper
			buf.WriteString(strings.ToLower(string(ch)))
		}
		words = append(words, buf.String())
	}

	return strings.Join(words, "_")
}
