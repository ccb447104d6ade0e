package samples

import (
	"strings"
	"unicode"
)

// tokenDelimiters defines characters that separate tokens inside field names.
const tokenDelimiters = ".-_:/$"

// Tokenize splits a field name into searchable tokens.
// Lowercases everything, splits on . - _ : / $ and whitespace, keeps the full
// lowercased name as a token too, drops fragments shorter than 2 chars.
func Tokenize(s string) []string {
	lower := strings.ToLower(strings.TrimSpace(s))
	if lower == "" {
		return nil
	}

	parts := strings.FieldsFunc(lower, func(r rune) bool {
		return strings.ContainsRune(tokenDelimiters, r) || unicode.IsSpace(r)
	})

	result := make([]string, 0, len(parts)+1)
	for _, p := range parts {
		if len(p) >= 2 && p != lower {
			result = append(result, p)
		}
	}
	result = append(result, lower)
	return result
}
