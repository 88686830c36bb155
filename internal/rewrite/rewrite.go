// Package rewrite substitutes non-ASCII characters using a replacement table.
package rewrite

import (
	"strings"

	"github.com/farcloser/asciify/internal/types"
)

// Lookuper resolves the replacement for a non-ASCII rune.
type Lookuper interface {
	Lookup(r rune) string
}

// LookupFunc adapts a function to Lookuper.
type LookupFunc func(r rune) string

// Lookup calls f(r).
func (f LookupFunc) Lookup(r rune) string {
	return f(r)
}

// Rewrite copies ASCII runes verbatim and replaces every other rune through table.
// Each distinct (source, replacement) pair is recorded once, in first-occurrence order.
// The output is not guaranteed to be ASCII: callers verify it with IsASCII.
func Rewrite(text string, table Lookuper) (string, []types.Replacement) {
	var builder strings.Builder

	builder.Grow(len(text))

	replacements := []types.Replacement{}
	seen := make(map[types.Replacement]struct{})

	for _, char := range text {
		if types.IsASCII(char) {
			builder.WriteRune(char)

			continue
		}

		record := types.Replacement{Source: char, Target: table.Lookup(char)}
		builder.WriteString(record.Target)

		if _, ok := seen[record]; !ok {
			seen[record] = struct{}{}
			replacements = append(replacements, record)
		}
	}

	return builder.String(), replacements
}

// IsASCII reports whether every byte of text is 7-bit.
func IsASCII(text string) bool {
	for i := range len(text) {
		if text[i] > types.MaxASCII {
			return false
		}
	}

	return true
}
