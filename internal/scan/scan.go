// Package scan locates every non-ASCII character in a text buffer.
package scan

import (
	"strings"
	"unicode/utf8"

	"github.com/farcloser/asciify/internal/types"
)

// ContextWidth is the maximum number of runes of line context kept per occurrence.
const ContextWidth = 50

const ellipsis = "..."

// Detect returns one occurrence per non-ASCII rune, in file order.
// Lines are split on '\n'; lines and columns are 1-based, columns count runes.
func Detect(text string) []types.Occurrence {
	occurrences := []types.Occurrence{}

	lineNum := 0

	for line := range strings.SplitSeq(text, "\n") {
		lineNum++

		var context string

		column := 0

		for _, char := range line {
			column++

			if types.IsASCII(char) {
				continue
			}

			if context == "" {
				context = snippet(line)
			}

			occurrences = append(occurrences, types.Occurrence{
				Char:    char,
				Line:    lineNum,
				Column:  column,
				Code:    types.CodeLabel(char),
				Context: context,
			})
		}
	}

	return occurrences
}

// Count returns the number of non-ASCII runes in text.
func Count(text string) int {
	count := 0

	for _, char := range text {
		if !types.IsASCII(char) {
			count++
		}
	}

	return count
}

func snippet(line string) string {
	trimmed := strings.TrimSpace(line)
	if utf8.RuneCountInString(trimmed) <= ContextWidth {
		return trimmed
	}

	runes := []rune(trimmed)

	return string(runes[:ContextWidth]) + ellipsis
}
