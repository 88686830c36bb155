package types

import "fmt"

// MaxASCII is the highest code point considered ASCII.
const MaxASCII = 127

// Occurrence is one located non-ASCII character instance.
type Occurrence struct {
	Char    rune
	Line    int    // 1-based
	Column  int    // 1-based, counted in runes
	Code    string // U+XXXX
	Context string // trimmed containing line, at most ContextWidth runes plus an ellipsis
}

// Replacement is one distinct (source, replacement) pair observed while rewriting.
type Replacement struct {
	Source rune
	Target string
}

// CodeLabel renders a rune as U+XXXX (uppercase, at least four hex digits).
func CodeLabel(r rune) string {
	return fmt.Sprintf("U+%04X", r)
}

// IsASCII reports whether r is within the 7-bit range.
func IsASCII(r rune) bool {
	return r >= 0 && r <= MaxASCII
}
