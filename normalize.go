// Package asciify rewrites text to pure ASCII through a curated replacement table.
package asciify

import (
	"github.com/farcloser/asciify/internal/mapping"
	"github.com/farcloser/asciify/internal/rewrite"
	"github.com/farcloser/asciify/internal/scan"
	"github.com/farcloser/asciify/internal/types"
)

/*
Usage:

norm := asciify.Normalize(text, nil)
switch norm.Status() {
case asciify.StatusNoUnicode:
    // nothing to do
case asciify.StatusSuccess:
    os.WriteFile(path, []byte(norm.Text), 0o644)
case asciify.StatusError:
    // a table entry leaked non-ASCII; never persist norm.Text
}

// Custom table layered over the built-in one
table, err := mapping.Default().With(mapping.Entry{Source: '✅', Target: "[DONE]"})
norm := asciify.Normalize(text, table)

// Diagnostics
for _, occ := range norm.Occurrences {
    fmt.Printf("%d:%d %s %s\n", occ.Line, occ.Column, occ.Code, occ.Context)
}

*/

// Lookuper resolves the ASCII replacement of a non-ASCII rune.
type Lookuper = rewrite.Lookuper

// Normalization is the engine output for one text buffer.
type Normalization struct {
	Occurrences  []types.Occurrence
	Text         string
	Replacements []types.Replacement
	Pure         bool
}

// Normalize scans text, rewrites it through table (nil means the built-in table),
// and verifies the rewritten text is pure ASCII. It has no side effects.
func Normalize(text string, table Lookuper) *Normalization {
	if table == nil {
		table = mapping.Default()
	}

	occurrences := scan.Detect(text)
	if len(occurrences) == 0 {
		return &Normalization{
			Occurrences:  occurrences,
			Text:         text,
			Replacements: []types.Replacement{},
			Pure:         true,
		}
	}

	rewritten, replacements := rewrite.Rewrite(text, table)

	return &Normalization{
		Occurrences:  occurrences,
		Text:         rewritten,
		Replacements: replacements,
		Pure:         rewrite.IsASCII(rewritten),
	}
}

// Status maps the normalization to no_unicode, success, or error.
func (n *Normalization) Status() Status {
	switch {
	case len(n.Occurrences) == 0:
		return StatusNoUnicode
	case !n.Pure:
		return StatusError
	default:
		return StatusSuccess
	}
}
