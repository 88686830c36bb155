// Package output provides shared result serialization for console, JSON and JSONL output.
package output

import (
	"github.com/dustin/go-humanize"
	"golang.org/x/text/unicode/runenames"

	"github.com/farcloser/asciify"
	"github.com/farcloser/asciify/internal/types"
)

// ResultToMap converts a file result into the canonical map structure
// used for formatted and JSONL output. Occurrences are only included when verbose.
func ResultToMap(result *asciify.Result, verbose bool) map[string]any {
	meta := map[string]any{
		"status":        result.Status.String(),
		"unicode_count": result.UnicodeCount,
		"size":          humanize.Bytes(uint64(max(result.Size, 0))),
	}

	replacements := make([]any, 0, len(result.Replacements))
	targets := make(map[rune]string, len(result.Replacements))

	for _, replacement := range result.Replacements {
		replacements = append(replacements, ReplacementToMap(replacement))
		targets[replacement.Source] = replacement.Target
	}

	meta["replacements"] = replacements

	if result.Lossy {
		meta["lossy"] = true
	}

	if result.Backup != "" {
		meta["backup"] = result.Backup
	}

	if result.Err != nil {
		meta["error"] = result.Err.Error()
	}

	if verbose {
		occurrences := make([]any, 0, len(result.Occurrences))
		for _, occ := range result.Occurrences {
			occurrences = append(occurrences, OccurrenceToMap(occ, targets[occ.Char]))
		}

		meta["occurrences"] = occurrences
	}

	return meta
}

// ReplacementToMap converts a replacement pair to a map.
func ReplacementToMap(replacement types.Replacement) map[string]any {
	return map[string]any{
		"source": string(replacement.Source),
		"code":   types.CodeLabel(replacement.Source),
		"target": replacement.Target,
	}
}

// OccurrenceToMap converts an occurrence to a map. An empty replacement is omitted.
func OccurrenceToMap(occ types.Occurrence, replacement string) map[string]any {
	meta := map[string]any{
		"line":    occ.Line,
		"column":  occ.Column,
		"char":    string(occ.Char),
		"code":    occ.Code,
		"name":    Name(occ.Char),
		"context": occ.Context,
	}

	if replacement != "" {
		meta["replacement"] = replacement
	}

	return meta
}

// Name returns the Unicode character name, or "<unnamed>" when the database has none.
func Name(r rune) string {
	if name := runenames.Name(r); name != "" {
		return name
	}

	return "<unnamed>"
}
