//nolint:wrapcheck
package main

import (
	"fmt"
	"os"

	"github.com/farcloser/primordium/format"

	"github.com/farcloser/asciify"
	"github.com/farcloser/asciify/internal/output"
	"github.com/farcloser/asciify/internal/types"
)

// previewSample is how many replacement pairs a preview lists per file.
const previewSample = 5

// consoleFormat is the human-oriented format; the others are meant for tooling.
const consoleFormat = "console"

// outputResults prints files with Unicode when previewing or verbose, and failed files always.
// Structured formats also get a trailing summary object, which console users read on stderr.
func outputResults(results []*asciify.Result, formatName string, preview, verbose bool) error {
	formatter, err := format.GetFormatter(formatName)
	if err != nil {
		return err
	}

	data := buildResultData(results, preview, verbose)

	if formatName != consoleFormat {
		data = append(data, buildSummaryData(output.Summarize(results)))
	}

	if len(data) == 0 {
		return nil
	}

	return formatter.PrintAll(data, os.Stdout)
}

func buildResultData(results []*asciify.Result, preview, verbose bool) []*format.Data {
	var data []*format.Data

	for _, result := range results {
		show := result.Status.Failed() || (result.UnicodeCount > 0 && (preview || verbose))
		if !show {
			continue
		}

		var meta map[string]any
		if verbose {
			meta = output.ResultToMap(result, true)
		} else {
			meta = buildFriendlyOutput(result, preview)
		}

		data = append(data, &format.Data{
			Object: result.File,
			Meta:   meta,
		})
	}

	return data
}

func buildSummaryData(summary output.Summary) *format.Data {
	return &format.Data{
		Object: "summary",
		Meta:   output.SummaryToMap(summary),
	}
}

// buildFriendlyOutput creates a short per-file summary.
func buildFriendlyOutput(result *asciify.Result, preview bool) map[string]any {
	meta := map[string]any{
		"status":  result.Status.String(),
		"summary": fmt.Sprintf("Found %d Unicode characters", result.UnicodeCount),
	}

	if result.Err != nil {
		meta["error"] = result.Err.Error()
	}

	if result.Backup != "" {
		meta["backup"] = result.Backup
	}

	if preview && len(result.Replacements) > 0 {
		meta["replacements"] = sampleReplacements(result.Replacements, previewSample)
	}

	return meta
}

// sampleReplacements renders the first limit pairs and a trailer counting the rest.
func sampleReplacements(replacements []types.Replacement, limit int) []any {
	lines := make([]any, 0, min(len(replacements), limit)+1)

	for _, replacement := range replacements[:min(len(replacements), limit)] {
		lines = append(lines, fmt.Sprintf("%s -> %s", string(replacement.Source), replacement.Target))
	}

	if rest := len(replacements) - limit; rest > 0 {
		lines = append(lines, fmt.Sprintf("... and %d more unique replacements", rest))
	}

	return lines
}
