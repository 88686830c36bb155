package output

import (
	"github.com/dustin/go-humanize"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/farcloser/asciify"
)

// Summary aggregates a run. Per-file statistics only cover files that contained Unicode.
type Summary struct {
	Files             int
	WithUnicode       int
	TotalReplacements int
	Failed            int
	Lossy             int
	Bytes             int64
	MeanPerFile       float64
	StdDevPerFile     float64
	MaxPerFile        int
}

// Summarize computes run totals and per-file occurrence statistics.
func Summarize(results []*asciify.Result) Summary {
	summary := Summary{Files: len(results)}

	counts := make([]float64, 0, len(results))

	for _, result := range results {
		summary.Bytes += result.Size

		if result.UnicodeCount > 0 {
			summary.WithUnicode++
			summary.TotalReplacements += result.UnicodeCount
			counts = append(counts, float64(result.UnicodeCount))
		}

		if result.Status.Failed() {
			summary.Failed++
		}

		if result.Lossy {
			summary.Lossy++
		}
	}

	if len(counts) == 0 {
		return summary
	}

	summary.MeanPerFile = stat.Mean(counts, nil)
	summary.MaxPerFile = int(floats.Max(counts))

	// Sample standard deviation is undefined for a single file.
	if len(counts) > 1 {
		summary.StdDevPerFile = stat.StdDev(counts, nil)
	}

	return summary
}

// SummaryToMap converts a summary to a map.
func SummaryToMap(summary Summary) map[string]any {
	meta := map[string]any{
		"files_processed":    summary.Files,
		"files_with_unicode": summary.WithUnicode,
		"total_replacements": summary.TotalReplacements,
		"errors":             summary.Failed,
		"bytes":              humanize.Bytes(uint64(max(summary.Bytes, 0))),
	}

	if summary.WithUnicode > 0 {
		meta["per_file"] = map[string]any{
			"mean":   summary.MeanPerFile,
			"stddev": summary.StdDevPerFile,
			"max":    summary.MaxPerFile,
		}
	}

	if summary.Lossy > 0 {
		meta["lossy_files"] = summary.Lossy
	}

	return meta
}
