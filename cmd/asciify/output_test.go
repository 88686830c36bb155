package main

import (
	"errors"
	"fmt"
	"slices"
	"testing"

	"github.com/farcloser/asciify"
	"github.com/farcloser/asciify/internal/output"
	"github.com/farcloser/asciify/internal/types"
)

func TestSampleReplacements(t *testing.T) {
	t.Parallel()

	var replacements []types.Replacement
	for _, r := range "✓✔✗✘⚠⚡ℹ" {
		replacements = append(replacements, types.Replacement{Source: r, Target: "x"})
	}

	got := sampleReplacements(replacements, previewSample)
	want := []any{"✓ -> x", "✔ -> x", "✗ -> x", "✘ -> x", "⚠ -> x", "... and 2 more unique replacements"}

	if !slices.Equal(got, want) {
		t.Errorf("sampleReplacements() = %v, want %v", got, want)
	}

	short := sampleReplacements(replacements[:2], previewSample)
	if len(short) != 2 {
		t.Errorf("short sample = %v, want no trailer", short)
	}
}

func TestBuildFriendlyOutput(t *testing.T) {
	t.Parallel()

	result := &asciify.Result{
		File:         "a.ps1",
		Status:       asciify.StatusWriteError,
		UnicodeCount: 3,
		Replacements: []types.Replacement{{Source: '→', Target: "->"}},
		Err:          errors.New("disk full"),
	}

	meta := buildFriendlyOutput(result, false)
	if meta["summary"] != "Found 3 Unicode characters" || meta["error"] != "disk full" || meta["status"] != "write_error" {
		t.Errorf("unexpected meta: %v", meta)
	}

	if _, ok := meta["replacements"]; ok {
		t.Error("replacement samples are only shown in preview")
	}

	if _, ok := buildFriendlyOutput(result, true)["replacements"]; !ok {
		t.Error("preview should list replacement samples")
	}
}

func TestScanOutcome(t *testing.T) {
	t.Parallel()

	if err := scanOutcome(output.Summary{Files: 2, WithUnicode: 1}, false); err != nil {
		t.Errorf("non-strict scan error = %v", err)
	}

	if err := scanOutcome(output.Summary{Files: 2, WithUnicode: 1}, true); !errors.Is(err, errUnicodeFound) {
		t.Errorf("strict scan error = %v, want %v", err, errUnicodeFound)
	}

	if err := scanOutcome(output.Summary{Files: 2}, true); err != nil {
		t.Errorf("clean strict scan error = %v", err)
	}

	if err := scanOutcome(output.Summary{Files: 2, Failed: 1}, false); !errors.Is(err, errFilesFailed) {
		t.Errorf("failed scan error = %v, want %v", err, errFilesFailed)
	}
}

func TestBuildResultData(t *testing.T) {
	t.Parallel()

	results := []*asciify.Result{
		{File: "clean.ps1", Status: asciify.StatusNoUnicode},
		{File: "fixed.ps1", Status: asciify.StatusSuccess, UnicodeCount: 2},
		{File: "broken.ps1", Status: asciify.StatusReadError, Err: errors.New("denied")},
	}

	objects := func(preview, verbose bool) []string {
		var names []string
		for _, item := range buildResultData(results, preview, verbose) {
			names = append(names, fmt.Sprint(item.Object))
		}

		return names
	}

	if got := objects(false, false); !slices.Equal(got, []string{"broken.ps1"}) {
		t.Errorf("default output = %v, want only failures", got)
	}

	if got := objects(true, false); !slices.Equal(got, []string{"fixed.ps1", "broken.ps1"}) {
		t.Errorf("preview output = %v", got)
	}

	verbose := buildResultData(results, false, true)
	if len(verbose) != 2 || verbose[0].Meta["unicode_count"] != 2 {
		t.Errorf("verbose output = %+v", verbose)
	}
}

func TestBuildSummaryData(t *testing.T) {
	t.Parallel()

	summary := output.Summarize([]*asciify.Result{
		{Status: asciify.StatusSuccess, UnicodeCount: 3},
		{Status: asciify.StatusNoUnicode},
	})

	data := buildSummaryData(summary)
	if data.Object != "summary" {
		t.Errorf("Object = %v", data.Object)
	}

	if data.Meta["files_processed"] != 2 || data.Meta["files_with_unicode"] != 1 || data.Meta["total_replacements"] != 3 {
		t.Errorf("Meta = %v", data.Meta)
	}
}
