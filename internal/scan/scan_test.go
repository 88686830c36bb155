package scan_test

import (
	"strings"
	"testing"

	"github.com/farcloser/asciify/internal/scan"
	"github.com/farcloser/asciify/internal/types"
)

func TestDetect(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  []types.Occurrence
	}{
		{
			name:  "empty buffer",
			input: "",
			want:  []types.Occurrence{},
		},
		{
			name:  "pure ascii",
			input: "100% ASCII text",
			want:  []types.Occurrence{},
		},
		{
			name:  "leading check mark",
			input: "✓ Done",
			want: []types.Occurrence{
				{Char: '✓', Line: 1, Column: 1, Code: "U+2713", Context: "✓ Done"},
			},
		},
		{
			name:  "line made only of non-ascii characters",
			input: "ok\n→→→",
			want: []types.Occurrence{
				{Char: '→', Line: 2, Column: 1, Code: "U+2192", Context: "→→→"},
				{Char: '→', Line: 2, Column: 2, Code: "U+2192", Context: "→→→"},
				{Char: '→', Line: 2, Column: 3, Code: "U+2192", Context: "→→→"},
			},
		},
		{
			name:  "final line without trailing newline",
			input: "first\nsecond\n  Write-Host \"☃\"",
			want: []types.Occurrence{
				{Char: '☃', Line: 3, Column: 15, Code: "U+2603", Context: "Write-Host \"☃\""},
			},
		},
		{
			name:  "crlf line endings",
			input: "a\r\nb — c\r\n",
			want: []types.Occurrence{
				{Char: '—', Line: 2, Column: 3, Code: "U+2014", Context: "b — c"},
			},
		},
		{
			name:  "supplementary plane code point",
			input: "🚀",
			want: []types.Occurrence{
				{Char: '🚀', Line: 1, Column: 1, Code: "U+1F680", Context: "🚀"},
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got := scan.Detect(tc.input)
			if len(got) != len(tc.want) {
				t.Fatalf("Detect() returned %d occurrences, want %d: %+v", len(got), len(tc.want), got)
			}

			for i := range got {
				if got[i] != tc.want[i] {
					t.Errorf("occurrence %d = %+v, want %+v", i, got[i], tc.want[i])
				}
			}
		})
	}
}

func TestDetectContextTruncation(t *testing.T) {
	t.Parallel()

	line := "    # " + strings.Repeat("é", 60) + "    "

	got := scan.Detect(line)
	if len(got) != 60 {
		t.Fatalf("Detect() returned %d occurrences, want 60", len(got))
	}

	want := "# " + strings.Repeat("é", scan.ContextWidth-2) + "..."
	if got[0].Context != want {
		t.Errorf("Context = %q, want %q", got[0].Context, want)
	}

	exact := strings.Repeat("x", scan.ContextWidth-1) + "é"
	if got := scan.Detect(exact); got[0].Context != exact {
		t.Errorf("Context of a %d-rune line = %q, want it untruncated", scan.ContextWidth, got[0].Context)
	}
}

func TestOccurrenceCompleteness(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"",
		"plain",
		"✓ Done\n→ next — ok…\n\n📦 «quoted» ½\n",
		"\ufeffWrite-Host 'BOM first'\r\n$x = 5 × 3 ≈ 15",
		"🔥🔥\n🔥",
	}

	for _, input := range inputs {
		occurrences := scan.Detect(input)

		if len(occurrences) != scan.Count(input) {
			t.Errorf("Detect(%q) found %d, Count() = %d", input, len(occurrences), scan.Count(input))
		}

		lines := strings.Split(input, "\n")

		for _, occ := range occurrences {
			runes := []rune(lines[occ.Line-1])
			if got := runes[occ.Column-1]; got != occ.Char {
				t.Errorf("%q: occurrence at %d:%d indexes %q, want %q", input, occ.Line, occ.Column, got, occ.Char)
			}
		}
	}
}
