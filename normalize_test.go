package asciify_test

import (
	"slices"
	"testing"
	"unicode/utf8"

	"github.com/farcloser/asciify"
	"github.com/farcloser/asciify/internal/mapping"
	"github.com/farcloser/asciify/internal/rewrite"
	"github.com/farcloser/asciify/internal/types"
)

func TestNormalizeScenarios(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		input        string
		status       asciify.Status
		text         string
		occurrences  int
		replacements []types.Replacement
	}{
		{
			name:         "check mark",
			input:        "✓ Done",
			status:       asciify.StatusSuccess,
			text:         "[OK] Done",
			occurrences:  1,
			replacements: []types.Replacement{{Source: '✓', Target: "[OK]"}},
		},
		{
			name:         "empty",
			input:        "",
			status:       asciify.StatusNoUnicode,
			text:         "",
			replacements: []types.Replacement{},
		},
		{
			name:         "ascii only",
			input:        "100% ASCII text",
			status:       asciify.StatusNoUnicode,
			text:         "100% ASCII text",
			replacements: []types.Replacement{},
		},
		{
			name:         "unmapped snowman",
			input:        "Write-Host '☃'",
			status:       asciify.StatusSuccess,
			text:         "Write-Host '[U+2603]'",
			occurrences:  1,
			replacements: []types.Replacement{{Source: '☃', Target: "[U+2603]"}},
		},
		{
			name:         "repeated arrows",
			input:        "→→→",
			status:       asciify.StatusSuccess,
			text:         "->->->",
			occurrences:  3,
			replacements: []types.Replacement{{Source: '→', Target: "->"}},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			norm := asciify.Normalize(tc.input, nil)

			if got := norm.Status(); got != tc.status {
				t.Errorf("Status() = %s, want %s", got, tc.status)
			}

			if norm.Text != tc.text {
				t.Errorf("Text = %q, want %q", norm.Text, tc.text)
			}

			if len(norm.Occurrences) != tc.occurrences {
				t.Errorf("got %d occurrences, want %d", len(norm.Occurrences), tc.occurrences)
			}

			if !slices.Equal(norm.Replacements, tc.replacements) {
				t.Errorf("Replacements = %+v, want %+v", norm.Replacements, tc.replacements)
			}

			if !norm.Pure {
				t.Error("expected pure output")
			}
		})
	}
}

func TestNormalizeOccurrencePosition(t *testing.T) {
	t.Parallel()

	norm := asciify.Normalize("✓ Done", nil)
	if len(norm.Occurrences) != 1 {
		t.Fatalf("got %d occurrences, want 1", len(norm.Occurrences))
	}

	occ := norm.Occurrences[0]
	if occ.Char != '✓' || occ.Line != 1 || occ.Column != 1 || occ.Code != "U+2713" {
		t.Errorf("occurrence = %+v", occ)
	}
}

func TestNormalizePurityViolation(t *testing.T) {
	t.Parallel()

	leaky := rewrite.LookupFunc(func(r rune) string {
		if r == '→' {
			return "⟶"
		}

		return mapping.Fallback(r)
	})

	norm := asciify.Normalize("a → b", leaky)

	if norm.Pure {
		t.Error("expected the purity check to fail")
	}

	if got := norm.Status(); got != asciify.StatusError {
		t.Errorf("Status() = %s, want %s", got, asciify.StatusError)
	}

	if norm.Text == "" {
		t.Error("rewritten text should still be produced")
	}
}

func TestNormalizePurityGuarantee(t *testing.T) {
	t.Parallel()

	var input []rune
	for r := rune(0); r < 0x3000; r += 7 {
		if utf8.ValidRune(r) {
			input = append(input, r)
		}
	}

	norm := asciify.Normalize(string(input), mapping.Default())
	if !norm.Pure || !rewrite.IsASCII(norm.Text) {
		t.Fatal("built-in table produced non-ASCII output")
	}

	again := asciify.Normalize(norm.Text, nil)
	if again.Status() != asciify.StatusNoUnicode || again.Text != norm.Text {
		t.Error("normalizing normalized text should be a no-op")
	}
}

func TestStatusStrings(t *testing.T) {
	t.Parallel()

	for status, want := range map[asciify.Status]string{
		asciify.StatusNoUnicode:  "no_unicode",
		asciify.StatusSuccess:    "success",
		asciify.StatusError:      "error",
		asciify.StatusWriteError: "write_error",
		asciify.StatusReadError:  "read_error",
	} {
		if status.String() != want {
			t.Errorf("String() = %q, want %q", status.String(), want)
		}

		parsed, err := asciify.ParseStatus(want)
		if err != nil || parsed != status {
			t.Errorf("ParseStatus(%q) = %v, %v", want, parsed, err)
		}
	}

	if asciify.StatusSuccess.Failed() || asciify.StatusNoUnicode.Failed() {
		t.Error("success and no_unicode must not count as failures")
	}

	if !asciify.StatusError.Failed() || !asciify.StatusWriteError.Failed() || !asciify.StatusReadError.Failed() {
		t.Error("error statuses must count as failures")
	}
}
