// Package report writes JSONL run reports and digests them back into aggregate views.
package report

import (
	"bufio"
	"cmp"
	"encoding/json"
	"fmt"
	"os"
	"slices"

	"github.com/farcloser/primordium/fault"

	"github.com/farcloser/asciify"
)

// Digest aggregates a report.
type Digest struct {
	Records     int
	Unparseable int
	Failed      int
	Statuses    map[string]int
	Occurrences int
	Codes       []CodeCount
}

// CodeCount is the number of files in which a code point was replaced.
type CodeCount struct {
	Code   string
	Source string
	Target string
	Files  int
}

// digestRecord holds the typed fields needed by the digest.
type digestRecord struct {
	File   string        `json:"file,omitempty"`
	Result *digestResult `json:"result,omitempty"`
	Error  string        `json:"error,omitempty"`
}

//nolint:tagliatelle
type digestResult struct {
	Status       string              `json:"status"`
	UnicodeCount int                 `json:"unicode_count"`
	Replacements []digestReplacement `json:"replacements"`
}

type digestReplacement struct {
	Source string `json:"source"`
	Code   string `json:"code"`
	Target string `json:"target"`
}

// ReadDigest reads a JSONL report and aggregates it. Lines that do not parse, or carry an
// unknown status, are counted as unparseable rather than failing the read.
func ReadDigest(path string) (*Digest, error) {
	file, err := os.Open(path) //nolint:gosec // CLI tool opens user-specified report files
	if err != nil {
		return nil, fmt.Errorf("%w: %w", fault.ErrReadFailure, err)
	}
	defer file.Close()

	digest := &Digest{Statuses: map[string]int{}}
	codes := map[string]*CodeCount{}

	scanner := bufio.NewScanner(file)

	const maxLineSize = 4 * 1024 * 1024
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	for scanner.Scan() {
		if len(scanner.Bytes()) == 0 {
			continue
		}

		digest.Records++

		var rec digestRecord
		if err := json.Unmarshal(scanner.Bytes(), &rec); err != nil || rec.Result == nil {
			digest.Unparseable++

			continue
		}

		status, err := asciify.ParseStatus(rec.Result.Status)
		if err != nil {
			digest.Unparseable++

			continue
		}

		digest.Statuses[status.String()]++
		digest.Occurrences += rec.Result.UnicodeCount

		if rec.Error != "" {
			digest.Failed++
		}

		for _, replacement := range rec.Result.Replacements {
			entry, ok := codes[replacement.Code]
			if !ok {
				entry = &CodeCount{Code: replacement.Code, Source: replacement.Source, Target: replacement.Target}
				codes[replacement.Code] = entry
			}

			entry.Files++
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", fault.ErrReadFailure, err)
	}

	for _, entry := range codes {
		digest.Codes = append(digest.Codes, *entry)
	}

	slices.SortFunc(digest.Codes, func(a, b CodeCount) int {
		if c := cmp.Compare(b.Files, a.Files); c != 0 {
			return c
		}

		return cmp.Compare(a.Code, b.Code)
	})

	return digest, nil
}
