// Package fixer applies normalization to files on disk.
package fixer

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/text/unicode/norm"

	"github.com/farcloser/asciify"
	"github.com/farcloser/asciify/internal/textio"
)

// Options controls how files are rewritten.
type Options struct {
	// Table resolves replacements. Nil means the built-in table.
	Table asciify.Lookuper
	// Preview reports what would change without touching the file.
	Preview bool
	// Backup writes a timestamped copy before overwriting.
	Backup bool
	// Compose applies NFC before replacing, so a base letter and its combining
	// marks become a single replacement. Positions then refer to the composed text.
	Compose bool
	// Now stamps backup names. Nil means time.Now.
	Now func() time.Time
}

// ProgressFunc is called once per finished file. Calls are serialized.
type ProgressFunc func(done, total int, result *asciify.Result)

// ProcessFile normalizes a single file. Every failure is reported through the result status.
func ProcessFile(ctx context.Context, path string, opts Options) *asciify.Result {
	result := &asciify.Result{File: path}

	if err := ctx.Err(); err != nil {
		return fail(result, asciify.StatusError, err)
	}

	slog.Debug("fixer.ProcessFile", "file", path, "stage", "read")

	doc, err := textio.Read(path)
	if err != nil {
		return fail(result, asciify.StatusReadError, err)
	}

	result.Size = doc.Size
	result.Lossy = doc.Lossy

	if doc.Lossy {
		slog.Warn("invalid UTF-8 replaced with U+FFFD", "file", path)
	}

	text := doc.Text
	if opts.Compose {
		text = norm.NFC.String(text)
	}

	normalized := asciify.Normalize(text, opts.Table)

	result.Occurrences = normalized.Occurrences
	result.UnicodeCount = len(normalized.Occurrences)
	result.Replacements = normalized.Replacements
	result.Status = normalized.Status()

	switch result.Status {
	case asciify.StatusNoUnicode:
		slog.Debug("fixer.ProcessFile", "file", path, "stage", "done", "status", result.Status)

		return result
	case asciify.StatusError:
		slog.Error("rewritten text is not pure ASCII, file left untouched", "file", path)

		result.Err = asciify.ErrPurityViolation

		return result
	default:
	}

	if opts.Preview {
		return result
	}

	if opts.Backup {
		now := time.Now
		if opts.Now != nil {
			now = opts.Now
		}

		backup, err := textio.Backup(path, now())
		if err != nil {
			return fail(result, asciify.StatusWriteError, err)
		}

		result.Backup = backup
	}

	slog.Debug("fixer.ProcessFile", "file", path, "stage", "write", "replacements", len(result.Replacements))

	if err := textio.WriteASCII(path, normalized.Text, doc.Mode); err != nil {
		return fail(result, asciify.StatusWriteError, err)
	}

	return result
}

// Run processes files with at most workers concurrent goroutines. Results keep the input order.
// Files not started before ctx is canceled end in StatusError with the context error.
func Run(ctx context.Context, files []string, opts Options, workers int, progress ProgressFunc) []*asciify.Result {
	results := make([]*asciify.Result, len(files))

	var (
		group errgroup.Group
		done  atomic.Int64
		mu    sync.Mutex
	)

	group.SetLimit(max(workers, 1))

	for idx, path := range files {
		group.Go(func() error {
			results[idx] = ProcessFile(ctx, path, opts)

			mu.Lock()
			defer mu.Unlock()

			count := done.Add(1)
			if progress != nil {
				progress(int(count), len(files), results[idx])
			}

			return nil
		})
	}

	_ = group.Wait()

	return results
}

func fail(result *asciify.Result, status asciify.Status, err error) *asciify.Result {
	slog.Debug("fixer.ProcessFile", "file", result.File, "stage", "failed", "status", status, "error", err)

	result.Status = status
	result.Err = fmt.Errorf("%s: %w", result.File, err)

	return result
}
