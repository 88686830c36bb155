//nolint:tagliatelle
package report

import (
	"compress/gzip"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/farcloser/asciify"
	"github.com/farcloser/asciify/internal/output"
)

const redacted = "<redacted>"

// ErrWriteFailure is returned when the report cannot be written.
var ErrWriteFailure = errors.New("report write failure")

// Record is a single line in the JSONL report file.
type Record struct {
	File   string         `json:"file,omitempty"`
	Result map[string]any `json:"result,omitempty"`
	Error  string         `json:"error,omitempty"`
}

// Options controls report output.
type Options struct {
	// Redact strips file paths from records.
	Redact bool
	// Compress writes a gzip copy next to the report as <path>.gz.
	Compress bool
	// Verbose includes every occurrence in each record.
	Verbose bool
}

// NewRecord builds the report line for one result.
func NewRecord(result *asciify.Result, opts Options) Record {
	record := Record{
		File:   result.File,
		Result: output.ResultToMap(result, opts.Verbose),
	}

	if result.Err != nil {
		record.Error = result.Err.Error()
		delete(record.Result, "error")
	}

	if opts.Redact {
		if result.File != "" {
			record.Error = strings.ReplaceAll(record.Error, result.File, redacted)
		}

		record.File = ""
		delete(record.Result, "backup")
	}

	return record
}

// Write stores one JSONL record per result, in result order.
func Write(path string, results []*asciify.Result, opts Options) error {
	out, err := os.Create(path) //nolint:gosec // user-specified report path
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWriteFailure, err)
	}
	defer out.Close()

	enc := json.NewEncoder(out)
	enc.SetEscapeHTML(false)

	for _, result := range results {
		record := NewRecord(result, opts)
		if err := enc.Encode(&record); err != nil {
			return fmt.Errorf("%w: %w", ErrWriteFailure, err)
		}
	}

	if err := out.Close(); err != nil {
		return fmt.Errorf("%w: %w", ErrWriteFailure, err)
	}

	slog.Debug("report.Write", "file", path, "records", len(results))

	if !opts.Compress {
		return nil
	}

	if err := compressFile(path); err != nil {
		return fmt.Errorf("%w: compressing: %w", ErrWriteFailure, err)
	}

	return nil
}

func compressFile(path string) error {
	data, err := os.ReadFile(path) //nolint:gosec // reading our own output file
	if err != nil {
		return err
	}

	gzFile, err := os.Create(path + ".gz")
	if err != nil {
		return err
	}
	defer gzFile.Close()

	gzWriter := gzip.NewWriter(gzFile)

	if _, err := gzWriter.Write(data); err != nil {
		return err
	}

	if err := gzWriter.Close(); err != nil {
		return err
	}

	return gzFile.Close()
}
