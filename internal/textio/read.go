// Package textio reads script files as text and persists rewritten content as strict ASCII.
package textio

import (
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"unicode/utf8"

	"github.com/farcloser/primordium/fault"
	"golang.org/x/text/encoding/unicode"
)

// Document is a file loaded into memory as text.
type Document struct {
	Text  string
	Size  int64
	Mode  fs.FileMode
	Lossy bool // invalid UTF-8 sequences were replaced by U+FFFD
}

// Read loads path as UTF-8. Invalid sequences do not fail the read: the content is decoded
// again with replacement characters and the document is flagged Lossy.
func Read(path string) (*Document, error) {
	slog.Debug("textio.Read", "file", path, "stage", "start")

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", fault.ErrReadFailure, err)
	}

	if !info.Mode().IsRegular() {
		return nil, fmt.Errorf("%w: %s is not a regular file", fault.ErrReadFailure, path)
	}

	data, err := os.ReadFile(path) //nolint:gosec // CLI tool opens user-specified files
	if err != nil {
		return nil, fmt.Errorf("%w: %w", fault.ErrReadFailure, err)
	}

	doc := &Document{
		Size: int64(len(data)),
		Mode: info.Mode().Perm(),
	}

	if utf8.Valid(data) {
		doc.Text = string(data)

		return doc, nil
	}

	slog.Debug("textio.Read", "file", path, "stage", "lossy decode")

	decoded, err := unicode.UTF8.NewDecoder().Bytes(data)
	if err != nil {
		return nil, fmt.Errorf("%w: decoding %s: %w", fault.ErrReadFailure, path, err)
	}

	doc.Text = string(decoded)
	doc.Lossy = true

	return doc, nil
}
