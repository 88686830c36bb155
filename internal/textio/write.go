package textio

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"unicode/utf8"

	"golang.org/x/text/transform"
)

var (
	// ErrNonASCII is returned when content handed to the ASCII encoder holds a byte above 0x7F.
	ErrNonASCII = errors.New("content cannot be encoded as ASCII")
	// ErrWriteFailure wraps I/O failures while persisting a file.
	ErrWriteFailure = errors.New("write failure")
)

// asciiEncoder is a transformer passing 7-bit bytes through and rejecting everything else.
type asciiEncoder struct {
	transform.NopResetter

	offset int64
}

// NewASCIIEncoder returns a strict ASCII encoder.
func NewASCIIEncoder() transform.Transformer {
	return &asciiEncoder{}
}

func (e *asciiEncoder) Transform(dst, src []byte, _ bool) (int, int, error) {
	nDst, nSrc := 0, 0

	for nSrc < len(src) {
		if nDst >= len(dst) {
			e.offset += int64(nSrc)

			return nDst, nSrc, transform.ErrShortDst
		}

		if src[nSrc] >= utf8.RuneSelf {
			return nDst, nSrc, fmt.Errorf("%w: byte 0x%02X at offset %d", ErrNonASCII, src[nSrc], e.offset+int64(nSrc))
		}

		dst[nDst] = src[nSrc]
		nDst++
		nSrc++
	}

	e.offset += int64(nSrc)

	return nDst, nSrc, nil
}

// WriteASCII replaces path with text encoded as strict ASCII.
// Content goes to a temporary file in the same directory that is renamed over path only once
// fully encoded and synced: on any failure the original file is left untouched.
// Symlinks are followed: the link stays in place and its target is rewritten.
func WriteASCII(path, text string, perm fs.FileMode) error {
	slog.Debug("textio.WriteASCII", "file", path, "stage", "start")

	target, err := filepath.EvalSymlinks(path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWriteFailure, err)
	}

	if target != path {
		slog.Debug("textio.WriteASCII", "file", path, "target", target, "stage", "resolved")
	}

	tmp, err := os.CreateTemp(filepath.Dir(target), "."+filepath.Base(target)+".tmp-*")
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWriteFailure, err)
	}

	tmpPath := tmp.Name()

	abort := func(cause error) error {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)

		slog.Debug("textio.WriteASCII", "file", path, "stage", "error")

		return cause
	}

	writer := transform.NewWriter(tmp, NewASCIIEncoder())

	if _, err := io.WriteString(writer, text); err != nil {
		return abort(encodeError(err))
	}

	if err := writer.Close(); err != nil {
		return abort(encodeError(err))
	}

	if err := tmp.Sync(); err != nil {
		return abort(fmt.Errorf("%w: %w", ErrWriteFailure, err))
	}

	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)

		return fmt.Errorf("%w: %w", ErrWriteFailure, err)
	}

	if err := os.Chmod(tmpPath, perm); err != nil {
		_ = os.Remove(tmpPath)

		return fmt.Errorf("%w: %w", ErrWriteFailure, err)
	}

	if err := os.Rename(tmpPath, target); err != nil {
		_ = os.Remove(tmpPath)

		return fmt.Errorf("%w: %w", ErrWriteFailure, err)
	}

	slog.Debug("textio.WriteASCII", "file", path, "stage", "done")

	return nil
}

func encodeError(err error) error {
	if errors.Is(err, ErrNonASCII) {
		return err
	}

	return fmt.Errorf("%w: %w", ErrWriteFailure, err)
}
