package asciify

import (
	"errors"
	"fmt"

	"github.com/farcloser/asciify/internal/types"
)

// ErrPurityViolation means rewritten text still holds non-ASCII characters,
// which points at a table entry breaking ASCII closure.
var ErrPurityViolation = errors.New("rewritten text is not pure ASCII")

// Status is the outcome of processing one file.
type Status int

const (
	StatusNoUnicode Status = iota
	StatusSuccess
	StatusError
	StatusWriteError
	StatusReadError
)

func (s Status) String() string {
	switch s {
	case StatusNoUnicode:
		return "no_unicode"
	case StatusSuccess:
		return "success"
	case StatusError:
		return "error"
	case StatusWriteError:
		return "write_error"
	case StatusReadError:
		return "read_error"
	}

	return "unknown"
}

// Failed reports whether the status counts against the exit code.
func (s Status) Failed() bool {
	return s == StatusError || s == StatusWriteError || s == StatusReadError
}

// ParseStatus resolves the string form of a status.
func ParseStatus(name string) (Status, error) {
	for status := StatusNoUnicode; status <= StatusReadError; status++ {
		if status.String() == name {
			return status, nil
		}
	}

	return 0, fmt.Errorf("unknown status %q", name)
}

// Result is the per-file processing outcome.
type Result struct {
	File         string
	Status       Status
	UnicodeCount int
	Replacements []types.Replacement
	Occurrences  []types.Occurrence
	Size         int64  // input size in bytes
	Lossy        bool   // input was not valid UTF-8 and was decoded with replacement characters
	Backup       string // backup path, when one was written
	Err          error  // cause of a failed status
}
