// Package mapping holds the symbol-to-ASCII replacement table.
package mapping

import (
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/farcloser/asciify/internal/types"
)

var (
	ErrInvalidEntry   = errors.New("invalid mapping entry")
	ErrDuplicateEntry = errors.New("duplicate mapping entry")
)

// Entry maps one non-ASCII rune to its ASCII replacement.
type Entry struct {
	Source   rune
	Target   string
	Category Category
}

// Table is an immutable rune to replacement association. The zero value is an empty table.
type Table struct {
	entries map[rune]Entry
}

// Default returns the built-in table. It is built once and shared read-only.
//
//nolint:gochecknoglobals // process-wide immutable configuration
var Default = sync.OnceValue(func() *Table {
	table, err := New(builtinEntries()...)
	if err != nil {
		panic(fmt.Sprintf("built-in mapping table: %v", err))
	}

	return table
})

// New builds a table, rejecting entries that would break ASCII closure.
func New(entries ...Entry) (*Table, error) {
	table := &Table{entries: make(map[rune]Entry, len(entries))}

	for _, entry := range entries {
		if err := Validate(entry); err != nil {
			return nil, err
		}

		if _, ok := table.entries[entry.Source]; ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateEntry, types.CodeLabel(entry.Source))
		}

		table.entries[entry.Source] = entry
	}

	return table, nil
}

// With returns a new table where the given entries are added to, or override, those of t.
// t itself is left untouched.
func (t *Table) With(entries ...Entry) (*Table, error) {
	merged := &Table{entries: make(map[rune]Entry, t.Len()+len(entries))}

	if t != nil {
		for source, entry := range t.entries {
			merged.entries[source] = entry
		}
	}

	for _, entry := range entries {
		if err := Validate(entry); err != nil {
			return nil, err
		}

		if entry.Category == "" {
			entry.Category = CategoryCustom
		}

		merged.entries[entry.Source] = entry
	}

	return merged, nil
}

// Validate checks that an entry maps a non-ASCII rune to a non-empty ASCII string.
func Validate(entry Entry) error {
	if types.IsASCII(entry.Source) {
		return fmt.Errorf("%w: source %q is already ASCII", ErrInvalidEntry, entry.Source)
	}

	if entry.Target == "" {
		return fmt.Errorf("%w: %s has an empty replacement", ErrInvalidEntry, types.CodeLabel(entry.Source))
	}

	for i := range len(entry.Target) {
		if entry.Target[i] > types.MaxASCII {
			return fmt.Errorf("%w: %s replacement %q is not ASCII",
				ErrInvalidEntry, types.CodeLabel(entry.Source), entry.Target)
		}
	}

	return nil
}

// Lookup returns the replacement for r, or the [U+XXXX] fallback when r has no entry.
// ASCII runes map to themselves.
func (t *Table) Lookup(r rune) string {
	if types.IsASCII(r) {
		return string(r)
	}

	if target, ok := t.Get(r); ok {
		return target
	}

	return Fallback(r)
}

// Get returns the curated replacement for r, if any.
func (t *Table) Get(r rune) (string, bool) {
	if t == nil {
		return "", false
	}

	entry, ok := t.entries[r]

	return entry.Target, ok
}

// Len returns the number of curated entries.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}

	return len(t.entries)
}

// Entries returns all entries ordered by category display order, then code point.
func (t *Table) Entries() []Entry {
	if t == nil {
		return nil
	}

	entries := make([]Entry, 0, len(t.entries))
	for _, entry := range t.entries {
		entries = append(entries, entry)
	}

	slices.SortFunc(entries, func(left, right Entry) int {
		if c := left.Category.order() - right.Category.order(); c != 0 {
			return c
		}

		return int(left.Source - right.Source)
	})

	return entries
}

// Fallback renders the deterministic escape token used for runes without an entry.
func Fallback(r rune) string {
	return "[" + types.CodeLabel(r) + "]"
}
