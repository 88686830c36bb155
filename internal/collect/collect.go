// Package collect discovers the files a run should process.
package collect

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/farcloser/asciify/internal/textio"
)

// DefaultPattern matches PowerShell scripts.
const DefaultPattern = "*.ps1"

var (
	ErrNotFound       = errors.New("path not found")
	ErrInvalidPattern = errors.New("invalid pattern")
)

// Options selects files under a directory.
type Options struct {
	Pattern     string   // glob matched against base names (filepath.Match syntax)
	Recursive   bool     // descend into subdirectories
	ExcludeDirs []string // directory base names to skip, case-insensitive
}

// Files returns the files to process under root, sorted.
// A root that is a file is returned as-is, whatever the pattern.
// Backup files produced by earlier runs are never returned from a directory walk.
func Files(root string, opts Options) ([]string, error) {
	pattern := opts.Pattern
	if pattern == "" {
		pattern = DefaultPattern
	}

	if _, err := filepath.Match(pattern, ""); err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrInvalidPattern, pattern, err)
	}

	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("%q: %w", root, ErrNotFound)
	}

	if !info.IsDir() {
		return []string{root}, nil
	}

	excluded := make(map[string]struct{}, len(opts.ExcludeDirs))
	for _, name := range opts.ExcludeDirs {
		if name = strings.TrimSpace(name); name != "" {
			excluded[strings.ToLower(name)] = struct{}{}
		}
	}

	var files []string

	err = filepath.WalkDir(root, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if entry.IsDir() {
			if path == root {
				return nil
			}

			if _, skip := excluded[strings.ToLower(entry.Name())]; skip || !opts.Recursive {
				return filepath.SkipDir
			}

			return nil
		}

		if textio.IsBackup(entry.Name()) {
			return nil
		}

		if matched, _ := filepath.Match(pattern, entry.Name()); !matched {
			return nil
		}

		if !isRegular(path, entry) {
			return nil
		}

		files = append(files, path)

		return nil
	})
	if err != nil {
		return nil, err
	}

	slices.Sort(files)

	return files, nil
}

// isRegular accepts regular files and symlinks resolving to regular files.
func isRegular(path string, entry fs.DirEntry) bool {
	if entry.Type().IsRegular() {
		return true
	}

	if entry.Type()&fs.ModeSymlink == 0 {
		return false
	}

	target, err := os.Stat(path)

	return err == nil && target.Mode().IsRegular()
}
