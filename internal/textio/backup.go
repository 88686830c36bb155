package textio

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"regexp"
	"time"
)

// BackupTimeLayout is the timestamp suffix format of backup files.
const BackupTimeLayout = "20060102_150405"

// ErrBackupFailure wraps failures while copying the original file aside.
var ErrBackupFailure = errors.New("backup failure")

//nolint:gochecknoglobals // compiled once
var backupName = regexp.MustCompile(`\.backup_\d{8}_\d{6}$`)

// BackupPath returns the backup location of path for the given time.
func BackupPath(path string, now time.Time) string {
	return path + ".backup_" + now.Format(BackupTimeLayout)
}

// IsBackup reports whether name looks like a file produced by Backup.
func IsBackup(name string) bool {
	return backupName.MatchString(name)
}

// Backup copies path byte for byte to BackupPath(path, now), keeping permissions and
// modification time. An existing file at the destination is never overwritten.
// The copy is complete and closed when Backup returns without error.
func Backup(path string, now time.Time) (string, error) {
	dest := BackupPath(path, now)

	slog.Debug("textio.Backup", "file", path, "backup", dest, "stage", "start")

	src, err := os.Open(path) //nolint:gosec // CLI tool opens user-specified files
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrBackupFailure, err)
	}
	defer src.Close()

	info, err := src.Stat()
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrBackupFailure, err)
	}

	dst, err := os.OpenFile(dest, os.O_WRONLY|os.O_CREATE|os.O_EXCL, info.Mode().Perm()) //nolint:gosec // derived from a user-specified file
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrBackupFailure, err)
	}

	if _, err := io.Copy(dst, src); err != nil {
		_ = dst.Close()
		_ = os.Remove(dest)

		return "", fmt.Errorf("%w: %w", ErrBackupFailure, err)
	}

	if err := dst.Sync(); err != nil {
		_ = dst.Close()
		_ = os.Remove(dest)

		return "", fmt.Errorf("%w: %w", ErrBackupFailure, err)
	}

	if err := dst.Close(); err != nil {
		_ = os.Remove(dest)

		return "", fmt.Errorf("%w: %w", ErrBackupFailure, err)
	}

	if err := os.Chtimes(dest, info.ModTime(), info.ModTime()); err != nil {
		slog.Warn("could not preserve backup modification time", "backup", dest, "error", err)
	}

	return dest, nil
}
