// Package filelock replaces result files under an advisory lock so that
// concurrent findfile runs targeting the same output never interleave and
// readers never see a half-written list.
package filelock

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofrs/flock"
)

// lockSuffix is appended to the target path to name its lock file
const lockSuffix = ".lock"

// Target is an output file guarded by a sibling "<name>.lock" file.
// The lock file is left in place so every writer locks the same inode.
type Target struct {
	path string
	lock *flock.Flock
}

// NewTarget returns a Target for path. Nothing is created until Replace.
func NewTarget(path string) *Target {
	return &Target{
		path: path,
		lock: flock.New(path + lockSuffix),
	}
}

// Path returns the file being written
func (t *Target) Path() string {
	return t.path
}

// LockPath returns the lock file guarding Path
func (t *Target) LockPath() string {
	return t.lock.Path()
}

// Replace swaps the contents of the target for data while holding the lock.
// Missing parent directories are created. On failure the previous file,
// if any, is left untouched.
func (t *Target) Replace(data []byte) error {
	dir := filepath.Dir(t.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	if err := t.lock.Lock(); err != nil {
		return fmt.Errorf("failed to lock %s: %w", t.path, err)
	}
	defer t.lock.Unlock()

	return replaceFile(t.path, data)
}

// ReplaceLines stores lines as newline-terminated text.
// An empty list produces an empty file.
func (t *Target) ReplaceLines(lines []string) error {
	var b strings.Builder
	for _, line := range lines {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	return t.Replace([]byte(b.String()))
}

// WriteLines is NewTarget(path).ReplaceLines(lines)
func WriteLines(path string, lines []string) error {
	return NewTarget(path).ReplaceLines(lines)
}

// replaceFile writes data to a temp file beside path and renames it over path
func replaceFile(path string, data []byte) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}

	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		return fmt.Errorf("failed to write %s: %w", tmp.Name(), err)
	}
	if err = tmp.Chmod(0644); err != nil {
		return fmt.Errorf("failed to set permissions: %w", err)
	}
	if err = tmp.Sync(); err != nil {
		return fmt.Errorf("failed to sync %s: %w", tmp.Name(), err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", tmp.Name(), err)
	}

	if err = os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("failed to move result into %s: %w", path, err)
	}

	return nil
}
