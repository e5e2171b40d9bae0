package finder

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/harrison/fstools/internal/logger"
)

// Entry is a single filesystem object reported by a FileSystem
type Entry struct {
	// Path is the directory being listed joined with the entry name
	Path string
	// IsDir is true only for real directories; symlinks are never directories
	IsDir bool
}

// FileSystem lists the entries of one directory.
// Entries are returned in enumeration order; Find never reorders them.
type FileSystem interface {
	ReadDir(dir string) ([]Entry, error)
}

// OSFileSystem reads directories from the local disk
type OSFileSystem struct{}

// ReadDir lists dir without following symlinks
func (OSFileSystem) ReadDir(dir string) ([]Entry, error) {
	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	entries := make([]Entry, 0, len(dirEntries))
	for _, de := range dirEntries {
		entries = append(entries, Entry{
			Path:  joinPath(dir, de.Name()),
			IsDir: de.IsDir(),
		})
	}
	return entries, nil
}

// Options configures a search
type Options struct {
	// FileSystem is the directory source (nil = OSFileSystem)
	FileSystem FileSystem
	// Absolute resolves the root before walking so every result is absolute
	Absolute bool
	// Logger receives trace output for each visited directory (nil = silent)
	Logger logger.Logger
}

// frame is one open directory on the walk stack
type frame struct {
	entries []Entry
	next    int
}

// Find returns every non-directory entry under root whose trailing path
// components equal name. See FindWithOptions.
func Find(root, name string) ([]string, error) {
	return FindWithOptions(root, name, Options{})
}

// FindWithOptions walks root depth-first and collects matching files.
//
// A directory's whole subtree is visited before its next sibling, and
// results keep the order the FileSystem enumerated them in. Directories are
// never matched. The first read error aborts the walk and no partial results
// are returned.
func FindWithOptions(root, name string, opts Options) ([]string, error) {
	fsys := opts.FileSystem
	if fsys == nil {
		fsys = OSFileSystem{}
	}
	log := opts.Logger
	if log == nil {
		log = logger.NewNoOpLogger()
	}

	if opts.Absolute {
		absRoot, err := filepath.Abs(root)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve path %s: %w", root, err)
		}
		root = absRoot
	}

	want := components(name)

	rootEntries, err := fsys.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", root, err)
	}
	log.LogTrace(fmt.Sprintf("visiting %s (%d entries)", root, len(rootEntries)))

	matches := []string{}
	stack := []*frame{{entries: rootEntries}}

	for len(stack) > 0 {
		top := stack[len(stack)-1]
		if top.next >= len(top.entries) {
			stack = stack[:len(stack)-1]
			continue
		}

		entry := top.entries[top.next]
		top.next++

		if entry.IsDir {
			children, err := fsys.ReadDir(entry.Path)
			if err != nil {
				return nil, fmt.Errorf("failed to read directory %s: %w", entry.Path, err)
			}
			log.LogTrace(fmt.Sprintf("visiting %s (%d entries)", entry.Path, len(children)))
			stack = append(stack, &frame{entries: children})
			continue
		}

		if hasSuffix(components(entry.Path), want) {
			log.LogDebug(fmt.Sprintf("match: %s", entry.Path))
			matches = append(matches, entry.Path)
		}
	}

	return matches, nil
}

// joinPath appends name to dir while keeping dir exactly as the caller
// spelled it, so a root of "./x" yields "./x/name" rather than "x/name".
func joinPath(dir, name string) string {
	if dir == "" {
		return name
	}
	if os.IsPathSeparator(dir[len(dir)-1]) {
		return dir + name
	}
	return dir + string(filepath.Separator) + name
}

// components splits a path into its normal segments, dropping empty and "."
// segments produced by repeated or leading separators
func components(p string) []string {
	fields := strings.Split(filepath.ToSlash(p), "/")
	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		if f == "" || f == "." {
			continue
		}
		parts = append(parts, f)
	}
	return parts
}

// hasSuffix reports whether the final len(want) segments of path equal want.
// An empty want matches nothing.
func hasSuffix(path, want []string) bool {
	if len(want) == 0 || len(want) > len(path) {
		return false
	}
	offset := len(path) - len(want)
	for i, part := range want {
		if path[offset+i] != part {
			return false
		}
	}
	return true
}
