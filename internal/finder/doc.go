// Package finder locates files by name in a directory tree.
//
// The walk is depth-first: every directory is searched completely before
// the entries that follow it at the same level. Matching compares trailing
// path components, never substrings:
//
//	Find("root", "a.sh")      // root/a.sh, root/sub/a.sh
//	Find("root", "sub/a.sh")  // root/sub/a.sh
//	Find("root", "sub")       // nothing; directories never match
//
// # Ordering
//
// Results are not sorted. They follow the order the FileSystem lists each
// directory in, composed in traversal order. OSFileSystem lists entries by
// name, so results are stable between runs over an unchanged tree.
//
// # Errors
//
// Any directory read error (missing root, root is a file, permission
// denied, directory removed mid-walk) aborts the whole search. Errors wrap
// the underlying *fs.PathError, so errors.Is(err, fs.ErrNotExist) and
// errors.Is(err, fs.ErrPermission) work as expected.
//
// # Symlinks
//
// Symlinks are listed but never followed. A symlink named like the search
// term is a match even if it points at a directory.
//
// The walker keeps an explicit stack of open directories instead of
// recursing, so very deep trees do not grow the goroutine stack.
package finder
