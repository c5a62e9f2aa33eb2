// Package fileutil provides the small filesystem operations the generator
// needs: creating the output directory, writing a whole buffer, and staging
// temporary files for the browser.
package fileutil

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Sentinel errors.
var (
	ErrEmptyPath       = errors.New("path cannot be empty")
	ErrNotDirectory    = errors.New("path exists and is not a directory")
	ErrInvalidFileName = errors.New("invalid file name")
)

// Permissions for created directories and files.
const (
	DirPerm  os.FileMode = 0o755
	FilePerm os.FileMode = 0o644
)

// EnsureDir creates path and any missing parents. An existing directory is
// not an error.
func EnsureDir(path string) error {
	if path == "" {
		return ErrEmptyPath
	}
	if info, err := os.Stat(path); err == nil && !info.IsDir() {
		return fmt.Errorf("%w: %s", ErrNotDirectory, path)
	}
	return os.MkdirAll(path, DirPerm)
}

// WriteFile replaces the contents of path with data in one write.
func WriteFile(path string, data []byte) error {
	if path == "" {
		return ErrEmptyPath
	}
	return os.WriteFile(path, data, FilePerm)
}

// FileExists reports whether path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// IsFilePath reports whether s looks like a path rather than a bare name.
func IsFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}

// ValidateFileName checks that name is a bare file name with the given
// extension (".docx"), containing no separators or NUL bytes.
func ValidateFileName(name, ext string) error {
	switch {
	case name == "":
		return fmt.Errorf("%w: empty", ErrInvalidFileName)
	case strings.ContainsAny(name, "/\\\x00"):
		return fmt.Errorf("%w: %q contains a path separator", ErrInvalidFileName, name)
	case name == ext || !strings.EqualFold(filepath.Ext(name), ext):
		return fmt.Errorf("%w: %q must end in %s", ErrInvalidFileName, name, ext)
	}
	return nil
}

// ReplaceExt swaps the extension of path, e.g. "docs.docx" to "docs.html".
func ReplaceExt(path, ext string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + ext
}

// WriteTempFile stages content in a temporary file named with the given
// extension. The returned cleanup removes it.
func WriteTempFile(content, ext string) (path string, cleanup func(), err error) {
	if ext == "" || strings.ContainsAny(ext, "/\\\x00") {
		return "", nil, fmt.Errorf("%w: extension %q", ErrInvalidFileName, ext)
	}

	f, err := os.CreateTemp("", "docxdocs-*."+ext)
	if err != nil {
		return "", nil, fmt.Errorf("creating temp file: %w", err)
	}
	path = f.Name()
	cleanup = func() { _ = os.Remove(path) }

	if _, err := f.WriteString(content); err != nil {
		_ = f.Close()
		cleanup()
		return "", nil, fmt.Errorf("writing temp file: %w", err)
	}
	if err := f.Close(); err != nil {
		cleanup()
		return "", nil, fmt.Errorf("closing temp file: %w", err)
	}
	return path, cleanup, nil
}
