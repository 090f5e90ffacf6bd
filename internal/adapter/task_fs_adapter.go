package adapter

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	m "semreg.dev/pkg/semreg/internal/model"
)

// TaskFSAdapter abstracts the filesystem operations the harness performs on
// spec and task directories so the domain layer can be tested without
// touching the disk.
type TaskFSAdapter interface {
	// Exists reports whether path exists. Presence is the only cache signal.
	Exists(path m.Path) (bool, error)

	// MkdirAll creates a directory and its parents.
	MkdirAll(path m.Path) error

	// CopyFile copies src to dst, replacing dst.
	CopyFile(src, dst m.Path) error

	// ReadFile loads a file from disk and returns its contents.
	ReadFile(path m.Path) ([]byte, error)

	// WriteFile writes content to a file, creating parent directories.
	WriteFile(path m.Path, content []byte) error

	// Glob returns the files under root matching any of the doublestar
	// patterns, relative to root and sorted.
	Glob(root m.Path, patterns ...string) ([]m.Path, error)
}

// LocalTaskFSAdapter implements TaskFSAdapter on the local filesystem.
type LocalTaskFSAdapter struct{}

// NewLocalTaskFSAdapter constructs a LocalTaskFSAdapter.
func NewLocalTaskFSAdapter() *LocalTaskFSAdapter {
	return &LocalTaskFSAdapter{}
}

// Exists reports whether path exists.
func (a *LocalTaskFSAdapter) Exists(path m.Path) (bool, error) {
	_, err := os.Stat(string(path))
	if err == nil {
		return true, nil
	}

	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}

	return false, err
}

// MkdirAll creates a directory and its parents.
func (a *LocalTaskFSAdapter) MkdirAll(path m.Path) error {
	return os.MkdirAll(string(path), 0o750)
}

// CopyFile copies a single file.
func (a *LocalTaskFSAdapter) CopyFile(src, dst m.Path) error {
	// #nosec G304 - src is a build artifact path, not user input
	sourceFile, err := os.Open(string(src))
	if err != nil {
		return err
	}

	defer func() { _ = sourceFile.Close() }()

	if err := os.MkdirAll(filepath.Dir(string(dst)), 0o750); err != nil {
		return err
	}

	// #nosec G304 - dst is a task directory path
	destFile, err := os.Create(string(dst))
	if err != nil {
		return err
	}

	if _, err := io.Copy(destFile, sourceFile); err != nil {
		_ = destFile.Close()
		return err
	}

	return destFile.Close()
}

// ReadFile loads file contents from disk.
func (a *LocalTaskFSAdapter) ReadFile(path m.Path) ([]byte, error) {
	return os.ReadFile(string(path))
}

// WriteFile writes content to a file, creating parent directories.
func (a *LocalTaskFSAdapter) WriteFile(path m.Path, content []byte) error {
	if err := os.MkdirAll(filepath.Dir(string(path)), 0o750); err != nil {
		return err
	}

	return os.WriteFile(string(path), content, 0o600)
}

// Glob returns files under root matching any pattern.
func (a *LocalTaskFSAdapter) Glob(root m.Path, patterns ...string) ([]m.Path, error) {
	fsys := os.DirFS(string(root))
	seen := map[string]struct{}{}

	for _, pattern := range patterns {
		matches, err := doublestar.Glob(fsys, pattern, doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("glob %q in %s: %w", pattern, root, err)
		}

		for _, match := range matches {
			seen[match] = struct{}{}
		}
	}

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}

	sort.Strings(names)

	paths := make([]m.Path, 0, len(names))
	for _, name := range names {
		paths = append(paths, m.Path(filepath.FromSlash(name)))
	}

	return paths, nil
}
