// Package workspace provides the file operations behind the browser and
// editor panes: open, save, create, list, and filename search. Every
// operation is a single synchronous pass-through to operating-system file
// I/O; failures wrap the underlying path error.
package workspace

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// Workspace errors.
var (
	ErrIsDirectory = errors.New("path is a directory")
	ErrExists      = errors.New("path already exists")
)

// File is the content of an opened file plus the language detected from its
// extension.
type File struct {
	Path     string `json:"path"`
	Content  string `json:"content"`
	Language string `json:"language"`
}

// Entry is a single directory listing entry.
type Entry struct {
	Name    string    `json:"name"`
	IsDir   bool      `json:"is_dir"`
	Size    int64     `json:"size"`
	ModTime time.Time `json:"mod_time"`
}

// Open reads the file at path and returns its content with the detected
// language. Returns ErrIsDirectory when path names a directory.
func Open(path string) (*File, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("opening %s: %w", path, ErrIsDirectory)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	return &File{
		Path:     path,
		Content:  string(data),
		Language: DetectLanguage(path),
	}, nil
}

// Save writes content to path atomically: the content goes to a temp file in
// the same directory, is synced, and renamed over the target. A Save followed
// by an Open returns exactly the saved content. An existing file keeps its
// permission bits; a new file gets 0644.
func Save(path, content string) error {
	mode := fs.FileMode(0o644)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("saving %s: %w", path, err)
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".save-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file for %s: %w", path, err)
	}
	tmpName := tmp.Name()

	if err := tmp.Chmod(mode); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("setting mode on temp file for %s: %w", path, err)
	}
	if _, err := tmp.WriteString(content); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("syncing %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing temp file for %s: %w", path, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("saving %s: %w", path, err)
	}
	return nil
}

// CreateFile creates an empty file at path. Returns ErrExists if something
// already exists there.
func CreateFile(path string) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if os.IsExist(err) {
			return fmt.Errorf("creating %s: %w", path, ErrExists)
		}
		return fmt.Errorf("creating %s: %w", path, err)
	}
	return f.Close()
}

// CreateDir creates a directory at path, including missing parents.
func CreateDir(path string) error {
	if err := os.MkdirAll(path, 0o755); err != nil {
		return fmt.Errorf("creating directory %s: %w", path, err)
	}
	return nil
}

// ListDir returns the entries of the directory at path, directories first,
// each group sorted by name.
func ListDir(path string) ([]Entry, error) {
	dirEntries, err := os.ReadDir(path)
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", path, err)
	}

	entries := make([]Entry, 0, len(dirEntries))
	for _, de := range dirEntries {
		info, err := de.Info()
		if err != nil {
			return nil, fmt.Errorf("reading entry %s: %w", de.Name(), err)
		}
		entries = append(entries, Entry{
			Name:    de.Name(),
			IsDir:   de.IsDir(),
			Size:    info.Size(),
			ModTime: info.ModTime(),
		})
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].IsDir != entries[j].IsDir {
			return entries[i].IsDir
		}
		return entries[i].Name < entries[j].Name
	})
	return entries, nil
}

// Search walks the tree under root and returns the paths of entries whose
// base name contains query, case-insensitively. Results are sorted.
func Search(root, query string) ([]string, error) {
	needle := strings.ToLower(query)
	var matches []string

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if path == root {
			return nil
		}
		if strings.Contains(strings.ToLower(d.Name()), needle) {
			matches = append(matches, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("searching %s: %w", root, err)
	}

	sort.Strings(matches)
	return matches, nil
}
