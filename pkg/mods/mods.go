// Package mods discovers the mods available in the source directory.
//
// A mod is an opaque named filesystem entry: a single file (archive,
// plugin) or a directory. The source directory is rescanned on every
// operation; entries are never cached across operations.
package mods

import (
	"path/filepath"
	"sort"
	"strings"

	"github.com/arthur-debert/modlink/pkg/errors"
	"github.com/arthur-debert/modlink/pkg/filesystem"
)

// Kind distinguishes file mods from directory mods
type Kind string

const (
	KindFile      Kind = "file"
	KindDirectory Kind = "directory"
)

// ModEntry is one mod available in the source directory
type ModEntry struct {
	// Name is the entry's base name, unique within the source directory
	Name string

	// Kind is file or directory
	Kind Kind

	// SourcePath is the absolute path of the entry in the source directory
	SourcePath string
}

// Scan reads sourceDir and returns the eligible mods, directories first,
// then files, each group sorted case-insensitively by name. Files are
// filtered by fileTypes (normalized extensions); an empty list accepts
// every file. Directories are always eligible.
func Scan(fsys filesystem.FS, sourceDir string, fileTypes []string) ([]ModEntry, error) {
	if _, err := fsys.Stat(sourceDir); err != nil {
		return nil, errors.Wrapf(err, errors.ErrSourceDirMissing, "mods source directory %s is not accessible", sourceDir)
	}

	dirEntries, err := fsys.ReadDir(sourceDir)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrIO, "failed to read mods source directory %s", sourceDir)
	}

	var entries []ModEntry
	for _, de := range dirEntries {
		name := de.Name()
		if de.IsDir() {
			entries = append(entries, ModEntry{
				Name:       name,
				Kind:       KindDirectory,
				SourcePath: filepath.Join(sourceDir, name),
			})
			continue
		}
		if !extensionAllowed(name, fileTypes) {
			continue
		}
		entries = append(entries, ModEntry{
			Name:       name,
			Kind:       KindFile,
			SourcePath: filepath.Join(sourceDir, name),
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Kind != entries[j].Kind {
			return entries[i].Kind == KindDirectory
		}
		return strings.ToLower(entries[i].Name) < strings.ToLower(entries[j].Name)
	})

	return entries, nil
}

// Find returns the entry with the given name, or false when no such
// mod exists in the slice.
func Find(entries []ModEntry, name string) (ModEntry, bool) {
	for _, e := range entries {
		if e.Name == name {
			return e, true
		}
	}
	return ModEntry{}, false
}

// Names returns the entry names in slice order
func Names(entries []ModEntry) []string {
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name
	}
	return names
}

// extensionAllowed reports whether a file name passes the extension filter
func extensionAllowed(name string, fileTypes []string) bool {
	if len(fileTypes) == 0 {
		return true
	}
	ext := strings.ToLower(filepath.Ext(name))
	for _, t := range fileTypes {
		if ext == t {
			return true
		}
	}
	return false
}
