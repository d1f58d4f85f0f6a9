// Package presets stores named snapshots of mod selections and applies
// them back to the filesystem.
//
// The collection is persisted wholesale as a single JSON object mapping
// preset names to mod name lists, the same shape older tools used, so
// an existing presets.json keeps working. Every save rewrites the whole
// file atomically.
package presets

import (
	"sort"
	"strings"

	"github.com/arthur-debert/modlink/pkg/errors"
)

// Preset is a named set of mod names. Members are stored by name only;
// a member whose mod has since disappeared from the source directory is
// reported as missing on diff and apply, never silently dropped.
type Preset struct {
	Name string   `json:"name"`
	Mods []string `json:"mods"`
}

// normalizeMods dedupes and sorts a member list
func normalizeMods(modNames []string) []string {
	seen := make(map[string]struct{}, len(modNames))
	var out []string
	for _, name := range modNames {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// validateName rejects names that cannot safely serve as keys or
// appear in file paths
func validateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errors.New(errors.ErrInvalidInput, "preset name cannot be empty")
	}
	if strings.ContainsAny(name, "/\\") {
		return errors.Newf(errors.ErrInvalidInput, "preset name %q cannot contain path separators", name)
	}
	return nil
}
