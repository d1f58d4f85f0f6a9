package presets

import (
	"sort"

	"github.com/arthur-debert/modlink/pkg/links"
	"github.com/arthur-debert/modlink/pkg/mods"
)

// DiffResult describes what applying a preset would change
type DiffResult struct {
	// ToInstall lists members that are not currently linked
	ToInstall []string `json:"to_install"`

	// ToUninstall lists linked mods absent from the preset. Only an
	// exact apply acts on these; an additive apply leaves them alone.
	ToUninstall []string `json:"to_uninstall"`

	// MissingFromSource lists members with no mod in the source
	// directory anymore
	MissingFromSource []string `json:"missing_from_source"`
}

// Empty reports whether applying would change nothing
func (d DiffResult) Empty() bool {
	return len(d.ToInstall) == 0 && len(d.ToUninstall) == 0 && len(d.MissingFromSource) == 0
}

// Diff compares a preset against the current mods and link states.
// It is a pure function; callers pass a fresh scan.
func Diff(preset Preset, entries []mods.ModEntry, states map[string]links.State) DiffResult {
	members := make(map[string]struct{}, len(preset.Mods))
	var result DiffResult

	for _, name := range preset.Mods {
		members[name] = struct{}{}
		if _, exists := mods.Find(entries, name); !exists {
			result.MissingFromSource = append(result.MissingFromSource, name)
			continue
		}
		if states[name] != links.StateLinked {
			result.ToInstall = append(result.ToInstall, name)
		}
	}

	for name, state := range states {
		if state != links.StateLinked {
			continue
		}
		if _, member := members[name]; !member {
			result.ToUninstall = append(result.ToUninstall, name)
		}
	}

	sort.Strings(result.ToInstall)
	sort.Strings(result.ToUninstall)
	sort.Strings(result.MissingFromSource)
	return result
}
