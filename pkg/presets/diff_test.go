// pkg/presets/diff_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None (pure function)
// PURPOSE: Test preset diff computation against known states

package presets_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arthur-debert/modlink/pkg/links"
	"github.com/arthur-debert/modlink/pkg/mods"
	"github.com/arthur-debert/modlink/pkg/presets"
)

func modEntries(names ...string) []mods.ModEntry {
	entries := make([]mods.ModEntry, len(names))
	for i, name := range names {
		entries[i] = mods.ModEntry{Name: name, Kind: mods.KindFile, SourcePath: "/mods/" + name}
	}
	return entries
}

func TestDiff(t *testing.T) {
	entries := modEntries("a.pak", "b.pak", "c.pak", "d.pak")

	tests := []struct {
		name          string
		preset        presets.Preset
		states        map[string]links.State
		wantInstall   []string
		wantUninstall []string
		wantMissing   []string
	}{
		{
			name:   "fresh apply installs everything",
			preset: presets.Preset{Name: "p", Mods: []string{"a.pak", "b.pak"}},
			states: map[string]links.State{
				"a.pak": links.StateNotLinked,
				"b.pak": links.StateNotLinked,
				"c.pak": links.StateNotLinked,
				"d.pak": links.StateNotLinked,
			},
			wantInstall: []string{"a.pak", "b.pak"},
		},
		{
			name:   "linked members need nothing",
			preset: presets.Preset{Name: "p", Mods: []string{"a.pak", "b.pak"}},
			states: map[string]links.State{
				"a.pak": links.StateLinked,
				"b.pak": links.StateLinked,
				"c.pak": links.StateNotLinked,
				"d.pak": links.StateNotLinked,
			},
		},
		{
			name:   "broken members reinstall",
			preset: presets.Preset{Name: "p", Mods: []string{"a.pak"}},
			states: map[string]links.State{
				"a.pak": links.StateBroken,
				"b.pak": links.StateNotLinked,
				"c.pak": links.StateNotLinked,
				"d.pak": links.StateNotLinked,
			},
			wantInstall: []string{"a.pak"},
		},
		{
			name:   "linked non-members are listed for exact mode",
			preset: presets.Preset{Name: "p", Mods: []string{"a.pak"}},
			states: map[string]links.State{
				"a.pak": links.StateLinked,
				"b.pak": links.StateLinked,
				"c.pak": links.StateLinked,
				"d.pak": links.StateNotLinked,
			},
			wantUninstall: []string{"b.pak", "c.pak"},
		},
		{
			name:   "members gone from source are missing",
			preset: presets.Preset{Name: "p", Mods: []string{"a.pak", "vanished.pak"}},
			states: map[string]links.State{
				"a.pak": links.StateLinked,
				"b.pak": links.StateNotLinked,
				"c.pak": links.StateNotLinked,
				"d.pak": links.StateNotLinked,
			},
			wantMissing: []string{"vanished.pak"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := presets.Diff(tt.preset, entries, tt.states)
			assert.Equal(t, tt.wantInstall, got.ToInstall)
			assert.Equal(t, tt.wantUninstall, got.ToUninstall)
			assert.Equal(t, tt.wantMissing, got.MissingFromSource)
		})
	}
}

func TestDiffEmpty(t *testing.T) {
	entries := modEntries("a.pak")
	preset := presets.Preset{Name: "p", Mods: []string{"a.pak"}}
	states := map[string]links.State{"a.pak": links.StateLinked}

	diff := presets.Diff(preset, entries, states)
	assert.True(t, diff.Empty())
}

func TestDiffBrokenNonMemberIsNotUninstalled(t *testing.T) {
	entries := modEntries("a.pak", "b.pak")
	preset := presets.Preset{Name: "p", Mods: []string{"a.pak"}}
	states := map[string]links.State{
		"a.pak": links.StateLinked,
		"b.pak": links.StateBroken,
	}

	diff := presets.Diff(preset, entries, states)
	assert.Empty(t, diff.ToUninstall, "broken entries are repair's business, not the diff's")
}
