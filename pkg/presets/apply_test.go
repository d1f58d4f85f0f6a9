// pkg/presets/apply_test.go
// TEST TYPE: Integration Test
// DEPENDENCIES: Real filesystem (temp dirs; exercises the reconciler)
// PURPOSE: Test additive and exact preset application end to end

package presets_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/modlink/pkg/errors"
	"github.com/arthur-debert/modlink/pkg/filesystem"
	"github.com/arthur-debert/modlink/pkg/links"
	"github.com/arthur-debert/modlink/pkg/mods"
	"github.com/arthur-debert/modlink/pkg/presets"
	"github.com/arthur-debert/modlink/pkg/reconciler"
)

type applyEnv struct {
	fs        filesystem.FS
	sourceDir string
	gameDir   string
	rec       *reconciler.Reconciler
	insp      *links.Inspector
}

func newApplyEnv(t *testing.T, modNames ...string) *applyEnv {
	t.Helper()
	fs := filesystem.NewOS()
	base := t.TempDir()
	sourceDir := filepath.Join(base, "mods")
	gameDir := filepath.Join(base, "game", "Mods")
	require.NoError(t, fs.MkdirAll(sourceDir, 0755))
	require.NoError(t, fs.MkdirAll(gameDir, 0755))
	for _, name := range modNames {
		require.NoError(t, fs.WriteFile(filepath.Join(sourceDir, name), []byte(name), 0644))
	}
	return &applyEnv{
		fs:        fs,
		sourceDir: sourceDir,
		gameDir:   gameDir,
		rec:       reconciler.New(fs, sourceDir, gameDir, nil),
		insp:      links.NewInspector(fs, sourceDir, gameDir, nil),
	}
}

func (e *applyEnv) linkedSet(t *testing.T) map[string]bool {
	t.Helper()
	states, err := e.insp.Scan()
	require.NoError(t, err)
	linked := make(map[string]bool)
	for name, state := range states {
		if state == links.StateLinked {
			linked[name] = true
		}
	}
	return linked
}

func TestApplyAdditive(t *testing.T) {
	env := newApplyEnv(t, "a.pak", "b.pak", "c.pak")

	// c.pak installed outside the preset
	_, err := env.rec.Toggle([]string{"c.pak"}, reconciler.Install)
	require.NoError(t, err)

	preset := presets.Preset{Name: "duo", Mods: []string{"a.pak", "b.pak"}}
	result, err := presets.Apply(env.rec, env.insp, preset, presets.Additive)
	require.NoError(t, err)
	assert.False(t, result.HasFailures())

	// Preset members linked, the extra mod left alone
	linked := env.linkedSet(t)
	assert.True(t, linked["a.pak"])
	assert.True(t, linked["b.pak"])
	assert.True(t, linked["c.pak"], "additive apply must not uninstall extras")
}

func TestApplyExactRemovesExtras(t *testing.T) {
	env := newApplyEnv(t, "a.pak", "b.pak", "c.pak")

	_, err := env.rec.Toggle([]string{"b.pak", "c.pak"}, reconciler.Install)
	require.NoError(t, err)

	preset := presets.Preset{Name: "solo", Mods: []string{"a.pak"}}
	result, err := presets.Apply(env.rec, env.insp, preset, presets.Exact)
	require.NoError(t, err)
	assert.False(t, result.HasFailures())

	// Exactly the preset is linked now
	linked := env.linkedSet(t)
	assert.Equal(t, map[string]bool{"a.pak": true}, linked)

	// Install items come first, then removals
	require.Len(t, result.Items, 3)
	assert.Equal(t, "a.pak", result.Items[0].Name)
	assert.Equal(t, reconciler.ActionLink, result.Items[0].Action)
	assert.Equal(t, reconciler.ActionUnlink, result.Items[1].Action)
	assert.Equal(t, reconciler.ActionUnlink, result.Items[2].Action)
}

func TestApplyExactTwiceIsIdempotent(t *testing.T) {
	env := newApplyEnv(t, "a.pak", "b.pak", "c.pak")

	preset := presets.Preset{Name: "duo", Mods: []string{"a.pak", "b.pak"}}

	_, err := presets.Apply(env.rec, env.insp, preset, presets.Exact)
	require.NoError(t, err)

	// The second application changes nothing
	result, err := presets.Apply(env.rec, env.insp, preset, presets.Exact)
	require.NoError(t, err)
	ok, skipped, failed := result.Counts()
	assert.Equal(t, 0, ok, "no action should be needed")
	assert.Equal(t, 2, skipped)
	assert.Equal(t, 0, failed)

	// And its diff is empty
	entries, err := mods.Scan(env.fs, env.sourceDir, nil)
	require.NoError(t, err)
	states, err := env.insp.Scan()
	require.NoError(t, err)
	assert.True(t, presets.Diff(preset, entries, states).Empty())
}

func TestApplyReportsMissingMembers(t *testing.T) {
	env := newApplyEnv(t, "a.pak")

	// Saved when vanished.pak still existed
	preset := presets.Preset{Name: "old", Mods: []string{"a.pak", "vanished.pak"}}

	result, err := presets.Apply(env.rec, env.insp, preset, presets.Additive)
	require.NoError(t, err, "missing members are per-item failures, not fatal")

	require.Len(t, result.Items, 2)
	assert.Equal(t, reconciler.StatusOK, result.Items[0].Status)
	assert.Equal(t, reconciler.StatusFailed, result.Items[1].Status)
	assert.Equal(t, errors.ErrNotFound, result.Items[1].Reason)

	// The present member was still installed
	assert.True(t, env.linkedSet(t)["a.pak"])
}

func TestApplyExactKeepsLinkedMembersUntouched(t *testing.T) {
	env := newApplyEnv(t, "a.pak", "b.pak")

	_, err := env.rec.Toggle([]string{"a.pak"}, reconciler.Install)
	require.NoError(t, err)

	preset := presets.Preset{Name: "p", Mods: []string{"a.pak", "b.pak"}}
	result, err := presets.Apply(env.rec, env.insp, preset, presets.Exact)
	require.NoError(t, err)

	require.Len(t, result.Items, 2)
	assert.Equal(t, reconciler.StatusSkipped, result.Items[0].Status, "already linked member is skipped")
	assert.Equal(t, reconciler.StatusOK, result.Items[1].Status)
}
