// TEST TYPE: Business Logic (real filesystem)
// DEPENDENCIES: temp dirs with real symlinks
// PURPOSE: verify sweeps remove exactly the broken entries and nothing else
package repair_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/modlink/pkg/errors"
	"github.com/arthur-debert/modlink/pkg/filesystem"
	"github.com/arthur-debert/modlink/pkg/repair"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sweepDirs(t *testing.T) (sourceDir, gameDir string) {
	t.Helper()
	base := t.TempDir()
	sourceDir = filepath.Join(base, "mods")
	gameDir = filepath.Join(base, "game", "Mods")
	require.NoError(t, os.MkdirAll(sourceDir, 0o755))
	require.NoError(t, os.MkdirAll(gameDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(sourceDir, "armor.pak"), []byte("pak"), 0o644))
	require.NoError(t, os.MkdirAll(filepath.Join(sourceDir, "overhaul"), 0o755))
	return sourceDir, gameDir
}

func TestSweepRemovesBrokenEntries(t *testing.T) {
	sourceDir, gameDir := sweepDirs(t)
	fsys := filesystem.NewOS()

	// Dangling link under a mod name, a plain file squatting a mod name,
	// and an orphan link with no matching mod.
	require.NoError(t, os.Symlink(filepath.Join(sourceDir, "gone"), filepath.Join(gameDir, "armor.pak")))
	require.NoError(t, os.WriteFile(filepath.Join(gameDir, "overhaul"), []byte("squatter"), 0o644))
	require.NoError(t, os.Symlink(filepath.Join(sourceDir, "gone-too"), filepath.Join(gameDir, "zz-old.pak")))

	outcomes, err := repair.Sweep(fsys, sourceDir, gameDir, []string{".pak"}, false)
	require.NoError(t, err)
	require.Len(t, outcomes, 3)

	for _, o := range outcomes {
		assert.Equal(t, repair.StatusRemoved, o.Status, "entry %s", o.Name)
		_, lerr := os.Lstat(o.Path)
		assert.True(t, os.IsNotExist(lerr), "entry %s should be gone", o.Name)
	}
	assert.Equal(t, "armor.pak", outcomes[0].Name)
	assert.False(t, outcomes[0].Orphan)
	assert.Equal(t, "overhaul", outcomes[1].Name)
	assert.Equal(t, "zz-old.pak", outcomes[2].Name)
	assert.True(t, outcomes[2].Orphan)
}

func TestSweepLeavesValidLinksAndForeignFiles(t *testing.T) {
	sourceDir, gameDir := sweepDirs(t)
	fsys := filesystem.NewOS()

	// A correct link, a foreign game file, and one dangling orphan.
	require.NoError(t, os.Symlink(filepath.Join(sourceDir, "armor.pak"), filepath.Join(gameDir, "armor.pak")))
	require.NoError(t, os.WriteFile(filepath.Join(gameDir, "game-native.dat"), []byte("data"), 0o644))
	require.NoError(t, os.Symlink(filepath.Join(sourceDir, "gone"), filepath.Join(gameDir, "zz-old.pak")))

	outcomes, err := repair.Sweep(fsys, sourceDir, gameDir, []string{".pak"}, false)
	require.NoError(t, err)
	require.Len(t, outcomes, 1)
	assert.Equal(t, "zz-old.pak", outcomes[0].Name)

	target, err := os.Readlink(filepath.Join(gameDir, "armor.pak"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(sourceDir, "armor.pak"), target)

	data, err := os.ReadFile(filepath.Join(gameDir, "game-native.dat"))
	require.NoError(t, err)
	assert.Equal(t, "data", string(data))
}

func TestSweepReportsUnremovableEntries(t *testing.T) {
	sourceDir, gameDir := sweepDirs(t)
	fsys := filesystem.NewOS()

	// A real directory with contents under a mod name cannot be swept.
	squat := filepath.Join(gameDir, "overhaul")
	require.NoError(t, os.MkdirAll(squat, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(squat, "save.dat"), []byte("keep"), 0o644))
	require.NoError(t, os.Symlink(filepath.Join(sourceDir, "gone"), filepath.Join(gameDir, "armor.pak")))

	outcomes, err := repair.Sweep(fsys, sourceDir, gameDir, []string{".pak"}, false)
	require.NoError(t, err)
	require.Len(t, outcomes, 2)

	assert.Equal(t, repair.StatusRemoved, outcomes[0].Status)
	assert.Equal(t, repair.StatusFailed, outcomes[1].Status)
	assert.Equal(t, errors.ErrIO, outcomes[1].Reason)

	data, err := os.ReadFile(filepath.Join(squat, "save.dat"))
	require.NoError(t, err)
	assert.Equal(t, "keep", string(data))
}

func TestSweepDryRunTouchesNothing(t *testing.T) {
	sourceDir, gameDir := sweepDirs(t)
	fsys := filesystem.NewOS()

	require.NoError(t, os.Symlink(filepath.Join(sourceDir, "gone"), filepath.Join(gameDir, "armor.pak")))

	outcomes, err := repair.Sweep(fsys, sourceDir, gameDir, []string{".pak"}, true)
	require.NoError(t, err)
	require.Len(t, outcomes, 1)
	assert.Equal(t, repair.StatusRemoved, outcomes[0].Status)
	assert.Equal(t, "dry run", outcomes[0].Message)

	_, lerr := os.Lstat(filepath.Join(gameDir, "armor.pak"))
	assert.NoError(t, lerr, "dangling link must survive a dry run")
}

func TestSweepCleanGameDir(t *testing.T) {
	sourceDir, gameDir := sweepDirs(t)
	fsys := filesystem.NewOS()

	outcomes, err := repair.Sweep(fsys, sourceDir, gameDir, []string{".pak"}, false)
	require.NoError(t, err)
	assert.Empty(t, outcomes)
}

func TestSweepMissingGameDir(t *testing.T) {
	sourceDir, _ := sweepDirs(t)
	fsys := filesystem.NewOS()

	_, err := repair.Sweep(fsys, sourceDir, filepath.Join(sourceDir, "no-such-game"), []string{".pak"}, false)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrGameDirMissing))
}
