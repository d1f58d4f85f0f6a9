package repair_test

import (
	"testing"

	cmdrepair "github.com/arthur-debert/modlink/pkg/commands/repair"
	"github.com/arthur-debert/modlink/pkg/repair"
	"github.com/arthur-debert/modlink/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepairSweepsBrokenOnly(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvIsolated)
	env.AddModFile("armor.pak", "pak")
	env.AddModFile("sound.pak", "pak")
	env.LinkMod("armor.pak")
	env.AddDanglingLink("sound.pak")
	env.AddForeignFile("game-native.dat", "data")

	result, err := cmdrepair.Repair(cmdrepair.RepairOptions{
		SourceDir:  env.SourceDir,
		GameDir:    env.GameDir,
		FileSystem: env.FS,
	})
	require.NoError(t, err)

	require.Len(t, result.Outcomes, 1)
	assert.Equal(t, "sound.pak", result.Outcomes[0].Name)
	assert.Equal(t, repair.StatusRemoved, result.Outcomes[0].Status)
	assert.Equal(t, 1, result.Removed())
	assert.False(t, result.HasFailures())

	testutil.AssertLinked(t, env, "armor.pak")
	testutil.AssertNoEntry(t, env, "sound.pak")
	testutil.AssertEntryExists(t, env, "game-native.dat")
}

func TestRepairDryRun(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvIsolated)
	env.AddModFile("armor.pak", "pak")
	env.AddDanglingLink("armor.pak")

	result, err := cmdrepair.Repair(cmdrepair.RepairOptions{
		SourceDir:  env.SourceDir,
		GameDir:    env.GameDir,
		FileSystem: env.FS,
		DryRun:     true,
	})
	require.NoError(t, err)
	assert.True(t, result.DryRun)
	assert.Equal(t, 1, result.Removed())
	testutil.AssertEntryExists(t, env, "armor.pak")
}
