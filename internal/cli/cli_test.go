package cli_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/modlink/internal/cli"
	"github.com/arthur-debert/modlink/pkg/commands/list"
	"github.com/arthur-debert/modlink/pkg/config"
	"github.com/arthur-debert/modlink/pkg/paths"
	"github.com/arthur-debert/modlink/pkg/testutil"
)

// run executes the CLI against the test environment and captures stdout
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var buf bytes.Buffer
	rootCmd := cli.NewRootCmd()
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return buf.String(), err
}

func setupEnv(t *testing.T) *testutil.TestEnvironment {
	t.Helper()

	env := testutil.NewTestEnvironment(t, testutil.EnvIsolated)
	env.WriteConfig()
	return env
}

func TestListCmd(t *testing.T) {
	env := setupEnv(t)
	env.AddModFile("armor.pak", "pak")
	env.AddModDir("big-overhaul", map[string]string{"mod.txt": "x"})
	env.LinkMod("armor.pak")

	out, err := run(t, "list", "--format", "text")
	require.NoError(t, err)
	assert.Contains(t, out, "big-overhaul")
	assert.Contains(t, out, "armor.pak")
}

func TestListCmdJSON(t *testing.T) {
	env := setupEnv(t)
	env.AddModFile("armor.pak", "pak")

	out, err := run(t, "list", "--format", "json")
	require.NoError(t, err)

	var result list.ListResult
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	require.Len(t, result.Mods, 1)
	assert.Equal(t, "armor.pak", result.Mods[0].Name)
	assert.Equal(t, "not-linked", string(result.Mods[0].State))
}

func TestListCmdUnknownFormat(t *testing.T) {
	setupEnv(t)

	_, err := run(t, "list", "--format", "yaml")
	require.Error(t, err)
}

func TestInstallCmd(t *testing.T) {
	env := setupEnv(t)
	env.AddModFile("armor.pak", "pak")

	out, err := run(t, "install", "armor.pak", "--format", "text")
	require.NoError(t, err)
	assert.Contains(t, out, "armor.pak")

	testutil.AssertLinked(t, env, "armor.pak")
}

func TestInstallCmdDryRun(t *testing.T) {
	env := setupEnv(t)
	env.AddModFile("armor.pak", "pak")

	_, err := run(t, "install", "armor.pak", "--dry-run", "--format", "text")
	require.NoError(t, err)

	testutil.AssertNoEntry(t, env, "armor.pak")
}

func TestInstallCmdUnknownModFails(t *testing.T) {
	setupEnv(t)

	_, err := run(t, "install", "no-such-mod", "--format", "text")
	require.Error(t, err)
}

func TestUninstallCmd(t *testing.T) {
	env := setupEnv(t)
	env.AddModFile("armor.pak", "pak")
	env.LinkMod("armor.pak")

	_, err := run(t, "uninstall", "armor.pak", "--format", "text")
	require.NoError(t, err)

	testutil.AssertNoEntry(t, env, "armor.pak")
}

func TestRepairCmd(t *testing.T) {
	env := setupEnv(t)
	env.AddModFile("armor.pak", "pak")
	env.AddDanglingLink("armor.pak")

	out, err := run(t, "repair", "--format", "text")
	require.NoError(t, err)
	assert.Contains(t, out, "armor.pak")

	testutil.AssertNoEntry(t, env, "armor.pak")
}

func TestPresetRoundTripCmd(t *testing.T) {
	env := setupEnv(t)
	env.AddModFile("armor.pak", "pak")
	env.LinkMod("armor.pak")

	// Snapshot the linked set, wipe it, then bring it back
	out, err := run(t, "preset", "save", "setup", "--format", "text")
	require.NoError(t, err)
	assert.Contains(t, out, "setup")

	_, err = run(t, "uninstall", "--all", "--format", "text")
	require.NoError(t, err)
	testutil.AssertNoEntry(t, env, "armor.pak")

	_, err = run(t, "preset", "apply", "setup", "--format", "text")
	require.NoError(t, err)
	testutil.AssertLinked(t, env, "armor.pak")
}

func TestConfigShowCmd(t *testing.T) {
	env := setupEnv(t)

	out, err := run(t, "config", "show", "--format", "text")
	require.NoError(t, err)
	assert.Contains(t, out, env.SourceDir)
	assert.Contains(t, out, env.GameDir)
}

func TestConfigSetCmd(t *testing.T) {
	env := setupEnv(t)

	_, err := run(t, "config", "set", "file_types", "pak, zip", "--format", "text")
	require.NoError(t, err)

	p, err := paths.New()
	require.NoError(t, err)
	cfg, err := config.Load(p)
	require.NoError(t, err)
	assert.Equal(t, []string{".pak", ".zip"}, cfg.FileTypes)
	assert.Equal(t, env.SourceDir, cfg.SourceDir, "set must keep the other settings")
}

func TestConfigSetUnknownKey(t *testing.T) {
	setupEnv(t)

	_, err := run(t, "config", "set", "bogus", "value")
	require.Error(t, err)
}

func TestVersionCmd(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "modlink version")
}

func TestGuideCmd(t *testing.T) {
	out, err := run(t, "guide", "--format", "text")
	require.NoError(t, err)
	assert.Contains(t, out, "modlink user guide")
	assert.Contains(t, out, "preset")
}

func TestUnknownCommand(t *testing.T) {
	_, err := run(t, "bogus")
	require.Error(t, err)
}

var _ = cobra.Command{} // keep the cobra import alongside the cli package under test
