// pkg/config/config_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: Real filesystem (temp dirs)
// PURPOSE: Test layered config loading, env overrides, and round-trip save

package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/modlink/pkg/config"
	"github.com/arthur-debert/modlink/pkg/paths"
)

func newTestPaths(t *testing.T) paths.Paths {
	t.Helper()
	dir := t.TempDir()
	t.Setenv(paths.EnvModlinkConfigDir, filepath.Join(dir, "config"))
	t.Setenv(paths.EnvModlinkDataDir, filepath.Join(dir, "data"))

	// t.Setenv registers restoration, then the unset keeps the override
	// out of the test entirely (an empty value would still win over the file)
	for _, key := range []string{"MODLINK_SOURCE_DIR", "MODLINK_GAME_DIR", "MODLINK_FILE_TYPES"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	p, err := paths.New()
	require.NoError(t, err)
	return p
}

func TestLoadDefaults(t *testing.T) {
	p := newTestPaths(t)

	cfg, err := config.Load(p)
	require.NoError(t, err)

	assert.Empty(t, cfg.SourceDir)
	assert.Empty(t, cfg.GameDir)
	assert.Empty(t, cfg.FileTypes)
}

func TestLoadFromJSONFile(t *testing.T) {
	p := newTestPaths(t)

	require.NoError(t, os.MkdirAll(p.ConfigDir(), 0755))
	content := `{"source_dir": "/games/mods", "game_dir": "/games/skyrim/mods", "file_types": ["PAK", ".esp"]}`
	require.NoError(t, os.WriteFile(p.ConfigFilePath(), []byte(content), 0644))

	cfg, err := config.Load(p)
	require.NoError(t, err)

	assert.Equal(t, "/games/mods", cfg.SourceDir)
	assert.Equal(t, "/games/skyrim/mods", cfg.GameDir)
	assert.Equal(t, []string{".pak", ".esp"}, cfg.FileTypes, "file types should be normalized")
}

func TestLoadFromTOMLFile(t *testing.T) {
	p := newTestPaths(t)

	require.NoError(t, os.MkdirAll(p.ConfigDir(), 0755))
	content := "source_dir = \"/games/mods\"\ngame_dir = \"/games/skyrim/mods\"\nfile_types = [\".pak\"]\n"
	tomlPath := filepath.Join(p.ConfigDir(), config.TOMLFileName)
	require.NoError(t, os.WriteFile(tomlPath, []byte(content), 0644))

	cfg, err := config.Load(p)
	require.NoError(t, err)

	assert.Equal(t, "/games/mods", cfg.SourceDir)
	assert.Equal(t, []string{".pak"}, cfg.FileTypes)
}

func TestEnvOverridesFile(t *testing.T) {
	p := newTestPaths(t)

	require.NoError(t, os.MkdirAll(p.ConfigDir(), 0755))
	content := `{"source_dir": "/from/file", "game_dir": "/game"}`
	require.NoError(t, os.WriteFile(p.ConfigFilePath(), []byte(content), 0644))

	t.Setenv("MODLINK_SOURCE_DIR", "/from/env")
	t.Setenv("MODLINK_FILE_TYPES", "pak,zip")

	cfg, err := config.Load(p)
	require.NoError(t, err)

	assert.Equal(t, "/from/env", cfg.SourceDir)
	assert.Equal(t, "/game", cfg.GameDir)
	assert.Equal(t, []string{".pak", ".zip"}, cfg.FileTypes)
}

func TestSaveRoundTrip(t *testing.T) {
	p := newTestPaths(t)

	cfg := &config.Config{
		SourceDir: "/games/mods",
		GameDir:   "/games/skyrim/mods",
		FileTypes: []string{"PAK"},
	}
	require.NoError(t, config.Save(p, cfg))

	loaded, err := config.Load(p)
	require.NoError(t, err)

	assert.Equal(t, cfg.SourceDir, loaded.SourceDir)
	assert.Equal(t, cfg.GameDir, loaded.GameDir)
	assert.Equal(t, []string{".pak"}, loaded.FileTypes)
}

func TestSaveKeepsTOMLFormat(t *testing.T) {
	p := newTestPaths(t)

	require.NoError(t, os.MkdirAll(p.ConfigDir(), 0755))
	tomlPath := filepath.Join(p.ConfigDir(), config.TOMLFileName)
	require.NoError(t, os.WriteFile(tomlPath, []byte("source_dir = \"/old\"\n"), 0644))

	cfg := &config.Config{SourceDir: "/new", GameDir: "/game"}
	require.NoError(t, config.Save(p, cfg))

	// The TOML file is rewritten; no JSON file appears
	_, err := os.Stat(p.ConfigFilePath())
	assert.True(t, os.IsNotExist(err))

	loaded, err := config.Load(p)
	require.NoError(t, err)
	assert.Equal(t, "/new", loaded.SourceDir)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     config.Config
		wantErr bool
	}{
		{"both set", config.Config{SourceDir: "/a", GameDir: "/b"}, false},
		{"missing source", config.Config{GameDir: "/b"}, true},
		{"missing game", config.Config{SourceDir: "/a"}, true},
		{"both missing", config.Config{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNormalizeFileTypes(t *testing.T) {
	got := config.NormalizeFileTypes([]string{" PAK ", "zip", ".7z", "", "  "})
	assert.Equal(t, []string{".pak", ".zip", ".7z"}, got)
}
