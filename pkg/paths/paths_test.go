package paths

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name     string
		envSetup map[string]string
		validate func(t *testing.T, p Paths)
	}{
		{
			name: "custom directories from env",
			envSetup: map[string]string{
				EnvModlinkDataDir:   "/custom/data",
				EnvModlinkConfigDir: "/custom/config",
				EnvModlinkCacheDir:  "/custom/cache",
			},
			validate: func(t *testing.T, p Paths) {
				assert.Equal(t, "/custom/data", p.DataDir())
				assert.Equal(t, "/custom/config", p.ConfigDir())
				assert.Equal(t, "/custom/cache", p.CacheDir())
			},
		},
		{
			name: "xdg defaults end with modlink",
			validate: func(t *testing.T, p Paths) {
				assert.Equal(t, ModlinkDirName, filepath.Base(p.DataDir()))
				assert.Equal(t, ModlinkDirName, filepath.Base(p.ConfigDir()))
				assert.Equal(t, ModlinkDirName, filepath.Base(p.StateDir()))
			},
		},
		{
			name: "tilde expansion in overrides",
			envSetup: map[string]string{
				EnvModlinkDataDir: "~/modlink-data",
			},
			validate: func(t *testing.T, p Paths) {
				homeDir, _ := os.UserHomeDir()
				assert.Equal(t, filepath.Join(homeDir, "modlink-data"), p.DataDir())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(EnvModlinkDataDir, "")
			t.Setenv(EnvModlinkConfigDir, "")
			t.Setenv(EnvModlinkCacheDir, "")

			for k, v := range tt.envSetup {
				t.Setenv(k, v)
			}

			p, err := New()
			require.NoError(t, err)
			require.NotNil(t, p)

			if tt.validate != nil {
				tt.validate(t, p)
			}
		})
	}
}

func TestFilePaths(t *testing.T) {
	t.Setenv(EnvModlinkDataDir, "/data")
	t.Setenv(EnvModlinkConfigDir, "/config")
	t.Setenv("XDG_STATE_HOME", "/state")

	p, err := New()
	require.NoError(t, err)

	assert.Equal(t, "/config/config.json", p.ConfigFilePath())
	assert.Equal(t, "/data/presets.json", p.PresetsFilePath())
	assert.Equal(t, "/state/modlink/modlink.log", p.LogFilePath())
}

func TestNormalizePath(t *testing.T) {
	p, err := New()
	require.NoError(t, err)

	t.Run("empty path is rejected", func(t *testing.T) {
		_, err := p.NormalizePath("")
		assert.Error(t, err)
	})

	t.Run("relative path becomes absolute", func(t *testing.T) {
		got, err := p.NormalizePath("some/dir")
		require.NoError(t, err)
		assert.True(t, filepath.IsAbs(got))
	})

	t.Run("tilde expands to home", func(t *testing.T) {
		got, err := p.NormalizePath("~/mods")
		require.NoError(t, err)
		homeDir, _ := os.UserHomeDir()
		assert.Equal(t, filepath.Join(homeDir, "mods"), got)
	})
}

func TestExpandHome(t *testing.T) {
	homeDir, _ := os.UserHomeDir()

	tests := []struct {
		name     string
		path     string
		expected string
	}{
		{"bare tilde", "~", homeDir},
		{"tilde with path", "~/games/mods", filepath.Join(homeDir, "games/mods")},
		{"no tilde", "/absolute/path", "/absolute/path"},
		{"tilde user untouched", "~other/path", "~other/path"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ExpandHome(tt.path))
		})
	}
}
