package testutil

import (
	"path/filepath"
	"testing"

	"github.com/arthur-debert/modlink/pkg/config"
	"github.com/arthur-debert/modlink/pkg/filesystem"
	"github.com/arthur-debert/modlink/pkg/paths"
)

// EnvType defines the type of test environment
type EnvType int

const (
	EnvMemoryOnly EnvType = iota // Pure in-memory, no real filesystem
	EnvIsolated                  // Real filesystem in temp directory
)

// TestEnvironment provides an isolated source/game/home directory triple
// plus the dependencies most tests need. Tests that inspect real links
// must use EnvIsolated; the in-memory filesystem only simulates them.
type TestEnvironment struct {
	SourceDir string
	GameDir   string
	HomeDir   string

	FS     filesystem.FS
	Paths  paths.Paths
	Config *config.Config

	Type EnvType

	t *testing.T
}

// NewTestEnvironment creates a new test environment
func NewTestEnvironment(t *testing.T, envType EnvType) *TestEnvironment {
	t.Helper()

	env := &TestEnvironment{
		t:    t,
		Type: envType,
	}

	switch envType {
	case EnvMemoryOnly:
		env.setupMemoryEnvironment()
	case EnvIsolated:
		env.setupIsolatedEnvironment()
	}

	// Point every path the tool resolves into the environment
	t.Setenv("HOME", env.HomeDir)
	t.Setenv(paths.EnvModlinkConfigDir, filepath.Join(env.HomeDir, ".config", "modlink"))
	t.Setenv(paths.EnvModlinkDataDir, filepath.Join(env.HomeDir, ".local", "share", "modlink"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(env.HomeDir, ".local", "state"))
	t.Setenv("XDG_CACHE_HOME", filepath.Join(env.HomeDir, ".cache"))

	p, err := paths.New()
	if err != nil {
		t.Fatalf("Failed to create paths: %v", err)
	}
	env.Paths = p

	env.Config = &config.Config{
		SourceDir: env.SourceDir,
		GameDir:   env.GameDir,
	}

	return env
}

// setupMemoryEnvironment configures a pure in-memory environment
func (env *TestEnvironment) setupMemoryEnvironment() {
	env.SourceDir = "/virtual/mods"
	env.GameDir = "/virtual/game/Mods"
	env.HomeDir = "/virtual/home"

	env.FS = filesystem.NewMemory()

	_ = env.FS.MkdirAll(env.SourceDir, 0o755)
	_ = env.FS.MkdirAll(env.GameDir, 0o755)
	_ = env.FS.MkdirAll(env.HomeDir, 0o755)
}

// setupIsolatedEnvironment configures a real filesystem in a temp directory
func (env *TestEnvironment) setupIsolatedEnvironment() {
	tempDir := env.t.TempDir()

	env.SourceDir = filepath.Join(tempDir, "mods")
	env.GameDir = filepath.Join(tempDir, "game", "Mods")
	env.HomeDir = filepath.Join(tempDir, "home")

	env.FS = filesystem.NewOS()

	for _, dir := range []string{env.SourceDir, env.GameDir, env.HomeDir} {
		if err := env.FS.MkdirAll(dir, 0o755); err != nil {
			env.t.Fatalf("Failed to create %s: %v", dir, err)
		}
	}
}

// SourcePath returns the full path of a mod in the source directory
func (env *TestEnvironment) SourcePath(name string) string {
	return filepath.Join(env.SourceDir, name)
}

// GamePath returns the full path of an entry in the game directory
func (env *TestEnvironment) GamePath(name string) string {
	return filepath.Join(env.GameDir, name)
}

// AddModFile creates a file mod in the source directory
func (env *TestEnvironment) AddModFile(name, content string) string {
	env.t.Helper()
	path := env.SourcePath(name)
	if err := env.FS.WriteFile(path, []byte(content), 0o644); err != nil {
		env.t.Fatalf("Failed to write mod file %s: %v", name, err)
	}
	return path
}

// AddModDir creates a directory mod with the given files (relative
// path -> content) in the source directory
func (env *TestEnvironment) AddModDir(name string, files map[string]string) string {
	env.t.Helper()
	path := env.SourcePath(name)
	if err := env.FS.MkdirAll(path, 0o755); err != nil {
		env.t.Fatalf("Failed to create mod directory %s: %v", name, err)
	}
	for rel, content := range files {
		full := filepath.Join(path, rel)
		if dir := filepath.Dir(full); dir != path {
			if err := env.FS.MkdirAll(dir, 0o755); err != nil {
				env.t.Fatalf("Failed to create %s: %v", dir, err)
			}
		}
		if err := env.FS.WriteFile(full, []byte(content), 0o644); err != nil {
			env.t.Fatalf("Failed to write %s: %v", full, err)
		}
	}
	return path
}

// LinkMod links a mod into the game directory, as an install would
func (env *TestEnvironment) LinkMod(name string) {
	env.t.Helper()
	if err := env.FS.Symlink(env.SourcePath(name), env.GamePath(name)); err != nil {
		env.t.Fatalf("Failed to link mod %s: %v", name, err)
	}
}

// AddDanglingLink creates a game-directory link under the given name
// pointing at a path that does not exist
func (env *TestEnvironment) AddDanglingLink(name string) {
	env.t.Helper()
	target := env.SourcePath("missing-" + name)
	if err := env.FS.Symlink(target, env.GamePath(name)); err != nil {
		env.t.Fatalf("Failed to create dangling link %s: %v", name, err)
	}
}

// AddForeignFile creates a plain, unmanaged file in the game directory
func (env *TestEnvironment) AddForeignFile(name, content string) {
	env.t.Helper()
	if err := env.FS.WriteFile(env.GamePath(name), []byte(content), 0o644); err != nil {
		env.t.Fatalf("Failed to write foreign file %s: %v", name, err)
	}
}

// WriteConfig persists env.Config to the environment's config file so
// loading code finds it. Requires EnvIsolated; the loader reads the real
// filesystem.
func (env *TestEnvironment) WriteConfig() {
	env.t.Helper()
	if env.Type != EnvIsolated {
		env.t.Fatal("WriteConfig requires EnvIsolated")
	}
	if err := config.Save(env.Paths, env.Config); err != nil {
		env.t.Fatalf("Failed to write config: %v", err)
	}
}
