package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// AssertLinked fails the test unless the named mod's game entry is a
// link resolving to its source path
func AssertLinked(t *testing.T, env *TestEnvironment, name string) {
	t.Helper()

	target, err := env.FS.Readlink(env.GamePath(name))
	if err != nil {
		t.Errorf("Expected %s to be linked: %v", name, err)
		return
	}
	if filepath.Clean(target) != filepath.Clean(env.SourcePath(name)) {
		t.Errorf("Link for %s points to %s, want %s", name, target, env.SourcePath(name))
	}
}

// AssertNoEntry fails the test when anything exists at the mod's game path
func AssertNoEntry(t *testing.T, env *TestEnvironment, name string) {
	t.Helper()

	_, err := env.FS.Lstat(env.GamePath(name))
	if err == nil {
		t.Errorf("Expected no game entry for %s, found one", name)
		return
	}
	if !os.IsNotExist(err) {
		t.Errorf("Unexpected error checking %s: %v", name, err)
	}
}

// AssertEntryExists fails the test unless something exists at the mod's
// game path, link or not
func AssertEntryExists(t *testing.T, env *TestEnvironment, name string) {
	t.Helper()

	if _, err := env.FS.Lstat(env.GamePath(name)); err != nil {
		t.Errorf("Expected a game entry for %s: %v", name, err)
	}
}
