//go:build !windows

package links

import (
	"io/fs"

	"github.com/arthur-debert/modlink/pkg/filesystem"
)

// createLink creates a symbolic link for both kinds; junctions only
// exist on Windows, so directory mods get plain symlinks here.
func createLink(fsys filesystem.FS, t Target) error {
	return fsys.Symlink(t.Mod.SourcePath, t.LinkPath)
}

// isLinkMode reports whether a file mode belongs to a link
func isLinkMode(m fs.FileMode) bool {
	return m&fs.ModeSymlink != 0
}

// readLinkTarget returns the stored target of a link
func readLinkTarget(fsys filesystem.FS, path string) (string, error) {
	return fsys.Readlink(path)
}
