//go:build windows

package links

import (
	"io/fs"
	"os/exec"
	"strings"

	"github.com/arthur-debert/modlink/pkg/errors"
	"github.com/arthur-debert/modlink/pkg/filesystem"
)

// createLink creates the link for a target. Directory mods use an NTFS
// junction via `cmd /c mklink /J`, which unlike symlink creation does
// not require developer mode or elevation.
func createLink(fsys filesystem.FS, t Target) error {
	if t.Kind == Junction {
		out, err := exec.Command("cmd", "/c", "mklink", "/J", t.LinkPath, t.Mod.SourcePath).CombinedOutput()
		if err != nil {
			msg := strings.TrimSpace(string(out))
			if msg == "" {
				msg = "mklink error"
			}
			return errors.Wrapf(err, errors.ErrLinkCreate, "mklink /J failed: %s", msg)
		}
		return nil
	}
	return fsys.Symlink(t.Mod.SourcePath, t.LinkPath)
}

// isLinkMode reports whether a file mode belongs to a link. Junctions
// surface as irregular files on some Go versions, so both bits count.
func isLinkMode(m fs.FileMode) bool {
	return m&(fs.ModeSymlink|fs.ModeIrregular) != 0
}

// readLinkTarget returns the stored target of a link, stripping the NT
// object path prefix junction targets carry.
func readLinkTarget(fsys filesystem.FS, path string) (string, error) {
	target, err := fsys.Readlink(path)
	if err != nil {
		return "", err
	}
	return strings.TrimPrefix(target, `\??\`), nil
}
