// Package open launches the system file browser on a directory.
package open

import (
	"os/exec"
	"runtime"

	"github.com/arthur-debert/modlink/pkg/errors"
	"github.com/arthur-debert/modlink/pkg/filesystem"
	"github.com/arthur-debert/modlink/pkg/logging"
	"github.com/arthur-debert/modlink/pkg/paths"
)

// Folder opens the given directory in the system file browser. The
// directory is created first when missing, so the browser never lands
// on a dead path.
func Folder(fsys filesystem.FS, dir string) error {
	logger := logging.GetLogger("open")

	if dir == "" {
		return errors.New(errors.ErrInvalidInput, "path is empty")
	}
	dir = paths.ExpandHome(dir)

	if err := fsys.MkdirAll(dir, 0o755); err != nil {
		return errors.Wrapf(err, errors.ErrIO, "cannot create directory %s", dir)
	}

	args := browserArgs(runtime.GOOS, dir)
	logger.Debug().Strs("args", args).Msg("Opening file browser")

	// Fire and forget; the browser outlives us
	cmd := exec.Command(args[0], args[1:]...)
	if err := cmd.Start(); err != nil {
		return errors.Wrapf(err, errors.ErrIO, "cannot open %s in file browser", dir)
	}
	return nil
}

// browserArgs returns the platform's open-in-browser command line
func browserArgs(goos, dir string) []string {
	switch goos {
	case "windows":
		// start treats its first quoted argument as a window title
		return []string{"cmd", "/c", "start", "", dir}
	case "darwin":
		return []string{"open", dir}
	default:
		return []string{"xdg-open", dir}
	}
}
