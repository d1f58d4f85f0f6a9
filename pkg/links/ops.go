package links

import (
	"os"

	"github.com/arthur-debert/modlink/pkg/errors"
	"github.com/arthur-debert/modlink/pkg/filesystem"
)

// Create creates the link for a target. The link path must be free;
// callers that found a stale entry remove it first.
func Create(fsys filesystem.FS, t Target) error {
	if _, err := fsys.Lstat(t.LinkPath); err == nil {
		return errors.Newf(errors.ErrAlreadyExists, "target already exists: %s", t.LinkPath)
	}
	if _, err := fsys.Stat(t.Mod.SourcePath); err != nil {
		return errors.Wrapf(err, errors.ErrNotFound, "source not found: %s", t.Mod.SourcePath)
	}
	if err := createLink(fsys, t); err != nil {
		return errors.Wrapf(err, classifyOSError(err), "failed to link %s", t.Mod.Name)
	}
	return nil
}

// RemoveEntry removes whatever occupies path, without ever recursing:
// links and files are unlinked, real directories are removed only when
// empty. A missing entry is not an error.
func RemoveEntry(fsys filesystem.FS, path string) error {
	info, err := fsys.Lstat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return errors.Wrapf(err, classifyOSError(err), "cannot inspect %s", path)
	}

	if !isLinkMode(info.Mode()) && info.IsDir() {
		// rmdir semantics: refuse anything still holding real content
		if err := fsys.Remove(path); err != nil {
			return errors.Wrapf(err, errors.ErrIO, "not a link or not empty: %s", path)
		}
		return nil
	}

	if err := fsys.Remove(path); err != nil {
		return errors.Wrapf(err, classifyOSError(err), "failed to remove %s", path)
	}
	return nil
}

// classifyOSError maps an OS error to the matching error code
func classifyOSError(err error) errors.ErrorCode {
	switch {
	case os.IsPermission(err):
		return errors.ErrPermission
	case os.IsNotExist(err):
		return errors.ErrNotFound
	default:
		return errors.ErrIO
	}
}
