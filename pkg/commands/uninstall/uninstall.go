package uninstall

import (
	"github.com/arthur-debert/modlink/pkg/errors"
	"github.com/arthur-debert/modlink/pkg/filesystem"
	"github.com/arthur-debert/modlink/pkg/logging"
	"github.com/arthur-debert/modlink/pkg/mods"
	"github.com/arthur-debert/modlink/pkg/reconciler"
)

// UninstallOptions defines the options for the Uninstall command.
type UninstallOptions struct {
	// SourceDir is the directory holding the available mods
	SourceDir string
	// GameDir is the game's mods directory
	GameDir string
	// FileTypes restricts which file extensions count as mods
	FileTypes []string
	// FileSystem is the filesystem to use (optional, defaults to OS filesystem)
	FileSystem filesystem.FS
	// Names are the mods to uninstall, in the order given
	Names []string
	// All uninstalls every mod in the source directory instead of Names
	All bool
	// DryRun computes outcomes without touching the filesystem
	DryRun bool
}

// Uninstall removes the requested mods' game entries. Mods that are not
// linked are skipped; broken entries are removed like live ones.
func Uninstall(opts UninstallOptions) (*reconciler.Result, error) {
	log := logging.GetLogger("commands.uninstall")
	log.Debug().
		Strs("names", opts.Names).
		Bool("all", opts.All).
		Bool("dryRun", opts.DryRun).
		Msg("Executing command")

	fsys := opts.FileSystem
	if fsys == nil {
		fsys = filesystem.NewOS()
	}

	names := opts.Names
	if opts.All {
		entries, err := mods.Scan(fsys, opts.SourceDir, opts.FileTypes)
		if err != nil {
			return nil, err
		}
		names = mods.Names(entries)
	}
	if len(names) == 0 {
		return nil, errors.New(errors.ErrInvalidInput, "no mods specified")
	}

	rec := reconciler.New(fsys, opts.SourceDir, opts.GameDir, opts.FileTypes)
	rec.DryRun = opts.DryRun
	result, err := rec.Toggle(names, reconciler.Uninstall)
	if err != nil {
		return nil, err
	}

	ok, skipped, failed := result.Counts()
	log.Info().Int("ok", ok).Int("skipped", skipped).Int("failed", failed).Msg("Command finished")
	return result, nil
}
