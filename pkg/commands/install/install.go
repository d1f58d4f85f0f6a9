package install

import (
	"github.com/arthur-debert/modlink/pkg/errors"
	"github.com/arthur-debert/modlink/pkg/filesystem"
	"github.com/arthur-debert/modlink/pkg/logging"
	"github.com/arthur-debert/modlink/pkg/mods"
	"github.com/arthur-debert/modlink/pkg/reconciler"
)

// InstallOptions defines the options for the Install command.
type InstallOptions struct {
	// SourceDir is the directory holding the available mods
	SourceDir string
	// GameDir is the game's mods directory
	GameDir string
	// FileTypes restricts which file extensions count as mods
	FileTypes []string
	// FileSystem is the filesystem to use (optional, defaults to OS filesystem)
	FileSystem filesystem.FS
	// Names are the mods to install, in the order given
	Names []string
	// All installs every mod in the source directory instead of Names
	All bool
	// DryRun computes outcomes without touching the filesystem
	DryRun bool
}

// Install links the requested mods into the game directory. Mods already
// linked are skipped; broken entries are replaced with fresh links.
func Install(opts InstallOptions) (*reconciler.Result, error) {
	log := logging.GetLogger("commands.install")
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
	result, err := rec.Toggle(names, reconciler.Install)
	if err != nil {
		return nil, err
	}

	ok, skipped, failed := result.Counts()
	log.Info().Int("ok", ok).Int("skipped", skipped).Int("failed", failed).Msg("Command finished")
	return result, nil
}
