package repair

import (
	"github.com/arthur-debert/modlink/pkg/filesystem"
	"github.com/arthur-debert/modlink/pkg/logging"
	"github.com/arthur-debert/modlink/pkg/repair"
)

// RepairOptions defines the options for the Repair command.
type RepairOptions struct {
	// SourceDir is the directory holding the available mods
	SourceDir string
	// GameDir is the game's mods directory
	GameDir string
	// FileTypes restricts which file extensions count as mods
	FileTypes []string
	// FileSystem is the filesystem to use (optional, defaults to OS filesystem)
	FileSystem filesystem.FS
	// DryRun reports what would be removed without touching anything
	DryRun bool
}

// RepairResult holds the sweep outcomes in game-directory order
type RepairResult struct {
	Outcomes []repair.Outcome `json:"outcomes"`
	DryRun   bool             `json:"dry_run"`
}

// Removed counts the entries that were (or would be) swept
func (r *RepairResult) Removed() int {
	n := 0
	for _, o := range r.Outcomes {
		if o.Status == repair.StatusRemoved {
			n++
		}
	}
	return n
}

// HasFailures reports whether any entry could not be removed
func (r *RepairResult) HasFailures() bool {
	for _, o := range r.Outcomes {
		if o.Status == repair.StatusFailed {
			return true
		}
	}
	return false
}

// Repair sweeps every broken game entry: dangling or misdirected links
// under mod names and orphan links with no matching mod.
func Repair(opts RepairOptions) (*RepairResult, error) {
	log := logging.GetLogger("commands.repair")
	log.Debug().Bool("dryRun", opts.DryRun).Msg("Executing command")

	fsys := opts.FileSystem
	if fsys == nil {
		fsys = filesystem.NewOS()
	}

	outcomes, err := repair.Sweep(fsys, opts.SourceDir, opts.GameDir, opts.FileTypes, opts.DryRun)
	if err != nil {
		return nil, err
	}

	result := &RepairResult{Outcomes: outcomes, DryRun: opts.DryRun}
	log.Info().Int("removed", result.Removed()).Msg("Command finished")
	return result, nil
}
