// Package repair sweeps broken links out of the game directory.
//
// A sweep removes mod-named entries that no longer resolve to their mod
// and links whose names match no mod at all. It never creates anything,
// and it never touches foreign files or directories.
package repair

import (
	"github.com/arthur-debert/modlink/pkg/errors"
	"github.com/arthur-debert/modlink/pkg/filesystem"
	"github.com/arthur-debert/modlink/pkg/links"
	"github.com/arthur-debert/modlink/pkg/logging"
)

// Status is the outcome class for one broken entry
type Status string

const (
	StatusRemoved Status = "removed"
	StatusFailed  Status = "failed"
)

// Outcome is the sweep result for one broken entry
type Outcome struct {
	Name    string           `json:"name"`
	Path    string           `json:"path"`
	Orphan  bool             `json:"orphan"`
	Status  Status           `json:"status"`
	Reason  errors.ErrorCode `json:"reason,omitempty"` // set when Status is failed
	Message string           `json:"message,omitempty"`
}

// Sweep finds every broken entry and removes it. Entries are processed
// independently; one failure never stops the rest. With dryRun set the
// filesystem is left untouched and each entry reports what would happen.
func Sweep(fsys filesystem.FS, sourceDir, gameDir string, fileTypes []string, dryRun bool) ([]Outcome, error) {
	logger := logging.GetLogger("repair")
	defer logging.LogOperationStart(logger, "sweep")()

	insp := links.NewInspector(fsys, sourceDir, gameDir, fileTypes)
	broken, err := insp.ListBroken()
	if err != nil {
		return nil, err
	}

	outcomes := make([]Outcome, 0, len(broken))
	for _, entry := range broken {
		outcome := Outcome{
			Name:   entry.Name,
			Path:   entry.Path,
			Orphan: entry.Orphan,
		}

		if dryRun {
			outcome.Status = StatusRemoved
			outcome.Message = "dry run"
			outcomes = append(outcomes, outcome)
			continue
		}

		if err := links.RemoveEntry(fsys, entry.Path); err != nil {
			outcome.Status = StatusFailed
			outcome.Reason = errors.GetErrorCode(err)
			outcome.Message = err.Error()
		} else {
			outcome.Status = StatusRemoved
			outcome.Message = entry.Detail
		}

		logger.Debug().
			Str("entry", entry.Name).
			Str("status", string(outcome.Status)).
			Bool("orphan", entry.Orphan).
			Msg("Swept broken entry")
		outcomes = append(outcomes, outcome)
	}

	logger.Info().Int("broken", len(broken)).Bool("dryRun", dryRun).Msg("Sweep finished")
	return outcomes, nil
}
