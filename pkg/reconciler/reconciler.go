// Package reconciler drives the link state of mods toward a desired
// state. Each batch re-reads the filesystem, acts on every requested
// mod independently, and reports a per-mod outcome; one mod's failure
// never aborts the rest and nothing is rolled back.
package reconciler

import (
	"github.com/arthur-debert/modlink/pkg/errors"
	"github.com/arthur-debert/modlink/pkg/filesystem"
	"github.com/arthur-debert/modlink/pkg/links"
	"github.com/arthur-debert/modlink/pkg/logging"
	"github.com/arthur-debert/modlink/pkg/mods"
)

// Desired is the state a toggle drives mods toward
type Desired string

const (
	Install   Desired = "install"
	Uninstall Desired = "uninstall"
)

// Status is the outcome class for one mod
type Status string

const (
	// StatusOK means the action was performed
	StatusOK Status = "ok"

	// StatusSkipped means the mod already was in the desired state
	StatusSkipped Status = "skipped"

	// StatusFailed means the action could not be performed
	StatusFailed Status = "failed"
)

// Action is what the reconciler did (or would do) for one mod
type Action string

const (
	ActionLink   Action = "link"
	ActionRelink Action = "relink"
	ActionUnlink Action = "unlink"
	ActionNone   Action = "none"
)

// ItemResult is the outcome for a single mod
type ItemResult struct {
	Name    string           `json:"name"`
	Status  Status           `json:"status"`
	Action  Action           `json:"action"`
	Reason  errors.ErrorCode `json:"reason,omitempty"` // set when Status is failed
	Message string           `json:"message,omitempty"`
}

// Result is the outcome of one toggle batch, in caller order
type Result struct {
	Desired Desired      `json:"desired"`
	DryRun  bool         `json:"dry_run"`
	Items   []ItemResult `json:"items"`
}

// Counts tallies the items by status
func (r *Result) Counts() (ok, skipped, failed int) {
	for _, item := range r.Items {
		switch item.Status {
		case StatusOK:
			ok++
		case StatusSkipped:
			skipped++
		case StatusFailed:
			failed++
		}
	}
	return ok, skipped, failed
}

// HasFailures reports whether any item failed
func (r *Result) HasFailures() bool {
	_, _, failed := r.Counts()
	return failed > 0
}

// Reconciler toggles mods between installed and uninstalled
type Reconciler struct {
	fs        filesystem.FS
	resolver  *links.Resolver
	sourceDir string
	gameDir   string
	fileTypes []string

	// DryRun computes outcomes without touching the filesystem
	DryRun bool
}

// New creates a reconciler for the given directory pair
func New(fsys filesystem.FS, sourceDir, gameDir string, fileTypes []string) *Reconciler {
	return &Reconciler{
		fs:        fsys,
		resolver:  links.NewResolver(fsys, sourceDir, gameDir, fileTypes),
		sourceDir: sourceDir,
		gameDir:   gameDir,
		fileTypes: fileTypes,
	}
}

// Toggle drives the named mods toward the desired state. Names are
// processed independently and in caller order. The returned error is
// reserved for fatal preconditions: an unusable source or game
// directory aborts the whole batch before any mod is touched.
func (r *Reconciler) Toggle(names []string, desired Desired) (*Result, error) {
	logger := logging.GetLogger("reconciler")
	defer logging.LogOperationStart(logger, string(desired))()

	if _, err := r.fs.Stat(r.sourceDir); err != nil {
		return nil, errors.Wrapf(err, errors.ErrSourceDirMissing, "mods source directory %s is not accessible", r.sourceDir)
	}
	if _, err := r.fs.Stat(r.gameDir); err != nil {
		return nil, errors.Wrapf(err, errors.ErrGameDirMissing, "game mods directory %s is not accessible", r.gameDir)
	}

	entries, err := mods.Scan(r.fs, r.sourceDir, r.fileTypes)
	if err != nil {
		return nil, err
	}

	result := &Result{Desired: desired, DryRun: r.DryRun, Items: make([]ItemResult, 0, len(names))}
	for _, name := range names {
		item := r.toggleOne(entries, name, desired)
		logger.Debug().
			Str("mod", name).
			Str("status", string(item.Status)).
			Str("action", string(item.Action)).
			Msg("Toggled mod")
		result.Items = append(result.Items, item)
	}

	ok, skipped, failed := result.Counts()
	logger.Info().
		Str("desired", string(desired)).
		Int("ok", ok).
		Int("skipped", skipped).
		Int("failed", failed).
		Bool("dryRun", r.DryRun).
		Msg("Toggle finished")

	return result, nil
}

// toggleOne computes and applies the action for a single mod
func (r *Reconciler) toggleOne(entries []mods.ModEntry, name string, desired Desired) ItemResult {
	entry, found := mods.Find(entries, name)
	if !found {
		return ItemResult{
			Name:    name,
			Status:  StatusFailed,
			Action:  ActionNone,
			Reason:  errors.ErrNotFound,
			Message: "not found in source directory",
		}
	}

	target := r.resolver.TargetFor(entry)
	state, err := links.Classify(r.fs, target)
	if err != nil {
		return failedItem(name, ActionNone, err)
	}

	switch desired {
	case Install:
		return r.installOne(target, state)
	case Uninstall:
		return r.uninstallOne(target, state)
	default:
		return ItemResult{
			Name:    name,
			Status:  StatusFailed,
			Action:  ActionNone,
			Reason:  errors.ErrInvalidInput,
			Message: "unknown desired state",
		}
	}
}

func (r *Reconciler) installOne(target links.Target, state links.State) ItemResult {
	name := target.Mod.Name

	switch state {
	case links.StateLinked:
		return ItemResult{Name: name, Status: StatusSkipped, Action: ActionNone, Message: "already installed"}

	case links.StateBroken:
		if r.DryRun {
			return ItemResult{Name: name, Status: StatusOK, Action: ActionRelink, Message: "dry run"}
		}
		if err := links.RemoveEntry(r.fs, target.LinkPath); err != nil {
			return failedItem(name, ActionRelink, err)
		}
		if err := links.Create(r.fs, target); err != nil {
			return failedItem(name, ActionRelink, err)
		}
		return ItemResult{Name: name, Status: StatusOK, Action: ActionRelink}

	default: // not linked
		if r.DryRun {
			return ItemResult{Name: name, Status: StatusOK, Action: ActionLink, Message: "dry run"}
		}
		if err := links.Create(r.fs, target); err != nil {
			return failedItem(name, ActionLink, err)
		}
		return ItemResult{Name: name, Status: StatusOK, Action: ActionLink}
	}
}

func (r *Reconciler) uninstallOne(target links.Target, state links.State) ItemResult {
	name := target.Mod.Name

	if state == links.StateNotLinked {
		return ItemResult{Name: name, Status: StatusSkipped, Action: ActionNone, Message: "not installed"}
	}

	if r.DryRun {
		return ItemResult{Name: name, Status: StatusOK, Action: ActionUnlink, Message: "dry run"}
	}
	if err := links.RemoveEntry(r.fs, target.LinkPath); err != nil {
		return failedItem(name, ActionUnlink, err)
	}
	return ItemResult{Name: name, Status: StatusOK, Action: ActionUnlink}
}

func failedItem(name string, action Action, err error) ItemResult {
	return ItemResult{
		Name:    name,
		Status:  StatusFailed,
		Action:  action,
		Reason:  errors.GetErrorCode(err),
		Message: err.Error(),
	}
}
