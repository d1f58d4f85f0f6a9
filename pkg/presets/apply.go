package presets

import (
	"sort"

	"github.com/arthur-debert/modlink/pkg/links"
	"github.com/arthur-debert/modlink/pkg/logging"
	"github.com/arthur-debert/modlink/pkg/reconciler"
)

// Mode selects how strictly a preset is applied
type Mode string

const (
	// Additive installs the preset's mods and leaves everything else
	// as it is
	Additive Mode = "additive"

	// Exact additionally uninstalls every linked mod the preset does
	// not contain, making the preset the complete installed set
	Exact Mode = "exact"
)

// ApplyResult is the outcome of applying a preset, in processing order:
// installs first, then (for exact mode) removals.
type ApplyResult struct {
	Preset string                  `json:"preset"`
	Mode   Mode                    `json:"mode"`
	DryRun bool                    `json:"dry_run"`
	Items  []reconciler.ItemResult `json:"items"`
}

// Counts tallies the items by status
func (r *ApplyResult) Counts() (ok, skipped, failed int) {
	for _, item := range r.Items {
		switch item.Status {
		case reconciler.StatusOK:
			ok++
		case reconciler.StatusSkipped:
			skipped++
		case reconciler.StatusFailed:
			failed++
		}
	}
	return ok, skipped, failed
}

// HasFailures reports whether any item failed
func (r *ApplyResult) HasFailures() bool {
	_, _, failed := r.Counts()
	return failed > 0
}

// Apply drives the filesystem toward the preset. Members missing from
// the source directory fail with NotFound; members already linked are
// skipped; applying the same preset twice changes nothing the second
// time. The error return is reserved for fatal preconditions.
func Apply(rec *reconciler.Reconciler, insp *links.Inspector, preset Preset, mode Mode) (*ApplyResult, error) {
	logger := logging.GetLogger("presets")
	logger.Info().
		Str("preset", preset.Name).
		Str("mode", string(mode)).
		Int("members", len(preset.Mods)).
		Msg("Applying preset")

	installResult, err := rec.Toggle(preset.Mods, reconciler.Install)
	if err != nil {
		return nil, err
	}

	result := &ApplyResult{
		Preset: preset.Name,
		Mode:   mode,
		DryRun: installResult.DryRun,
		Items:  installResult.Items,
	}

	if mode != Exact {
		return result, nil
	}

	states, err := insp.Scan()
	if err != nil {
		return nil, err
	}

	members := make(map[string]struct{}, len(preset.Mods))
	for _, name := range preset.Mods {
		members[name] = struct{}{}
	}

	var extras []string
	for name, state := range states {
		if state != links.StateLinked {
			continue
		}
		if _, member := members[name]; !member {
			extras = append(extras, name)
		}
	}
	sort.Strings(extras)

	if len(extras) > 0 {
		removeResult, err := rec.Toggle(extras, reconciler.Uninstall)
		if err != nil {
			return nil, err
		}
		result.Items = append(result.Items, removeResult.Items...)
	}

	return result, nil
}
