package preset

import (
	"github.com/arthur-debert/modlink/pkg/links"
	"github.com/arthur-debert/modlink/pkg/logging"
	"github.com/arthur-debert/modlink/pkg/presets"
	"github.com/arthur-debert/modlink/pkg/reconciler"
)

// ApplyOptions extends Options with apply-specific switches
type ApplyOptions struct {
	Options

	// Exact also uninstalls every linked mod not in the preset
	Exact bool
	// DryRun computes outcomes without touching the filesystem
	DryRun bool
}

// Apply drives the link state toward the named preset. In additive mode
// only the preset's members are installed; in exact mode everything
// linked outside the preset is uninstalled afterwards.
func Apply(opts ApplyOptions, name string) (*presets.ApplyResult, error) {
	log := logging.GetLogger("commands.preset")
	log.Debug().
		Str("op", "apply").
		Str("preset", name).
		Bool("exact", opts.Exact).
		Bool("dryRun", opts.DryRun).
		Msg("Executing command")

	preset, err := opts.store().Get(name)
	if err != nil {
		return nil, err
	}

	fsys := opts.fs()
	rec := reconciler.New(fsys, opts.SourceDir, opts.GameDir, opts.FileTypes)
	rec.DryRun = opts.DryRun
	insp := links.NewInspector(fsys, opts.SourceDir, opts.GameDir, opts.FileTypes)

	mode := presets.Additive
	if opts.Exact {
		mode = presets.Exact
	}

	result, err := presets.Apply(rec, insp, preset, mode)
	if err != nil {
		return nil, err
	}

	ok, skipped, failed := result.Counts()
	log.Info().Int("ok", ok).Int("skipped", skipped).Int("failed", failed).Msg("Command finished")
	return result, nil
}
