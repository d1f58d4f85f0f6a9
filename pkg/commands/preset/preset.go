// Package preset implements the preset command group: named snapshots
// of mod selections that can be listed, diffed and applied.
package preset

import (
	"sort"

	"github.com/arthur-debert/modlink/pkg/filesystem"
	"github.com/arthur-debert/modlink/pkg/links"
	"github.com/arthur-debert/modlink/pkg/logging"
	"github.com/arthur-debert/modlink/pkg/mods"
	"github.com/arthur-debert/modlink/pkg/presets"
)

// Options carries what every preset operation needs. Operations that
// touch the filesystem additionally read the directory fields.
type Options struct {
	// PresetsFile is the path of the preset collection file
	PresetsFile string
	// SourceDir is the directory holding the available mods
	SourceDir string
	// GameDir is the game's mods directory
	GameDir string
	// FileTypes restricts which file extensions count as mods
	FileTypes []string
	// FileSystem is the filesystem to use (optional, defaults to OS filesystem)
	FileSystem filesystem.FS
}

func (o *Options) fs() filesystem.FS {
	if o.FileSystem == nil {
		return filesystem.NewOS()
	}
	return o.FileSystem
}

func (o *Options) store() *presets.Store {
	return presets.NewStore(o.fs(), o.PresetsFile)
}

// List returns every stored preset, sorted by name.
func List(opts Options) ([]presets.Preset, error) {
	log := logging.GetLogger("commands.preset")
	log.Debug().Str("op", "list").Msg("Executing command")
	return opts.store().List()
}

// Save stores a preset. An empty member list snapshots the mods that are
// currently linked, which is how a working setup becomes a preset.
func Save(opts Options, name string, modNames []string) (presets.Preset, error) {
	log := logging.GetLogger("commands.preset")
	log.Debug().Str("op", "save").Str("preset", name).Int("mods", len(modNames)).Msg("Executing command")

	if len(modNames) == 0 {
		linked, err := linkedNames(opts)
		if err != nil {
			return presets.Preset{}, err
		}
		modNames = linked
	}
	return opts.store().Save(name, modNames)
}

// DeleteOutcome is the per-name result of a delete batch
type DeleteOutcome struct {
	Name    string `json:"name"`
	Deleted bool   `json:"deleted"`
	Message string `json:"message,omitempty"`
}

// Delete removes the named presets. Names are processed independently;
// a missing preset is reported, not fatal.
func Delete(opts Options, names []string) []DeleteOutcome {
	log := logging.GetLogger("commands.preset")
	log.Debug().Str("op", "delete").Strs("presets", names).Msg("Executing command")

	store := opts.store()
	outcomes := make([]DeleteOutcome, 0, len(names))
	for _, name := range names {
		if err := store.Delete(name); err != nil {
			outcomes = append(outcomes, DeleteOutcome{Name: name, Message: err.Error()})
			continue
		}
		outcomes = append(outcomes, DeleteOutcome{Name: name, Deleted: true})
	}
	return outcomes
}

// DiffOutput pairs a preset with its diff against the current link state
type DiffOutput struct {
	Preset presets.Preset     `json:"preset"`
	Diff   presets.DiffResult `json:"diff"`
}

// Diff reports what applying the named preset would change.
func Diff(opts Options, name string) (*DiffOutput, error) {
	log := logging.GetLogger("commands.preset")
	log.Debug().Str("op", "diff").Str("preset", name).Msg("Executing command")

	preset, err := opts.store().Get(name)
	if err != nil {
		return nil, err
	}

	fsys := opts.fs()
	entries, err := mods.Scan(fsys, opts.SourceDir, opts.FileTypes)
	if err != nil {
		return nil, err
	}
	insp := links.NewInspector(fsys, opts.SourceDir, opts.GameDir, opts.FileTypes)
	states, err := insp.Scan()
	if err != nil {
		return nil, err
	}

	diff := presets.Diff(preset, entries, states)
	return &DiffOutput{Preset: preset, Diff: diff}, nil
}

// Export serializes the named preset as a portable YAML document.
func Export(opts Options, name string) ([]byte, error) {
	log := logging.GetLogger("commands.preset")
	log.Debug().Str("op", "export").Str("preset", name).Msg("Executing command")
	return opts.store().Export(name)
}

// Import reads an exported preset document and stores it.
func Import(opts Options, data []byte) (presets.Preset, error) {
	log := logging.GetLogger("commands.preset")
	log.Debug().Str("op", "import").Int("bytes", len(data)).Msg("Executing command")
	return opts.store().Import(data)
}

// linkedNames returns the currently linked mod names, sorted
func linkedNames(opts Options) ([]string, error) {
	insp := links.NewInspector(opts.fs(), opts.SourceDir, opts.GameDir, opts.FileTypes)
	states, err := insp.Scan()
	if err != nil {
		return nil, err
	}

	var names []string
	for name, state := range states {
		if state == links.StateLinked {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names, nil
}
