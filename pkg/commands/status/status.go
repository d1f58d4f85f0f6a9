package status

import (
	"github.com/arthur-debert/modlink/pkg/filesystem"
	"github.com/arthur-debert/modlink/pkg/links"
	"github.com/arthur-debert/modlink/pkg/logging"
)

// StatusOptions defines the options for the Status command.
type StatusOptions struct {
	// SourceDir is the directory holding the available mods
	SourceDir string
	// GameDir is the game's mods directory
	GameDir string
	// FileTypes restricts which file extensions count as mods
	FileTypes []string
	// FileSystem is the filesystem to use (optional, defaults to OS filesystem)
	FileSystem filesystem.FS
	// ConfigFile and PresetsFile are echoed back for display
	ConfigFile  string
	PresetsFile string
}

// StatusResult summarizes the link state of the whole installation
type StatusResult struct {
	SourceDir   string `json:"source_dir"`
	GameDir     string `json:"game_dir"`
	ConfigFile  string `json:"config_file,omitempty"`
	PresetsFile string `json:"presets_file,omitempty"`

	Total     int `json:"total"`
	Linked    int `json:"linked"`
	NotLinked int `json:"not_linked"`
	Broken    int `json:"broken"`

	// BrokenEntries lists every broken game entry, orphan links included
	BrokenEntries []links.BrokenEntry `json:"broken_entries,omitempty"`
}

// Status derives the per-state mod counts and the list of broken entries.
func Status(opts StatusOptions) (*StatusResult, error) {
	log := logging.GetLogger("commands.status")
	log.Debug().Str("sourceDir", opts.SourceDir).Str("gameDir", opts.GameDir).Msg("Executing command")

	fsys := opts.FileSystem
	if fsys == nil {
		fsys = filesystem.NewOS()
	}

	insp := links.NewInspector(fsys, opts.SourceDir, opts.GameDir, opts.FileTypes)
	states, err := insp.Scan()
	if err != nil {
		return nil, err
	}
	broken, err := insp.ListBroken()
	if err != nil {
		return nil, err
	}

	result := &StatusResult{
		SourceDir:     opts.SourceDir,
		GameDir:       opts.GameDir,
		ConfigFile:    opts.ConfigFile,
		PresetsFile:   opts.PresetsFile,
		Total:         len(states),
		BrokenEntries: broken,
	}
	for _, state := range states {
		switch state {
		case links.StateLinked:
			result.Linked++
		case links.StateBroken:
			result.Broken++
		default:
			result.NotLinked++
		}
	}

	log.Info().
		Int("total", result.Total).
		Int("linked", result.Linked).
		Int("broken", len(result.BrokenEntries)).
		Msg("Command finished")
	return result, nil
}
