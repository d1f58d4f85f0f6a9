package list

import (
	"strings"

	"github.com/arthur-debert/modlink/pkg/filesystem"
	"github.com/arthur-debert/modlink/pkg/links"
	"github.com/arthur-debert/modlink/pkg/logging"
	"github.com/arthur-debert/modlink/pkg/mods"
)

// ListOptions defines the options for the List command.
type ListOptions struct {
	// SourceDir is the directory holding the available mods
	SourceDir string
	// GameDir is the game's mods directory
	GameDir string
	// FileTypes restricts which file extensions count as mods
	FileTypes []string
	// FileSystem is the filesystem to use (optional, defaults to OS filesystem)
	FileSystem filesystem.FS
	// OnlyLinked keeps only mods that are currently linked
	OnlyLinked bool
	// OnlyBroken keeps only mods whose game entry is broken
	OnlyBroken bool
	// Filter is a case-insensitive substring match on mod names
	Filter string
}

// ModInfo is one mod with its derived link state
type ModInfo struct {
	Name   string      `json:"name"`
	Kind   mods.Kind   `json:"kind"`
	State  links.State `json:"state"`
	Detail string      `json:"detail,omitempty"`
	Source string      `json:"source"`
}

// ListResult holds the mods in display order
type ListResult struct {
	Mods []ModInfo `json:"mods"`
}

// List scans the source directory and reports every mod with its current
// link state, directories first.
func List(opts ListOptions) (*ListResult, error) {
	log := logging.GetLogger("commands.list")
	log.Debug().Str("sourceDir", opts.SourceDir).Str("filter", opts.Filter).Msg("Executing command")

	fsys := opts.FileSystem
	if fsys == nil {
		fsys = filesystem.NewOS()
	}

	resolver := links.NewResolver(fsys, opts.SourceDir, opts.GameDir, opts.FileTypes)
	targets, err := resolver.ResolveAll()
	if err != nil {
		return nil, err
	}

	result := &ListResult{Mods: make([]ModInfo, 0, len(targets))}
	for _, t := range targets {
		if opts.Filter != "" && !strings.Contains(strings.ToLower(t.Mod.Name), strings.ToLower(opts.Filter)) {
			continue
		}

		state, err := links.Classify(fsys, t)
		if err != nil {
			return nil, err
		}
		if opts.OnlyLinked && state != links.StateLinked {
			continue
		}
		if opts.OnlyBroken && state != links.StateBroken {
			continue
		}

		info := ModInfo{
			Name:   t.Mod.Name,
			Kind:   t.Mod.Kind,
			State:  state,
			Source: t.Mod.SourcePath,
		}
		if state == links.StateBroken {
			info.Detail = links.Describe(fsys, t)
		}
		result.Mods = append(result.Mods, info)
	}

	log.Info().Int("modCount", len(result.Mods)).Msg("Command finished")
	return result, nil
}
