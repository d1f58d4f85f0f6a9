// Package tui implements the interactive menu: a full-screen
// application with views for mods, presets, broken links and settings.
//
// Every action triggers exactly one core operation and re-scans on
// return; nothing is cached between actions. The views share the
// cobra commands' call surface, so the menu and the CLI always agree.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/arthur-debert/modlink/pkg/config"
	"github.com/arthur-debert/modlink/pkg/filesystem"
	"github.com/arthur-debert/modlink/pkg/paths"
)

// pageSize is how many rows list views show per page
const pageSize = 20

// Options carries what the menu needs to operate
type Options struct {
	// Paths locates the config and preset files
	Paths paths.Paths

	// Config is the resolved configuration
	Config *config.Config

	// FileSystem is the filesystem to use (optional, defaults to OS filesystem)
	FileSystem filesystem.FS
}

func (o *Options) fs() filesystem.FS {
	if o.FileSystem == nil {
		return filesystem.NewOS()
	}
	return o.FileSystem
}

// Run starts the interactive menu and blocks until the user quits
func Run(opts Options) error {
	app := NewApp(opts)
	p := tea.NewProgram(app, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
