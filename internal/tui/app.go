package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// ViewState represents the current view
type ViewState int

const (
	ViewMenu ViewState = iota
	ViewMods
	ViewPresets
	ViewBroken
	ViewSettings
)

// View switching messages
type switchToMenuMsg struct{}
type switchToModsMsg struct{}
type switchToPresetsMsg struct{}
type switchToBrokenMsg struct{}
type switchToSettingsMsg struct{}

// App is the main menu application model
type App struct {
	opts Options

	state    ViewState
	menu     *menuModel
	mods     *modsModel
	presets  *presetsModel
	broken   *brokenModel
	settings *settingsModel

	width  int
	height int
}

// NewApp creates the menu application
func NewApp(opts Options) *App {
	return &App{
		opts:     opts,
		state:    ViewMenu,
		menu:     newMenuModel(opts),
		mods:     newModsModel(opts),
		presets:  newPresetsModel(opts),
		broken:   newBrokenModel(opts),
		settings: newSettingsModel(opts),
	}
}

// Init initializes the application
func (a *App) Init() tea.Cmd {
	return a.menu.Init()
}

// Update handles messages for the application
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case switchToMenuMsg:
		a.state = ViewMenu
		return a, a.menu.Init()

	case switchToModsMsg:
		a.state = ViewMods
		return a, a.mods.Init()

	case switchToPresetsMsg:
		a.state = ViewPresets
		return a, a.presets.Init()

	case switchToBrokenMsg:
		a.state = ViewBroken
		return a, a.broken.Init()

	case switchToSettingsMsg:
		a.state = ViewSettings
		return a, a.settings.Init()

	case settingsSavedMsg:
		// Settings change what every other view scans, so the new
		// config has to reach all of them.
		a.opts.Config = msg.config
		a.menu.opts.Config = msg.config
		a.mods.opts.Config = msg.config
		a.presets.opts.Config = msg.config
		a.broken.opts.Config = msg.config
		a.settings.opts.Config = msg.config
		a.state = ViewMenu
		return a, a.menu.Init()
	}

	// Delegate to current view
	var cmd tea.Cmd
	switch a.state {
	case ViewMenu:
		_, cmd = a.menu.Update(msg)
	case ViewMods:
		_, cmd = a.mods.Update(msg)
	case ViewPresets:
		_, cmd = a.presets.Update(msg)
	case ViewBroken:
		_, cmd = a.broken.Update(msg)
	case ViewSettings:
		_, cmd = a.settings.Update(msg)
	}

	return a, cmd
}

// View renders the current view
func (a *App) View() string {
	switch a.state {
	case ViewMods:
		return a.mods.View()
	case ViewPresets:
		return a.presets.View()
	case ViewBroken:
		return a.broken.View()
	case ViewSettings:
		return a.settings.View()
	default:
		return a.menu.View()
	}
}
