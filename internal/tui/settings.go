package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/arthur-debert/modlink/pkg/config"
	"github.com/arthur-debert/modlink/pkg/paths"
	"github.com/arthur-debert/modlink/pkg/style"
)

// settingsField indices
const (
	fieldSourceDir = iota
	fieldGameDir
	fieldFileTypes
	fieldCount
)

// settingsModel edits the configuration in place
type settingsModel struct {
	opts    Options
	inputs  [fieldCount]textinput.Model
	focused int

	message    string
	messageErr bool
}

func newSettingsModel(opts Options) *settingsModel {
	labels := [fieldCount]string{"mods source directory", "game mods directory", "file types (comma-separated, empty for all)"}

	m := &settingsModel{opts: opts}
	for i := range m.inputs {
		input := textinput.New()
		input.Placeholder = labels[i]
		input.CharLimit = 256
		m.inputs[i] = input
	}
	return m
}

// settingsSavedMsg tells the app a new configuration is in effect
type settingsSavedMsg struct {
	config *config.Config
}

// Init seeds the inputs from the current configuration
func (m *settingsModel) Init() tea.Cmd {
	m.message = ""
	m.inputs[fieldSourceDir].SetValue(m.opts.Config.SourceDir)
	m.inputs[fieldGameDir].SetValue(m.opts.Config.GameDir)
	m.inputs[fieldFileTypes].SetValue(strings.Join(m.opts.Config.FileTypes, ", "))
	m.setFocus(0)
	return textinput.Blink
}

func (m *settingsModel) setFocus(index int) {
	for i := range m.inputs {
		m.inputs[i].Blur()
	}
	m.focused = index
	m.inputs[m.focused].Focus()
}

// save writes the edited configuration and reports it to the app
func (m *settingsModel) save() tea.Msg {
	cfg := &config.Config{
		SourceDir: paths.ExpandHome(strings.TrimSpace(m.inputs[fieldSourceDir].Value())),
		GameDir:   paths.ExpandHome(strings.TrimSpace(m.inputs[fieldGameDir].Value())),
		FileTypes: config.NormalizeFileTypes(strings.Split(m.inputs[fieldFileTypes].Value(), ",")),
	}
	if err := cfg.Validate(); err != nil {
		return errMsg{err}
	}
	if err := config.Save(m.opts.Paths, cfg); err != nil {
		return errMsg{err}
	}
	return settingsSavedMsg{config: cfg}
}

// Update handles messages for the settings view
func (m *settingsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case errMsg:
		m.message = msg.err.Error()
		m.messageErr = true
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC:
			return m, tea.Quit

		case tea.KeyEsc:
			return m, func() tea.Msg { return switchToMenuMsg{} }

		case tea.KeyTab, tea.KeyDown:
			m.setFocus((m.focused + 1) % fieldCount)
			return m, nil

		case tea.KeyShiftTab, tea.KeyUp:
			m.setFocus((m.focused + fieldCount - 1) % fieldCount)
			return m, nil

		case tea.KeyEnter:
			return m, m.save
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focused], cmd = m.inputs[m.focused].Update(msg)
	return m, cmd
}

// View renders the settings view
func (m *settingsModel) View() string {
	labels := [fieldCount]string{"Source directory", "Game directory", "File types"}

	var b strings.Builder
	b.WriteString(style.TitleStyle.Render("Settings"))
	b.WriteString("\n")

	for i := range m.inputs {
		label := labels[i]
		if i == m.focused {
			b.WriteString(style.LinkStyle.Render(label))
		} else {
			b.WriteString(style.MutedStyle.Render(label))
		}
		b.WriteString("\n")
		b.WriteString(m.inputs[i].View())
		b.WriteString("\n\n")
	}

	if msg := renderMessage(m.message, m.messageErr); msg != "" {
		b.WriteString(msg)
		b.WriteString("\n\n")
	}

	b.WriteString(renderHelpLine([]helpPair{
		{"tab", "next field"},
		{"enter", "save"},
		{"esc", "cancel"},
	}))

	return b.String()
}
