package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/arthur-debert/modlink/pkg/commands/status"
	"github.com/arthur-debert/modlink/pkg/style"
)

// menuEntry is one selectable line of the main menu
type menuEntry struct {
	label string
	open  func() tea.Msg
}

// menuModel is the main menu view
type menuModel struct {
	opts    Options
	entries []menuEntry
	cursor  int

	summary    *status.StatusResult
	summaryErr error
}

func newMenuModel(opts Options) *menuModel {
	return &menuModel{
		opts: opts,
		entries: []menuEntry{
			{"Mods", func() tea.Msg { return switchToModsMsg{} }},
			{"Presets", func() tea.Msg { return switchToPresetsMsg{} }},
			{"Broken links", func() tea.Msg { return switchToBrokenMsg{} }},
			{"Settings", func() tea.Msg { return switchToSettingsMsg{} }},
		},
	}
}

type summaryLoadedMsg struct {
	result *status.StatusResult
	err    error
}

// Init loads the status summary shown under the title
func (m *menuModel) Init() tea.Cmd {
	return func() tea.Msg {
		if err := m.opts.Config.Validate(); err != nil {
			return summaryLoadedMsg{err: err}
		}
		result, err := status.Status(status.StatusOptions{
			SourceDir:   m.opts.Config.SourceDir,
			GameDir:     m.opts.Config.GameDir,
			FileTypes:   m.opts.Config.FileTypes,
			FileSystem:  m.opts.fs(),
			ConfigFile:  m.opts.Paths.ConfigFilePath(),
			PresetsFile: m.opts.Paths.PresetsFilePath(),
		})
		return summaryLoadedMsg{result: result, err: err}
	}
}

// Update handles messages for the menu
func (m *menuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case summaryLoadedMsg:
		m.summary = msg.result
		m.summaryErr = msg.err
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, listKeys.Quit):
			return m, tea.Quit

		case key.Matches(msg, listKeys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil

		case key.Matches(msg, listKeys.Down):
			if m.cursor < len(m.entries)-1 {
				m.cursor++
			}
			return m, nil

		case key.Matches(msg, listKeys.Select):
			return m, m.entries[m.cursor].open
		}
	}

	return m, nil
}

// View renders the menu
func (m *menuModel) View() string {
	var b strings.Builder

	b.WriteString(style.TitleStyle.Render("modlink"))
	b.WriteString("\n")
	b.WriteString(m.renderSummary())
	b.WriteString("\n\n")

	for i, entry := range m.entries {
		line := "  " + entry.label
		if i == m.cursor {
			line = style.LinkStyle.Render("> " + entry.label)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(renderHelpLine([]helpPair{
		{"j/k", "navigate"},
		{"enter", "select"},
		{"q", "quit"},
	}))

	return b.String()
}

func (m *menuModel) renderSummary() string {
	if m.summaryErr != nil {
		return style.WarningStyle.Render("Not configured; start with Settings.")
	}
	if m.summary == nil {
		return style.MutedStyle.Render("Scanning...")
	}
	line := fmt.Sprintf("%d mods: %d linked, %d not linked, %d broken",
		m.summary.Total, m.summary.Linked, m.summary.NotLinked, m.summary.Broken)
	return style.MutedStyle.Render(line)
}
