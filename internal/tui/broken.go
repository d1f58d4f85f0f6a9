package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	cmdrepair "github.com/arthur-debert/modlink/pkg/commands/repair"
	"github.com/arthur-debert/modlink/pkg/links"
	"github.com/arthur-debert/modlink/pkg/style"
)

// sweepKey triggers the repair sweep from the broken links view
var sweepKey = key.NewBinding(
	key.WithKeys("R"),
	key.WithHelp("R", "repair all"),
)

// brokenModel lists broken game-directory entries and sweeps them
type brokenModel struct {
	opts    Options
	entries []links.BrokenEntry
	pager   *paginator

	message    string
	messageErr bool
}

func newBrokenModel(opts Options) *brokenModel {
	return &brokenModel{
		opts:  opts,
		pager: newPaginator(pageSize),
	}
}

type brokenLoadedMsg struct {
	entries []links.BrokenEntry
}

type sweptMsg struct {
	result *cmdrepair.RepairResult
}

// Init scans for broken entries
func (m *brokenModel) Init() tea.Cmd {
	m.message = ""
	return m.load
}

func (m *brokenModel) load() tea.Msg {
	insp := links.NewInspector(m.opts.fs(),
		m.opts.Config.SourceDir, m.opts.Config.GameDir, m.opts.Config.FileTypes)
	entries, err := insp.ListBroken()
	if err != nil {
		return errMsg{err}
	}
	return brokenLoadedMsg{entries: entries}
}

func (m *brokenModel) sweep() tea.Msg {
	result, err := cmdrepair.Repair(cmdrepair.RepairOptions{
		SourceDir:  m.opts.Config.SourceDir,
		GameDir:    m.opts.Config.GameDir,
		FileTypes:  m.opts.Config.FileTypes,
		FileSystem: m.opts.fs(),
	})
	if err != nil {
		return errMsg{err}
	}
	return sweptMsg{result: result}
}

// Update handles messages for the broken links view
func (m *brokenModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case brokenLoadedMsg:
		m.entries = msg.entries
		m.pager.SetTotal(len(m.entries))
		return m, nil

	case sweptMsg:
		m.message = fmt.Sprintf("Removed %d broken entries", msg.result.Removed())
		m.messageErr = msg.result.HasFailures()
		return m, m.load

	case errMsg:
		m.message = msg.err.Error()
		m.messageErr = true
		return m, nil

	case tea.KeyMsg:
		m.message = ""
		switch {
		case key.Matches(msg, listKeys.Quit):
			return m, tea.Quit

		case key.Matches(msg, listKeys.Back):
			return m, func() tea.Msg { return switchToMenuMsg{} }

		case key.Matches(msg, listKeys.Up):
			m.pager.CursorUp()
			return m, nil

		case key.Matches(msg, listKeys.Down):
			m.pager.CursorDown()
			return m, nil

		case key.Matches(msg, listKeys.PrevPage):
			m.pager.PrevPage()
			return m, nil

		case key.Matches(msg, listKeys.NextPage):
			m.pager.NextPage()
			return m, nil

		case key.Matches(msg, listKeys.Refresh):
			return m, m.load

		case key.Matches(msg, sweepKey):
			if len(m.entries) > 0 {
				return m, m.sweep
			}
			return m, nil
		}
	}

	return m, nil
}

// View renders the broken links view
func (m *brokenModel) View() string {
	var b strings.Builder

	b.WriteString(style.TitleStyle.Render("Broken links"))
	b.WriteString("\n")

	if len(m.entries) == 0 {
		b.WriteString(style.SuccessStyle.Render("Nothing broken."))
		b.WriteString("\n")
	}

	start, end := m.pager.VisibleRange()
	for i := start; i < end; i++ {
		entry := m.entries[i]
		marker := "  "
		if i == m.pager.Cursor() {
			marker = style.ErrorStyle.Render("> ")
		}
		b.WriteString(marker)
		b.WriteString(style.BrokenIndicator)
		b.WriteString(" ")
		b.WriteString(entry.Name)
		b.WriteString(style.MutedStyle.Render(" (" + entry.Detail + ")"))
		b.WriteString("\n")
	}

	if page := renderPageLine(m.pager); page != "" {
		b.WriteString(page)
		b.WriteString("\n")
	}
	if msg := renderMessage(m.message, m.messageErr); msg != "" {
		b.WriteString("\n")
		b.WriteString(msg)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(renderHelpLine([]helpPair{
		{"R", "repair all"},
		{"r", "refresh"},
		{"esc", "back"},
		{"q", "quit"},
	}))

	return b.String()
}
