package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/arthur-debert/modlink/pkg/commands/preset"
	"github.com/arthur-debert/modlink/pkg/presets"
	"github.com/arthur-debert/modlink/pkg/style"
)

// presetKeyMap adds the preset-only actions to the shared list keys
type presetKeyMap struct {
	Apply key.Binding
	Exact key.Binding
	Save  key.Binding
	Del   key.Binding
}

var presetKeys = presetKeyMap{
	Apply: key.NewBinding(
		key.WithKeys("enter", "a"),
		key.WithHelp("enter/a", "apply"),
	),
	Exact: key.NewBinding(
		key.WithKeys("x"),
		key.WithHelp("x", "apply exact"),
	),
	Save: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "save current"),
	),
	Del: key.NewBinding(
		key.WithKeys("d"),
		key.WithHelp("d", "delete"),
	),
}

// presetsModel is the preset view: saved selections that can be
// applied, deleted, or captured from the current link state
type presetsModel struct {
	opts  Options
	rows  []presets.Preset
	pager *paginator

	naming    bool
	nameInput textinput.Model

	message    string
	messageErr bool
}

func newPresetsModel(opts Options) *presetsModel {
	nameInput := textinput.New()
	nameInput.Placeholder = "preset name"
	nameInput.CharLimit = 64

	return &presetsModel{
		opts:      opts,
		pager:     newPaginator(pageSize),
		nameInput: nameInput,
	}
}

type presetsLoadedMsg struct {
	presets []presets.Preset
}

type presetAppliedMsg struct {
	result *presets.ApplyResult
}

type presetSavedMsg struct {
	preset presets.Preset
}

type presetDeletedMsg struct {
	name string
}

// Init loads the saved presets
func (m *presetsModel) Init() tea.Cmd {
	m.message = ""
	return m.load
}

func (m *presetsModel) options() preset.Options {
	return preset.Options{
		PresetsFile: m.opts.Paths.PresetsFilePath(),
		SourceDir:   m.opts.Config.SourceDir,
		GameDir:     m.opts.Config.GameDir,
		FileTypes:   m.opts.Config.FileTypes,
		FileSystem:  m.opts.fs(),
	}
}

func (m *presetsModel) load() tea.Msg {
	rows, err := preset.List(m.options())
	if err != nil {
		return errMsg{err}
	}
	return presetsLoadedMsg{presets: rows}
}

func (m *presetsModel) apply(name string, exact bool) tea.Cmd {
	return func() tea.Msg {
		result, err := preset.Apply(preset.ApplyOptions{
			Options: m.options(),
			Exact:   exact,
		}, name)
		if err != nil {
			return errMsg{err}
		}
		return presetAppliedMsg{result: result}
	}
}

func (m *presetsModel) saveCurrent(name string) tea.Cmd {
	return func() tea.Msg {
		saved, err := preset.Save(m.options(), name, nil)
		if err != nil {
			return errMsg{err}
		}
		return presetSavedMsg{preset: saved}
	}
}

func (m *presetsModel) delete(name string) tea.Cmd {
	return func() tea.Msg {
		outcomes := preset.Delete(m.options(), []string{name})
		if len(outcomes) == 1 && !outcomes[0].Deleted {
			return errMsg{fmt.Errorf("%s", outcomes[0].Message)}
		}
		return presetDeletedMsg{name: name}
	}
}

// Update handles messages for the presets view
func (m *presetsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case presetsLoadedMsg:
		m.rows = msg.presets
		m.pager.SetTotal(len(m.rows))
		return m, nil

	case presetAppliedMsg:
		ok, skipped, failed := msg.result.Counts()
		m.message = fmt.Sprintf("Applied %s: %d changed, %d skipped, %d failed",
			msg.result.Preset, ok, skipped, failed)
		m.messageErr = failed > 0
		return m, m.load

	case presetSavedMsg:
		m.message = fmt.Sprintf("Saved %s with %d mods", msg.preset.Name, len(msg.preset.Mods))
		m.messageErr = false
		return m, m.load

	case presetDeletedMsg:
		m.message = fmt.Sprintf("Deleted %s", msg.name)
		m.messageErr = false
		return m, m.load

	case errMsg:
		m.message = msg.err.Error()
		m.messageErr = true
		return m, nil

	case tea.KeyMsg:
		if m.naming {
			return m.updateNaming(msg)
		}

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

		case key.Matches(msg, presetKeys.Save):
			m.naming = true
			m.nameInput.SetValue("")
			m.nameInput.Focus()
			return m, textinput.Blink

		case key.Matches(msg, presetKeys.Exact):
			if p, ok := m.selected(); ok {
				return m, m.apply(p.Name, true)
			}
			return m, nil

		case key.Matches(msg, presetKeys.Del):
			if p, ok := m.selected(); ok {
				return m, m.delete(p.Name)
			}
			return m, nil

		case key.Matches(msg, presetKeys.Apply):
			if p, ok := m.selected(); ok {
				return m, m.apply(p.Name, false)
			}
			return m, nil
		}
	}

	return m, nil
}

// updateNaming routes keys to the name prompt while it is open
func (m *presetsModel) updateNaming(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.naming = false
		m.nameInput.Blur()
		return m, nil
	case tea.KeyEnter:
		name := strings.TrimSpace(m.nameInput.Value())
		m.naming = false
		m.nameInput.Blur()
		if name == "" {
			return m, nil
		}
		return m, m.saveCurrent(name)
	}

	var cmd tea.Cmd
	m.nameInput, cmd = m.nameInput.Update(msg)
	return m, cmd
}

func (m *presetsModel) selected() (presets.Preset, bool) {
	cursor := m.pager.Cursor()
	if cursor < 0 || cursor >= len(m.rows) {
		return presets.Preset{}, false
	}
	return m.rows[cursor], true
}

// View renders the presets view
func (m *presetsModel) View() string {
	var b strings.Builder

	b.WriteString(style.TitleStyle.Render("Presets"))
	b.WriteString("\n")

	if m.naming {
		b.WriteString("Save the currently linked mods as:\n")
		b.WriteString(m.nameInput.View())
		b.WriteString("\n\n")
		b.WriteString(renderHelpLine([]helpPair{
			{"enter", "save"},
			{"esc", "cancel"},
		}))
		return b.String()
	}

	if len(m.rows) == 0 {
		b.WriteString(style.MutedStyle.Render("No presets saved. Press s to capture the current setup."))
		b.WriteString("\n")
	}

	start, end := m.pager.VisibleRange()
	for i := start; i < end; i++ {
		p := m.rows[i]
		marker := "  "
		if i == m.pager.Cursor() {
			marker = style.PresetStyle.Render("> ")
		}
		b.WriteString(marker)
		b.WriteString(style.PresetStyle.Render(p.Name))
		b.WriteString(style.MutedStyle.Render(fmt.Sprintf(" (%d mods)", len(p.Mods))))
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
		{"enter/a", "apply"},
		{"x", "apply exact"},
		{"s", "save current"},
		{"d", "delete"},
		{"esc", "back"},
		{"q", "quit"},
	}))

	return b.String()
}
