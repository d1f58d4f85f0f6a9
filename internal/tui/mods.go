package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/arthur-debert/modlink/pkg/commands/install"
	"github.com/arthur-debert/modlink/pkg/commands/list"
	"github.com/arthur-debert/modlink/pkg/commands/uninstall"
	"github.com/arthur-debert/modlink/pkg/links"
	"github.com/arthur-debert/modlink/pkg/mods"
	"github.com/arthur-debert/modlink/pkg/reconciler"
	"github.com/arthur-debert/modlink/pkg/style"
)

// modsModel is the mod list view: every mod with its link state,
// toggled one at a time
type modsModel struct {
	opts Options

	loading bool
	spin    spinner.Model
	rows    []list.ModInfo
	visible []list.ModInfo
	pager   *paginator

	filter    textinput.Model
	filtering bool

	message    string
	messageErr bool
}

func newModsModel(opts Options) *modsModel {
	spin := spinner.New()
	spin.Spinner = spinner.Dot
	spin.Style = style.InfoStyle

	filter := textinput.New()
	filter.Placeholder = "filter mods"
	filter.CharLimit = 64

	return &modsModel{
		opts:   opts,
		spin:   spin,
		filter: filter,
		pager:  newPaginator(pageSize),
	}
}

type modsLoadedMsg struct {
	mods []list.ModInfo
}

type toggledMsg struct {
	result *reconciler.Result
}

// Init starts a scan
func (m *modsModel) Init() tea.Cmd {
	m.loading = true
	m.message = ""
	return tea.Batch(m.spin.Tick, m.load)
}

func (m *modsModel) load() tea.Msg {
	result, err := list.List(list.ListOptions{
		SourceDir:  m.opts.Config.SourceDir,
		GameDir:    m.opts.Config.GameDir,
		FileTypes:  m.opts.Config.FileTypes,
		FileSystem: m.opts.fs(),
	})
	if err != nil {
		return errMsg{err}
	}
	return modsLoadedMsg{mods: result.Mods}
}

// toggle installs or uninstalls the selected mod depending on its state
func (m *modsModel) toggle(info list.ModInfo) tea.Cmd {
	return func() tea.Msg {
		var (
			result *reconciler.Result
			err    error
		)
		if info.State == links.StateLinked {
			result, err = uninstall.Uninstall(uninstall.UninstallOptions{
				SourceDir:  m.opts.Config.SourceDir,
				GameDir:    m.opts.Config.GameDir,
				FileTypes:  m.opts.Config.FileTypes,
				FileSystem: m.opts.fs(),
				Names:      []string{info.Name},
			})
		} else {
			result, err = install.Install(install.InstallOptions{
				SourceDir:  m.opts.Config.SourceDir,
				GameDir:    m.opts.Config.GameDir,
				FileTypes:  m.opts.Config.FileTypes,
				FileSystem: m.opts.fs(),
				Names:      []string{info.Name},
			})
		}
		if err != nil {
			return errMsg{err}
		}
		return toggledMsg{result: result}
	}
}

// Update handles messages for the mods view
func (m *modsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case modsLoadedMsg:
		m.loading = false
		m.rows = msg.mods
		m.applyFilter()
		return m, nil

	case toggledMsg:
		m.message, m.messageErr = describeToggle(msg.result)
		return m, m.load

	case errMsg:
		m.loading = false
		m.message = msg.err.Error()
		m.messageErr = true
		return m, nil

	case tea.KeyMsg:
		if m.filtering {
			return m.updateFilter(msg)
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
			return m, m.Init()

		case key.Matches(msg, listKeys.Filter):
			m.filtering = true
			m.filter.Focus()
			return m, textinput.Blink

		case key.Matches(msg, listKeys.Select):
			if info, ok := m.selected(); ok {
				return m, m.toggle(info)
			}
			return m, nil
		}
	}

	return m, nil
}

// updateFilter routes keys to the filter input while it has focus
func (m *modsModel) updateFilter(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.filtering = false
		m.filter.Blur()
		m.filter.SetValue("")
		m.applyFilter()
		return m, nil
	case tea.KeyEnter:
		m.filtering = false
		m.filter.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(msg)
	m.applyFilter()
	return m, cmd
}

// applyFilter recomputes the visible rows from the filter query
func (m *modsModel) applyFilter() {
	m.visible = filterMods(m.rows, m.filter.Value())
	m.pager.SetTotal(len(m.visible))
}

// filterMods returns rows whose name contains the query,
// case-insensitively; an empty query keeps everything
func filterMods(rows []list.ModInfo, query string) []list.ModInfo {
	if query == "" {
		return rows
	}
	query = strings.ToLower(query)
	var out []list.ModInfo
	for _, row := range rows {
		if strings.Contains(strings.ToLower(row.Name), query) {
			out = append(out, row)
		}
	}
	return out
}

func (m *modsModel) selected() (list.ModInfo, bool) {
	cursor := m.pager.Cursor()
	if cursor < 0 || cursor >= len(m.visible) {
		return list.ModInfo{}, false
	}
	return m.visible[cursor], true
}

// describeToggle turns a one-item toggle result into a status line
func describeToggle(result *reconciler.Result) (message string, isErr bool) {
	if result == nil || len(result.Items) == 0 {
		return "", false
	}
	item := result.Items[0]
	switch item.Status {
	case reconciler.StatusOK:
		if result.Desired == reconciler.Install {
			return fmt.Sprintf("Linked %s", item.Name), false
		}
		return fmt.Sprintf("Unlinked %s", item.Name), false
	case reconciler.StatusSkipped:
		return fmt.Sprintf("%s already in the desired state", item.Name), false
	default:
		return fmt.Sprintf("%s: %s", item.Name, item.Message), true
	}
}

// View renders the mods view
func (m *modsModel) View() string {
	var b strings.Builder

	b.WriteString(style.TitleStyle.Render("Mods"))
	b.WriteString("\n")

	if m.loading {
		b.WriteString(m.spin.View())
		b.WriteString(" scanning mods")
		return b.String()
	}

	if m.filtering || m.filter.Value() != "" {
		b.WriteString("/ ")
		b.WriteString(m.filter.View())
		b.WriteString("\n")
	}

	if len(m.visible) == 0 {
		b.WriteString(style.MutedStyle.Render("No mods found."))
		b.WriteString("\n")
	}

	start, end := m.pager.VisibleRange()
	for i := start; i < end; i++ {
		info := m.visible[i]
		marker := "  "
		if i == m.pager.Cursor() {
			marker = style.LinkStyle.Render("> ")
		}
		b.WriteString(marker)
		b.WriteString(style.RenderModRow(style.ModRow{
			Name:      info.Name,
			Directory: info.Kind == mods.KindDirectory,
			Status:    style.Status(info.State),
			Detail:    info.Detail,
		}))
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
		{"j/k", "navigate"},
		{"h/l", "page"},
		{"enter/space", "toggle"},
		{"/", "filter"},
		{"r", "refresh"},
		{"esc", "back"},
		{"q", "quit"},
	}))

	return b.String()
}
