package tui

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/modlink/pkg/style"
)

// errMsg carries an operation failure into a view
type errMsg struct {
	err error
}

// noticeMsg carries a success line into a view
type noticeMsg struct {
	text string
}

// helpPair is one key/description entry in a view's help line
type helpPair struct {
	key  string
	desc string
}

// renderHelpLine renders the bottom help line of a view
func renderHelpLine(pairs []helpPair) string {
	parts := make([]string, 0, len(pairs))
	for _, p := range pairs {
		parts = append(parts, fmt.Sprintf("%s %s",
			style.Bold(p.key),
			style.MutedStyle.Render(p.desc),
		))
	}
	return strings.Join(parts, "  ")
}

// renderMessage renders a view's status line
func renderMessage(message string, isErr bool) string {
	if message == "" {
		return ""
	}
	if isErr {
		return style.ErrorStyle.Render(message)
	}
	return style.SuccessStyle.Render(message)
}

// renderPageLine renders the "page x/y" footer when there is more
// than one page
func renderPageLine(p *paginator) string {
	if p.TotalPages() <= 1 {
		return ""
	}
	return style.MutedStyle.Render(fmt.Sprintf("page %d/%d", p.CurrentPage(), p.TotalPages()))
}
