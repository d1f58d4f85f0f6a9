package style

import (
	"fmt"
	"strings"

	"github.com/pterm/pterm"
)

// Status classes for mods and per-mod operation outcomes
type Status string

const (
	StatusLinked    Status = "linked"     // Mod is linked into the game directory
	StatusNotLinked Status = "not-linked" // Mod exists in source only
	StatusBroken    Status = "broken"     // Entry exists but does not resolve to the mod
	StatusOK        Status = "ok"         // Operation succeeded
	StatusSkipped   Status = "skipped"    // Already in the desired state
	StatusFailed    Status = "failed"     // Operation failed
	StatusRemoved   Status = "removed"    // Broken entry swept away
)

// StatusStyle returns the appropriate pterm style for a status
func StatusStyle(status Status) *pterm.Style {
	switch status {
	case StatusLinked, StatusOK, StatusRemoved:
		return pterm.NewStyle(pterm.FgGreen)
	case StatusBroken, StatusFailed:
		return pterm.NewStyle(pterm.FgRed, pterm.Bold)
	case StatusSkipped:
		return pterm.NewStyle(pterm.FgYellow)
	case StatusNotLinked:
		return pterm.NewStyle(pterm.FgGray)
	default:
		return pterm.NewStyle(pterm.FgDefault)
	}
}

// Indicator returns the glyph for a status
func Indicator(status Status) string {
	switch status {
	case StatusLinked, StatusOK, StatusRemoved:
		return LinkedIndicator
	case StatusBroken, StatusFailed:
		return BrokenIndicator
	case StatusSkipped:
		return SkippedIndicator
	case StatusNotLinked:
		return NotLinkedIndicator
	default:
		return InfoIndicator
	}
}

// ModRow is one mod line in a list or status view
type ModRow struct {
	Name      string
	Directory bool   // Directory mods render with the dir style
	Status    Status // Linked, NotLinked or Broken
	Detail    string // What is wrong, for broken entries
}

// RenderModRow renders a single mod line
func RenderModRow(row ModRow) string {
	name := fmt.Sprintf("%-30s", row.Name)
	if row.Directory {
		name = DirectoryStyle.Render(name)
	} else {
		name = FileStyle.Render(name)
	}

	line := fmt.Sprintf("  %s %s %s", Indicator(row.Status), name, StatusStyle(row.Status).Sprint(string(row.Status)))
	if row.Detail != "" {
		line += " " + MutedStyle.Render("("+row.Detail+")")
	}
	return line
}

// RenderModList renders mod rows, one per line
func RenderModList(rows []ModRow) string {
	if len(rows) == 0 {
		return MutedStyle.Render("No mods found")
	}

	var result strings.Builder
	for _, row := range rows {
		result.WriteString(RenderModRow(row) + "\n")
	}
	return strings.TrimRight(result.String(), "\n")
}

// OutcomeRow is one per-mod result line after install/uninstall/repair
type OutcomeRow struct {
	Name    string
	Status  Status // OK, Skipped, Failed or Removed
	Message string // Action detail or failure reason
}

// RenderOutcomeRow renders a single outcome line
func RenderOutcomeRow(row OutcomeRow) string {
	name := fmt.Sprintf("%-30s", row.Name)
	line := fmt.Sprintf("  %s %s %s", Indicator(row.Status), name, StatusStyle(row.Status).Sprint(string(row.Status)))
	if row.Message != "" {
		line += " " + MutedStyle.Render(row.Message)
	}
	return line
}

// RenderOutcomes renders outcome rows followed by a count summary line
func RenderOutcomes(rows []OutcomeRow) string {
	if len(rows) == 0 {
		return MutedStyle.Render("Nothing to do")
	}

	counts := map[Status]int{}
	var result strings.Builder
	for _, row := range rows {
		result.WriteString(RenderOutcomeRow(row) + "\n")
		counts[row.Status]++
	}

	var parts []string
	for _, s := range []Status{StatusOK, StatusRemoved, StatusSkipped, StatusFailed} {
		if counts[s] > 0 {
			parts = append(parts, fmt.Sprintf("%d %s", counts[s], s))
		}
	}
	result.WriteString("\n" + MutedStyle.Render(strings.Join(parts, ", ")))
	return result.String()
}

// RenderError renders an error line. Structured errors carry their own
// [CODE] prefix, nothing to add here.
func RenderError(err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("%s %s", BrokenIndicator, err.Error())
}
