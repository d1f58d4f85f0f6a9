package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/pterm/pterm"

	"github.com/arthur-debert/modlink/pkg/commands/list"
	"github.com/arthur-debert/modlink/pkg/links"
	"github.com/arthur-debert/modlink/pkg/mods"
	"github.com/arthur-debert/modlink/pkg/reconciler"
	"github.com/arthur-debert/modlink/pkg/repair"
	"github.com/arthur-debert/modlink/pkg/style"
)

// resolveFormat turns the --format flag into a concrete format and
// disables styling for plain-text output
func resolveFormat(value string) (style.Format, error) {
	format, err := style.ParseFormat(value)
	if err != nil {
		return style.FormatAuto, err
	}
	if format == style.FormatAuto {
		format = style.DetectFormat(os.Stdout)
	}
	if format == style.FormatText {
		pterm.DisableStyling()
	}
	return format, nil
}

// renderJSON writes v as indented JSON
func renderJSON(w io.Writer, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

// modRows converts list output into display rows
func modRows(infos []list.ModInfo) []style.ModRow {
	rows := make([]style.ModRow, 0, len(infos))
	for _, info := range infos {
		rows = append(rows, style.ModRow{
			Name:      info.Name,
			Directory: info.Kind == mods.KindDirectory,
			Status:    style.Status(info.State),
			Detail:    info.Detail,
		})
	}
	return rows
}

// outcomeRows converts reconciler items into display rows
func outcomeRows(items []reconciler.ItemResult) []style.OutcomeRow {
	rows := make([]style.OutcomeRow, 0, len(items))
	for _, item := range items {
		rows = append(rows, style.OutcomeRow{
			Name:    item.Name,
			Status:  style.Status(item.Status),
			Message: item.Message,
		})
	}
	return rows
}

// repairRows converts sweep outcomes into display rows
func repairRows(outcomes []repair.Outcome) []style.OutcomeRow {
	rows := make([]style.OutcomeRow, 0, len(outcomes))
	for _, outcome := range outcomes {
		rows = append(rows, style.OutcomeRow{
			Name:    outcome.Name,
			Status:  style.Status(outcome.Status),
			Message: outcome.Message,
		})
	}
	return rows
}

// brokenRows converts broken entries into display rows
func brokenRows(entries []links.BrokenEntry) []style.ModRow {
	rows := make([]style.ModRow, 0, len(entries))
	for _, entry := range entries {
		rows = append(rows, style.ModRow{
			Name:   entry.Name,
			Status: style.StatusBroken,
			Detail: entry.Detail,
		})
	}
	return rows
}
