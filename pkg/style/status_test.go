package style

import (
	"errors"
	"strings"
	"testing"
)

func TestRenderModRow(t *testing.T) {
	tests := []struct {
		name     string
		row      ModRow
		contains []string
	}{
		{
			name: "linked file mod",
			row: ModRow{
				Name:   "armor.pak",
				Status: StatusLinked,
			},
			contains: []string{"armor.pak", "linked"},
		},
		{
			name: "not linked directory mod",
			row: ModRow{
				Name:      "Big-Overhaul",
				Directory: true,
				Status:    StatusNotLinked,
			},
			contains: []string{"Big-Overhaul", "not-linked"},
		},
		{
			name: "broken with detail",
			row: ModRow{
				Name:   "textures",
				Status: StatusBroken,
				Detail: "dangling link to /old/mods/textures",
			},
			contains: []string{"textures", "broken", "dangling link to /old/mods/textures"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := RenderModRow(tt.row)
			for _, expected := range tt.contains {
				if !strings.Contains(result, expected) {
					t.Errorf("Expected output to contain %q, got %q", expected, result)
				}
			}
		})
	}
}

func TestRenderModListEmpty(t *testing.T) {
	result := RenderModList(nil)
	if !strings.Contains(result, "No mods found") {
		t.Errorf("Expected 'No mods found', got %q", result)
	}
}

func TestRenderOutcomes(t *testing.T) {
	rows := []OutcomeRow{
		{Name: "armor.pak", Status: StatusOK, Message: "linked"},
		{Name: "textures", Status: StatusSkipped, Message: "already installed"},
		{Name: "missing.pak", Status: StatusFailed, Message: "not found in source directory"},
	}

	result := RenderOutcomes(rows)
	for _, expected := range []string{
		"armor.pak", "textures", "missing.pak",
		"already installed", "not found in source directory",
		"1 ok", "1 skipped", "1 failed",
	} {
		if !strings.Contains(result, expected) {
			t.Errorf("Expected output to contain %q, got:\n%s", expected, result)
		}
	}
}

func TestRenderOutcomesEmpty(t *testing.T) {
	result := RenderOutcomes(nil)
	if !strings.Contains(result, "Nothing to do") {
		t.Errorf("Expected 'Nothing to do', got %q", result)
	}
}

func TestIndicator(t *testing.T) {
	tests := []struct {
		status   Status
		contains string
	}{
		{StatusLinked, "✓"},
		{StatusOK, "✓"},
		{StatusRemoved, "✓"},
		{StatusBroken, "✗"},
		{StatusFailed, "✗"},
		{StatusNotLinked, "○"},
		{StatusSkipped, "-"},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			if !strings.Contains(Indicator(tt.status), tt.contains) {
				t.Errorf("Expected %q indicator for %s", tt.contains, tt.status)
			}
		})
	}
}

func TestRenderError(t *testing.T) {
	if result := RenderError(nil); result != "" {
		t.Errorf("Expected empty string for nil error, got %q", result)
	}

	result := RenderError(errors.New("game directory missing"))
	if !strings.Contains(result, "game directory missing") {
		t.Errorf("Expected error message in output, got %q", result)
	}
}
