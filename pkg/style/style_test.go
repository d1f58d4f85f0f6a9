package style

import (
	"strings"
	"testing"
)

func TestTextHelpers(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		style    func(string) string
		contains string
	}{
		{
			name:     "bold text",
			text:     "Hello World",
			style:    Bold,
			contains: "Hello World",
		},
		{
			name:     "italic text",
			text:     "Hello World",
			style:    Italic,
			contains: "Hello World",
		},
		{
			name:     "underline text",
			text:     "Hello World",
			style:    Underline,
			contains: "Hello World",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.style(tt.text)
			if !strings.Contains(result, tt.contains) {
				t.Errorf("Expected output to contain %q, got %q", tt.contains, result)
			}
		})
	}
}

func TestIndent(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		level    int
		expected string
	}{
		{
			name:     "no indent",
			text:     "Hello",
			level:    0,
			expected: "Hello",
		},
		{
			name:     "single indent",
			text:     "Hello",
			level:    1,
			expected: "  Hello",
		},
		{
			name:     "double indent",
			text:     "Hello",
			level:    2,
			expected: "    Hello",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Indent(tt.text, tt.level)
			if result != tt.expected {
				t.Errorf("Expected %q, got %q", tt.expected, result)
			}
		})
	}
}

func TestMarkupRender(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		contains string
	}{
		{
			name:     "title tag",
			input:    "[title]modlink[/title]",
			contains: "modlink",
		},
		{
			name:     "domain tags",
			input:    "[link]armor.pak[/link] into [path]Mods[/path]",
			contains: "armor.pak",
		},
		{
			name:     "unclosed tag passes through",
			input:    "[title]unclosed",
			contains: "[title]unclosed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Render(tt.input)
			if !strings.Contains(result, tt.contains) {
				t.Errorf("Expected output to contain %q, got %q", tt.contains, result)
			}
		})
	}
}

func TestRenderTemplate(t *testing.T) {
	result := RenderTemplate("[bold]{{name}}[/bold] has {{count}} mods", map[string]string{
		"name":  "preset-pvp",
		"count": "3",
	})
	if !strings.Contains(result, "preset-pvp") {
		t.Errorf("Expected variable substitution, got %q", result)
	}
	if !strings.Contains(result, "3 mods") {
		t.Errorf("Expected count substitution, got %q", result)
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input    string
		expected Format
		wantErr  bool
	}{
		{"auto", FormatAuto, false},
		{"", FormatAuto, false},
		{"term", FormatTerminal, false},
		{"terminal", FormatTerminal, false},
		{"text", FormatText, false},
		{"plain", FormatText, false},
		{"json", FormatJSON, false},
		{"yaml", FormatAuto, true},
	}

	for _, tt := range tests {
		t.Run("input="+tt.input, func(t *testing.T) {
			result, err := ParseFormat(tt.input)
			if tt.wantErr && err == nil {
				t.Errorf("Expected error for %q", tt.input)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("Unexpected error for %q: %v", tt.input, err)
			}
			if result != tt.expected {
				t.Errorf("Expected %s, got %s", tt.expected, result)
			}
		})
	}
}

func TestFormatString(t *testing.T) {
	if FormatJSON.String() != "json" {
		t.Errorf("Expected 'json', got %q", FormatJSON.String())
	}
	if Format(99).String() != "unknown" {
		t.Errorf("Expected 'unknown' for out-of-range format")
	}
}
