// Package config loads and persists the modlink configuration.
//
// Configuration is resolved in layers: built-in defaults, then the user's
// config file, then MODLINK_* environment variables. The file lives in the
// XDG config directory and is JSON by default; a config.toml is accepted
// for users who prefer TOML.
package config

import (
	"strings"
)

// Config is the user-facing configuration for modlink
type Config struct {
	// SourceDir is the directory holding the available mods
	SourceDir string `koanf:"source_dir" json:"source_dir" toml:"source_dir"`

	// GameDir is the game's mods directory where links are created
	GameDir string `koanf:"game_dir" json:"game_dir" toml:"game_dir"`

	// FileTypes lists the file extensions recognized as mods.
	// Empty means every file counts; directories are always eligible.
	FileTypes []string `koanf:"file_types" json:"file_types" toml:"file_types"`
}

// Default returns the default configuration
func Default() *Config {
	return &Config{
		SourceDir: "",
		GameDir:   "",
		FileTypes: nil,
	}
}

// defaultsMap mirrors Default() in the shape koanf's confmap provider expects
func defaultsMap() map[string]interface{} {
	return map[string]interface{}{
		"source_dir": "",
		"game_dir":   "",
		"file_types": []string{},
	}
}

// NormalizeFileTypes lowercases extensions and ensures a leading dot,
// dropping empty entries. "PAK, zip" and ".pak,.zip" come out the same.
func NormalizeFileTypes(types []string) []string {
	var out []string
	for _, t := range types {
		t = strings.ToLower(strings.TrimSpace(t))
		if t == "" {
			continue
		}
		if !strings.HasPrefix(t, ".") {
			t = "." + t
		}
		out = append(out, t)
	}
	return out
}
