// Package paths provides centralized path handling for modlink.
// It implements XDG Base Directory specification compliance and
// provides a consistent API for all path operations in the codebase.
package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"

	"github.com/arthur-debert/modlink/pkg/errors"
)

// Environment variable names
const (
	// EnvModlinkDataDir overrides the XDG data directory for modlink
	EnvModlinkDataDir = "MODLINK_DATA_DIR"

	// EnvModlinkConfigDir overrides the XDG config directory for modlink
	EnvModlinkConfigDir = "MODLINK_CONFIG_DIR"

	// EnvModlinkCacheDir overrides the XDG cache directory for modlink
	EnvModlinkCacheDir = "MODLINK_CACHE_DIR"

	// EnvHome is the standard home directory variable
	EnvHome = "HOME"
)

// Default directories and files
// IMPORTANT: These constants define where modlink keeps its own files and
// are NOT user-configurable. User-configurable paths (mod directories)
// live in pkg/config instead.
const (
	// ModlinkDirName is the directory name for modlink-specific files
	ModlinkDirName = "modlink"

	// ConfigFileName is the name of the configuration file
	ConfigFileName = "config.json"

	// PresetsFileName is the name of the presets collection file
	PresetsFileName = "presets.json"

	// LogFileName is the name of the log file
	LogFileName = "modlink.log"
)

// Paths provides centralized path management for modlink
type Paths interface {
	ConfigDir() string
	DataDir() string
	CacheDir() string
	StateDir() string
	ConfigFilePath() string
	PresetsFilePath() string
	LogFilePath() string
	NormalizePath(path string) (string, error)
}

// paths provides centralized path management for modlink
type paths struct {
	// xdgData is the XDG data directory
	xdgData string

	// xdgConfig is the XDG config directory
	xdgConfig string

	// xdgCache is the XDG cache directory
	xdgCache string

	// xdgState is the XDG state directory
	xdgState string
}

// New creates a new Paths instance, resolving directories from the
// environment overrides or the XDG defaults.
func New() (Paths, error) {
	p := &paths{}
	p.setupXDGDirs()
	return p, nil
}

// setupXDGDirs initializes XDG directories, respecting environment overrides
func (p *paths) setupXDGDirs() {
	// Data directory
	if dataDir := os.Getenv(EnvModlinkDataDir); dataDir != "" {
		p.xdgData = expandHome(dataDir)
	} else {
		p.xdgData = filepath.Join(xdg.DataHome, ModlinkDirName)
	}

	// Config directory
	if configDir := os.Getenv(EnvModlinkConfigDir); configDir != "" {
		p.xdgConfig = expandHome(configDir)
	} else {
		p.xdgConfig = filepath.Join(xdg.ConfigHome, ModlinkDirName)
	}

	// Cache directory
	if cacheDir := os.Getenv(EnvModlinkCacheDir); cacheDir != "" {
		p.xdgCache = expandHome(cacheDir)
	} else {
		p.xdgCache = filepath.Join(xdg.CacheHome, ModlinkDirName)
	}

	// State directory - XDG doesn't provide StateHome, so we check manually
	if stateDir := os.Getenv("XDG_STATE_HOME"); stateDir != "" {
		p.xdgState = filepath.Join(stateDir, ModlinkDirName)
	} else {
		homeDir, _ := os.UserHomeDir()
		p.xdgState = filepath.Join(homeDir, ".local", "state", ModlinkDirName)
	}
}

// expandHome expands ~ to the home directory
func expandHome(path string) string {
	if path == "" {
		return path
	}

	if path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			// Fallback to HOME env var
			homeDir = os.Getenv(EnvHome)
			if homeDir == "" {
				// Can't expand, return as-is
				return path
			}
		}

		if len(path) == 1 {
			return homeDir
		}

		// Handle both ~/ and ~
		if path[1] == '/' || path[1] == filepath.Separator {
			return filepath.Join(homeDir, path[2:])
		}

		// ~something (not the user's home)
		return path
	}

	return path
}

// ConfigDir returns the XDG config directory for modlink
func (p *paths) ConfigDir() string {
	return p.xdgConfig
}

// DataDir returns the XDG data directory for modlink
func (p *paths) DataDir() string {
	return p.xdgData
}

// CacheDir returns the XDG cache directory for modlink
func (p *paths) CacheDir() string {
	return p.xdgCache
}

// StateDir returns the XDG state directory for modlink
func (p *paths) StateDir() string {
	return p.xdgState
}

// ConfigFilePath returns the path to the configuration file
func (p *paths) ConfigFilePath() string {
	return filepath.Join(p.xdgConfig, ConfigFileName)
}

// PresetsFilePath returns the path to the presets collection file
func (p *paths) PresetsFilePath() string {
	return filepath.Join(p.xdgData, PresetsFileName)
}

// LogFilePath returns the path to the modlink log file
// Respects XDG_STATE_HOME if set
func (p *paths) LogFilePath() string {
	return filepath.Join(p.xdgState, LogFileName)
}

// NormalizePath normalizes a path by expanding home, making it absolute,
// and cleaning it
func (p *paths) NormalizePath(path string) (string, error) {
	if path == "" {
		return "", errors.New(errors.ErrInvalidInput, "empty path")
	}

	expanded := expandHome(path)

	abs, err := filepath.Abs(expanded)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrIO, "failed to get absolute path")
	}

	return filepath.Clean(abs), nil
}

// ExpandHome is a utility function that expands ~ in paths
func ExpandHome(path string) string {
	return expandHome(path)
}

// GetHomeDirectory returns the user's home directory with proper error handling
func GetHomeDirectory() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		// Try the HOME environment variable as a fallback
		if home := os.Getenv(EnvHome); home != "" {
			return home, nil
		}
		return "", errors.Wrapf(err, errors.ErrIO, "failed to get home directory")
	}
	return homeDir, nil
}
