package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/arthur-debert/modlink/pkg/errors"
	"github.com/arthur-debert/modlink/pkg/filesystem"
	"github.com/arthur-debert/modlink/pkg/paths"
)

// Save persists the configuration to the user's config file. The format
// follows the existing file: a config.toml is rewritten as TOML, anything
// else as indented JSON.
func Save(p paths.Paths, cfg *Config) error {
	cfg.FileTypes = NormalizeFileTypes(cfg.FileTypes)

	path := p.ConfigFilePath()
	asTOML := false

	// Keep the user's chosen format when only a TOML file exists
	tomlPath := filepath.Join(p.ConfigDir(), TOMLFileName)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if _, tomlErr := os.Stat(tomlPath); tomlErr == nil {
			path = tomlPath
			asTOML = true
		}
	}

	var (
		data []byte
		err  error
	)
	if asTOML {
		data, err = toml.Marshal(cfg)
	} else {
		data, err = json.MarshalIndent(cfg, "", "  ")
		if err == nil {
			data = append(data, '\n')
		}
	}
	if err != nil {
		return errors.Wrap(err, errors.ErrInternal, "failed to marshal configuration")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.Wrapf(err, errors.ErrIO, "failed to create config directory %s", filepath.Dir(path))
	}

	if err := filesystem.WriteFileAtomic(filesystem.NewOS(), path, data, 0644); err != nil {
		return errors.Wrapf(err, errors.ErrIO, "failed to write config file %s", path)
	}

	return nil
}
