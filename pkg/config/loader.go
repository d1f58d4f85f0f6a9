package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	koanfjson "github.com/knadh/koanf/parsers/json"
	koanftoml "github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/arthur-debert/modlink/pkg/errors"
	"github.com/arthur-debert/modlink/pkg/paths"
)

// EnvPrefix is the prefix for environment variable overrides
const EnvPrefix = "MODLINK_"

// TOMLFileName is the alternative configuration file accepted next to
// the default JSON one
const TOMLFileName = "config.toml"

// Load resolves the configuration from defaults, the config file and
// MODLINK_* environment variables, in that order.
func Load(p paths.Paths) (*Config, error) {
	k := koanf.New(".")

	// 1. Built-in defaults
	if err := k.Load(confmap.Provider(defaultsMap(), "."), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load defaults")
	}

	// 2. Config file, if present
	if path, parser := findConfigFile(p); path != "" {
		if err := k.Load(file.Provider(path), parser); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to parse config file %s", path)
		}
	}

	// 3. Environment overrides: MODLINK_SOURCE_DIR, MODLINK_GAME_DIR, MODLINK_FILE_TYPES
	err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load env vars")
	}

	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToSliceHookFunc(","),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}

	cfg.SourceDir = paths.ExpandHome(cfg.SourceDir)
	cfg.GameDir = paths.ExpandHome(cfg.GameDir)
	cfg.FileTypes = NormalizeFileTypes(cfg.FileTypes)

	return &cfg, nil
}

// Validate checks that the directories an operation needs are configured.
// It does not check that they exist; the core operations do that themselves.
func (c *Config) Validate() error {
	if c.SourceDir == "" {
		return errors.New(errors.ErrConfigValid, "mods source directory is not set")
	}
	if c.GameDir == "" {
		return errors.New(errors.ErrConfigValid, "game mods directory is not set")
	}
	return nil
}

// findConfigFile returns the config file to load and its parser.
// config.json wins when both exist.
func findConfigFile(p paths.Paths) (string, koanf.Parser) {
	jsonPath := p.ConfigFilePath()
	if _, err := os.Stat(jsonPath); err == nil {
		return jsonPath, koanfjson.Parser()
	}
	tomlPath := filepath.Join(p.ConfigDir(), TOMLFileName)
	if _, err := os.Stat(tomlPath); err == nil {
		return tomlPath, koanftoml.Parser()
	}
	return "", nil
}
