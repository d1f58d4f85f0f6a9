package cli

import (
	"github.com/arthur-debert/modlink/pkg/config"
	"github.com/arthur-debert/modlink/pkg/errors"
	"github.com/arthur-debert/modlink/pkg/filesystem"
	"github.com/arthur-debert/modlink/pkg/paths"
)

// appContext bundles what a command invocation needs. It is built fresh
// per invocation so environment overrides behave in tests and scripts.
type appContext struct {
	Paths  paths.Paths
	Config *config.Config
	FS     filesystem.FS
}

// initContext resolves paths and configuration
func initContext() (*appContext, error) {
	p, err := paths.New()
	if err != nil {
		return nil, err
	}

	cfg, err := config.Load(p)
	if err != nil {
		return nil, err
	}

	return &appContext{
		Paths:  p,
		Config: cfg,
		FS:     filesystem.NewOS(),
	}, nil
}

// ensureDirs validates that both directories are configured and creates
// them when missing, so a fresh setup works without manual mkdir. Core
// operations still treat a vanishing directory as a fatal precondition.
func (c *appContext) ensureDirs() error {
	if err := c.Config.Validate(); err != nil {
		return err
	}

	for _, dir := range []string{c.Config.SourceDir, c.Config.GameDir} {
		if err := c.FS.MkdirAll(dir, 0o755); err != nil {
			return errors.Wrapf(err, errors.ErrIO, "cannot create directory %s", dir)
		}
	}
	return nil
}
