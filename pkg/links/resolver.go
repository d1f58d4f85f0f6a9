package links

import (
	"path/filepath"

	"github.com/arthur-debert/modlink/pkg/errors"
	"github.com/arthur-debert/modlink/pkg/filesystem"
	"github.com/arthur-debert/modlink/pkg/mods"
)

// Target is the fully resolved link target for one mod
type Target struct {
	Mod      mods.ModEntry
	LinkPath string
	Kind     LinkKind
}

// Resolver maps mod names to link targets. Resolution is a pure function
// of the current source directory contents; nothing is cached.
type Resolver struct {
	fs        filesystem.FS
	sourceDir string
	gameDir   string
	fileTypes []string
}

// NewResolver creates a resolver for the given directory pair
func NewResolver(fsys filesystem.FS, sourceDir, gameDir string, fileTypes []string) *Resolver {
	return &Resolver{
		fs:        fsys,
		sourceDir: sourceDir,
		gameDir:   gameDir,
		fileTypes: fileTypes,
	}
}

// Resolve scans the source directory and returns the target for the named
// mod. A name with no source entry yields ErrNotFound.
func (r *Resolver) Resolve(name string) (Target, error) {
	entries, err := mods.Scan(r.fs, r.sourceDir, r.fileTypes)
	if err != nil {
		return Target{}, err
	}
	entry, ok := mods.Find(entries, name)
	if !ok {
		return Target{}, errors.Newf(errors.ErrNotFound, "mod %q not found in source directory", name)
	}
	return r.TargetFor(entry), nil
}

// ResolveAll scans the source directory once and returns targets for
// every available mod, in scan order.
func (r *Resolver) ResolveAll() ([]Target, error) {
	entries, err := mods.Scan(r.fs, r.sourceDir, r.fileTypes)
	if err != nil {
		return nil, err
	}
	targets := make([]Target, len(entries))
	for i, entry := range entries {
		targets[i] = r.TargetFor(entry)
	}
	return targets, nil
}

// TargetFor builds the target for an already scanned entry. The link kind
// is decided here and nowhere else: directory mods get junctions, file
// mods get symlinks.
func (r *Resolver) TargetFor(entry mods.ModEntry) Target {
	kind := Symlink
	if entry.Kind == mods.KindDirectory {
		kind = Junction
	}
	return Target{
		Mod:      entry,
		LinkPath: filepath.Join(r.gameDir, entry.Name),
		Kind:     kind,
	}
}

// GameDir returns the game mods directory this resolver links into
func (r *Resolver) GameDir() string {
	return r.gameDir
}
