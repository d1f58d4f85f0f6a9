package links

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/arthur-debert/modlink/pkg/errors"
	"github.com/arthur-debert/modlink/pkg/filesystem"
)

// Inspector derives the link state of every known mod and finds broken
// entries in the game directory. Each call re-reads both directories.
type Inspector struct {
	fs       filesystem.FS
	resolver *Resolver
}

// NewInspector creates an inspector for the given directory pair
func NewInspector(fsys filesystem.FS, sourceDir, gameDir string, fileTypes []string) *Inspector {
	return &Inspector{
		fs:       fsys,
		resolver: NewResolver(fsys, sourceDir, gameDir, fileTypes),
	}
}

// Scan returns the link state for every mod in the source directory.
// An unusable game directory is a fatal precondition, not a NotLinked
// state for everything.
func (i *Inspector) Scan() (map[string]State, error) {
	gameDir := i.resolver.GameDir()
	if _, err := i.fs.Stat(gameDir); err != nil {
		return nil, errors.Wrapf(err, errors.ErrGameDirMissing, "game mods directory %s is not accessible", gameDir)
	}

	targets, err := i.resolver.ResolveAll()
	if err != nil {
		return nil, err
	}

	states := make(map[string]State, len(targets))
	for _, t := range targets {
		state, err := Classify(i.fs, t)
		if err != nil {
			return nil, err
		}
		states[t.Mod.Name] = state
	}
	return states, nil
}

// BrokenEntry is one game-directory entry that should not be there:
// a mod-named entry that does not resolve to its mod, or a link whose
// name matches no mod at all.
type BrokenEntry struct {
	// Name is the entry's base name
	Name string `json:"name"`

	// Path is the entry's full path in the game directory
	Path string `json:"path"`

	// Orphan is true when no source mod matches the name
	Orphan bool `json:"orphan"`

	// Detail says what is wrong, for display
	Detail string `json:"detail"`
}

// ListBroken scans the game directory and returns every broken entry,
// sorted by name. Foreign entries, plain files or directories whose
// names match no mod, are never reported.
func (i *Inspector) ListBroken() ([]BrokenEntry, error) {
	targets, err := i.resolver.ResolveAll()
	if err != nil {
		return nil, err
	}
	byName := make(map[string]Target, len(targets))
	for _, t := range targets {
		byName[t.Mod.Name] = t
	}

	gameDir := i.resolver.GameDir()
	dirEntries, err := i.fs.ReadDir(gameDir)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrGameDirMissing, "game mods directory %s is not accessible", gameDir)
	}

	var broken []BrokenEntry
	for _, de := range dirEntries {
		name := de.Name()
		path := filepath.Join(gameDir, name)

		if t, known := byName[name]; known {
			state, err := Classify(i.fs, t)
			if err != nil {
				return nil, err
			}
			if state == StateBroken {
				broken = append(broken, BrokenEntry{
					Name:   name,
					Path:   path,
					Orphan: false,
					Detail: Describe(i.fs, t),
				})
			}
			continue
		}

		// No matching mod: links are stale leftovers, anything else
		// is foreign and left alone
		info, err := i.fs.Lstat(path)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrIO, "cannot inspect %s", path)
		}
		if isLinkMode(info.Mode()) {
			broken = append(broken, BrokenEntry{
				Name:   name,
				Path:   path,
				Orphan: true,
				Detail: "no matching mod in source directory",
			})
		}
	}

	sort.Slice(broken, func(a, b int) bool { return broken[a].Name < broken[b].Name })
	return broken, nil
}

// Classify derives the state of one target from the filesystem
func Classify(fsys filesystem.FS, t Target) (State, error) {
	info, err := fsys.Lstat(t.LinkPath)
	if err != nil {
		if os.IsNotExist(err) {
			return StateNotLinked, nil
		}
		return "", errors.Wrapf(err, errors.ErrIO, "cannot inspect %s", t.LinkPath)
	}

	if !isLinkMode(info.Mode()) {
		// A plain file or directory squatting the mod's name
		return StateBroken, nil
	}

	target, err := readLinkTarget(fsys, t.LinkPath)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrLinkRead, "cannot read link %s", t.LinkPath)
	}
	if filepath.Clean(target) == filepath.Clean(t.Mod.SourcePath) {
		return StateLinked, nil
	}
	return StateBroken, nil
}

// Describe explains why a mod-named entry is broken, for display
func Describe(fsys filesystem.FS, t Target) string {
	info, err := fsys.Lstat(t.LinkPath)
	if err != nil {
		return "entry vanished during inspection"
	}
	if !isLinkMode(info.Mode()) {
		return "not a link"
	}
	target, err := readLinkTarget(fsys, t.LinkPath)
	if err != nil {
		return "unreadable link"
	}
	if _, err := fsys.Stat(target); err != nil {
		return "dangling link to " + target
	}
	return "points to " + target
}
