package presets

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"

	"github.com/arthur-debert/modlink/pkg/errors"
	"github.com/arthur-debert/modlink/pkg/filesystem"
	"github.com/arthur-debert/modlink/pkg/logging"
)

// Store reads and writes the preset collection file
type Store struct {
	fs   filesystem.FS
	path string
}

// NewStore creates a store backed by the given collection file
func NewStore(fsys filesystem.FS, path string) *Store {
	return &Store{fs: fsys, path: path}
}

// List returns every preset, sorted by name
func (s *Store) List() ([]Preset, error) {
	collection, err := s.load()
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(collection))
	for name := range collection {
		names = append(names, name)
	}
	sort.Strings(names)

	presets := make([]Preset, len(names))
	for i, name := range names {
		presets[i] = Preset{Name: name, Mods: collection[name]}
	}
	return presets, nil
}

// Get returns the named preset
func (s *Store) Get(name string) (Preset, error) {
	collection, err := s.load()
	if err != nil {
		return Preset{}, err
	}
	modNames, ok := collection[name]
	if !ok {
		return Preset{}, errors.Newf(errors.ErrPresetNotFound, "preset %q does not exist", name)
	}
	return Preset{Name: name, Mods: modNames}, nil
}

// Save stores a preset under the given name, replacing any preset that
// already carries it. The member list is deduped and sorted.
func (s *Store) Save(name string, modNames []string) (Preset, error) {
	if err := validateName(name); err != nil {
		return Preset{}, err
	}

	collection, err := s.load()
	if err != nil {
		return Preset{}, err
	}

	preset := Preset{Name: name, Mods: normalizeMods(modNames)}
	collection[name] = preset.Mods
	if err := s.write(collection); err != nil {
		return Preset{}, err
	}

	logger := logging.GetLogger("presets")
	logger.Info().
		Str("preset", name).
		Int("mods", len(preset.Mods)).
		Msg("Saved preset")
	return preset, nil
}

// Delete removes the named preset. Deleting a preset that does not
// exist is an error, so callers can tell the user.
func (s *Store) Delete(name string) error {
	collection, err := s.load()
	if err != nil {
		return err
	}
	if _, ok := collection[name]; !ok {
		return errors.Newf(errors.ErrPresetNotFound, "preset %q does not exist", name)
	}
	delete(collection, name)
	if err := s.write(collection); err != nil {
		return err
	}

	logger := logging.GetLogger("presets")
	logger.Info().Str("preset", name).Msg("Deleted preset")
	return nil
}

// load reads the whole collection; a missing file is an empty collection
func (s *Store) load() (map[string][]string, error) {
	data, err := s.fs.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return make(map[string][]string), nil
		}
		return nil, errors.Wrapf(err, errors.ErrPresetLoad, "failed to read presets file %s", s.path)
	}

	collection := make(map[string][]string)
	if err := json.Unmarshal(data, &collection); err != nil {
		return nil, errors.Wrapf(err, errors.ErrPresetLoad, "presets file %s is not valid JSON", s.path)
	}
	return collection, nil
}

// write replaces the whole collection on disk
func (s *Store) write(collection map[string][]string) error {
	data, err := json.MarshalIndent(collection, "", "  ")
	if err != nil {
		return errors.Wrap(err, errors.ErrInternal, "failed to marshal presets")
	}
	data = append(data, '\n')

	if err := s.fs.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return errors.Wrapf(err, errors.ErrPresetSave, "failed to create presets directory")
	}
	if err := filesystem.WriteFileAtomic(s.fs, s.path, data, 0644); err != nil {
		return errors.Wrapf(err, errors.ErrPresetSave, "failed to write presets file %s", s.path)
	}
	return nil
}
