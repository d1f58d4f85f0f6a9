package presets

import (
	"gopkg.in/yaml.v3"

	"github.com/arthur-debert/modlink/pkg/errors"
)

// exportDoc is the portable YAML shape for a single preset
type exportDoc struct {
	Name string   `yaml:"name"`
	Mods []string `yaml:"mods"`
}

// Export renders the named preset as a portable YAML document, for
// sharing a selection between machines or users.
func (s *Store) Export(name string) ([]byte, error) {
	preset, err := s.Get(name)
	if err != nil {
		return nil, err
	}
	data, err := yaml.Marshal(exportDoc{Name: preset.Name, Mods: preset.Mods})
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to marshal preset")
	}
	return data, nil
}

// Import reads a YAML document produced by Export and saves it into the
// collection, overwriting any preset with the same name.
func (s *Store) Import(data []byte) (Preset, error) {
	var doc exportDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Preset{}, errors.Wrap(err, errors.ErrInvalidInput, "not a valid preset document")
	}
	return s.Save(doc.Name, doc.Mods)
}
