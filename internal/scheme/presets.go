package scheme

import (
	_ "embed"
	"errors"
	"fmt"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed presets.yaml
var presetsData []byte

var ErrUnknownPreset = errors.New("unknown preset")

type Preset struct {
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
	Scheme      Scheme `json:"scheme" yaml:"scheme"`
}

type rawPreset struct {
	Name        string                 `yaml:"name"`
	Description string                 `yaml:"description"`
	Scheme      map[string]interface{} `yaml:"scheme"`
}

var (
	presetsOnce sync.Once
	presets     []Preset
	presetsErr  error
)

func loadPresets(data []byte) ([]Preset, error) {
	var raw []rawPreset
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse presets: %w", err)
	}

	out := make([]Preset, 0, len(raw))
	for _, rp := range raw {
		s, err := fromRaw(rp.Scheme)
		if err != nil {
			return nil, fmt.Errorf("preset %q: %w", rp.Name, err)
		}
		out = append(out, Preset{Name: rp.Name, Description: rp.Description, Scheme: s})
	}
	return out, nil
}

// Presets returns the bundled schemes in display order.
func Presets() ([]Preset, error) {
	presetsOnce.Do(func() {
		presets, presetsErr = loadPresets(presetsData)
	})
	if presetsErr != nil {
		return nil, presetsErr
	}
	out := make([]Preset, len(presets))
	copy(out, presets)
	return out, nil
}

// FindPreset matches names case-insensitively; "gruvbox-dark" finds "Gruvbox Dark".
func FindPreset(name string) (Preset, error) {
	all, err := Presets()
	if err != nil {
		return Preset{}, err
	}
	want := presetSlug(name)
	for _, p := range all {
		if presetSlug(p.Name) == want {
			return p, nil
		}
	}
	return Preset{}, fmt.Errorf("%w: %s", ErrUnknownPreset, name)
}

func presetSlug(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	return strings.NewReplacer(" ", "-", "_", "-").Replace(name)
}
