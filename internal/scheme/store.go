package scheme

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

// FormatForPath picks YAML for .yaml/.yml files and JSON otherwise.
func FormatForPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	}
	return FormatJSON
}

func Load(fs afero.Fs, path string) (Scheme, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return Scheme{}, fmt.Errorf("failed to read scheme %s: %w", path, err)
	}
	s, err := Decode(data, FormatForPath(path))
	if err != nil {
		return Scheme{}, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Save creates parent directories as needed and overwrites path.
func Save(fs afero.Fs, path string, s Scheme, format Format) error {
	data, err := Encode(s, format)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := fs.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create %s: %w", dir, err)
		}
	}
	if err := afero.WriteFile(fs, path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write scheme %s: %w", path, err)
	}
	return nil
}
