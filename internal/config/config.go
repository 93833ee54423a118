package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
	"github.com/xlc-dev/chromatic/internal/extract"
	"github.com/xlc-dev/chromatic/internal/log"
	"github.com/xlc-dev/chromatic/internal/scheme"
	"gopkg.in/yaml.v3"
)

const (
	appName  = "chromatic"
	fileName = "config.yaml"

	MaxColors = 64
)

// Config holds the persisted extraction settings. Command-line flags are
// applied on top of it.
type Config struct {
	Extract extract.Options `yaml:",inline"`
	Format  string          `yaml:"format"`
}

func Default() Config {
	return Config{
		Extract: extract.DefaultOptions(),
		Format:  string(scheme.FormatJSON),
	}
}

// DefaultPath is $XDG_CONFIG_HOME/chromatic/config.yaml, or the platform
// equivalent. It is empty when no config directory can be determined.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, appName, fileName)
}

// Load reads path over the defaults. A missing file is an error that
// satisfies errors.Is(err, fs.ErrNotExist).
func Load(afs afero.Fs, path string) (Config, error) {
	data, err := afero.ReadFile(afs, path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	log.Debugf("Loaded config from %s", path)
	return cfg, nil
}

// LoadOrDefault is Load, except that a missing file yields the defaults.
func LoadOrDefault(afs afero.Fs, path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	cfg, err := Load(afs, path)
	if errors.Is(err, fs.ErrNotExist) {
		log.Debugf("No config at %s, using defaults", path)
		return Default(), nil
	}
	return cfg, err
}

// Parse decodes YAML over the defaults. Unknown keys are rejected.
func Parse(data []byte) (Config, error) {
	cfg := Default()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.Extract.ColorCount < 1 || c.Extract.ColorCount > MaxColors {
		return fmt.Errorf("colors must be between 1 and %d, got %d", MaxColors, c.Extract.ColorCount)
	}
	if c.Extract.MaxIterations < 1 {
		return fmt.Errorf("iterations must be at least 1, got %d", c.Extract.MaxIterations)
	}
	if c.Extract.SampleTarget < 1 {
		return fmt.Errorf("sample_target must be at least 1, got %d", c.Extract.SampleTarget)
	}
	if _, err := scheme.ParseFormat(c.Format); err != nil {
		return err
	}
	return nil
}

// OutputFormat returns the validated output format.
func (c Config) OutputFormat() scheme.Format {
	f, err := scheme.ParseFormat(c.Format)
	if err != nil {
		return scheme.FormatJSON
	}
	return f
}
