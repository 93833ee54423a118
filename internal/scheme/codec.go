package scheme

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/xlc-dev/chromatic/internal/log"
	"gopkg.in/yaml.v3"
)

type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("unknown format: %s (must be 'json' or 'yaml')", name)
}

// Parse decodes an exported JSON scheme. Extra keys such as the CLI's
// "applications" block are ignored; every slot must be present as a string.
func Parse(data []byte) (Scheme, error) {
	var raw map[string]interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return Scheme{}, fmt.Errorf("failed to parse scheme JSON: %w", err)
	}
	return fromRaw(raw)
}

func ParseYAML(data []byte) (Scheme, error) {
	var raw map[string]interface{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return Scheme{}, fmt.Errorf("failed to parse scheme YAML: %w", err)
	}
	return fromRaw(raw)
}

func Decode(data []byte, format Format) (Scheme, error) {
	if format == FormatYAML {
		return ParseYAML(data)
	}
	return Parse(data)
}

func fromRaw(raw map[string]interface{}) (Scheme, error) {
	if raw == nil {
		return Scheme{}, fmt.Errorf("%w: scheme is empty", ErrMissingSlot)
	}

	var s Scheme
	for _, k := range keys {
		v, ok := raw[k]
		if !ok {
			return Scheme{}, fmt.Errorf("%w: %s", ErrMissingSlot, k)
		}
		hex, ok := v.(string)
		if !ok {
			return Scheme{}, fmt.Errorf("%w: %s is not a string", ErrMissingSlot, k)
		}
		if err := s.Set(k, hex); err != nil {
			return Scheme{}, err
		}
	}

	var ignored []string
	for k := range raw {
		if !isKey(k) {
			ignored = append(ignored, k)
		}
	}
	if len(ignored) > 0 {
		sort.Strings(ignored)
		log.Debugf("Ignoring non-color keys: %s", strings.Join(ignored, ", "))
	}

	return s, nil
}

// Encode writes the scheme with slots in wire order and hex in lowercase.
func Encode(s Scheme, format Format) ([]byte, error) {
	s = s.Normalize()
	switch format {
	case FormatYAML:
		return yaml.Marshal(s)
	case FormatJSON, "":
		out, err := json.MarshalIndent(s, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(out, '\n'), nil
	}
	return nil, fmt.Errorf("unknown format: %s", format)
}
