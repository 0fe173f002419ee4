package metadata

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// LoadFile loads and parses a module description file from the given path.
// Files with a .toml extension are parsed as TOML, everything else as YAML.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read description file %s: %w", path, err)
	}

	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return ParseTOML(data)
	}

	return Parse(data)
}

// Parse parses YAML data into a File.
func Parse(data []byte) (*File, error) {
	var f File

	err := yaml.Unmarshal(data, &f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse description YAML: %w", err)
	}

	// Apply defaults and normalize
	applyDefaults(&f)

	return &f, nil
}

// ParseTOML parses TOML data into a File.
//
// The document is decoded generically and re-encoded as YAML so both formats
// share one set of reference unmarshalers.
func ParseTOML(data []byte) (*File, error) {
	var doc map[string]any

	err := toml.Unmarshal(data, &doc)
	if err != nil {
		return nil, fmt.Errorf("failed to parse description TOML: %w", err)
	}

	bridged, err := yaml.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to normalize description TOML: %w", err)
	}

	return Parse(bridged)
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(f *File) {
	if f.Version == "" {
		f.Version = "1"
	}

	for i := range f.Modules {
		m := &f.Modules[i]
		if m.Type == nil {
			m.Type = &RefSpec{Value: m.Name}
		}

		if m.InternalType == "" {
			m.InternalType = m.Name
		}

		if m.AdjacentType == "" {
			m.AdjacentType = m.Name
		}
	}
}

// Marshal serializes a File to YAML.
func Marshal(f *File) ([]byte, error) {
	return yaml.Marshal(f)
}

// WriteFile writes a File to the given path as YAML.
func WriteFile(f *File, path string) error {
	data, err := Marshal(f)
	if err != nil {
		return fmt.Errorf("failed to marshal description: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write description file %s: %w", path, err)
	}

	return nil
}
