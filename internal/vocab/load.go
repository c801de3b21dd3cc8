package vocab

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadFile reads a vocabulary override from a YAML file. Structural rule
// sections left empty in the file fall back to the built-in defaults, so
// an override can replace just the synonym tables. The result is
// validated before use.
func LoadFile(path string) (*Vocabulary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read vocabulary file %s: %w", path, err)
	}

	var v Vocabulary
	if err := yaml.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("failed to parse vocabulary YAML %s: %w", path, err)
	}

	defaults := Default()
	if len(v.Formats) == 0 {
		v.Formats = defaults.Formats
	}
	if len(v.NestedMarkers) == 0 {
		v.NestedMarkers = defaults.NestedMarkers
	}
	if len(v.NestedOverrides) == 0 {
		v.NestedOverrides = defaults.NestedOverrides
	}
	if len(v.FlatSimpleMarkers) == 0 {
		v.FlatSimpleMarkers = defaults.FlatSimpleMarkers
	}
	if len(v.FlatSimpleFullName) == 0 {
		v.FlatSimpleFullName = defaults.FlatSimpleFullName
	}
	if len(v.ObfuscatedRules) == 0 {
		v.ObfuscatedRules = defaults.ObfuscatedRules
	}

	if err := v.Validate(); err != nil {
		return nil, err
	}
	return &v, nil
}
