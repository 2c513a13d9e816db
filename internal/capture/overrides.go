package capture

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// OverridesFile is the YAML document that extends the classification table.
//
//	version: "1"
//	types:
//	  - type: "struct timespec *"
//	    func: linx_ringbuf_store_u64
//	    storage: "uint64_t *"
type OverridesFile struct {
	Version string          `yaml:"version"`
	Types   []OverrideEntry `yaml:"types"`
}

// OverrideEntry maps one declared type to a capture entry.
type OverrideEntry struct {
	Type    string `yaml:"type"`
	Func    string `yaml:"func"`
	Storage string `yaml:"storage"`
}

// LoadOverrides reads and parses a YAML overrides file.
func LoadOverrides(path string) (map[string]Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read overrides file %s: %w", path, err)
	}

	return ParseOverrides(data)
}

// ParseOverrides parses YAML override data into table entries.
// Later entries for the same type win.
func ParseOverrides(data []byte) (map[string]Entry, error) {
	var of OverridesFile

	err := yaml.Unmarshal(data, &of)
	if err != nil {
		return nil, fmt.Errorf("failed to parse overrides YAML: %w", err)
	}

	if of.Version == "" {
		of.Version = "1"
	}

	if of.Version != "1" {
		return nil, fmt.Errorf("unsupported overrides version %q", of.Version)
	}

	entries := make(map[string]Entry, len(of.Types))

	for i, t := range of.Types {
		if t.Type == "" || t.Func == "" || t.Storage == "" {
			return nil, fmt.Errorf("types[%d]: type, func and storage are required", i)
		}

		entries[t.Type] = Entry{Func: t.Func, Storage: t.Storage}
	}

	return entries, nil
}
