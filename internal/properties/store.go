// Package properties loads, merges, and persists a package's property
// document.
//
// The document is a key/value mapping serialized in a human-editable
// format. Serialization goes through the koanf Parser interface so the
// on-disk format stays swappable; the default store speaks YAML and
// overrides arrive as compact JSON objects.
package properties

import (
	"fmt"
	"os"

	"github.com/google/renameio/v2"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/v2"
)

// Document is the result of loading a property document.
type Document struct {
	// Values is the parsed mapping. Never nil; empty when the document
	// is absent.
	Values map[string]any

	// Present reports whether a usable document was read from disk.
	Present bool

	// Warn carries the parse failure of a malformed document that was
	// tolerated and treated as absent. Nil for well-formed or missing
	// documents.
	Warn error
}

// Store reads and writes the property document at a fixed path.
type Store struct {
	path   string
	format koanf.Parser
}

// NewStore creates a Store for the YAML document at path.
func NewStore(path string) *Store {
	return &Store{path: path, format: yaml.Parser()}
}

// Load parses the document at the store's path.
//
// A missing file is not an error: the returned Document is simply not
// Present. Malformed content is degraded the same way, with the parse
// failure recorded in Warn so the caller can log it. Any other read
// failure is returned as an error.
func (s *Store) Load() (*Document, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Document{Values: map[string]any{}}, nil
		}
		return nil, fmt.Errorf("cannot read %s: %w", s.path, err)
	}

	values, err := s.format.Unmarshal(raw)
	if err != nil {
		return &Document{
			Values: map[string]any{},
			Warn:   fmt.Errorf("malformed property document %s: %w", s.path, err),
		}, nil
	}
	if values == nil {
		values = map[string]any{}
	}

	return &Document{Values: values, Present: true}, nil
}

// Write serializes values and atomically replaces the document on disk.
func (s *Store) Write(values map[string]any) error {
	data, err := s.format.Marshal(values)
	if err != nil {
		return fmt.Errorf("cannot serialize %s: %w", s.path, err)
	}

	if err := renameio.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("cannot write %s: %w", s.path, err)
	}

	return nil
}

// Merge applies override on top of base, key by key. Override wins on
// conflict; keys of base not named in override are left untouched.
// Neither input is mutated.
func Merge(base, override map[string]any) map[string]any {
	merged := make(map[string]any, len(base)+len(override))
	for k, v := range base {
		merged[k] = v
	}
	for k, v := range override {
		merged[k] = v
	}
	return merged
}

// ParseOverride parses an externally supplied override, a compact JSON
// object such as {"name":"value"}. Anything that is not a JSON object
// is rejected, including null, which decodes without error but yields
// no mapping.
func ParseOverride(raw string) (map[string]any, error) {
	values, err := json.Parser().Unmarshal([]byte(raw))
	if err != nil {
		return nil, fmt.Errorf("malformed properties override: %w", err)
	}
	if values == nil {
		return nil, fmt.Errorf("malformed properties override: expected a JSON object, got %q", raw)
	}
	return values, nil
}
