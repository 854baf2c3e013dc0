package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"

	"gopkg.in/yaml.v3"
)

const (
	// LogLevelKey is the attribute consulted by the logger to pick its threshold.
	LogLevelKey = "log_level"

	// DefaultFilePermissions is the default file permission for files written by the project.
	DefaultFilePermissions = 0o600
)

var (
	// ErrConfigNotFound is matched by errors returned when the configuration file is missing.
	ErrConfigNotFound = errors.New("config file not found")
	// ErrNotObject is returned when the document root is not a key/value mapping.
	ErrNotObject = errors.New("config root must be a mapping")
)

// ConfigNotFoundError reports a configuration path that does not resolve to a file.
//
//nolint:revive // The name mirrors the error kind users search for.
type ConfigNotFoundError struct {
	// Path is the requested configuration path.
	Path string
}

// Error implements the error interface.
func (e *ConfigNotFoundError) Error() string {
	return fmt.Sprintf("config file %s not found", e.Path)
}

// Is matches ErrConfigNotFound and fs.ErrNotExist.
func (e *ConfigNotFoundError) Is(target error) bool {
	return target == ErrConfigNotFound || target == fs.ErrNotExist
}

// Store is the flattened attribute namespace produced by Load.
// A nil *Store behaves like an empty, read-only one.
type Store struct {
	// path is the file the store was loaded from, empty when nothing was read.
	path string
	// values maps attribute names to their coerced values.
	values map[string]Value
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{values: make(map[string]Value)}
}

// Load reads the structured document at path and flattens it into a Store.
// An empty path yields an empty store without touching the filesystem.
func Load(path string) (*Store, error) {
	if path == "" {
		return NewStore(), nil
	}

	contents, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &ConfigNotFoundError{Path: path}
		}

		return nil, fmt.Errorf("read config: %w", err)
	}

	store, err := Parse(contents)
	if err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	store.path = path

	return store, nil
}

// Parse flattens a YAML or JSON document into a Store.
//
// Mapping values at the top level have their entries promoted into the store
// and the outer key is dropped; scalar values keep their own key. When two
// entries flatten to the same name the later one wins.
func Parse(data []byte) (*Store, error) {
	var document yaml.Node
	if err := yaml.Unmarshal(data, &document); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	store := NewStore()

	// Empty document.
	if document.Kind == 0 || len(document.Content) == 0 {
		return store, nil
	}

	root := resolve(document.Content[0])
	if root.Kind != yaml.MappingNode {
		return nil, ErrNotObject
	}

	for i := 0; i+1 < len(root.Content); i += 2 {
		key, node := root.Content[i].Value, resolve(root.Content[i+1])

		if node.Kind != yaml.MappingNode {
			value, err := toValue(node)
			if err != nil {
				return nil, fmt.Errorf("attribute %q: %w", key, err)
			}

			store.values[key] = value

			continue
		}

		for j := 0; j+1 < len(node.Content); j += 2 {
			innerKey := node.Content[j].Value

			value, err := toValue(resolve(node.Content[j+1]))
			if err != nil {
				return nil, fmt.Errorf("attribute %q: %w", innerKey, err)
			}

			store.values[innerKey] = value
		}
	}

	return store, nil
}

// Path returns the file the store was loaded from.
func (s *Store) Path() string {
	if s == nil {
		return ""
	}

	return s.path
}

// Len returns the number of bound attributes.
func (s *Store) Len() int {
	if s == nil {
		return 0
	}

	return len(s.values)
}

// Keys returns bound attribute names in lexical order.
func (s *Store) Keys() []string {
	if s == nil {
		return nil
	}

	keys := make([]string, 0, len(s.values))
	for key := range s.values {
		keys = append(keys, key)
	}

	slices.Sort(keys)

	return keys
}

// Lookup returns the attribute and whether it was bound during loading.
func (s *Store) Lookup(name string) (Value, bool) {
	if s == nil {
		return Absent(), false
	}

	value, ok := s.values[name]

	return value, ok
}

// Get returns the attribute or the Absent sentinel.
func (s *Store) Get(name string) Value {
	value, _ := s.Lookup(name)

	return value
}

// Set binds name to value, replacing any previous binding. It does nothing on a nil store.
func (s *Store) Set(name string, value Value) {
	if s == nil {
		return
	}

	if s.values == nil {
		s.values = make(map[string]Value)
	}

	s.values[name] = value
}

// String returns the attribute as a string, or def when it is not a string.
func (s *Store) String(name, def string) string {
	if value, ok := s.Get(name).AsString(); ok {
		return value
	}

	return def
}

// Number returns the attribute as a number, or def when it is not a number.
func (s *Store) Number(name string, def float64) float64 {
	if value, ok := s.Get(name).AsNumber(); ok {
		return value
	}

	return def
}

// Bool returns the attribute as a bool, or def when it is not a bool.
func (s *Store) Bool(name string, def bool) bool {
	if value, ok := s.Get(name).AsBool(); ok {
		return value
	}

	return def
}
