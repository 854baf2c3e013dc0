package manifest

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/renameio/v2"
	"gopkg.in/yaml.v3"

	"github.com/oshokin/project-template/internal/logger"
)

const (
	// DefaultFilename is the manifest file looked up in the working directory.
	DefaultFilename = "project.yaml"

	// Field keys stored at the manifest location.
	KeyName        = "name"
	KeyVersion     = "version"
	KeyDescription = "description"
	KeyRepository  = "repository"
	KeyLicense     = "license"

	// defaultIndent is the number of spaces per nesting level when a re-encoded
	// manifest gives no hint of its own.
	defaultIndent = 2
)

var (
	// ErrNotMapping is returned when the manifest root or a table on the field path is not a mapping.
	ErrNotMapping = errors.New("manifest node is not a mapping")
	// errDocumentNotSet is returned when a nil document is saved.
	errDocumentNotSet = errors.New("manifest document is not set")
)

// Location returns the key path of the table holding the project fields.
func Location() []string {
	return []string{"tool", "project"}
}

// Fields are the project fields the updater may overwrite. Empty fields are left untouched.
type Fields struct {
	// Name is the project name.
	Name string
	// Version is the project version.
	Version string
	// Description is a short description of the project.
	Description string
	// Repository is the URL of the project's repository.
	Repository string
	// License is the project license.
	License string
}

// IsZero reports whether no field is set.
func (f Fields) IsZero() bool {
	return f == Fields{}
}

// entries returns the fields in manifest order paired with their keys.
func (f Fields) entries() [][2]string {
	return [][2]string{
		{KeyName, f.Name},
		{KeyVersion, f.Version},
		{KeyDescription, f.Description},
		{KeyRepository, f.Repository},
		{KeyLicense, f.License},
	}
}

// Document is a manifest kept both as its source bytes and as a YAML node tree.
// Edits rewrite only the affected span of the source, so indentation, blank lines,
// comments and quoting of everything else survive a load and save round trip.
type Document struct {
	// source is the current manifest text.
	source []byte
	// root is the document node parsed from source; its only child is the top-level mapping.
	root *yaml.Node
}

// Load reads the manifest at path.
func Load(path string) (*Document, error) {
	contents, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}

	doc, err := Parse(contents)
	if err != nil {
		return nil, fmt.Errorf("parse manifest %s: %w", path, err)
	}

	return doc, nil
}

// Parse decodes a manifest. An empty input yields an empty document.
func Parse(data []byte) (*Document, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("unmarshal manifest: %w", err)
	}

	if root.Kind == 0 || len(root.Content) == 0 {
		return &Document{
			source: bytes.Clone(data),
			root: &yaml.Node{
				Kind:    yaml.DocumentNode,
				Content: []*yaml.Node{{Kind: yaml.MappingNode, Tag: "!!map"}},
			},
		}, nil
	}

	if root.Content[0].Kind != yaml.MappingNode {
		return nil, ErrNotMapping
	}

	return &Document{source: bytes.Clone(data), root: &root}, nil
}

// Get returns the scalar stored at the key path, or an empty string when any
// table or key on the path is missing or the value is not a scalar.
func (d *Document) Get(keys ...string) string {
	if d == nil || d.root == nil || len(keys) == 0 {
		return ""
	}

	node := d.root.Content[0]
	for _, key := range keys {
		node = lookup(node, key)
		if node == nil {
			return ""
		}
	}

	if node.Kind != yaml.ScalarNode || node.ShortTag() == "!!null" {
		return ""
	}

	return node.Value
}

// Field returns the project field stored under key at Location.
func (d *Document) Field(key string) string {
	return d.Get(append(Location(), key)...)
}

// Set stores value as a string at the key path, creating missing tables.
// An existing value or a new key inside an existing block table is edited in place;
// anything else re-encodes the document.
func (d *Document) Set(value string, keys ...string) error {
	if d == nil || d.root == nil {
		return errDocumentNotSet
	}

	if len(keys) == 0 {
		return nil
	}

	if edited, ok := d.edit(value, keys); ok {
		// The edit is kept only if the result parses back to the requested value.
		if candidate, err := Parse(edited); err == nil && candidate.Get(keys...) == value {
			*d = *candidate

			return nil
		}
	}

	return d.rewrite(value, keys)
}

// Apply writes every non-empty field to Location and returns the keys whose value changed.
func (d *Document) Apply(fields Fields) ([]string, error) {
	var changed []string

	for _, entry := range fields.entries() {
		key, value := entry[0], entry[1]
		if value == "" {
			continue
		}

		if d.Field(key) == value {
			continue
		}

		if err := d.Set(value, append(Location(), key)...); err != nil {
			return changed, err
		}

		changed = append(changed, key)
	}

	return changed, nil
}

// Bytes returns the manifest text.
func (d *Document) Bytes() ([]byte, error) {
	if d == nil || d.root == nil {
		return nil, errDocumentNotSet
	}

	return bytes.Clone(d.source), nil
}

// rewrite sets value through the node tree and re-encodes the whole document.
// Aliases on the path are replaced, never written through.
func (d *Document) rewrite(value string, keys []string) error {
	node := d.root.Content[0]
	spaces := detectIndent(node)

	for _, key := range keys[:len(keys)-1] {
		index := entryIndex(node, key)
		if index < 0 {
			child := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
			appendEntry(node, key, child)
			node = child

			continue
		}

		child := node.Content[index]
		if child.Kind == yaml.AliasNode && child.Alias != nil && child.Alias.Kind == yaml.MappingNode {
			child = detach(child.Alias)
			node.Content[index] = child
		}

		if child.Kind != yaml.MappingNode {
			return fmt.Errorf("%w: %s", ErrNotMapping, key)
		}

		node = child
	}

	last := keys[len(keys)-1]
	scalar := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: value}

	index := entryIndex(node, last)
	if index < 0 {
		appendEntry(node, last, scalar)
	} else {
		if previous := node.Content[index]; previous.Kind == yaml.ScalarNode {
			// Quoted and block styles are kept; plain values that would read back as
			// another type get quoted by the encoder because of the !!str tag.
			scalar.Style = previous.Style &^ yaml.TaggedStyle
			scalar.Anchor = previous.Anchor
			scalar.LineComment = previous.LineComment
		}

		node.Content[index] = scalar
	}

	contents, err := encode(d.root, spaces)
	if err != nil {
		return err
	}

	doc, err := Parse(contents)
	if err != nil {
		return fmt.Errorf("reparse manifest: %w", err)
	}

	*d = *doc

	return nil
}

// Save atomically replaces the file at path with the encoded document.
func (d *Document) Save(ctx context.Context, path string) error {
	contents, err := d.Bytes()
	if err != nil {
		return err
	}

	// renameio handles temp file creation, fsync, atomic rename and cleanup on error.
	pendingFile, err := renameio.NewPendingFile(filepath.Clean(path), renameio.WithExistingPermissions())
	if err != nil {
		return fmt.Errorf("create pending manifest file: %w", err)
	}

	defer func() {
		if cleanupErr := pendingFile.Cleanup(); cleanupErr != nil {
			logger.Debugf(ctx, "Cleanup of pending manifest file failed: %v", cleanupErr)
		}
	}()

	if _, err = pendingFile.Write(contents); err != nil {
		return fmt.Errorf("write manifest: %w", err)
	}

	if err = pendingFile.CloseAtomicallyReplace(); err != nil {
		return fmt.Errorf("atomically replace manifest: %w", err)
	}

	return nil
}

// Update loads the manifest at path, applies fields and saves it back.
// The file is not rewritten when nothing changes.
func Update(ctx context.Context, path string, fields Fields) ([]string, error) {
	doc, err := Load(path)
	if err != nil {
		return nil, err
	}

	changed, err := doc.Apply(fields)
	if err != nil {
		return nil, err
	}

	if len(changed) == 0 {
		logger.Infof(ctx, "Manifest %s is already up to date", path)

		return nil, nil
	}

	if err = doc.Save(ctx, path); err != nil {
		return nil, err
	}

	for _, key := range changed {
		logger.Debugf(ctx, "Manifest field %s set to %q", key, doc.Field(key))
	}

	return changed, nil
}

// lookup returns the value node stored under key in a mapping node, following aliases.
func lookup(mapping *yaml.Node, key string) *yaml.Node {
	index := entryIndex(mapping, key)
	if index < 0 {
		return nil
	}

	found := mapping.Content[index]
	for found != nil && found.Kind == yaml.AliasNode {
		found = found.Alias
	}

	return found
}

// entryIndex returns the index of the value stored under key in mapping.Content, or -1.
// Later duplicates win, matching how decoders resolve them.
func entryIndex(mapping *yaml.Node, key string) int {
	if mapping == nil || mapping.Kind != yaml.MappingNode {
		return -1
	}

	found := -1

	for i := 0; i+1 < len(mapping.Content); i += 2 {
		if mapping.Content[i].Value == key {
			found = i + 1
		}
	}

	return found
}

// appendEntry adds key: value at the end of a mapping node.
func appendEntry(mapping *yaml.Node, key string, value *yaml.Node) {
	mapping.Content = append(mapping.Content,
		&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: key},
		value,
	)
}

// detach returns a deep copy of node without anchors, so edits never reach the anchored original.
func detach(node *yaml.Node) *yaml.Node {
	if node.Kind == yaml.AliasNode && node.Alias != nil {
		return detach(node.Alias)
	}

	clone := *node
	clone.Anchor = ""
	clone.Content = make([]*yaml.Node, 0, len(node.Content))

	for _, child := range node.Content {
		clone.Content = append(clone.Content, detach(child))
	}

	return &clone
}
