// Package manifest reads and patches the project manifest (project.yaml).
//
// A document keeps its source text next to the yaml.v3 node tree. Updates
// rewrite only the value being changed, or add one line for a new key, so
// indentation, blank lines, comments and quoting elsewhere are left alone.
// Only creating a missing table re-encodes the whole document.
package manifest
