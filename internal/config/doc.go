// Package config loads process configuration from a YAML or JSON file into a
// flat attribute namespace.
//
// Top-level mappings are flattened one level deep, digit-only values are
// coerced to float64, and looking up an unknown attribute yields the Absent
// sentinel instead of an error.
package config
