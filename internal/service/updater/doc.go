// Package updater patches project fields of the manifest.
//
// It loads the optional configuration to pick the log level, then overwrites
// the non-empty fields at tool.project and writes the manifest back atomically.
package updater
