// Package printer is the entry point of the scaffold demo: it loads the
// configuration, configures the logger and prints colored text.
package printer
