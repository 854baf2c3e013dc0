// Package console prints styled text to a terminal using lipgloss.
package console
