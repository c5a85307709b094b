// Package ui provides lipgloss styles and small print helpers for command
// output. Color is applied only when stdout is a terminal.
package ui
