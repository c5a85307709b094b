package ui

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// Color palette for command output
var (
	WarningColor = lipgloss.Color("#FFA500") // Orange - schema warnings
	HeaderColor  = lipgloss.Color("#7D56F4") // Purple - section headers
	KeyColor     = lipgloss.Color("#626262") // Gray - setting keys
	ValueColor   = lipgloss.Color("#FFFFFF") // White - setting values
)

// Shared styles for command output
var (
	// WarningStyle is for non-fatal diagnostics (unknown schema keys).
	WarningStyle = lipgloss.NewStyle().
			Foreground(WarningColor).
			Bold(true)

	// HeaderStyle is for section headers ("settings:", "devices:").
	HeaderStyle = lipgloss.NewStyle().
			Foreground(HeaderColor).
			Bold(true)

	// KeyStyle is for setting keys in show output.
	KeyStyle = lipgloss.NewStyle().
			Foreground(KeyColor)

	// ValueStyle is for setting values in show output.
	ValueStyle = lipgloss.NewStyle().
			Foreground(ValueColor)
)

// Interactive reports whether stdout is a terminal. Styled output degrades
// to plain text when piped.
func Interactive() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// Warningf prints a warning line to stdout. Warnings are always visible
// regardless of the log verbosity.
func Warningf(format string, args ...any) {
	msg := fmt.Sprintf("WARNING: "+format, args...)
	if Interactive() {
		msg = WarningStyle.Render(msg)
	}
	fmt.Println(msg)
}

// Headerf prints a styled section header line.
func Headerf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	if Interactive() {
		msg = HeaderStyle.Render(msg)
	}
	fmt.Println(msg)
}

// Entryf prints an indented "key: value" line.
func Entryf(indent int, key, value string) {
	k, v := key, value
	if Interactive() {
		k = KeyStyle.Render(key)
		v = ValueStyle.Render(value)
	}
	for i := 0; i < indent; i++ {
		fmt.Print(" ")
	}
	fmt.Printf("%s: %s\n", k, v)
}
