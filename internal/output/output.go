// Package output formats tasks and messages for the non-interactive commands.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/marcus/wingsfly/internal/models"
)

var (
	// Stdout and Stderr are swapped out by tests
	Stdout io.Writer = os.Stdout
	Stderr io.Writer = os.Stderr

	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
)

// FormatStatus renders a status as "[in-progress]"
func FormatStatus(s models.Status) string {
	return "[" + string(s) + "]"
}

// Error prints a red message to stderr
func Error(format string, args ...interface{}) {
	fmt.Fprintln(Stderr, errorStyle.Render("ERROR: "+fmt.Sprintf(format, args...)))
}

// Success prints a green message to stdout
func Success(format string, args ...interface{}) {
	fmt.Fprintln(Stdout, successStyle.Render(fmt.Sprintf(format, args...)))
}

// Warning prints a yellow message to stderr
func Warning(format string, args ...interface{}) {
	fmt.Fprintln(Stderr, warningStyle.Render("WARNING: "+fmt.Sprintf(format, args...)))
}

// JSON writes v indented to stdout
func JSON(v interface{}) error {
	enc := json.NewEncoder(Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
