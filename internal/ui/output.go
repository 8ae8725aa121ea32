// Package ui prints the CLI's user-facing messages, styled with the same
// cyberdream palette the remapper writes into files.
package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/thesavant42/ansidream/internal/theme"
)

var (
	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Green.Hex())).
			Bold(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Red.Hex())).
			Bold(true)

	usageStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Yellow.Hex()))
)

// PrintSuccess prints a success message
func PrintSuccess(message string) {
	fmt.Println(successStyle.Render(message))
}

// PrintError prints an error message
func PrintError(message string) {
	fmt.Println(errorStyle.Render("Error: " + message))
}

// PrintUsage prints the usage line for the given program name.
func PrintUsage(program string) {
	fmt.Println(usageStyle.Render(fmt.Sprintf("Usage: %s input_file output_file", program)))
}
