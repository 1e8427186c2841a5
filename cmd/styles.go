// Copyright © 2026 ソニーレベル <C7kali3@gmail.com>
// Output styles

package cmd

import "github.com/charmbracelet/lipgloss"

var (
	// SuccessStyle highlights the final completion message
	SuccessStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42"))

	// WarningStyle highlights degraded-path and prerequisite warnings
	WarningStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214"))
)
