// Package styles provides shared lipgloss styles for terminal output.
//
// This package centralizes color definitions so the start and status
// renderings stay visually consistent.
package styles

import "charm.land/lipgloss/v2"

// Colors used throughout the output
var (
	// Success is used for checkmarks and positive outcomes (green)
	Success = lipgloss.Color("82")

	// Error is used for failure markers and messages (red)
	Error = lipgloss.Color("196")

	// Warning is used for non-fatal notices (orange)
	Warning = lipgloss.Color("214")

	// Muted is used for secondary text (gray)
	Muted = lipgloss.Color("240")
)

// Common styles
var (
	// Bold applies bold formatting
	Bold = lipgloss.NewStyle().Bold(true)

	// SuccessStyle applies the success color
	SuccessStyle = lipgloss.NewStyle().Foreground(Success)

	// ErrorStyle applies the error color
	ErrorStyle = lipgloss.NewStyle().Foreground(Error)

	// WarningStyle applies the warning color
	WarningStyle = lipgloss.NewStyle().Foreground(Warning)

	// MutedStyle applies the muted color
	MutedStyle = lipgloss.NewStyle().Foreground(Muted)
)
