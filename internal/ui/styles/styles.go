// Package styles centralizes the color palette and lipgloss styles
// shared by the interactive prompts.
package styles

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// Palette colors. ANSI-256 values so they degrade sensibly on basic
// terminals.
var (
	Primary color.Color = lipgloss.Color("62")  // cyan/teal
	Accent  color.Color = lipgloss.Color("212") // pink
	Success color.Color = lipgloss.Color("82")  // green
	Error   color.Color = lipgloss.Color("196") // red
	Warning color.Color = lipgloss.Color("214") // orange
	Muted   color.Color = lipgloss.Color("240") // gray
	Info    color.Color = lipgloss.Color("244") // light gray
)

var (
	Bold = lipgloss.NewStyle().Bold(true)

	PrimaryStyle = lipgloss.NewStyle().Foreground(Primary)

	AccentStyle = lipgloss.NewStyle().
			Foreground(Accent).
			Bold(true)

	SuccessStyle = lipgloss.NewStyle().Foreground(Success)

	ErrorStyle = lipgloss.NewStyle().Foreground(Error)

	WarningStyle = lipgloss.NewStyle().Foreground(Warning)

	MutedStyle = lipgloss.NewStyle().Foreground(Muted)

	InfoStyle = lipgloss.NewStyle().
			Foreground(Info).
			Italic(true)
)

// Symbols used in command output.
const (
	Check = "✓"
	Cross = "✗"
	Arrow = "→"
)
