package ui

import "github.com/charmbracelet/lipgloss"

// Semantic color palette.
var (
	colorPrimary = lipgloss.Color("#00BFFF") // Cyan: headings
	colorAccent  = lipgloss.Color("#FFD700") // Gold: warnings, recommendations
	colorSuccess = lipgloss.Color("#00E676") // Green: valid, selected
	colorDanger  = lipgloss.Color("#FF5252") // Red: errors, disabled
	colorMuted   = lipgloss.Color("#636363") // Gray: reasons, de-emphasized
)

// Status icons for skill and result states.
const (
	iconOK          = "✓"
	iconFailed      = "✗"
	iconWarn        = "⚠"
	iconSelected    = "●"
	iconAvailable   = "○"
	iconDisabled    = "⊘"
	iconRecommended = "★"
	iconBullet      = "•"
)

var (
	styleHeading = lipgloss.NewStyle().Foreground(colorPrimary).Bold(true)
	styleOK      = lipgloss.NewStyle().Foreground(colorSuccess).Bold(true)
	styleError   = lipgloss.NewStyle().Foreground(colorDanger).Bold(true)
	styleWarn    = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	styleMuted   = lipgloss.NewStyle().Foreground(colorMuted)
	styleBold    = lipgloss.NewStyle().Bold(true)

	styleSelected    = lipgloss.NewStyle().Foreground(colorSuccess)
	styleDisabled    = lipgloss.NewStyle().Foreground(colorMuted).Strikethrough(true)
	styleRecommended = lipgloss.NewStyle().Foreground(colorAccent)
)
