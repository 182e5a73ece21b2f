package style

import (
	"github.com/charmbracelet/lipgloss"
)

// Base styles
var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(HeadingColor).
			Bold(true)

	MutedStyle = lipgloss.NewStyle().
			Foreground(MutedColor)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(SuccessColor).
			Bold(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Bold(true)

	WarningStyle = lipgloss.NewStyle().
			Foreground(WarningColor).
			Bold(true)

	InfoStyle = lipgloss.NewStyle().
			Foreground(InfoColor)

	CodeStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor)

	PathStyle = lipgloss.NewStyle().
			Foreground(SecondaryColor).
			Italic(true)
)

// Diff styles
var (
	InsertStyle = lipgloss.NewStyle().
			Foreground(InsertColor)

	DeleteStyle = lipgloss.NewStyle().
			Foreground(DeleteColor)
)

// Indicators prefix per-item status lines. They are rendered on each call
// so they follow the current color profile.

func SuccessIndicator() string { return SuccessStyle.Render("✓") }

func ErrorIndicator() string { return ErrorStyle.Render("✗") }

func PendingIndicator() string { return MutedStyle.Render("○") }
