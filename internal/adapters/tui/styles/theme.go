package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Colors
	Primary   = lipgloss.Color("#7C3AED") // Purple
	Secondary = lipgloss.Color("#10B981") // Green
	Muted     = lipgloss.Color("#6B7280") // Gray
	Warning   = lipgloss.Color("#F59E0B") // Amber
	Error     = lipgloss.Color("#EF4444") // Red

	// Category colors
	CategoryDocuments = lipgloss.Color("#60A5FA") // Blue
	CategoryImages    = lipgloss.Color("#EC4899") // Pink
	CategoryVideos    = lipgloss.Color("#F97316") // Orange
	CategoryArchives  = lipgloss.Color("#8B5CF6") // Violet

	// Base styles
	App = lipgloss.NewStyle().
		Padding(1, 2)

	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		MarginBottom(1)

	Subtitle = lipgloss.NewStyle().
			Foreground(Muted).
			Italic(true)

	Section = lipgloss.NewStyle().
		Foreground(Secondary).
		Bold(true)

	Count = lipgloss.NewStyle().
		Bold(true)

	Path = lipgloss.NewStyle()

	Arrow = lipgloss.NewStyle().
		Foreground(Muted).
		SetString(" → ")

	Timestamp = lipgloss.NewStyle().
			Foreground(Muted)

	Spinner = lipgloss.NewStyle().
		Foreground(Primary)

	// Help styles
	HelpKey = lipgloss.NewStyle().
		Foreground(Primary).
		Bold(true)

	HelpDesc = lipgloss.NewStyle().
			Foreground(Muted)

	HelpSeparator = lipgloss.NewStyle().
			Foreground(Muted).
			SetString(" • ")

	// Message styles
	Success = lipgloss.NewStyle().
		Foreground(Secondary).
		Bold(true)

	WarningMsg = lipgloss.NewStyle().
			Foreground(Warning)

	ErrorMsg = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)

	MutedText = lipgloss.NewStyle().
			Foreground(Muted)
)

// CategoryColor returns the color used for a category name
func CategoryColor(category string) lipgloss.Color {
	switch category {
	case "documents":
		return CategoryDocuments
	case "images":
		return CategoryImages
	case "videos":
		return CategoryVideos
	case "archives":
		return CategoryArchives
	default:
		return Primary
	}
}
