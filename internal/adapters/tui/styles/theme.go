package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"takenotes/internal/domain"
)

var (
	// Colors
	Primary   = lipgloss.Color("#7C3AED") // Purple
	Secondary = lipgloss.Color("#10B981") // Green
	Muted     = lipgloss.Color("#6B7280") // Gray
	Warning   = lipgloss.Color("#F59E0B") // Amber
	Error     = lipgloss.Color("#EF4444") // Red
	White     = lipgloss.Color("#FFFFFF")
	Black     = lipgloss.Color("#000000")

	TagColor    = lipgloss.Color("#60A5FA") // Blue
	FolderColor = lipgloss.Color("#F97316") // Orange

	App = lipgloss.NewStyle().
		Padding(1, 2)

	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		MarginBottom(1)

	Subtitle = lipgloss.NewStyle().
			Foreground(Muted).
			Italic(true)

	// Tabs
	TabActive = lipgloss.NewStyle().
			Background(Primary).
			Foreground(White).
			Bold(true).
			Padding(0, 1)

	TabInactive = lipgloss.NewStyle().
			Foreground(Muted).
			Padding(0, 1)

	// Tree node styles
	NodeRoot = lipgloss.NewStyle().
			Bold(true)

	NodeLabel = lipgloss.NewStyle()

	NodeSelected = lipgloss.NewStyle().
			Background(Primary).
			Foreground(White).
			Bold(true)

	NodeMarked = lipgloss.NewStyle().
			Background(Warning).
			Foreground(Black)

	NodePinned = lipgloss.NewStyle().
			Foreground(Warning)

	TreeBranch    = lipgloss.NewStyle().Foreground(Muted)
	TreeExpanded  = "▼ "
	TreeCollapsed = "▶ "
	TreeLeaf      = "  "
	PinMarker     = " ★"

	StatusBar = lipgloss.NewStyle().
			Background(lipgloss.Color("#1F2937")).
			Foreground(White).
			Padding(0, 1)

	// Input styles
	InputLabel = lipgloss.NewStyle().
			Foreground(Secondary).
			Bold(true)

	InputField = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Primary).
			Padding(0, 1)

	InputFocused = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Secondary).
			Padding(0, 1)

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

	ErrorMsg = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)

	MutedText = lipgloss.NewStyle().
			Foreground(Muted)
)

// KindColor returns the accent color of a label kind
func KindColor(kind domain.Kind) lipgloss.Color {
	switch kind {
	case domain.KindTag:
		return TagColor
	case domain.KindFolder:
		return FolderColor
	default:
		return Primary
	}
}

// LabelColor returns the label's own color when it has one, otherwise the
// kind's accent. The hex string is handed to lipgloss untouched.
func LabelColor(kind domain.Kind, colorHex *string) lipgloss.Color {
	if colorHex == nil || *colorHex == "" {
		return KindColor(kind)
	}
	hex := *colorHex
	if !strings.HasPrefix(hex, "#") {
		hex = "#" + hex
	}
	return lipgloss.Color(hex)
}
