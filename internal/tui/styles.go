// Package tui provides the terminal user interface components for Studinest.
package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/manav03panchal/studinest/internal/model"
)

// Palette is the set of colors for one theme.
type Palette struct {
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Text      lipgloss.Color
	Muted     lipgloss.Color
	Warning   lipgloss.Color
	Error     lipgloss.Color
	Success   lipgloss.Color
	Active    lipgloss.Color
	Border    lipgloss.Color
}

// Color palettes for the two themes.
var (
	LightPalette = Palette{
		Primary:   lipgloss.Color("#F4845F"), // Peach
		Secondary: lipgloss.Color("#5BA897"), // Mint
		Text:      lipgloss.Color("#334155"), // Slate
		Muted:     lipgloss.Color("#6B7280"), // Gray
		Warning:   lipgloss.Color("#D97706"), // Amber
		Error:     lipgloss.Color("#DC2626"), // Red
		Success:   lipgloss.Color("#059669"), // Green
		Active:    lipgloss.Color("#F4845F"),
		Border:    lipgloss.Color("#E7DCC8"), // Cream
	}

	DarkPalette = Palette{
		Primary:   lipgloss.Color("#FDBA9A"),
		Secondary: lipgloss.Color("#A7E3D4"),
		Text:      lipgloss.Color("#F5EFE6"),
		Muted:     lipgloss.Color("#94A3B8"),
		Warning:   lipgloss.Color("#FBBF24"),
		Error:     lipgloss.Color("#F87171"),
		Success:   lipgloss.Color("#34D399"),
		Active:    lipgloss.Color("#FDBA9A"),
		Border:    lipgloss.Color("#475569"),
	}
)

// PaletteFor returns the palette of a theme.
func PaletteFor(theme model.Theme) Palette {
	if theme == model.ThemeDark {
		return DarkPalette
	}
	return LightPalette
}

// Styles holds every style the views render with.
type Styles struct {
	Palette Palette

	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Text     lipgloss.Style
	Muted    lipgloss.Style
	Note     lipgloss.Style
	Warning  lipgloss.Style
	Error    lipgloss.Style
	Success  lipgloss.Style
	Done     lipgloss.Style
	Cursor   lipgloss.Style

	NavItem   lipgloss.Style
	NavActive lipgloss.Style

	Box       lipgloss.Style
	ActiveBox lipgloss.Style
	TodayBox  lipgloss.Style
}

// NewStyles builds the styles for a theme.
func NewStyles(theme model.Theme) Styles {
	p := PaletteFor(theme)

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Border).
		Padding(0, 1).
		MarginBottom(1)

	return Styles{
		Palette: p,

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Primary),
		Subtitle: lipgloss.NewStyle().
			Foreground(p.Muted),
		Text: lipgloss.NewStyle().
			Foreground(p.Text),
		Muted: lipgloss.NewStyle().
			Foreground(p.Muted),
		Note: lipgloss.NewStyle().
			Italic(true).
			Foreground(p.Muted),
		Warning: lipgloss.NewStyle().
			Foreground(p.Warning),
		Error: lipgloss.NewStyle().
			Foreground(p.Error),
		Success: lipgloss.NewStyle().
			Foreground(p.Success),
		Done: lipgloss.NewStyle().
			Strikethrough(true).
			Foreground(p.Muted),
		Cursor: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Primary),

		NavItem: lipgloss.NewStyle().
			Foreground(p.Muted).
			Padding(0, 1),
		NavActive: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Primary).
			Underline(true).
			Padding(0, 1),

		Box:       box,
		ActiveBox: box.BorderForeground(p.Active),
		TodayBox:  box.BorderForeground(p.Secondary),
	}
}

// PriorityStyle colors a priority label.
func (s Styles) PriorityStyle(p model.Priority) lipgloss.Style {
	switch p {
	case model.PriorityHigh:
		return s.Error
	case model.PriorityMedium:
		return s.Warning
	default:
		return s.Success
	}
}

// ProgressBar creates a progress bar string.
func (s Styles) ProgressBar(percentage float64, width int) string {
	if percentage > 100 {
		percentage = 100
	}
	if percentage < 0 {
		percentage = 0
	}

	filled := int(float64(width) * percentage / 100)
	empty := width - filled

	filledStyle := lipgloss.NewStyle().Foreground(s.Palette.Success)
	emptyStyle := lipgloss.NewStyle().Foreground(s.Palette.Muted)

	return filledStyle.Render(strings.Repeat("█", filled)) + // Full block
		emptyStyle.Render(strings.Repeat("░", empty)) // Light shade
}
