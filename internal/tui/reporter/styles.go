package reporter

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/runoshun/issue-reporter/internal/tui"
)

// Styles holds the styles for the report form.
type Styles struct {
	Title        lipgloss.Style
	Label        lipgloss.Style
	LabelFocused lipgloss.Style
	Field        lipgloss.Style
	FieldFocused lipgloss.Style
	TypeOption   lipgloss.Style
	TypeSelected lipgloss.Style
	ImagePath    lipgloss.Style
	Size         lipgloss.Style
	SizeOver     lipgloss.Style
	Status       lipgloss.Style
	Error        lipgloss.Style
	Help         lipgloss.Style
}

// DefaultStyles returns the default styles.
func DefaultStyles() Styles {
	border := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1)

	return Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(tui.Colors.Primary).
			MarginBottom(1),
		Label: lipgloss.NewStyle().
			Foreground(tui.Colors.Muted),
		LabelFocused: lipgloss.NewStyle().
			Bold(true).
			Foreground(tui.Colors.TitleSelected),
		Field: border.
			BorderForeground(tui.Colors.Muted),
		FieldFocused: border.
			BorderForeground(tui.Colors.Primary),
		TypeOption: lipgloss.NewStyle().
			Foreground(tui.Colors.Muted).
			Padding(0, 1),
		TypeSelected: lipgloss.NewStyle().
			Bold(true).
			Foreground(tui.Colors.TitleSelected).
			Background(tui.Colors.Primary).
			Padding(0, 1),
		ImagePath: lipgloss.NewStyle().
			Foreground(tui.Colors.TitleNormal),
		Size: lipgloss.NewStyle().
			Foreground(tui.Colors.Muted),
		SizeOver: lipgloss.NewStyle().
			Bold(true).
			Foreground(tui.Colors.Error),
		Status: lipgloss.NewStyle().
			Foreground(tui.Colors.Success),
		Error: lipgloss.NewStyle().
			Foreground(tui.Colors.Error).
			Bold(true),
		Help: lipgloss.NewStyle().
			MarginTop(1),
	}
}
