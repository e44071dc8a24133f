// Package tui provides the terminal user interface for browsing issues.
package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Colors defines the color palette for the TUI.
var Colors = struct {
	// Base colors
	Primary    lipgloss.Color
	Muted      lipgloss.Color
	Error      lipgloss.Color
	Success    lipgloss.Color
	Warning    lipgloss.Color
	Background lipgloss.Color

	// Title/text colors
	TitleNormal   lipgloss.Color
	TitleSelected lipgloss.Color

	// Issue type badges (foreground on background)
	BugFg     lipgloss.Color
	BugBg     lipgloss.Color
	FeatureFg lipgloss.Color
	FeatureBg lipgloss.Color
	OtherFg   lipgloss.Color
	OtherBg   lipgloss.Color
}{
	Primary:    lipgloss.Color("#6C5CE7"), // Purple
	Muted:      lipgloss.Color("#636E72"), // Gray
	Error:      lipgloss.Color("#D63031"), // Red
	Success:    lipgloss.Color("#00B894"), // Green
	Warning:    lipgloss.Color("#FDCB6E"), // Yellow
	Background: lipgloss.Color("#2D3436"), // Dark gray

	TitleNormal:   lipgloss.Color("#DFE6E9"), // Light gray
	TitleSelected: lipgloss.Color("#FFEAA7"), // Yellow (selected)

	BugFg:     lipgloss.Color("#e5534b"),
	BugBg:     lipgloss.Color("#352c33"),
	FeatureFg: lipgloss.Color("#478be6"),
	FeatureBg: lipgloss.Color("#253142"),
	OtherFg:   lipgloss.Color("#c68f27"),
	OtherBg:   lipgloss.Color("#36342c"),
}

// Styles contains all the lipgloss styles for the TUI.
type Styles struct {
	// App
	App lipgloss.Style

	// Header
	Header     lipgloss.Style
	HeaderText lipgloss.Style
	TabActive  lipgloss.Style
	TabNormal  lipgloss.Style

	// Issue list
	IssueNumber        lipgloss.Style
	IssueTitle         lipgloss.Style
	IssueTitleSelected lipgloss.Style
	IssueMeta          lipgloss.Style
	SelectionIndicator lipgloss.Style

	// Detail
	DetailTitle lipgloss.Style
	DetailLabel lipgloss.Style
	DetailValue lipgloss.Style
	Link        lipgloss.Style

	// Status
	Loading lipgloss.Style
	Error   lipgloss.Style
	Muted   lipgloss.Style

	// Footer
	Footer lipgloss.Style
}

// DefaultStyles returns the default styles.
func DefaultStyles() Styles {
	return Styles{
		App: lipgloss.NewStyle().
			Padding(1, 2),

		Header: lipgloss.NewStyle().
			Padding(0, 1).
			MarginBottom(1),
		HeaderText: lipgloss.NewStyle().
			Bold(true).
			Foreground(Colors.Primary),
		TabActive: lipgloss.NewStyle().
			Bold(true).
			Foreground(Colors.TitleSelected).
			Underline(true).
			Padding(0, 1),
		TabNormal: lipgloss.NewStyle().
			Foreground(Colors.Muted).
			Padding(0, 1),

		IssueNumber: lipgloss.NewStyle().
			Foreground(Colors.Muted),
		IssueTitle: lipgloss.NewStyle().
			Foreground(Colors.TitleNormal),
		IssueTitleSelected: lipgloss.NewStyle().
			Bold(true).
			Foreground(Colors.TitleSelected),
		IssueMeta: lipgloss.NewStyle().
			Foreground(Colors.Muted),
		SelectionIndicator: lipgloss.NewStyle().
			Foreground(Colors.Primary),

		DetailTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(Colors.TitleSelected),
		DetailLabel: lipgloss.NewStyle().
			Foreground(Colors.Muted).
			Width(10),
		DetailValue: lipgloss.NewStyle().
			Foreground(Colors.TitleNormal),
		Link: lipgloss.NewStyle().
			Foreground(Colors.FeatureFg).
			Underline(true),

		Loading: lipgloss.NewStyle().
			Foreground(Colors.Warning).
			Italic(true),
		Error: lipgloss.NewStyle().
			Foreground(Colors.Error).
			Bold(true),
		Muted: lipgloss.NewStyle().
			Foreground(Colors.Muted),

		Footer: lipgloss.NewStyle().
			MarginTop(1),
	}
}

// TypeBadge renders the issue type as a colored badge.
// Bug is red, Feature is blue and anything else is amber.
func TypeBadge(issueType string) string {
	fg, bg := Colors.OtherFg, Colors.OtherBg
	switch issueType {
	case "Bug":
		fg, bg = Colors.BugFg, Colors.BugBg
	case "Feature":
		fg, bg = Colors.FeatureFg, Colors.FeatureBg
	}
	return lipgloss.NewStyle().
		Foreground(fg).
		Background(bg).
		Padding(0, 1).
		Render(issueType)
}
