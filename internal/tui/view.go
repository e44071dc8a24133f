package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// View renders the viewer.
func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	var sections []string
	sections = append(sections, m.viewHeader())
	if m.err != nil {
		sections = append(sections, m.styles.Error.Render("Error: "+m.err.Error()))
	} else if m.status != "" {
		sections = append(sections, m.styles.Muted.Render(m.status))
	} else if m.skipped > 0 {
		sections = append(sections, m.styles.Muted.Render(fmt.Sprintf("%d malformed issue(s) skipped", m.skipped)))
	}
	sections = append(sections, m.viewBody())
	sections = append(sections, m.styles.Footer.Render(m.help.View(m.keys)))

	return m.styles.App.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

func (m *Model) viewHeader() string {
	title := m.styles.HeaderText.Render("Issues")

	tabs := make([]string, 0, 2)
	for _, t := range []Tab{TabOpen, TabClosed} {
		label := fmt.Sprintf("%s (%d)", tabLabel(t), m.tabCount(t))
		if t == m.tab {
			tabs = append(tabs, m.styles.TabActive.Render(label))
		} else {
			tabs = append(tabs, m.styles.TabNormal.Render(label))
		}
	}

	left := title + "  " + strings.Join(tabs, " ")
	if !m.loading {
		return m.styles.Header.Render(left)
	}
	right := m.spinner.View() + m.styles.Loading.Render(" Refreshing...")
	gap := m.contentWidth() - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if gap < 1 {
		gap = 1
	}
	return m.styles.Header.Render(left + strings.Repeat(" ", gap) + right)
}

func (m *Model) viewBody() string {
	if m.expanded {
		return m.detailViewport.View()
	}
	if len(m.issueList.Items()) == 0 {
		if m.loading {
			return m.styles.Muted.Render("Fetching issues...")
		}
		return m.styles.Muted.Render(fmt.Sprintf("No %s issues.", m.tab))
	}
	return m.issueList.View()
}

func (m *Model) tabCount(t Tab) int {
	if t == TabClosed {
		return len(m.set.Closed)
	}
	return len(m.set.Open)
}

func tabLabel(t Tab) string {
	if t == TabClosed {
		return "Closed"
	}
	return "Open"
}
