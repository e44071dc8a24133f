package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/truncate"

	"github.com/runoshun/issue-reporter/internal/domain"
)

type issueItem struct {
	issue domain.IssueContent
}

func (i issueItem) FilterValue() string {
	return i.issue.Title
}

type issueDelegate struct {
	styles Styles
}

func newIssueDelegate(styles Styles) issueDelegate {
	return issueDelegate{styles: styles}
}

func (d issueDelegate) Height() int {
	return 2
}

func (d issueDelegate) Spacing() int {
	return 1
}

func (d issueDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

func (d issueDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	ii, ok := item.(issueItem)
	if !ok {
		return
	}
	issue := ii.issue
	selected := index == m.Index()
	listWidth := m.Width()

	indicatorChar := " "
	if selected {
		indicatorChar = ">"
	}
	numberStr := fmt.Sprintf("#%-4d", issue.Number)
	badge := TypeBadge(issue.IssueType)

	prefixWidth := 2 + 1 + 1 + runewidth.StringWidth(numberStr) + 1 + lipgloss.Width(badge) + 1
	maxTitleLen := listWidth - prefixWidth
	if maxTitleLen < 10 {
		maxTitleLen = 10
	}
	title := escapeNewlines(issue.Title)
	if runewidth.StringWidth(title) > maxTitleLen {
		title = runewidth.Truncate(title, maxTitleLen-3, "...")
	}

	titleStyle := d.styles.IssueTitle
	indicatorStyle := d.styles.SelectionIndicator
	if selected {
		titleStyle = d.styles.IssueTitleSelected
		indicatorStyle = indicatorStyle.Bold(true)
	}

	line := "  " + indicatorStyle.Render(indicatorChar) + " " +
		d.styles.IssueNumber.Render(numberStr) + " " +
		badge + " " +
		titleStyle.Render(title)
	_, _ = fmt.Fprintln(w, fitLine(line, listWidth))

	meta := strings.Repeat(" ", 4+runewidth.StringWidth(numberStr)+1) + issueMeta(issue)
	_, _ = fmt.Fprint(w, fitLine(d.styles.IssueMeta.Render(meta), listWidth))
}

// issueMeta summarizes an issue on one line, e.g.
// "opened 3 days ago by alice · v1.2 · 2 images".
func issueMeta(issue domain.IssueContent) string {
	parts := []string{issue.Age()}
	if issue.Username != "" {
		parts[0] += " by " + issue.Username
	}
	if v := issue.DisplayVersion(); v != "" {
		parts = append(parts, v)
	}
	switch n := len(issue.Images); n {
	case 0:
	case 1:
		parts = append(parts, "1 image")
	default:
		parts = append(parts, fmt.Sprintf("%d images", n))
	}
	return strings.Join(parts, " · ")
}

// fitLine truncates or pads a rendered line to width.
func fitLine(line string, width int) string {
	if width <= 0 {
		return line
	}
	lineWidth := lipgloss.Width(line)
	if lineWidth > width {
		return truncate.StringWithTail(line, uint(width), "")
	}
	return line + strings.Repeat(" ", width-lineWidth)
}

// escapeNewlines replaces newline characters with spaces for single-line display.
func escapeNewlines(s string) string {
	s = strings.ReplaceAll(s, "\r\n", " ")
	s = strings.ReplaceAll(s, "\n", " ")
	s = strings.ReplaceAll(s, "\r", " ")
	return s
}
