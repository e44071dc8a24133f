package tui

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/runoshun/issue-reporter/internal/domain"
)

// RenderIssue renders the full view of one issue: heading, metadata and the
// markdown content wrapped at width.
func RenderIssue(issue domain.IssueContent, width int) string {
	styles := DefaultStyles()
	var lines []string

	lines = append(lines,
		styles.DetailTitle.Render(fmt.Sprintf("#%d %s", issue.Number, issue.Title))+" "+TypeBadge(issue.IssueType))

	status := issue.Age()
	if !issue.IsOpened && issue.CloseReason != "" {
		status += " (" + issue.CloseReason + ")"
	}
	lines = append(lines, detailRow(styles, "Status", status))
	if issue.Username != "" {
		lines = append(lines, detailRow(styles, "Reporter", issue.Username))
	}
	if v := issue.DisplayVersion(); v != "" {
		lines = append(lines, detailRow(styles, "Version", v))
	}
	if issue.URL != "" {
		lines = append(lines, styles.DetailLabel.Render("URL")+styles.Link.Render(issue.URL))
	}

	if body := RenderMarkdown(issue.Content, width); body != "" {
		lines = append(lines, "", body)
	}

	if n := len(issue.Images); n > 0 {
		lines = append(lines, "", styles.Muted.Render(imageSummary(issue.Images)))
	}
	return strings.Join(lines, "\n")
}

func detailRow(styles Styles, label, value string) string {
	return styles.DetailLabel.Render(label) + styles.DetailValue.Render(value)
}

// imageSummary reports the attached images with their decoded size.
func imageSummary(images []string) string {
	var size uint64
	for _, img := range images {
		size += uint64(len(img)) * 3 / 4
	}
	noun := "images"
	if len(images) == 1 {
		noun = "image"
	}
	return fmt.Sprintf("%d %s attached (%s)", len(images), noun, humanize.Bytes(size))
}
