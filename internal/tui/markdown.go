package tui

import (
	"strings"

	"github.com/charmbracelet/glamour"
	glamourstyles "github.com/charmbracelet/glamour/styles"
)

// minMarkdownWidth keeps rendering readable on very narrow terminals.
const minMarkdownWidth = 20

// RenderMarkdown renders issue content for the terminal, wrapped at width.
// On renderer failure the content is returned as is.
func RenderMarkdown(content string, width int) string {
	if strings.TrimSpace(content) == "" {
		return ""
	}
	if width < minMarkdownWidth {
		width = minMarkdownWidth
	}

	style := glamourstyles.DarkStyleConfig
	style.CodeBlock.Chroma = nil
	style.CodeBlock.Theme = codeTheme

	r, err := glamour.NewTermRenderer(
		glamour.WithStyles(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return content
	}
	out, err := r.Render(content)
	if err != nil {
		return content
	}
	return strings.Trim(out, "\n")
}
