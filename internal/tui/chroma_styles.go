package tui

import (
	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/styles"
)

// codeTheme is the chroma style used for fenced code in issue bodies.
const codeTheme = "catppuccin-mocha"

func init() {
	// Register Catppuccin Mocha style
	// Based on https://github.com/catppuccin/chroma
	styles.Register(chroma.MustNewStyle(codeTheme, chroma.StyleEntries{
		chroma.Text:               "#cdd6f4",
		chroma.Error:              "#f38ba8",
		chroma.Comment:            "#6c7086 italic",
		chroma.CommentPreproc:     "#f5e0dc",
		chroma.Keyword:            "#cba6f7",
		chroma.KeywordType:        "#f9e2af",
		chroma.KeywordDeclaration: "#cba6f7 italic",
		chroma.Operator:           "#89dceb",
		chroma.Punctuation:        "#9399b2",
		chroma.Name:               "#cdd6f4",
		chroma.NameFunction:       "#89b4fa",
		chroma.NameTag:            "#cba6f7",
		chroma.LiteralNumber:      "#fab387",
		chroma.LiteralString:      "#a6e3a1",
		chroma.GenericDeleted:     "#f38ba8",
		chroma.GenericInserted:    "#a6e3a1",
		chroma.GenericHeading:     "#89b4fa bold",
		chroma.Background:         "", // Transparent background
	}))
}
