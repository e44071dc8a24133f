package domain

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// ReportDraft is a report prepared in a markdown file.
//
// Format:
//
//	---
//	title: Crash on startup
//	type: bug
//	images: [shot1.png, shot2.jpg]
//	---
//	Steps to reproduce...
type ReportDraft struct {
	Title   string   `yaml:"title"`
	Type    string   `yaml:"type"`
	Images  []string `yaml:"images"`
	Details string   `yaml:"-"`
}

// ParseReportDraft parses a draft file with YAML front matter.
func ParseReportDraft(content string) (*ReportDraft, error) {
	content = strings.ReplaceAll(content, "\r\n", "\n")
	if strings.TrimSpace(content) == "" {
		return nil, ErrEmptyDraft
	}

	rest, ok := strings.CutPrefix(content, "---\n")
	if !ok {
		return nil, ErrMissingFrontmatter
	}
	front, details, found := strings.Cut(rest, "\n---")
	if !found {
		return nil, ErrMissingFrontmatter
	}
	// Drop the remainder of the closing delimiter line.
	if i := strings.IndexByte(details, '\n'); i >= 0 {
		details = details[i+1:]
	} else {
		details = ""
	}

	var draft ReportDraft
	if err := yaml.Unmarshal([]byte(front), &draft); err != nil {
		return nil, fmt.Errorf("parse front matter: %w", err)
	}
	draft.Details = strings.TrimSpace(details)

	if strings.TrimSpace(draft.Title) == "" {
		return nil, ErrEmptyTitle
	}
	if len(draft.Images) > MaxImages {
		return nil, ErrTooManyImages
	}
	return &draft, nil
}
