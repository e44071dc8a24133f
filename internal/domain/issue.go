package domain

import (
	"fmt"
	"strings"
)

// Issue states accepted by list filters.
const (
	StateOpen   = "open"
	StateClosed = "closed"
	StateAll    = "all"
)

// RemoteIssue is an issue as returned by the tracker API.
// Optional fields are pointers; anything absent or null stays nil.
// Fields are ordered to minimize memory padding.
type RemoteIssue struct {
	Body        *string          `json:"body"`
	ClosedAt    *string          `json:"closed_at"`
	StateReason *string          `json:"state_reason"`
	Type        *RemoteIssueType `json:"type"`
	Title       string           `json:"title"`
	HTMLURL     string           `json:"html_url"`
	State       string           `json:"state"`
	CreatedAt   string           `json:"created_at"`
	Number      int              `json:"number"`
}

// RemoteIssueType is the issue type object of the tracker API.
type RemoteIssueType struct {
	Name string `json:"name"`
}

// Validate checks the fields the viewer cannot do without.
func (r RemoteIssue) Validate() error {
	if r.Number <= 0 {
		return fmt.Errorf("issue number %d: %w", r.Number, ErrInvalidIssue)
	}
	return nil
}

// IssueContent is the view model of one issue.
// Fields are ordered to minimize memory padding.
type IssueContent struct {
	Images      []string
	Title       string
	URL         string
	Content     string
	Username    string
	Version     string
	CreatedAt   string
	ClosedAt    string
	IssueType   string
	CloseReason string
	Number      int
	IsOpened    bool
}

// ProjectIssue builds the view model of a remote issue.
// Body decoding and timestamp formatting never fail; bad input degrades to
// verbatim content and empty relative times.
func ProjectIssue(r RemoteIssue, clock Clock) IssueContent {
	body := ""
	if r.Body != nil {
		body = *r.Body
	}
	decoded := DecodeIssueBody(body)

	issueType := "Bug"
	if r.Type != nil && r.Type.Name != "" {
		issueType = r.Type.Name
	}

	content := IssueContent{
		Images:    decoded.Images,
		Title:     r.Title,
		URL:       r.HTMLURL,
		Content:   decoded.Content,
		Username:  decoded.Username,
		Version:   decoded.Version,
		CreatedAt: RelativeTime(clock, r.CreatedAt),
		IssueType: issueType,
		Number:    r.Number,
		IsOpened:  r.State == StateOpen,
	}
	if r.ClosedAt != nil && *r.ClosedAt != "" {
		content.ClosedAt = RelativeTime(clock, *r.ClosedAt)
	}
	if r.StateReason != nil {
		content.CloseReason = *r.StateReason
	}
	return content
}

// DisplayVersion returns the client version the issue was filed from.
// Without an explicit version it falls back to a leading "v..." word.
func (c IssueContent) DisplayVersion() string {
	if c.Version != "" {
		return c.Version
	}
	fields := strings.Fields(c.Content)
	if len(fields) > 0 && strings.HasPrefix(fields[0], "v") {
		return fields[0]
	}
	return ""
}

// Age returns the relative time shown next to the issue, e.g.
// "opened 3 days ago" or "closed 5 minutes ago".
func (c IssueContent) Age() string {
	if c.IsOpened {
		return "opened " + c.CreatedAt
	}
	return "closed " + c.ClosedAt
}

// IssueSet is a refreshed list of issues split by state.
type IssueSet struct {
	Open   []IssueContent
	Closed []IssueContent
}

// SplitIssues partitions issues by state, keeping their order.
func SplitIssues(issues []IssueContent) IssueSet {
	var set IssueSet
	for _, issue := range issues {
		if issue.IsOpened {
			set.Open = append(set.Open, issue)
		} else {
			set.Closed = append(set.Closed, issue)
		}
	}
	return set
}

// Filter returns the issues matching state (open, closed or all).
func (s IssueSet) Filter(state string) ([]IssueContent, error) {
	switch state {
	case StateOpen:
		return s.Open, nil
	case StateClosed:
		return s.Closed, nil
	case StateAll, "":
		all := make([]IssueContent, 0, len(s.Open)+len(s.Closed))
		all = append(all, s.Open...)
		return append(all, s.Closed...), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrInvalidIssueState, state)
}

// Find returns the issue with the given number.
func (s IssueSet) Find(number int) (IssueContent, bool) {
	for _, list := range [][]IssueContent{s.Open, s.Closed} {
		for _, issue := range list {
			if issue.Number == number {
				return issue, true
			}
		}
	}
	return IssueContent{}, false
}
