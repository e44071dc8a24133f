package domain

import (
	"fmt"
	"strings"
	"time"
)

// MaxImages is the number of screenshots a report may carry.
const MaxImages = 5

// MaxBodySize is the body size above which a report is flagged as too large.
const MaxBodySize = 0xFFFF

// imageTagOverhead approximates the bytes each <img> tag adds around its payload.
const imageTagOverhead = 50

// ReportType is the kind of report chosen in the form.
type ReportType string

// Report types, keyed by their form labels.
const (
	ReportBug         ReportType = "Bug Report"
	ReportFeature     ReportType = "Feature Request"
	ReportPerformance ReportType = "Performance Issue (freeze, slow, crash)"
)

// ReportTypes lists the types in form order.
var ReportTypes = []ReportType{ReportBug, ReportFeature, ReportPerformance}

// IssueType returns the tracker issue type for the report type.
// Unknown types file as bugs.
func (t ReportType) IssueType() string {
	switch t {
	case ReportFeature:
		return "Feature"
	case ReportPerformance:
		return "Task"
	default:
		return "Bug"
	}
}

// Short returns a compact name for the type.
func (t ReportType) Short() string {
	switch t {
	case ReportBug:
		return "bug"
	case ReportFeature:
		return "feature"
	case ReportPerformance:
		return "performance"
	default:
		return string(t)
	}
}

// ParseReportType accepts a form label, a short name or a tracker issue type.
func ParseReportType(s string) (ReportType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "bug", "bug report":
		return ReportBug, nil
	case "feature", "feature request":
		return ReportFeature, nil
	case "performance", "perf", "task", strings.ToLower(string(ReportPerformance)):
		return ReportPerformance, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidReportType, s)
}

// BugReport is a report ready to be filed.
// Fields are ordered to minimize memory padding.
type BugReport struct {
	Timestamp     time.Time
	Username      string
	ClientVersion string
	Type          ReportType
	Title         string
	Version       string
	Details       string
	Images        []string // base64 JPEG payloads
	ImagesSize    int      // total payload bytes
}

// BugReportInput holds the values collected by the form or the CLI.
type BugReportInput struct {
	Username      string
	ClientVersion string
	Type          ReportType
	Title         string
	Details       string
	Images        []string
}

// NewBugReport validates input and builds a report stamped with the clock.
func NewBugReport(in BugReportInput, clock Clock) (*BugReport, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, ErrEmptyTitle
	}
	if strings.TrimSpace(in.Details) == "" {
		return nil, ErrEmptyDetails
	}
	if len(in.Images) > MaxImages {
		return nil, ErrTooManyImages
	}
	reportType := in.Type
	if reportType == "" {
		reportType = ReportBug
	}
	images := make([]string, len(in.Images))
	copy(images, in.Images)
	size := 0
	for _, img := range images {
		size += len(img)
	}
	return &BugReport{
		Timestamp:     clock.Now().UTC(),
		Username:      in.Username,
		ClientVersion: in.ClientVersion,
		Type:          reportType,
		Title:         title,
		Version:       in.ClientVersion,
		Details:       in.Details,
		Images:        images,
		ImagesSize:    size,
	}, nil
}

// Request builds the tracker request for the report.
func (r *BugReport) Request() IssueRequest {
	return IssueRequest{
		Title: r.Title,
		Type:  r.Type.IssueType(),
		Body:  EncodeBody(r.Details, r.Images),
	}
}

// IssueRequest is the payload sent to create an issue.
type IssueRequest struct {
	Title string `json:"title"`
	Type  string `json:"type"`
	Body  string `json:"body"`
}

// EstimatedBodySize approximates the encoded body size of a report.
func EstimatedBodySize(details string, images []string) int {
	size := len(details)
	for _, img := range images {
		size += len(img) + imageTagOverhead
	}
	return size
}

// IsOversize reports whether a body of the given size exceeds MaxBodySize.
func IsOversize(size int) bool {
	return size > MaxBodySize
}
