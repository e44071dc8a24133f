package domain

import "errors"

// Domain errors.
var (
	ErrEmptyTitle         = errors.New("title cannot be empty")
	ErrEmptyDetails       = errors.New("details cannot be empty")
	ErrTooManyImages      = errors.New("too many images (maximum 5)")
	ErrInvalidReportType  = errors.New("invalid report type")
	ErrInvalidTimestamp   = errors.New("invalid timestamp")
	ErrInvalidIssueState  = errors.New("invalid issue state (use open, closed or all)")
	ErrIssueNotFound      = errors.New("issue not found")
	ErrInvalidIssue       = errors.New("invalid issue record")
	ErrNoTrackerURL       = errors.New("tracker url not configured (set [tracker] url or run 'issue-reporter config init')")
	ErrUnexpectedStatus   = errors.New("unexpected response status")
	ErrConfigExists       = errors.New("config file already exists")
	ErrEmptyDraft         = errors.New("draft file is empty")
	ErrMissingFrontmatter = errors.New("draft file has no front matter")
	ErrUnsupportedImage   = errors.New("unsupported image format")
	ErrInvalidQuality     = errors.New("jpeg quality must be between 1 and 100")
	ErrImageTooLarge      = errors.New("image file too large")
	ErrNoImages           = errors.New("issue has no images")
)
