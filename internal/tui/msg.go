package tui

import "github.com/runoshun/issue-reporter/internal/domain"

// Msg is the sealed interface for all TUI messages.
// All message types must implement the sealed() method.
//
// go-sumtype:decl Msg
type Msg interface {
	sealed()
}

// MsgIssuesLoaded is sent when a refresh completes.
type MsgIssuesLoaded struct {
	Set     domain.IssueSet
	Skipped int
}

func (MsgIssuesLoaded) sealed() {}

// MsgImagesExported is sent when the images of an issue were written to disk.
type MsgImagesExported struct {
	Dir    string
	Paths  []string
	Number int
}

func (MsgImagesExported) sealed() {}

// MsgError is sent when an error occurs.
type MsgError struct {
	Err error
}

func (MsgError) sealed() {}
