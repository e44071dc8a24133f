package reporter

import "github.com/runoshun/issue-reporter/internal/usecase"

// Msg is the sealed interface for all report form messages.
//
// go-sumtype:decl Msg
type Msg interface {
	sealed()
}

// MsgImageLoaded is sent when an attached image has been encoded.
type MsgImageLoaded struct {
	Path    string
	Payload string
}

func (MsgImageLoaded) sealed() {}

// MsgSubmitted is sent when the tracker accepted the report.
type MsgSubmitted struct {
	Output *usecase.CreateReportOutput
}

func (MsgSubmitted) sealed() {}

// MsgError is sent when an error occurs.
type MsgError struct {
	Err error
}

func (MsgError) sealed() {}
