package usecase

import (
	"context"

	"github.com/runoshun/issue-reporter/internal/domain"
)

// ShowIssueInput contains the parameters for showing an issue.
type ShowIssueInput struct {
	Number int
}

// ShowIssueOutput contains the issue to display.
type ShowIssueOutput struct {
	Issue domain.IssueContent
}

// ShowIssue is the use case for displaying a single issue.
type ShowIssue struct {
	tracker domain.IssueTracker
	clock   domain.Clock
	logger  domain.Logger
}

// NewShowIssue creates a new ShowIssue use case.
func NewShowIssue(tracker domain.IssueTracker, clock domain.Clock, logger domain.Logger) *ShowIssue {
	return &ShowIssue{
		tracker: tracker,
		clock:   clock,
		logger:  logger,
	}
}

// Execute finds the issue by number.
func (uc *ShowIssue) Execute(ctx context.Context, in ShowIssueInput) (*ShowIssueOutput, error) {
	issue, err := findIssue(ctx, uc.tracker, uc.clock, uc.logger, in.Number)
	if err != nil {
		return nil, err
	}
	return &ShowIssueOutput{Issue: issue}, nil
}
