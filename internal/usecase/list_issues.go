package usecase

import (
	"context"

	"github.com/runoshun/issue-reporter/internal/domain"
)

// ListIssuesInput contains the parameters for listing issues.
type ListIssuesInput struct {
	State string // open, closed or all (empty = all)
}

// ListIssuesOutput contains the result of listing issues.
type ListIssuesOutput struct {
	Issues  []domain.IssueContent // Issues matching State, open first
	Set     domain.IssueSet       // All issues split by state
	Skipped int                   // Records dropped as invalid
}

// ListIssues is the use case for listing tracker issues.
type ListIssues struct {
	tracker domain.IssueTracker
	clock   domain.Clock
	logger  domain.Logger
}

// NewListIssues creates a new ListIssues use case.
func NewListIssues(tracker domain.IssueTracker, clock domain.Clock, logger domain.Logger) *ListIssues {
	return &ListIssues{
		tracker: tracker,
		clock:   clock,
		logger:  logger,
	}
}

// Execute fetches all issues and filters them by state.
func (uc *ListIssues) Execute(ctx context.Context, in ListIssuesInput) (*ListIssuesOutput, error) {
	// Reject a bad filter before touching the network.
	if _, err := (domain.IssueSet{}).Filter(in.State); err != nil {
		return nil, err
	}

	set, skipped, err := fetchIssues(ctx, uc.tracker, uc.clock, uc.logger)
	if err != nil {
		return nil, err
	}

	issues, err := set.Filter(in.State)
	if err != nil {
		return nil, err
	}

	return &ListIssuesOutput{
		Issues:  issues,
		Set:     set,
		Skipped: skipped,
	}, nil
}
