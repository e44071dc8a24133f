// Package usecase contains the application use cases.
package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/issue-reporter/internal/domain"
)

// fetchIssues loads every issue from the tracker and projects it for display.
// Records the viewer cannot use are skipped and logged; the count is returned.
func fetchIssues(
	ctx context.Context,
	tracker domain.IssueTracker,
	clock domain.Clock,
	logger domain.Logger,
) (domain.IssueSet, int, error) {
	if tracker == nil {
		return domain.IssueSet{}, 0, domain.ErrNoTrackerURL
	}

	remote, err := tracker.ListIssues(ctx)
	if err != nil {
		logger.Error("usecase", fmt.Sprintf("list issues failed: %v", err))
		return domain.IssueSet{}, 0, fmt.Errorf("list issues: %w", err)
	}

	contents := make([]domain.IssueContent, 0, len(remote))
	skipped := 0
	for _, r := range remote {
		if err := r.Validate(); err != nil {
			skipped++
			logger.Warn("usecase", fmt.Sprintf("skipping issue %q: %v", r.Title, err))
			continue
		}
		contents = append(contents, domain.ProjectIssue(r, clock))
	}

	logger.Debug("usecase", fmt.Sprintf("fetched %d issues (%d skipped)", len(contents), skipped))
	return domain.SplitIssues(contents), skipped, nil
}

// findIssue fetches issues and returns the one numbered number.
func findIssue(
	ctx context.Context,
	tracker domain.IssueTracker,
	clock domain.Clock,
	logger domain.Logger,
	number int,
) (domain.IssueContent, error) {
	set, _, err := fetchIssues(ctx, tracker, clock, logger)
	if err != nil {
		return domain.IssueContent{}, err
	}
	issue, ok := set.Find(number)
	if !ok {
		return domain.IssueContent{}, fmt.Errorf("#%d: %w", number, domain.ErrIssueNotFound)
	}
	return issue, nil
}
