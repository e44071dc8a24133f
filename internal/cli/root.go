// Package cli provides the command-line interface for issue-reporter.
package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/runoshun/issue-reporter/internal/app"
)

// Command group IDs.
const (
	groupReport = "report"
	groupIssues = "issues"
	groupSetup  = "setup"
)

// NewRootCommand creates the root command for issue-reporter.
// It receives the container for dependency injection and version for display.
func NewRootCommand(c *app.Container, version string) *cobra.Command {
	root := &cobra.Command{
		Use:   "issue-reporter",
		Short: "File and browse issue reports",
		Long: `issue-reporter files bug reports, feature requests and performance
issues to a remote issue tracker, with screenshots embedded in the issue
body, and lets you browse the reported issues from the terminal.

Run without arguments to open the issue viewer.`,
		Version: version,
		// SilenceUsage prevents usage from being printed on errors
		SilenceUsage: true,
		// SilenceErrors prevents Cobra from printing errors (we handle it in main)
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip if container is nil (e.g. in tests)
			if c == nil || c.ConfigLoader == nil {
				return nil
			}

			cfg, err := c.ConfigLoader.Load()
			if err != nil {
				// Reported by the command that needs the config
				return nil
			}

			for _, w := range cfg.Warnings {
				_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %s\n", w)
			}
			return nil
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			return launchViewerFunc(c)
		},
	}

	root.AddGroup(
		&cobra.Group{ID: groupReport, Title: "Reporting:"},
		&cobra.Group{ID: groupIssues, Title: "Issues:"},
		&cobra.Group{ID: groupSetup, Title: "Setup Commands:"},
	)

	reportCmd := newReportCommand(c)
	reportCmd.GroupID = groupReport

	formCmd := newFormCommand(c)
	formCmd.GroupID = groupReport

	issuesCmd := newIssuesCommand(c)
	issuesCmd.GroupID = groupIssues

	imagesCmd := newImagesCommand(c)
	imagesCmd.GroupID = groupIssues

	viewCmd := newViewCommand(c)
	viewCmd.GroupID = groupIssues

	configCmd := newConfigCommand(c)
	configCmd.GroupID = groupSetup

	root.AddCommand(
		reportCmd,
		formCmd,
		issuesCmd,
		imagesCmd,
		viewCmd,
		configCmd,
	)

	return root
}

// parseIssueNumber parses an issue number, with or without a leading '#'.
func parseIssueNumber(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimPrefix(s, "#"))
	if err != nil {
		return 0, fmt.Errorf("invalid issue number %q", s)
	}
	if n <= 0 {
		return 0, errors.New("issue number must be positive")
	}
	return n, nil
}
