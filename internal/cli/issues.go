package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"github.com/runoshun/issue-reporter/internal/app"
	"github.com/runoshun/issue-reporter/internal/domain"
	"github.com/runoshun/issue-reporter/internal/tui"
	"github.com/runoshun/issue-reporter/internal/usecase"
)

// maxTitleWidth caps the TITLE column of the issue list.
const maxTitleWidth = 60

// newIssuesCommand creates the issues command for listing issues.
func newIssuesCommand(c *app.Container) *cobra.Command {
	var opts struct {
		State string
		JSON  bool
	}

	cmd := &cobra.Command{
		Use:     "issues",
		Aliases: []string{"ls"},
		Short:   "List issues",
		Long: `List issues from the tracker, open issues first.

Output format is tab-separated with columns:
  NUMBER, STATE, TYPE, TITLE, AGE

Records the tracker returns without a valid number are skipped with a warning.

Examples:
  # List all issues
  issue-reporter issues

  # List open issues only
  issue-reporter issues --state open

  # Output in JSON format
  issue-reporter issues --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := c.ListIssuesUseCase().Execute(cmd.Context(), usecase.ListIssuesInput{
				State: opts.State,
			})
			if err != nil {
				return err
			}

			if out.Skipped > 0 {
				_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: skipped %d malformed issue(s)\n", out.Skipped)
			}

			if opts.JSON {
				return writeIssuesJSON(cmd.OutOrStdout(), out.Issues)
			}
			printIssueList(cmd.OutOrStdout(), out.Issues)
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.State, "state", "s", domain.StateAll, "Filter by state: open, closed or all")
	cmd.Flags().BoolVar(&opts.JSON, "json", false, "Output in JSON format")

	cmd.AddCommand(newIssuesShowCommand(c))

	return cmd
}

// newIssuesShowCommand creates the issues show subcommand.
func newIssuesShowCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Width int
		Raw   bool
		JSON  bool
	}

	cmd := &cobra.Command{
		Use:   "show <number>",
		Short: "Show an issue",
		Long: `Show a single issue with its details rendered as markdown.

Examples:
  # Show issue #12
  issue-reporter issues show 12

  # Print the decoded details without rendering
  issue-reporter issues show 12 --raw`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			number, err := parseIssueNumber(args[0])
			if err != nil {
				return err
			}

			out, err := c.ShowIssueUseCase().Execute(cmd.Context(), usecase.ShowIssueInput{Number: number})
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			switch {
			case opts.JSON:
				enc := json.NewEncoder(w)
				enc.SetIndent("", "  ")
				return enc.Encode(toJSONIssue(out.Issue))
			case opts.Raw:
				_, _ = fmt.Fprintln(w, out.Issue.Content)
			default:
				_, _ = fmt.Fprintln(w, tui.RenderIssue(out.Issue, opts.Width))
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&opts.Width, "width", "w", 100, "Wrap width for rendered markdown")
	cmd.Flags().BoolVar(&opts.Raw, "raw", false, "Print the decoded details without rendering")
	cmd.Flags().BoolVar(&opts.JSON, "json", false, "Output in JSON format")

	return cmd
}

// printIssueList prints issues in TSV format.
func printIssueList(w io.Writer, issues []domain.IssueContent) {
	tw := tabwriter.NewWriter(w, 0, 0, 3, ' ', 0)
	defer func() { _ = tw.Flush() }()

	_, _ = fmt.Fprintln(tw, "NUMBER\tSTATE\tTYPE\tTITLE\tAGE")

	for _, issue := range issues {
		state := domain.StateOpen
		age := issue.CreatedAt
		if !issue.IsOpened {
			state = domain.StateClosed
			age = issue.ClosedAt
		}
		if age == "" {
			age = "-"
		}
		_, _ = fmt.Fprintf(tw, "#%d\t%s\t%s\t%s\t%s\n",
			issue.Number,
			state,
			issue.IssueType,
			runewidth.Truncate(issue.Title, maxTitleWidth, "..."),
			age,
		)
	}
}

// jsonIssue is the JSON form of an issue.
type jsonIssue struct {
	Title       string `json:"title"`
	State       string `json:"state"`
	Type        string `json:"type"`
	URL         string `json:"url"`
	Username    string `json:"username,omitempty"`
	Version     string `json:"version,omitempty"`
	Content     string `json:"content"`
	Created     string `json:"created,omitempty"`
	Closed      string `json:"closed,omitempty"`
	CloseReason string `json:"close_reason,omitempty"`
	Number      int    `json:"number"`
	Images      int    `json:"images"`
}

func toJSONIssue(issue domain.IssueContent) jsonIssue {
	state := domain.StateOpen
	if !issue.IsOpened {
		state = domain.StateClosed
	}
	return jsonIssue{
		Title:       issue.Title,
		State:       state,
		Type:        issue.IssueType,
		URL:         issue.URL,
		Username:    issue.Username,
		Version:     issue.DisplayVersion(),
		Content:     issue.Content,
		Created:     issue.CreatedAt,
		Closed:      issue.ClosedAt,
		CloseReason: issue.CloseReason,
		Number:      issue.Number,
		Images:      len(issue.Images),
	}
}

func writeIssuesJSON(w io.Writer, issues []domain.IssueContent) error {
	out := make([]jsonIssue, 0, len(issues))
	for _, issue := range issues {
		out = append(out, toJSONIssue(issue))
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

// newImagesCommand creates the images command for exporting screenshots.
func newImagesCommand(c *app.Container) *cobra.Command {
	var outDir string

	cmd := &cobra.Command{
		Use:   "images <number>",
		Short: "Save the screenshots embedded in an issue",
		Long: `Decode the screenshots embedded in an issue body and write them as
issue-<number>-<index>.jpg files.

Examples:
  # Save the screenshots of issue #12 to the current directory
  issue-reporter images 12

  # Save them to a directory
  issue-reporter images 12 --out shots`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			number, err := parseIssueNumber(args[0])
			if err != nil {
				return err
			}

			out, err := c.ExportImagesUseCase().Execute(cmd.Context(), usecase.ExportImagesInput{
				Number: number,
				OutDir: outDir,
			})
			if err != nil {
				return err
			}

			for _, p := range out.Paths {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), p)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outDir, "out", "o", ".", "Directory to write the images to")

	return cmd
}
