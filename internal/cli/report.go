package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/runoshun/issue-reporter/internal/app"
	"github.com/runoshun/issue-reporter/internal/domain"
	"github.com/runoshun/issue-reporter/internal/usecase"
)

// newReportCommand creates the report command for filing an issue.
func newReportCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Title         string
		Type          string
		Body          string
		Username      string
		ClientVersion string
		From          string
		Images        []string
		Quality       int
		DryRun        bool
	}

	cmd := &cobra.Command{
		Use:   "report",
		Short: "File a new issue report",
		Long: `File a bug report, feature request or performance issue.

Screenshots given with --image are re-encoded as JPEG and embedded in the
issue body (at most 5). Bodies above 64 KiB are reported with a warning
since the tracker may reject them.

A report can also be prepared in a markdown file with YAML front matter:

  ---
  title: Crash on startup
  type: bug
  images: [shot1.png]
  ---
  Steps to reproduce...

Image paths in the file are relative to the file. Flags override values
from the file.

Examples:
  # File a bug report
  issue-reporter report --title "Crash on startup" --body "Steps..."

  # Attach screenshots
  issue-reporter report --title "Broken layout" --type feature \
    --body "See screenshots" --image before.png --image after.png

  # Read the details from stdin
  git log -1 | issue-reporter report --title "Regression" --body -

  # File from a draft, printing the body instead of sending it
  issue-reporter report --from report.md --dry-run`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			input := usecase.CreateReportInput{
				Title:         opts.Title,
				Type:          opts.Type,
				Details:       opts.Body,
				Username:      opts.Username,
				ClientVersion: opts.ClientVersion,
				ImagePaths:    opts.Images,
				Quality:       opts.Quality,
				DryRun:        opts.DryRun,
			}

			if opts.Body == "-" {
				data, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("read body from stdin: %w", err)
				}
				input.Details = string(data)
			}

			if opts.From != "" {
				content, err := os.ReadFile(opts.From)
				if err != nil {
					return fmt.Errorf("read draft: %w", err)
				}
				input.Draft = string(content)
				input.DraftDir = filepath.Dir(opts.From)
			} else if opts.Title == "" {
				return errors.New("--title is required (or use --from)")
			}

			out, err := c.CreateReportUseCase().Execute(cmd.Context(), input)
			if err != nil {
				return err
			}

			if out.Oversize {
				_, _ = fmt.Fprintf(cmd.ErrOrStderr(),
					"Warning: body is %s, above the %s limit; the tracker may reject it\n",
					humanize.Bytes(uint64(out.BodySize)), humanize.Bytes(domain.MaxBodySize))
			}

			w := cmd.OutOrStdout()
			if !out.Submitted {
				printReportPreview(w, out)
				return nil
			}
			_, _ = fmt.Fprintf(w, "Created %s: %s (%s)\n",
				out.Request.Type, out.Report.Title, imageCount(len(out.Report.Images)))
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.Title, "title", "", "Issue title (required unless --from is used)")
	cmd.Flags().StringVarP(&opts.Type, "type", "t", "", "Report type: bug, feature or performance (default from config)")
	cmd.Flags().StringVar(&opts.Body, "body", "", "Details in markdown ('-' reads stdin)")
	cmd.Flags().StringArrayVarP(&opts.Images, "image", "i", nil, "Screenshot to embed (can specify up to 5)")
	cmd.Flags().IntVar(&opts.Quality, "quality", 0, "JPEG quality 1-100 (default from config)")
	cmd.Flags().StringVar(&opts.Username, "username", "", "Reporter name (default: config, then git user.name)")
	cmd.Flags().StringVar(&opts.ClientVersion, "client-version", "", "Client version stamped on the report")
	cmd.Flags().StringVar(&opts.From, "from", "", "Read the report from a markdown file with front matter")
	cmd.Flags().BoolVar(&opts.DryRun, "dry-run", false, "Print the request instead of sending it")

	return cmd
}

// printReportPreview prints a report that was built but not sent.
func printReportPreview(w io.Writer, out *usecase.CreateReportOutput) {
	_, _ = fmt.Fprintln(w, "[Dry run] Issue not created")
	_, _ = fmt.Fprintf(w, "Title:    %s\n", out.Request.Title)
	_, _ = fmt.Fprintf(w, "Type:     %s\n", out.Request.Type)
	if out.Report.Username != "" {
		_, _ = fmt.Fprintf(w, "Reporter: %s\n", out.Report.Username)
	}
	if out.Report.ClientVersion != "" {
		_, _ = fmt.Fprintf(w, "Version:  %s\n", out.Report.ClientVersion)
	}
	_, _ = fmt.Fprintf(w, "Images:   %d\n", len(out.Report.Images))
	_, _ = fmt.Fprintf(w, "Size:     %s\n", humanize.Bytes(uint64(out.BodySize)))
	_, _ = fmt.Fprintln(w)
	_, _ = fmt.Fprintln(w, out.Request.Body)
}

func imageCount(n int) string {
	if n == 1 {
		return "1 image"
	}
	return fmt.Sprintf("%d images", n)
}
