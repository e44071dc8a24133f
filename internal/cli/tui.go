package cli

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/runoshun/issue-reporter/internal/app"
	"github.com/runoshun/issue-reporter/internal/tui"
	"github.com/runoshun/issue-reporter/internal/tui/reporter"
)

// Function variables for launching the TUIs, allowing them to be mocked in tests.
var (
	launchViewerFunc = launchViewer
	launchFormFunc   = launchForm
)

// newViewCommand creates the view command for browsing issues interactively.
func newViewCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "view",
		Short: "Browse issues interactively",
		Long: `Open the issue viewer.

Open and closed issues are shown on separate tabs. Press enter to unfold
an issue, r to refresh from the tracker and ? for all keybindings.`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return launchViewerFunc(c)
		},
	}
}

// newFormCommand creates the form command for filing a report interactively.
func newFormCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "form",
		Short: "File a report with an interactive form",
		Long: `Open the report form.

Fill in the title, type and details, attach up to 5 screenshots by path
and press ctrl+s to submit. The estimated body size is shown as you type.`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return launchFormFunc(c)
		},
	}
}

// launchViewer runs the issue viewer until the user quits.
func launchViewer(c *app.Container) error {
	p := tea.NewProgram(tui.New(c), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// launchForm runs the report form until the user quits.
func launchForm(c *app.Container) error {
	p := tea.NewProgram(reporter.New(c), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
