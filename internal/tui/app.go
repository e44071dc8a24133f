package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/runoshun/issue-reporter/internal/app"
	"github.com/runoshun/issue-reporter/internal/domain"
	"github.com/runoshun/issue-reporter/internal/usecase"
)

// Model is the bubbletea model of the issue viewer.
type Model struct {
	// Dependencies (pointers first for alignment)
	container *app.Container
	err       error

	// State
	set    domain.IssueSet
	status string

	// Components
	keys           KeyMap
	styles         Styles
	help           help.Model
	issueList      list.Model
	detailViewport viewport.Model
	spinner        spinner.Model

	// Numeric state (smaller types last)
	tab      Tab
	width    int
	height   int
	skipped  int
	loading  bool
	expanded bool
}

// New creates a new viewer Model with the given container.
func New(c *app.Container) *Model {
	styles := DefaultStyles()
	issueList := list.New([]list.Item{}, newIssueDelegate(styles), 0, 0)
	issueList.SetShowTitle(false)
	issueList.SetShowStatusBar(false)
	issueList.SetShowHelp(false)
	issueList.SetShowPagination(false)
	issueList.SetFilteringEnabled(false)
	issueList.DisableQuitKeybindings()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styles.Loading

	return &Model{
		container: c,
		keys:      DefaultKeyMap(),
		styles:    styles,
		help:      help.New(),
		issueList: issueList,
		spinner:   sp,
		tab:       TabOpen,
		loading:   true,
	}
}

// Init starts the first refresh.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.loadIssues())
}

// loadIssues returns a command that fetches every issue from the tracker.
func (m *Model) loadIssues() tea.Cmd {
	return func() tea.Msg {
		out, err := m.container.ListIssuesUseCase().Execute(context.Background(), usecase.ListIssuesInput{
			State: domain.StateAll,
		})
		if err != nil {
			return MsgError{Err: err}
		}
		return MsgIssuesLoaded{Set: out.Set, Skipped: out.Skipped}
	}
}

// exportImages returns a command that writes the images of issue number
// into the project directory.
func (m *Model) exportImages(number int) tea.Cmd {
	dir := m.container.Config.ProjectDir
	return func() tea.Msg {
		out, err := m.container.ExportImagesUseCase().Execute(context.Background(), usecase.ExportImagesInput{
			Number: number,
			OutDir: dir,
		})
		if err != nil {
			return MsgError{Err: err}
		}
		return MsgImagesExported{Number: number, Dir: dir, Paths: out.Paths}
	}
}

// SelectedIssue returns the currently selected issue, or nil if none.
func (m *Model) SelectedIssue() *domain.IssueContent {
	if ii, ok := m.issueList.SelectedItem().(issueItem); ok {
		issue := ii.issue
		return &issue
	}
	return nil
}

// visibleIssues returns the issues of the current tab.
func (m *Model) visibleIssues() []domain.IssueContent {
	if m.tab == TabClosed {
		return m.set.Closed
	}
	return m.set.Open
}

// updateIssueList replaces the list items, keeping the selected issue
// selected when it is still present.
func (m *Model) updateIssueList() {
	selected := 0
	if cur := m.SelectedIssue(); cur != nil {
		selected = cur.Number
	}
	issues := m.visibleIssues()
	items := make([]list.Item, 0, len(issues))
	index := 0
	for i, issue := range issues {
		if issue.Number == selected {
			index = i
		}
		items = append(items, issueItem{issue: issue})
	}
	m.issueList.SetItems(items)
	m.issueList.Select(index)
}

func (m *Model) updateLayoutSizes() {
	m.issueList.SetSize(m.contentWidth(), m.listHeight())
	if m.expanded {
		m.initDetailViewport()
	}
}

func (m *Model) initDetailViewport() {
	width := m.contentWidth()
	height := m.listHeight()
	m.detailViewport = viewport.New(width, height)
	m.detailViewport.Style = lipgloss.NewStyle()
	issue := m.SelectedIssue()
	if issue == nil {
		m.detailViewport.SetContent("No issue selected")
		return
	}
	m.detailViewport.SetContent(RenderIssue(*issue, width))
}

func (m *Model) contentWidth() int {
	// App padding on both sides.
	w := m.width - 4
	if w < 40 {
		w = 40
	}
	return w
}

func (m *Model) listHeight() int {
	// Header, error line, footer and app padding.
	h := m.height - 8
	if h < 5 {
		h = 5
	}
	return h
}
