package tui

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runoshun/issue-reporter/internal/domain"
	"github.com/runoshun/issue-reporter/internal/testutil"
)

func newLoadedModel(t *testing.T) *Model {
	t.Helper()
	m := New(newTestContainer(testutil.NewMockTracker()))
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	m.Update(MsgIssuesLoaded{Set: testIssueSet()})
	return m
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestModel_LoadIssues(t *testing.T) {
	// Setup
	tracker := testutil.NewMockTracker(
		testutil.RemoteIssue(1, "Open one", "body"),
		testutil.ClosedRemoteIssue(2, "Closed one", "body"),
		domain.RemoteIssue{Number: 0, Title: "broken"},
	)
	m := New(newTestContainer(tracker))

	// Execute
	msg := m.loadIssues()()

	// Assert
	loaded, ok := msg.(MsgIssuesLoaded)
	require.True(t, ok, "expected MsgIssuesLoaded, got %T", msg)
	assert.Len(t, loaded.Set.Open, 1)
	assert.Len(t, loaded.Set.Closed, 1)
	assert.Equal(t, 1, loaded.Skipped)
	assert.Equal(t, 1, tracker.ListCalls)
}

func TestModel_LoadIssuesError(t *testing.T) {
	tracker := testutil.NewMockTracker()
	tracker.ListErr = errors.New("connection refused")
	m := New(newTestContainer(tracker))

	msg := m.loadIssues()()

	errMsg, ok := msg.(MsgError)
	require.True(t, ok, "expected MsgError, got %T", msg)
	assert.ErrorContains(t, errMsg.Err, "connection refused")
}

func TestModel_LoadIssuesWithoutTracker(t *testing.T) {
	m := New(newTestContainer(nil))

	msg := m.loadIssues()()

	errMsg, ok := msg.(MsgError)
	require.True(t, ok)
	assert.ErrorIs(t, errMsg.Err, domain.ErrNoTrackerURL)
}

func TestUpdate_MsgIssuesLoaded(t *testing.T) {
	m := New(newTestContainer(nil))
	assert.True(t, m.loading)

	updated, cmd := m.Update(MsgIssuesLoaded{Set: testIssueSet(), Skipped: 2})

	result, ok := updated.(*Model)
	require.True(t, ok, "Update should return *Model")
	assert.Nil(t, cmd)
	assert.False(t, result.loading)
	assert.Equal(t, 2, result.skipped)
	assert.Len(t, result.issueList.Items(), 2, "open tab shows open issues")
	require.NotNil(t, result.SelectedIssue())
	assert.Equal(t, 12, result.SelectedIssue().Number)
}

func TestUpdate_MsgIssuesLoadedKeepsSelection(t *testing.T) {
	m := newLoadedModel(t)
	m.issueList.Select(1)
	require.Equal(t, 15, m.SelectedIssue().Number)

	m.Update(MsgIssuesLoaded{Set: testIssueSet()})

	assert.Equal(t, 15, m.SelectedIssue().Number)
}

func TestUpdate_MsgError(t *testing.T) {
	m := New(newTestContainer(nil))

	m.Update(MsgError{Err: errors.New("boom")})

	assert.False(t, m.loading)
	assert.EqualError(t, m.err, "boom")
}

func TestUpdate_TabSwitchesIssues(t *testing.T) {
	m := newLoadedModel(t)

	m.Update(tea.KeyMsg{Type: tea.KeyTab})

	assert.Equal(t, TabClosed, m.tab)
	require.Len(t, m.issueList.Items(), 1)
	assert.Equal(t, 3, m.SelectedIssue().Number)

	m.Update(tea.KeyMsg{Type: tea.KeyTab})

	assert.Equal(t, TabOpen, m.tab)
	assert.Len(t, m.issueList.Items(), 2)
}

func TestUpdate_ToggleFoldsDetail(t *testing.T) {
	m := newLoadedModel(t)

	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.True(t, m.expanded)
	assert.Contains(t, m.detailViewport.View(), "#12 Crash on start")

	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.False(t, m.expanded)

	m.Update(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	assert.True(t, m.expanded)

	m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.expanded)
}

func TestUpdate_ToggleWithoutIssues(t *testing.T) {
	m := New(newTestContainer(nil))
	m.Update(MsgIssuesLoaded{})

	m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.False(t, m.expanded)
}

func TestUpdate_TabCollapsesDetail(t *testing.T) {
	m := newLoadedModel(t)
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	m.Update(tea.KeyMsg{Type: tea.KeyTab})

	assert.False(t, m.expanded)
}

func TestUpdate_Refresh(t *testing.T) {
	m := newLoadedModel(t)

	_, cmd := m.Update(keyRunes("r"))

	assert.True(t, m.loading)
	assert.NotNil(t, cmd)

	// A second refresh while loading is ignored.
	_, cmd = m.Update(keyRunes("r"))
	assert.Nil(t, cmd)
}

func TestUpdate_HelpToggle(t *testing.T) {
	m := newLoadedModel(t)

	m.Update(keyRunes("?"))
	assert.True(t, m.help.ShowAll)

	m.Update(keyRunes("?"))
	assert.False(t, m.help.ShowAll)
}

func TestUpdate_Quit(t *testing.T) {
	m := newLoadedModel(t)

	_, cmd := m.Update(keyRunes("q"))

	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestUpdate_NavigateList(t *testing.T) {
	m := newLoadedModel(t)

	m.Update(tea.KeyMsg{Type: tea.KeyDown})

	assert.Equal(t, 15, m.SelectedIssue().Number)
}

func TestUpdate_SaveExportsSelectedIssueImages(t *testing.T) {
	// Setup
	tracker := testutil.NewMockTracker(
		testutil.RemoteIssue(7, "Broken layout", domain.EncodeBody("see shots", []string{"QUJD", "REVG"})),
	)
	c := newTestContainer(tracker)
	store, ok := c.Images.(*testutil.MockImageStore)
	require.True(t, ok)
	m := New(c)
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	m.Update(m.loadIssues()())
	require.Equal(t, 7, m.SelectedIssue().Number)

	// Execute
	_, cmd := m.Update(keyRunes("s"))
	require.NotNil(t, cmd)
	msg := cmd()
	m.Update(msg)

	// Assert
	exported, ok := msg.(MsgImagesExported)
	require.True(t, ok, "expected MsgImagesExported, got %T", msg)
	assert.Equal(t, []string{"/test/project/issue-7-1.jpg", "/test/project/issue-7-2.jpg"}, exported.Paths)
	assert.Equal(t, "QUJD", store.Written["/test/project/issue-7-1.jpg"])
	assert.Equal(t, "REVG", store.Written["/test/project/issue-7-2.jpg"])
	assert.Equal(t, "Saved 2 image(s) of #7 to /test/project", m.status)
}

func TestUpdate_SaveWithoutImages(t *testing.T) {
	m := newLoadedModel(t)

	_, cmd := m.Update(keyRunes("s"))

	assert.Nil(t, cmd)
	assert.Equal(t, "#12 has no images", m.status)
}

func TestUpdate_SaveError(t *testing.T) {
	tracker := testutil.NewMockTracker(
		testutil.RemoteIssue(7, "Broken layout", domain.EncodeBody("see shots", []string{"QUJD"})),
	)
	m := New(newTestContainer(tracker))
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	m.Update(m.loadIssues()())
	tracker.ListErr = errors.New("offline")

	_, cmd := m.Update(keyRunes("s"))
	require.NotNil(t, cmd)
	m.Update(cmd())

	assert.ErrorContains(t, m.err, "offline")
	assert.Empty(t, m.status)
}
