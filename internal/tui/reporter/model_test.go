package reporter

import (
	"errors"
	"os"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runoshun/issue-reporter/internal/app"
	"github.com/runoshun/issue-reporter/internal/domain"
	"github.com/runoshun/issue-reporter/internal/testutil"
)

func TestMain(m *testing.M) {
	lipgloss.SetColorProfile(termenv.Ascii)
	os.Exit(m.Run())
}

type fixture struct {
	model   *Model
	tracker *testutil.MockTracker
	images  *testutil.MockImageStore
	loader  *testutil.MockConfigLoader
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	tracker := testutil.NewMockTracker()
	images := testutil.NewMockImageStore()
	loader := testutil.NewMockConfigLoader()
	loader.Config.Reporter.Username = "alice"
	c := app.NewWithDeps(
		app.Config{ProjectDir: "/test/project"},
		tracker,
		images,
		loader,
		&testutil.MockClock{NowTime: time.Date(2025, 6, 3, 12, 0, 0, 0, time.UTC)},
		&testutil.MockLogger{},
	)
	m := New(c)
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 50})
	return &fixture{model: m, tracker: tracker, images: images, loader: loader}
}

func typeText(m *Model, s string) {
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
}

func focusField(m *Model, f field) {
	for m.focus != f {
		m.Update(tea.KeyMsg{Type: tea.KeyTab})
	}
}

// run executes cmd and feeds every resulting form message back into the model.
func run(t *testing.T, m *Model, cmd tea.Cmd) {
	t.Helper()
	if cmd == nil {
		return
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		for _, c := range batch {
			if c == nil {
				continue
			}
			if inner, ok := c().(Msg); ok {
				m.Update(inner)
			}
		}
		return
	}
	if inner, ok := msg.(Msg); ok {
		m.Update(inner)
	}
}

func TestNew_DefaultType(t *testing.T) {
	f := newFixture(t)

	assert.Equal(t, domain.ReportBug, f.model.reportType())
	assert.Equal(t, fieldTitle, f.model.focus)
}

func TestNew_ConfiguredDefaultType(t *testing.T) {
	loader := testutil.NewMockConfigLoader()
	loader.Config.Reporter.DefaultType = "feature"
	c := app.NewWithDeps(app.Config{}, nil, testutil.NewMockImageStore(), loader, &testutil.MockClock{}, &testutil.MockLogger{})

	m := New(c)

	assert.Equal(t, domain.ReportFeature, m.reportType())
}

func TestFocusCycle(t *testing.T) {
	m := newFixture(t).model

	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, fieldType, m.focus)
	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, fieldDetails, m.focus)
	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, fieldImage, m.focus)
	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, fieldTitle, m.focus)

	m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, fieldImage, m.focus)
}

func TestTypeSelection(t *testing.T) {
	m := newFixture(t).model
	focusField(m, fieldType)

	m.Update(tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, domain.ReportFeature, m.reportType())

	m.Update(tea.KeyMsg{Type: tea.KeyRight})
	m.Update(tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, domain.ReportBug, m.reportType(), "selection wraps around")

	m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	assert.Equal(t, domain.ReportPerformance, m.reportType())
}

func TestAttachImage(t *testing.T) {
	f := newFixture(t)
	m := f.model
	focusField(m, fieldImage)
	typeText(m, "shot.png")

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	run(t, m, cmd)

	require.Len(t, m.images, 1)
	assert.Equal(t, "shot.png", m.images[0].path)
	assert.Equal(t, "jpeg(shot.png@85)", m.images[0].payload)
	assert.Empty(t, m.imageInput.Value())
	assert.Contains(t, m.View(), "Images (1/5)")
	assert.Contains(t, m.View(), "1. shot.png")
}

func TestAttachImage_UsesConfiguredQuality(t *testing.T) {
	f := newFixture(t)
	f.model.container.Settings.Reporter.JPEGQuality = 40
	focusField(f.model, fieldImage)
	typeText(f.model, "a.png")

	_, cmd := f.model.Update(tea.KeyMsg{Type: tea.KeyEnter})
	run(t, f.model, cmd)

	require.Len(t, f.model.images, 1)
	assert.Equal(t, "jpeg(a.png@40)", f.model.images[0].payload)
}

func TestAttachImage_Error(t *testing.T) {
	f := newFixture(t)
	f.images.LoadErr = domain.ErrUnsupportedImage
	focusField(f.model, fieldImage)
	typeText(f.model, "/tmp/notes.txt")

	_, cmd := f.model.Update(tea.KeyMsg{Type: tea.KeyEnter})
	run(t, f.model, cmd)

	assert.Empty(t, f.model.images)
	require.Error(t, f.model.err)
	assert.ErrorIs(t, f.model.err, domain.ErrUnsupportedImage)
	assert.Contains(t, f.model.err.Error(), "attach notes.txt")
}

func TestAttachImage_Limit(t *testing.T) {
	m := newFixture(t).model
	for i := 0; i < domain.MaxImages; i++ {
		m.Update(MsgImageLoaded{Path: "x.png", Payload: "p"})
	}
	focusField(m, fieldImage)
	typeText(m, "one-more.png")

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.Nil(t, cmd)
	assert.ErrorIs(t, m.err, domain.ErrTooManyImages)
	assert.Len(t, m.images, domain.MaxImages)
}

func TestAttachImage_EmptyPath(t *testing.T) {
	m := newFixture(t).model
	focusField(m, fieldImage)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.Nil(t, cmd)
}

func TestRemoveImage(t *testing.T) {
	m := newFixture(t).model
	m.Update(MsgImageLoaded{Path: "a.png", Payload: "a"})
	m.Update(MsgImageLoaded{Path: "b.png", Payload: "b"})

	m.Update(tea.KeyMsg{Type: tea.KeyCtrlX})

	require.Len(t, m.images, 1)
	assert.Equal(t, "a.png", m.images[0].path)
}

func TestBodySize(t *testing.T) {
	m := newFixture(t).model
	focusField(m, fieldDetails)
	typeText(m, "hello")
	m.Update(MsgImageLoaded{Path: "a.png", Payload: strings.Repeat("A", 100)})

	assert.Equal(t, domain.EstimatedBodySize("hello", []string{strings.Repeat("A", 100)}), m.bodySize())
	assert.Contains(t, m.View(), "Body size: 155 B / 66 kB")
	assert.NotContains(t, m.View(), "too large")
}

func TestBodySize_Oversize(t *testing.T) {
	m := newFixture(t).model
	m.Update(MsgImageLoaded{Path: "big.png", Payload: strings.Repeat("A", domain.MaxBodySize)})

	assert.Contains(t, m.View(), "too large")
}

func TestSubmit(t *testing.T) {
	f := newFixture(t)
	m := f.model
	typeText(m, "Crash on start")
	focusField(m, fieldType)
	m.Update(tea.KeyMsg{Type: tea.KeyRight})
	focusField(m, fieldDetails)
	typeText(m, "It crashes")
	m.Update(MsgImageLoaded{Path: "a.png", Payload: "QUJD"})

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	assert.True(t, m.submitting)
	run(t, m, cmd)

	require.Len(t, f.tracker.Created, 1)
	req := f.tracker.Created[0]
	assert.Equal(t, "Crash on start", req.Title)
	assert.Equal(t, "Feature", req.Type)
	assert.Equal(t, domain.EncodeBody("It crashes", []string{"QUJD"}), req.Body)

	assert.False(t, m.submitting)
	assert.NoError(t, m.err)
	assert.Equal(t, `Submitted "Crash on start"`, m.status)
	assert.Empty(t, m.titleInput.Value(), "form is reset")
	assert.Empty(t, m.detailsInput.Value())
	assert.Empty(t, m.images)
	assert.Equal(t, fieldTitle, m.focus)
}

func TestSubmit_ValidationError(t *testing.T) {
	f := newFixture(t)
	m := f.model
	focusField(m, fieldDetails)
	typeText(m, "details without a title")

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	run(t, m, cmd)

	assert.ErrorIs(t, m.err, domain.ErrEmptyTitle)
	assert.Empty(t, f.tracker.Created)
	assert.Equal(t, "details without a title", m.detailsInput.Value(), "form is kept")
	assert.Contains(t, m.View(), "Error: ")
}

func TestSubmit_TrackerError(t *testing.T) {
	f := newFixture(t)
	f.tracker.CreateErr = errors.New("403 Forbidden")
	m := f.model
	typeText(m, "Title")
	focusField(m, fieldDetails)
	typeText(m, "Body")

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	run(t, m, cmd)

	require.Error(t, m.err)
	assert.Contains(t, m.err.Error(), "403 Forbidden")
	assert.Equal(t, "Title", m.titleInput.Value())
}

func TestSubmit_IgnoredWhileSubmitting(t *testing.T) {
	m := newFixture(t).model
	m.submitting = true

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})

	assert.Nil(t, cmd)
}

func TestQuit(t *testing.T) {
	m := newFixture(t).model

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})

	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestView(t *testing.T) {
	m := newFixture(t).model

	out := m.View()

	assert.Contains(t, out, "New issue report")
	assert.Contains(t, out, "Bug Report")
	assert.Contains(t, out, "Feature Request")
	assert.Contains(t, out, "Images (0/5)")
	assert.Contains(t, out, "Body size: 0 B / 66 kB")
}
