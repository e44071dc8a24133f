// Package reporter provides the terminal form for filing issue reports.
package reporter

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/muesli/reflow/truncate"

	"github.com/runoshun/issue-reporter/internal/app"
	"github.com/runoshun/issue-reporter/internal/domain"
	"github.com/runoshun/issue-reporter/internal/tui"
	"github.com/runoshun/issue-reporter/internal/usecase"
)

// field identifies the focused form field.
type field int

const (
	fieldTitle field = iota
	fieldType
	fieldDetails
	fieldImage
	fieldCount
)

const appPadding = 4

// image is an attached screenshot and its encoded payload.
type image struct {
	path    string
	payload string
}

// Model is the report form model.
// Fields are ordered to minimize memory padding.
type Model struct {
	// Dependencies
	container *app.Container
	err       error

	// State
	images []image
	status string

	// Components
	keys         KeyMap
	styles       Styles
	help         help.Model
	titleInput   textinput.Model
	imageInput   textinput.Model
	detailsInput textarea.Model
	spinner      spinner.Model

	// Numeric state
	focus      field
	typeIndex  int
	width      int
	height     int
	submitting bool
}

// New creates a new report form with the given container.
func New(c *app.Container) *Model {
	ti := textinput.New()
	ti.Placeholder = "Short summary of the problem"
	ti.CharLimit = 256

	ii := textinput.New()
	ii.Placeholder = "Path to a screenshot, then enter"
	ii.CharLimit = 1024

	da := textarea.New()
	da.Placeholder = "What happened? Steps to reproduce, expected behavior..."
	da.ShowLineNumbers = false
	da.CharLimit = 0

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	m := &Model{
		container:    c,
		keys:         DefaultKeyMap(),
		styles:       DefaultStyles(),
		help:         help.New(),
		titleInput:   ti,
		imageInput:   ii,
		detailsInput: da,
		spinner:      sp,
		typeIndex:    defaultTypeIndex(c),
	}
	m.setFocus(fieldTitle)
	return m
}

// defaultTypeIndex selects the configured default report type.
func defaultTypeIndex(c *app.Container) int {
	if c == nil || c.Settings == nil {
		return 0
	}
	t, err := domain.ParseReportType(c.Settings.Reporter.DefaultType)
	if err != nil {
		return 0
	}
	for i, rt := range domain.ReportTypes {
		if rt == t {
			return i
		}
	}
	return 0
}

// Init initializes the model.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// reportType returns the selected report type.
func (m *Model) reportType() domain.ReportType {
	return domain.ReportTypes[m.typeIndex]
}

// payloads returns the encoded images in attach order.
func (m *Model) payloads() []string {
	out := make([]string, 0, len(m.images))
	for _, img := range m.images {
		out = append(out, img.payload)
	}
	return out
}

// bodySize estimates the size of the issue body built from the form.
func (m *Model) bodySize() int {
	return domain.EstimatedBodySize(m.detailsInput.Value(), m.payloads())
}

func (m *Model) quality() int {
	if m.container.Settings != nil && m.container.Settings.Reporter.JPEGQuality > 0 {
		return m.container.Settings.Reporter.JPEGQuality
	}
	return domain.DefaultJPEGQuality
}

// loadImage returns a command that encodes the image at path.
func (m *Model) loadImage(path string) tea.Cmd {
	quality := m.quality()
	store := m.container.Images
	return func() tea.Msg {
		payload, err := store.LoadJPEGBase64(path, quality)
		if err != nil {
			return MsgError{Err: fmt.Errorf("attach %s: %w", filepath.Base(path), err)}
		}
		return MsgImageLoaded{Path: path, Payload: payload}
	}
}

// submit returns a command that files the report.
func (m *Model) submit() tea.Cmd {
	in := usecase.CreateReportInput{
		Title:   m.titleInput.Value(),
		Type:    string(m.reportType()),
		Details: m.detailsInput.Value(),
		Images:  m.payloads(),
	}
	uc := m.container.CreateReportUseCase()
	return func() tea.Msg {
		out, err := uc.Execute(context.Background(), in)
		if err != nil {
			return MsgError{Err: err}
		}
		return MsgSubmitted{Output: out}
	}
}

// reset clears the form after a successful submission.
func (m *Model) reset() {
	m.titleInput.Reset()
	m.detailsInput.Reset()
	m.imageInput.Reset()
	m.images = nil
	m.typeIndex = defaultTypeIndex(m.container)
	m.setFocus(fieldTitle)
}

func (m *Model) setFocus(f field) {
	m.focus = f
	m.titleInput.Blur()
	m.detailsInput.Blur()
	m.imageInput.Blur()
	switch f {
	case fieldTitle:
		m.titleInput.Focus()
	case fieldDetails:
		m.detailsInput.Focus()
	case fieldImage:
		m.imageInput.Focus()
	case fieldType, fieldCount:
	}
}

// Update handles messages and updates the model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.updateLayoutSizes()
		return m, nil

	case spinner.TickMsg:
		if !m.submitting {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case MsgImageLoaded:
		if len(m.images) >= domain.MaxImages {
			m.err = domain.ErrTooManyImages
			return m, nil
		}
		m.images = append(m.images, image{path: msg.Path, payload: msg.Payload})
		m.imageInput.Reset()
		m.err = nil
		return m, nil

	case MsgSubmitted:
		m.submitting = false
		m.err = nil
		m.status = fmt.Sprintf("Submitted %q", msg.Output.Report.Title)
		m.reset()
		return m, nil

	case MsgError:
		m.submitting = false
		m.err = msg.Err
		return m, nil
	}

	return m.updateFocused(msg)
}

func (m *Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Submit):
		if m.submitting {
			return m, nil
		}
		m.submitting = true
		m.err = nil
		m.status = ""
		return m, tea.Batch(m.spinner.Tick, m.submit())

	case key.Matches(msg, m.keys.NextField):
		m.setFocus((m.focus + 1) % fieldCount)
		return m, nil

	case key.Matches(msg, m.keys.PrevField):
		m.setFocus((m.focus + fieldCount - 1) % fieldCount)
		return m, nil

	case key.Matches(msg, m.keys.RemoveImage):
		if n := len(m.images); n > 0 {
			m.images = m.images[:n-1]
		}
		return m, nil
	}

	switch m.focus {
	case fieldType:
		n := len(domain.ReportTypes)
		switch {
		case key.Matches(msg, m.keys.PrevType):
			m.typeIndex = (m.typeIndex + n - 1) % n
		case key.Matches(msg, m.keys.NextType):
			m.typeIndex = (m.typeIndex + 1) % n
		}
		return m, nil

	case fieldImage:
		if key.Matches(msg, m.keys.AddImage) {
			path := strings.TrimSpace(m.imageInput.Value())
			if path == "" {
				return m, nil
			}
			if len(m.images) >= domain.MaxImages {
				m.err = domain.ErrTooManyImages
				return m, nil
			}
			return m, m.loadImage(path)
		}

	case fieldTitle:
		if key.Matches(msg, m.keys.AddImage) {
			m.setFocus(fieldType)
			return m, nil
		}

	case fieldDetails, fieldCount:
	}

	return m.updateFocused(msg)
}

// updateFocused forwards msg to the focused input.
func (m *Model) updateFocused(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.focus {
	case fieldTitle:
		m.titleInput, cmd = m.titleInput.Update(msg)
	case fieldDetails:
		m.detailsInput, cmd = m.detailsInput.Update(msg)
	case fieldImage:
		m.imageInput, cmd = m.imageInput.Update(msg)
	case fieldType, fieldCount:
	}
	return m, cmd
}

func (m *Model) updateLayoutSizes() {
	width := m.width - appPadding*2
	if width < 30 {
		width = 30
	}
	m.titleInput.Width = width - 4
	m.imageInput.Width = width - 4
	m.detailsInput.SetWidth(width - 4)

	// Title, type, image rows, status and help take roughly 20 lines.
	height := m.height - 20 - domain.MaxImages
	if height < 3 {
		height = 3
	}
	m.detailsInput.SetHeight(height)
}

// View renders the form.
func (m *Model) View() string {
	var sections []string

	sections = append(sections, m.styles.Title.Render("New issue report"))

	sections = append(sections,
		m.label(fieldTitle, "Title"),
		m.box(fieldTitle, m.titleInput.View()),
		m.label(fieldType, "Type"),
		m.viewTypes(),
		m.label(fieldDetails, "Details"),
		m.box(fieldDetails, m.detailsInput.View()),
		m.label(fieldImage, fmt.Sprintf("Images (%d/%d)", len(m.images), domain.MaxImages)),
	)
	sections = append(sections, m.viewImages()...)
	sections = append(sections, m.box(fieldImage, m.imageInput.View()), "", m.viewSize())

	switch {
	case m.submitting:
		sections = append(sections, m.spinner.View()+" Submitting...")
	case m.err != nil:
		sections = append(sections, m.styles.Error.Render("Error: "+m.err.Error()))
	case m.status != "":
		sections = append(sections, m.styles.Status.Render(m.status))
	}

	sections = append(sections, m.styles.Help.Render(m.help.View(m.keys)))

	return lipgloss.NewStyle().Padding(1, 2).Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

func (m *Model) label(f field, text string) string {
	if m.focus == f {
		return m.styles.LabelFocused.Render(text)
	}
	return m.styles.Label.Render(text)
}

func (m *Model) box(f field, content string) string {
	if m.focus == f {
		return m.styles.FieldFocused.Render(content)
	}
	return m.styles.Field.Render(content)
}

func (m *Model) viewTypes() string {
	options := make([]string, 0, len(domain.ReportTypes))
	for i, rt := range domain.ReportTypes {
		if i == m.typeIndex {
			options = append(options, m.styles.TypeSelected.Render(string(rt)))
		} else {
			options = append(options, m.styles.TypeOption.Render(string(rt)))
		}
	}
	return strings.Join(options, " ") + "  " + tui.TypeBadge(m.reportType().IssueType())
}

func (m *Model) viewImages() []string {
	maxWidth := m.width - appPadding*2 - 4
	if maxWidth < 20 {
		maxWidth = 20
	}
	lines := make([]string, 0, len(m.images))
	for i, img := range m.images {
		line := fmt.Sprintf("  %d. %s (%s)", i+1, img.path, humanize.Bytes(uint64(len(img.payload))))
		lines = append(lines, m.styles.ImagePath.Render(truncate.StringWithTail(line, uint(maxWidth), "...")))
	}
	return lines
}

func (m *Model) viewSize() string {
	size := m.bodySize()
	text := fmt.Sprintf("Body size: %s / %s",
		humanize.Bytes(uint64(size)), humanize.Bytes(domain.MaxBodySize))
	if domain.IsOversize(size) {
		return m.styles.SizeOver.Render(text + " (too large, the tracker may reject it)")
	}
	return m.styles.Size.Render(text)
}
