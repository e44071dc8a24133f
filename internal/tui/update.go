package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

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
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case MsgIssuesLoaded:
		m.loading = false
		m.err = nil
		m.set = msg.Set
		m.skipped = msg.Skipped
		m.updateIssueList()
		if m.expanded {
			if m.SelectedIssue() == nil {
				m.expanded = false
			} else {
				m.initDetailViewport()
			}
		}
		return m, nil

	case MsgImagesExported:
		m.err = nil
		m.status = fmt.Sprintf("Saved %d image(s) of #%d to %s", len(msg.Paths), msg.Number, msg.Dir)
		return m, nil

	case MsgError:
		m.loading = false
		m.err = msg.Err
		m.status = ""
		return m, nil
	}

	return m, nil
}

func (m *Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.Refresh):
		if m.loading {
			return m, nil
		}
		m.loading = true
		return m, tea.Batch(m.spinner.Tick, m.loadIssues())

	case key.Matches(msg, m.keys.Save):
		issue := m.SelectedIssue()
		if issue == nil {
			return m, nil
		}
		if len(issue.Images) == 0 {
			m.status = fmt.Sprintf("#%d has no images", issue.Number)
			return m, nil
		}
		m.status = fmt.Sprintf("Saving images of #%d...", issue.Number)
		return m, m.exportImages(issue.Number)

	case key.Matches(msg, m.keys.Tab):
		m.tab = m.tab.next()
		m.expanded = false
		m.updateIssueList()
		return m, nil

	case key.Matches(msg, m.keys.Toggle):
		if m.expanded {
			m.expanded = false
			return m, nil
		}
		if m.SelectedIssue() == nil {
			return m, nil
		}
		m.expanded = true
		m.initDetailViewport()
		return m, nil

	case msg.Type == tea.KeyEsc:
		m.expanded = false
		return m, nil
	}

	var cmd tea.Cmd
	if m.expanded {
		m.detailViewport, cmd = m.detailViewport.Update(msg)
		return m, cmd
	}
	m.issueList, cmd = m.issueList.Update(msg)
	return m, cmd
}
