package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/jotapp/jot/internal/constants"
)

func (m Model) View() string {
	if m.Quitting {
		return ""
	}

	if m.State == constants.StateLogin {
		return lipgloss.JoinVertical(
			lipgloss.Left,
			titleStyle.Render("jot"),
			m.viewFormError(),
			m.Form.View(),
		)
	}

	var content string
	switch m.State {
	case constants.StateTimeline, constants.StateDay:
		content = docStyle.Render(m.DayList.View())
	case constants.StateThoughts:
		content = docStyle.Render(m.ThoughtLog.View())
	case constants.StateProfile:
		content = docStyle.Render(m.Profile.View())
	case constants.StateCompose, constants.StateChangePassword, constants.StateConfirmation:
		content = lipgloss.JoinVertical(
			lipgloss.Left,
			m.viewFormError(),
			m.Form.View(),
		)
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.viewTabs(),
		m.viewStatus(),
		content,
		m.Help.View(m),
	)
}

func (m Model) viewTabs() string {
	type tab struct {
		title string
		state constants.SessionState
	}
	tabs := []tab{
		{"Timeline", constants.StateTimeline},
		{"Thoughts", constants.StateThoughts},
		{"Profile", constants.StateProfile},
	}

	active := m.State
	switch active {
	case constants.StateCompose, constants.StateConfirmation:
		active = m.PreviousState
	case constants.StateChangePassword:
		active = constants.StateProfile
	}
	if active == constants.StateDay {
		active = constants.StateTimeline
	}

	var rendered []string
	for _, t := range tabs {
		if t.state == active {
			rendered = append(rendered, activeTabStyle.Render(t.title))
		} else {
			rendered = append(rendered, inactiveTabStyle.Render(t.title))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

func (m Model) viewStatus() string {
	if m.Toast != nil {
		if m.Toast.IsError {
			return toastErrStyle.Render(m.Toast.Text)
		}
		return toastStyle.Render(m.Toast.Text)
	}
	if m.Loading {
		return loadingStyle.Render(m.Spinner.View() + " loading…")
	}
	return ""
}

func (m Model) viewFormError() string {
	if m.FormError == "" {
		return ""
	}
	return dangerStyle.Render(m.FormError)
}
