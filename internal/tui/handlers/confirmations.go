package handlers

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/jotapp/jot/internal/constants"
	"github.com/jotapp/jot/internal/tui/state"
)

// HandleConfirmationMessages opens the confirmation dialog when a
// ConfirmationMsg arrives. The caller sets PendingOp beforehand so a
// later failure can be matched back to this dialog.
func HandleConfirmationMessages(m *state.Model, msg tea.Msg) (bool, tea.Cmd) {
	if msg, ok := msg.(constants.ConfirmationMsg); ok {
		m.ConfirmationForm = &state.ConfirmationFormModel{Message: msg.Message}
		m.PendingAction = msg.Action
		m.Form = NewConfirmationForm(m.ConfirmationForm)
		if m.State != constants.StateConfirmation {
			m.PreviousState = m.State
		}
		m.State = constants.StateConfirmation
		return true, m.Form.Init()
	}
	return false, nil
}

// HandleConfirmationState drives the open confirmation dialog. On
// confirm the pending action fires but the dialog context is kept so a
// failed call can reopen it with the error; ClearConfirmation runs once
// the outcome is known.
func HandleConfirmationState(m *state.Model, msg tea.Msg) tea.Cmd {
	var cmds []tea.Cmd

	if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEsc {
		ClearConfirmation(m)
		m.State = m.PreviousState
		return nil
	}

	form, cmd := m.Form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.Form = f
	}
	cmds = append(cmds, cmd)

	switch m.Form.State {
	case huh.StateCompleted:
		if m.ConfirmationForm != nil && m.ConfirmationForm.Confirmed {
			if m.PendingAction != nil {
				m.StartOp(m.PendingOp)
				cmds = append(cmds, m.PendingAction())
			}
			m.FormError = ""
			m.State = m.PreviousState
		} else {
			ClearConfirmation(m)
			m.State = m.PreviousState
		}
	case huh.StateAborted:
		ClearConfirmation(m)
		m.State = m.PreviousState
	}
	return tea.Batch(cmds...)
}

// ReopenConfirmation re-displays the dialog after its confirmed action
// failed, with the error shown inline.
func ReopenConfirmation(m *state.Model, errText string) tea.Cmd {
	if m.ConfirmationForm == nil {
		return nil
	}
	m.ConfirmationForm.Confirmed = false
	m.FormError = errText
	m.Form = NewConfirmationForm(m.ConfirmationForm)
	m.State = constants.StateConfirmation
	return m.Form.Init()
}

// ClearConfirmation drops the dialog context once its outcome is known.
func ClearConfirmation(m *state.Model) {
	m.ConfirmationForm = nil
	m.PendingAction = nil
	m.PendingOp = state.OpKey{}
	m.FormError = ""
}
