package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jotapp/jot/internal/cli"
	"github.com/jotapp/jot/internal/constants"
	"github.com/jotapp/jot/internal/tui/handlers"
	"github.com/jotapp/jot/internal/tui/state"
)

// Model is the top-level bubbletea model. All shared state lives in the
// embedded state.Model so the handlers package can mutate it directly.
type Model struct {
	state.Model
}

// New builds the TUI. An authenticated session opens on the timeline;
// otherwise the sign-in form is shown first.
func New(ctx *cli.Context) Model {
	m := Model{Model: state.New(ctx)}
	switch m.State {
	case constants.StateLogin:
		m.LoginForm = &state.LoginFormModel{}
		m.Form = handlers.NewLoginForm(m.LoginForm)
	default:
		// Init fires the first fetch as generation 1.
		m.FetchSeq = 1
		m.Loading = true
	}
	return m
}

func (m Model) Init() tea.Cmd {
	if m.State == constants.StateLogin {
		return m.Form.Init()
	}
	return tea.Batch(
		handlers.FetchWindow(m.Ctx, m.FetchSeq, m.WindowDays),
		handlers.FetchUser(m.Ctx),
		handlers.FetchStats(m.Ctx),
		m.Spinner.Tick,
	)
}

func (m Model) ShortHelp() []key.Binding {
	keys := []key.Binding{m.Keys.Tab, m.Keys.Compose, m.Keys.Quit, m.Keys.Help}
	switch m.State {
	case constants.StateTimeline:
		keys = append(keys, m.Keys.Toggle, m.Keys.Delete, m.Keys.LoadMore)
	case constants.StateDay:
		keys = append(keys, m.Keys.Toggle, m.Keys.Delete, m.Keys.Back)
	case constants.StateThoughts:
		keys = append(keys, m.Keys.Delete)
	case constants.StateProfile:
		keys = append(keys, m.Keys.Password)
	}
	return keys
}

func (m Model) FullHelp() [][]key.Binding {
	global := []key.Binding{m.Keys.Tab, m.Keys.ShiftTab, m.Keys.Compose, m.Keys.Refresh, m.Keys.Quit, m.Keys.Help}
	navigation := []key.Binding{m.Keys.Up, m.Keys.Down, m.Keys.Enter, m.Keys.Back}

	var actions []key.Binding
	switch m.State {
	case constants.StateTimeline, constants.StateDay:
		actions = []key.Binding{m.Keys.Toggle, m.Keys.Skip, m.Keys.Delete, m.Keys.LoadMore}
	case constants.StateThoughts:
		actions = []key.Binding{m.Keys.Delete}
	case constants.StateProfile:
		actions = []key.Binding{m.Keys.Password}
	}

	return [][]key.Binding{global, navigation, actions}
}
