package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/jotapp/jot/internal/constants"
	"github.com/jotapp/jot/internal/format"
	"github.com/jotapp/jot/internal/models"
	"github.com/jotapp/jot/internal/tui/components/daylist"
	"github.com/jotapp/jot/internal/tui/components/thoughtlog"
	"github.com/jotapp/jot/internal/tui/handlers"
	"github.com/jotapp/jot/internal/tui/state"
	"github.com/jotapp/jot/internal/validation"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.Help.Width = msg.Width
		h, v := docStyle.GetFrameSize()
		listHeight := msg.Height - 4
		m.DayList.SetSize(msg.Width-h, listHeight-v)
		m.ThoughtLog.SetSize(msg.Width-h, listHeight-v)
		m.Profile.SetSize(msg.Width-h, listHeight-v)
		return m, nil

	case spinner.TickMsg:
		if !m.Loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.Spinner, cmd = m.Spinner.Update(msg)
		return m, cmd

	case state.WindowLoadedMsg:
		m.ApplyWindow(msg)
		return m, nil

	case state.WindowErrMsg:
		if msg.Seq != m.FetchSeq {
			return m, nil
		}
		m.Loading = false
		return m, m.ShowToast("Couldn't load timeline: "+msg.Err.Error(), true)

	case state.UserLoadedMsg:
		m.User = msg.User
		m.Profile.SetUser(msg.User)
		return m, nil

	case state.StatsLoadedMsg:
		m.Stats = msg.Stats
		m.Profile.SetStats(msg.Stats)
		return m, nil

	case state.LoggedInMsg:
		m.User = msg.User
		m.Profile.SetUser(msg.User)
		m.LoginForm, m.RegisterForm, m.Form = nil, nil, nil
		m.FormError = ""
		m.State = constants.StateTimeline
		seq := m.NextFetch()
		return m, tea.Batch(
			handlers.FetchWindow(m.Ctx, seq, m.WindowDays),
			handlers.FetchStats(m.Ctx),
			m.Spinner.Tick,
			m.ShowToast("Hi, "+format.FirstName(msg.User.Name), false),
		)

	case state.CapturedMsg:
		m.FinishOp(state.OpKey{Kind: state.OpCapture})
		m.AddItem(msg.Item)
		var text string
		cmds := []tea.Cmd{handlers.FetchStats(m.Ctx)}
		switch msg.Item.Kind {
		case models.ContentTodo:
			text = "Added todo: " + msg.Item.Todo.Title
		case models.ContentHabit:
			text = "Added habit: " + msg.Item.Habit.Title
			// A new habit spawns occurrences server-side.
			seq := m.NextFetch()
			cmds = append(cmds, handlers.FetchWindow(m.Ctx, seq, m.WindowDays), m.Spinner.Tick)
		default:
			text = "Captured thought"
		}
		cmds = append(cmds, m.ShowToast(text, false), handlers.Notify(m.Ctx, text))
		return m, tea.Batch(cmds...)

	case state.TodoSavedMsg:
		m.FinishOp(msg.Op)
		m.ReplaceTodo(msg.Todo)
		if msg.Todo.Completed {
			text := "Done: " + msg.Todo.Title
			return m, tea.Batch(m.ShowToast(text, false), handlers.Notify(m.Ctx, text))
		}
		return m, m.ShowToast("Reopened: "+msg.Todo.Title, false)

	case state.TodoDeletedMsg:
		m.FinishOp(msg.Op)
		m.RemoveTodo(msg.ID)
		handlers.ClearConfirmation(&m.Model)
		return m, tea.Batch(m.ShowToast("Deleted todo", false), handlers.FetchStats(m.Ctx))

	case state.ThoughtDeletedMsg:
		m.FinishOp(msg.Op)
		m.RemoveThought(msg.ID)
		handlers.ClearConfirmation(&m.Model)
		return m, tea.Batch(m.ShowToast("Deleted thought", false), handlers.FetchStats(m.Ctx))

	case state.InstanceSavedMsg:
		m.FinishOp(msg.Op)
		m.ReplaceInstance(msg.Instance)
		title := "habit"
		if msg.Instance.Habit != nil {
			title = msg.Instance.Habit.Title
		}
		switch {
		case msg.Instance.Completed:
			text := "Habit done: " + title
			return m, tea.Batch(m.ShowToast(text, false), handlers.Notify(m.Ctx, text))
		case msg.Instance.Skipped:
			return m, m.ShowToast("Skipped: "+title, false)
		default:
			return m, m.ShowToast("Reopened: "+title, false)
		}

	case state.InstanceDeletedMsg:
		m.FinishOp(msg.Op)
		m.RemoveInstance(msg.ID)
		handlers.ClearConfirmation(&m.Model)
		return m, m.ShowToast("Removed occurrence", false)

	case state.HabitDeletedMsg:
		m.FinishOp(msg.Op)
		m.RemoveHabit(msg.ID)
		handlers.ClearConfirmation(&m.Model)
		return m, tea.Batch(m.ShowToast("Deleted habit", false), handlers.FetchStats(m.Ctx))

	case state.PasswordChangedMsg:
		m.FinishOp(msg.Op)
		m.PasswordForm, m.Form = nil, nil
		m.FormError = ""
		m.State = constants.StateProfile
		return m, m.ShowToast("Password changed", false)

	case state.OpFailedMsg:
		return m.handleFailure(msg)

	case state.AuthRequiredMsg:
		m.User, m.Stats = nil, nil
		m.Content, m.Instances, m.Days = nil, nil, nil
		m.Loading = false
		handlers.ClearConfirmation(&m.Model)
		m.RegisterForm = nil
		m.LoginForm = &state.LoginFormModel{}
		m.Form = handlers.NewLoginForm(m.LoginForm)
		m.FormError = "Session expired. Sign in again."
		m.State = constants.StateLogin
		return m, m.Form.Init()

	case state.ToastExpiredMsg:
		m.ExpireToast(msg.Seq)
		return m, nil

	case daylist.ToggleMsg:
		return m.handleToggle(msg.Item)

	case daylist.SkipMsg:
		return m.handleSkip(msg.Item)

	case daylist.DeleteMsg:
		return m.requestDelete(msg.Item)

	case daylist.LoadMoreMsg:
		m.WindowDays += constants.WindowStep
		seq := m.NextFetch()
		return m, tea.Batch(handlers.FetchWindow(m.Ctx, seq, m.WindowDays), m.Spinner.Tick)

	case thoughtlog.DeleteThoughtMsg:
		return m.requestDelete(daylist.Item{Kind: daylist.KindThought, ID: msg.ID})
	}

	if handled, cmd := handlers.HandleConfirmationMessages(&m.Model, msg); handled {
		return m, cmd
	}

	switch m.State {
	case constants.StateLogin:
		return m.updateLogin(msg)
	case constants.StateCompose:
		return m.updateCompose(msg)
	case constants.StateChangePassword:
		return m.updatePassword(msg)
	case constants.StateConfirmation:
		return m, handlers.HandleConfirmationState(&m.Model, msg)
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, m.Keys.Quit):
			m.Quitting = true
			return m, tea.Quit

		case key.Matches(keyMsg, m.Keys.Tab):
			switch m.State {
			case constants.StateTimeline, constants.StateDay:
				m.DayList.Blur()
				m.State = constants.StateThoughts
			case constants.StateThoughts:
				m.State = constants.StateProfile
			case constants.StateProfile:
				m.State = constants.StateTimeline
			}
			return m, nil

		case key.Matches(keyMsg, m.Keys.ShiftTab):
			switch m.State {
			case constants.StateTimeline, constants.StateDay:
				m.DayList.Blur()
				m.State = constants.StateProfile
			case constants.StateThoughts:
				m.State = constants.StateTimeline
			case constants.StateProfile:
				m.State = constants.StateThoughts
			}
			return m, nil

		case key.Matches(keyMsg, m.Keys.Help):
			m.Help.ShowAll = !m.Help.ShowAll
			return m, nil

		case key.Matches(keyMsg, m.Keys.Compose):
			m.PreviousState = m.State
			m.ComposeForm = &state.ComposeFormModel{}
			m.Form = handlers.NewComposeForm(m.ComposeForm)
			m.State = constants.StateCompose
			return m, m.Form.Init()

		case key.Matches(keyMsg, m.Keys.Refresh):
			seq := m.NextFetch()
			return m, tea.Batch(
				handlers.FetchWindow(m.Ctx, seq, m.WindowDays),
				handlers.FetchStats(m.Ctx),
				m.Spinner.Tick,
			)

		case key.Matches(keyMsg, m.Keys.Enter) && m.State == constants.StateTimeline:
			if _, ok := m.DayList.SelectedDay(); ok {
				m.DayList.Focus()
				m.State = constants.StateDay
			}
			return m, nil

		case key.Matches(keyMsg, m.Keys.Back) && m.State == constants.StateDay:
			m.DayList.Blur()
			m.State = constants.StateTimeline
			return m, nil

		case key.Matches(keyMsg, m.Keys.Password) && m.State == constants.StateProfile:
			m.PasswordForm = &state.PasswordFormModel{}
			m.Form = handlers.NewPasswordForm(m.PasswordForm)
			m.State = constants.StateChangePassword
			return m, m.Form.Init()
		}
	}

	var cmd tea.Cmd
	switch m.State {
	case constants.StateTimeline, constants.StateDay:
		m.DayList, cmd = m.DayList.Update(msg)
	case constants.StateThoughts:
		m.ThoughtLog, cmd = m.ThoughtLog.Update(msg)
	}
	return m, cmd
}

// handleToggle applies a completion flip optimistically and sends it to
// the server; the authoritative entity replaces it on success.
func (m Model) handleToggle(item daylist.Item) (tea.Model, tea.Cmd) {
	switch item.Kind {
	case daylist.KindTodo:
		op := state.OpKey{Kind: state.OpToggleTodo, ID: item.ID}
		if m.Busy(op) {
			return m, nil
		}
		m.StartOp(op)
		m.SetTodoCompleted(item.ID, !item.Completed)
		return m, handlers.ToggleTodo(m.Ctx, op, item.ID, !item.Completed)

	case daylist.KindHabit:
		op := state.OpKey{Kind: state.OpToggleHabit, ID: item.ID}
		if m.Busy(op) {
			return m, nil
		}
		m.StartOp(op)
		m.SetInstanceCompleted(item.ID, !item.Completed)
		return m, handlers.ToggleInstance(m.Ctx, op, item.ID, !item.Completed)
	}
	return m, nil
}

func (m Model) handleSkip(item daylist.Item) (tea.Model, tea.Cmd) {
	if item.Kind != daylist.KindHabit || item.Skipped {
		return m, nil
	}
	op := state.OpKey{Kind: state.OpSkipHabit, ID: item.ID}
	if m.Busy(op) {
		return m, nil
	}
	m.StartOp(op)
	m.SetInstanceSkipped(item.ID)
	return m, handlers.SkipInstance(m.Ctx, op, item.ID)
}

// requestDelete routes a delete request through the confirmation dialog.
// Nothing is removed until the dialog is confirmed and the server agrees.
func (m Model) requestDelete(item daylist.Item) (tea.Model, tea.Cmd) {
	appCtx := m.Ctx
	var (
		op      state.OpKey
		message string
		action  func() tea.Cmd
	)

	switch item.Kind {
	case daylist.KindTodo:
		op = state.OpKey{Kind: state.OpDeleteTodo, ID: item.ID}
		message = fmt.Sprintf("Delete todo %q?", item.Title)
		id := item.ID
		o := op
		action = func() tea.Cmd { return handlers.DeleteTodo(appCtx, o, id) }

	case daylist.KindThought:
		op = state.OpKey{Kind: state.OpDeleteThought, ID: item.ID}
		message = "Delete this thought?"
		id := item.ID
		o := op
		action = func() tea.Cmd { return handlers.DeleteThought(appCtx, o, id) }

	case daylist.KindHabit:
		if item.HabitID == "" {
			op = state.OpKey{Kind: state.OpDeleteInstance, ID: item.ID}
			message = "Remove this orphaned occurrence?"
			id := item.ID
			o := op
			action = func() tea.Cmd { return handlers.DeleteInstance(appCtx, o, id) }
		} else {
			op = state.OpKey{Kind: state.OpDeleteHabit, ID: item.HabitID}
			message = fmt.Sprintf("Delete habit %q and all its future occurrences?", item.Title)
			id := item.HabitID
			o := op
			action = func() tea.Cmd { return handlers.DeleteHabit(appCtx, o, id, true) }
		}
	}

	if m.Busy(op) {
		return m, nil
	}
	m.PendingOp = op
	confirm := constants.ConfirmationMsg{Message: message, Action: action}
	return m, func() tea.Msg { return confirm }
}

// handleFailure reports a failed call. Form states keep their dialog
// open with the error inline; optimistic changes are reconciled by
// refetching the window.
func (m Model) handleFailure(msg state.OpFailedMsg) (tea.Model, tea.Cmd) {
	m.FinishOp(msg.Op)

	switch m.State {
	case constants.StateLogin:
		m.FormError = msg.Err.Error()
		if m.RegisterForm != nil {
			m.Form = handlers.NewRegisterForm(m.RegisterForm)
		} else {
			m.Form = handlers.NewLoginForm(m.LoginForm)
		}
		return m, m.Form.Init()

	case constants.StateChangePassword:
		m.FormError = msg.Err.Error()
		m.Form = handlers.NewPasswordForm(m.PasswordForm)
		return m, m.Form.Init()
	}

	if m.ConfirmationForm != nil && msg.Op == m.PendingOp {
		return m, handlers.ReopenConfirmation(&m.Model, msg.Err.Error())
	}

	cmds := []tea.Cmd{m.ShowToast(msg.Err.Error(), true)}
	switch msg.Op.Kind {
	case state.OpToggleTodo, state.OpToggleHabit, state.OpSkipHabit:
		seq := m.NextFetch()
		cmds = append(cmds, handlers.FetchWindow(m.Ctx, seq, m.WindowDays), m.Spinner.Tick)
	}
	return m, tea.Batch(cmds...)
}

func (m Model) updateLogin(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc && m.RegisterForm != nil {
		m.RegisterForm = nil
		m.FormError = ""
		m.Form = handlers.NewLoginForm(m.LoginForm)
		return m, m.Form.Init()
	}

	var cmds []tea.Cmd
	form, cmd := m.Form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.Form = f
	}
	cmds = append(cmds, cmd)

	switch m.Form.State {
	case huh.StateCompleted:
		if m.RegisterForm != nil {
			fm := m.RegisterForm
			input := validation.RegisterInput{Name: fm.Name, Email: fm.Email, Password: fm.Password, Confirm: fm.Confirm}
			if err := input.Validate(); err != nil {
				m.FormError = err.Error()
				m.Form = handlers.NewRegisterForm(fm)
				return m, m.Form.Init()
			}
			m.FormError = ""
			m.Form.State = huh.StateNormal
			return m, handlers.Register(m.Ctx, fm.Name, fm.Email, fm.Password)
		}

		fm := m.LoginForm
		if fm.Register {
			fm.Register = false
			m.RegisterForm = &state.RegisterFormModel{Email: fm.Email}
			m.FormError = ""
			m.Form = handlers.NewRegisterForm(m.RegisterForm)
			return m, m.Form.Init()
		}
		input := validation.LoginInput{Email: fm.Email, Password: fm.Password}
		if err := input.Validate(); err != nil {
			m.FormError = err.Error()
			m.Form = handlers.NewLoginForm(fm)
			return m, m.Form.Init()
		}
		m.FormError = ""
		m.Form.State = huh.StateNormal
		return m, handlers.Login(m.Ctx, fm.Email, fm.Password)

	case huh.StateAborted:
		m.Quitting = true
		return m, tea.Quit
	}
	return m, tea.Batch(cmds...)
}

func (m Model) updateCompose(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		m.ComposeForm, m.Form = nil, nil
		m.FormError = ""
		m.State = m.PreviousState
		return m, nil
	}

	var cmds []tea.Cmd
	form, cmd := m.Form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.Form = f
	}
	cmds = append(cmds, cmd)

	switch m.Form.State {
	case huh.StateCompleted:
		fm := m.ComposeForm
		input := validation.ComposeInput{Text: fm.Text}
		if err := input.Validate(); err != nil {
			m.FormError = err.Error()
			m.Form = handlers.NewComposeForm(fm)
			return m, m.Form.Init()
		}
		op := state.OpKey{Kind: state.OpCapture}
		if m.Busy(op) {
			return m, nil
		}
		m.StartOp(op)
		m.ComposeForm, m.Form = nil, nil
		m.FormError = ""
		m.State = m.PreviousState
		return m, handlers.Capture(m.Ctx, op, fm.Text)

	case huh.StateAborted:
		m.ComposeForm, m.Form = nil, nil
		m.FormError = ""
		m.State = m.PreviousState
	}
	return m, tea.Batch(cmds...)
}

func (m Model) updatePassword(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		m.PasswordForm, m.Form = nil, nil
		m.FormError = ""
		m.State = constants.StateProfile
		return m, nil
	}

	var cmds []tea.Cmd
	form, cmd := m.Form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.Form = f
	}
	cmds = append(cmds, cmd)

	switch m.Form.State {
	case huh.StateCompleted:
		fm := m.PasswordForm
		input := validation.ChangePasswordInput{Current: fm.Current, New: fm.New, Confirm: fm.Confirm}
		if err := input.Validate(); err != nil {
			m.FormError = err.Error()
			m.Form = handlers.NewPasswordForm(fm)
			return m, m.Form.Init()
		}
		op := state.OpKey{Kind: state.OpChangePassword}
		if m.Busy(op) {
			return m, nil
		}
		m.StartOp(op)
		m.FormError = ""
		m.Form.State = huh.StateNormal
		return m, handlers.ChangePassword(m.Ctx, op, fm.Current, fm.New)

	case huh.StateAborted:
		m.PasswordForm, m.Form = nil, nil
		m.FormError = ""
		m.State = constants.StateProfile
	}
	return m, tea.Batch(cmds...)
}
