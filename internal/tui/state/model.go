package state

import (
	"sort"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/jotapp/jot/internal/cli"
	"github.com/jotapp/jot/internal/constants"
	"github.com/jotapp/jot/internal/models"
	"github.com/jotapp/jot/internal/timeline"
	"github.com/jotapp/jot/internal/tui/components/daylist"
	"github.com/jotapp/jot/internal/tui/components/profile"
	"github.com/jotapp/jot/internal/tui/components/thoughtlog"
)

// LoginFormModel represents the form model for signing in
type LoginFormModel struct {
	Email    string
	Password string
	Register bool
}

// RegisterFormModel represents the form model for creating an account
type RegisterFormModel struct {
	Name     string
	Email    string
	Password string
	Confirm  string
}

// ComposeFormModel represents the form model for free-form capture
type ComposeFormModel struct {
	Text string
}

// PasswordFormModel represents the form model for changing the password
type PasswordFormModel struct {
	Current string
	New     string
	Confirm string
}

// ConfirmationFormModel represents the form model for confirmation dialogs
type ConfirmationFormModel struct {
	Message   string
	Confirmed bool
}

// Toast is a transient status line. Seq ties it to the dismissal timer
// that was started for it.
type Toast struct {
	Text    string
	IsError bool
	Seq     int
}

// Model represents the shared state for the TUI
type Model struct {
	Ctx           *cli.Context
	State         constants.SessionState
	PreviousState constants.SessionState
	Keys          KeyMap
	Help          help.Model
	Spinner       spinner.Model

	DayList    daylist.Model
	ThoughtLog thoughtlog.Model
	Profile    profile.Model

	User      *models.User
	Stats     *models.Stats
	Content   []models.ContentItem
	Instances []models.HabitInstance
	Days      []timeline.Day

	WindowDays int
	FetchSeq   int
	Loading    bool

	Form             *huh.Form
	LoginForm        *LoginFormModel
	RegisterForm     *RegisterFormModel
	ComposeForm      *ComposeFormModel
	PasswordForm     *PasswordFormModel
	ConfirmationForm *ConfirmationFormModel
	PendingAction    func() tea.Cmd
	PendingOp        OpKey
	FormError        string

	Toast    *Toast
	ToastSeq int
	InFlight map[OpKey]struct{}

	Quitting bool
	Width    int
	Height   int
}

// New creates a new state Model
func New(ctx *cli.Context) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot

	initial := constants.StateLogin
	if ctx.Session.Authenticated() {
		initial = constants.StateTimeline
	}

	windowDays := ctx.Config.WindowDays
	if windowDays <= 0 {
		windowDays = constants.DefaultWindowDays
	}

	return Model{
		Ctx:        ctx,
		State:      initial,
		Keys:       DefaultKeyMap(),
		Help:       help.New(),
		Spinner:    sp,
		DayList:    daylist.New(ctx.Location, 0, 0),
		ThoughtLog: thoughtlog.New(ctx.Location, 0, 0),
		Profile:    profile.New(ctx.Location, 0, 0),
		WindowDays: windowDays,
		InFlight:   make(map[OpKey]struct{}),
	}
}

// NextFetch advances the fetch generation and marks the model loading.
// Responses from older generations are dropped by ApplyWindow.
func (m *Model) NextFetch() int {
	m.FetchSeq++
	m.Loading = true
	return m.FetchSeq
}

// ApplyWindow installs a fetched window unless it is stale.
func (m *Model) ApplyWindow(msg WindowLoadedMsg) bool {
	if msg.Seq != m.FetchSeq {
		return false
	}
	m.Loading = false
	m.Content = msg.Content
	m.Instances = msg.Instances
	m.Rebuild()
	return true
}

// Rebuild recomputes the day buckets from the cached collections and
// pushes them into the views.
func (m *Model) Rebuild() {
	today := time.Now().In(m.Ctx.Location)
	m.Days = timeline.Build(timeline.Window(today, m.WindowDays), m.Content, m.Instances, m.Ctx.Location)
	m.DayList.SetDays(m.Days)
	m.ThoughtLog.SetThoughts(m.Thoughts())
	m.Profile.SetUser(m.User)
	m.Profile.SetStats(m.Stats)
}

// Thoughts returns every cached thought, newest first.
func (m *Model) Thoughts() []models.Thought {
	var thoughts []models.Thought
	for _, item := range m.Content {
		if item.Kind == models.ContentThought && item.Thought != nil {
			thoughts = append(thoughts, *item.Thought)
		}
	}
	sort.SliceStable(thoughts, func(i, j int) bool {
		return thoughts[i].CreatedAt > thoughts[j].CreatedAt
	})
	return thoughts
}

// AddItem prepends a freshly captured item to the cached feed.
func (m *Model) AddItem(item models.ContentItem) {
	m.Content = append([]models.ContentItem{item}, m.Content...)
	m.Rebuild()
}

// ReplaceTodo swaps in the authoritative todo returned by the server.
func (m *Model) ReplaceTodo(todo models.Todo) {
	for i, item := range m.Content {
		if item.Kind == models.ContentTodo && item.Todo != nil && item.Todo.ID == todo.ID {
			t := todo
			m.Content[i].Todo = &t
			break
		}
	}
	m.Rebuild()
}

// RemoveTodo drops a deleted todo from the cached feed.
func (m *Model) RemoveTodo(id string) {
	m.Content = removeContent(m.Content, models.ContentTodo, id)
	m.Rebuild()
}

// RemoveThought drops a deleted thought from the cached feed.
func (m *Model) RemoveThought(id string) {
	m.Content = removeContent(m.Content, models.ContentThought, id)
	m.Rebuild()
}

// ReplaceInstance swaps in the authoritative habit occurrence returned
// by the server, keeping the parent template if the response omits it.
func (m *Model) ReplaceInstance(inst models.HabitInstance) {
	for i, cached := range m.Instances {
		if cached.ID == inst.ID {
			if inst.Habit == nil {
				inst.Habit = cached.Habit
			}
			m.Instances[i] = inst
			break
		}
	}
	m.Rebuild()
}

// RemoveHabit drops a deleted habit template and all of its cached
// occurrences.
func (m *Model) RemoveHabit(id string) {
	m.Content = removeContent(m.Content, models.ContentHabit, id)
	kept := m.Instances[:0]
	for _, inst := range m.Instances {
		if inst.HabitID != id {
			kept = append(kept, inst)
		}
	}
	m.Instances = kept
	m.Rebuild()
}

func removeContent(content []models.ContentItem, kind models.ContentKind, id string) []models.ContentItem {
	kept := content[:0]
	for _, item := range content {
		if item.Kind == kind && item.ItemID() == id {
			continue
		}
		kept = append(kept, item)
	}
	return kept
}

// StartOp records a mutation in flight.
func (m *Model) StartOp(op OpKey) {
	m.InFlight[op] = struct{}{}
}

// FinishOp clears a completed or failed mutation.
func (m *Model) FinishOp(op OpKey) {
	delete(m.InFlight, op)
}

// Busy reports whether the same mutation is already in flight.
func (m *Model) Busy(op OpKey) bool {
	_, ok := m.InFlight[op]
	return ok
}

// ShowToast replaces the current toast and schedules its dismissal.
func (m *Model) ShowToast(text string, isError bool) tea.Cmd {
	m.ToastSeq++
	seq := m.ToastSeq
	m.Toast = &Toast{Text: text, IsError: isError, Seq: seq}
	return tea.Tick(constants.ToastDuration, func(time.Time) tea.Msg {
		return ToastExpiredMsg{Seq: seq}
	})
}

// ExpireToast hides the toast only if the timer that fired belongs to
// it; a newer toast keeps its own, newer timer.
func (m *Model) ExpireToast(seq int) {
	if m.Toast != nil && m.Toast.Seq == seq {
		m.Toast = nil
	}
}
