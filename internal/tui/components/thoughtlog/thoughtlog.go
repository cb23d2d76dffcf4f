package thoughtlog

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jotapp/jot/internal/format"
	"github.com/jotapp/jot/internal/models"
)

// DeleteThoughtMsg asks for the selected thought to be deleted.
type DeleteThoughtMsg struct {
	ID string
}

type Item struct {
	Thought models.Thought
	loc     *time.Location
}

func (i Item) Title() string {
	text := i.Thought.Content
	if idx := strings.IndexByte(text, '\n'); idx >= 0 {
		text = text[:idx] + " …"
	}
	return text
}

func (i Item) Description() string {
	return format.DateTime(i.Thought.CreatedAt, i.loc)
}

func (i Item) FilterValue() string { return i.Thought.Content }

type KeyMap struct {
	Delete key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete"),
		),
	}
}

// Model is a scrollable log of every captured thought, newest first.
type Model struct {
	list list.Model
	keys KeyMap
	loc  *time.Location
}

func New(loc *time.Location, width, height int) Model {
	l := list.New(nil, list.NewDefaultDelegate(), width, height)
	l.Title = "Thoughts"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	return Model{
		list: l,
		keys: DefaultKeyMap(),
		loc:  loc,
	}
}

// SetThoughts replaces the log contents. Thoughts are expected newest
// first; this keeps whatever order it is given.
func (m *Model) SetThoughts(thoughts []models.Thought) {
	items := make([]list.Item, len(thoughts))
	for i, thought := range thoughts {
		items[i] = Item{Thought: thought, loc: m.loc}
	}
	m.list.SetItems(items)
}

func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height)
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && !m.list.SettingFilter() {
		if key.Matches(keyMsg, m.keys.Delete) {
			if item, ok := m.list.SelectedItem().(Item); ok {
				id := item.Thought.ID
				return m, func() tea.Msg { return DeleteThoughtMsg{ID: id} }
			}
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	return m.list.View()
}
