package daylist

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jotapp/jot/internal/format"
	"github.com/jotapp/jot/internal/timeline"
)

// ItemKind distinguishes the three content types a day bucket can hold.
type ItemKind int

const (
	KindTodo ItemKind = iota
	KindHabit
	KindThought
)

// Item is one selectable row inside a day bucket.
type Item struct {
	Kind      ItemKind
	ID        string
	HabitID   string
	Title     string
	Completed bool
	Skipped   bool
}

// ToggleMsg asks for the selected item's completion to be flipped.
type ToggleMsg struct {
	Item Item
}

// SkipMsg asks for the selected habit occurrence to be skipped.
type SkipMsg struct {
	Item Item
}

// DeleteMsg asks for the selected item to be deleted.
type DeleteMsg struct {
	Item Item
}

// LoadMoreMsg asks for the window to be extended by another step.
type LoadMoreMsg struct{}

type KeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Toggle   key.Binding
	Skip     key.Binding
	Delete   key.Binding
	LoadMore key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Toggle: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "toggle done"),
		),
		Skip: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "skip"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete"),
		),
		LoadMore: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "more days"),
		),
	}
}

var (
	headerStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	sectionStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("243"))
	doneStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Strikethrough(true)
	skippedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Italic(true)
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57"))
	emptyStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Italic(true)
)

// Model renders a window of day buckets with a single cursor that walks
// across day boundaries.
type Model struct {
	keys    KeyMap
	days    []timeline.Day
	items   [][]Item
	loc     *time.Location
	day     int
	item    int
	focused bool
	width   int
	height  int
}

func New(loc *time.Location, width, height int) Model {
	return Model{
		keys:   DefaultKeyMap(),
		loc:    loc,
		width:  width,
		height: height,
	}
}

// SetDays replaces the rendered window and clamps the cursor.
func (m *Model) SetDays(days []timeline.Day) {
	m.days = days
	m.items = make([][]Item, len(days))
	for i, day := range days {
		var items []Item
		for _, todo := range day.Todos {
			items = append(items, Item{
				Kind:      KindTodo,
				ID:        todo.ID,
				Title:     todo.Title,
				Completed: todo.Completed,
			})
		}
		for _, inst := range day.Habits {
			title := "(deleted habit)"
			habitID := ""
			if inst.Habit != nil {
				title = inst.Habit.Title
				habitID = inst.Habit.ID
			}
			items = append(items, Item{
				Kind:      KindHabit,
				ID:        inst.ID,
				HabitID:   habitID,
				Title:     title,
				Completed: inst.Completed,
				Skipped:   inst.Skipped,
			})
		}
		for _, thought := range day.Thoughts {
			items = append(items, Item{
				Kind:  KindThought,
				ID:    thought.ID,
				Title: thought.Content,
			})
		}
		m.items[i] = items
	}
	m.clamp()
}

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Focus narrows the view to the day under the cursor.
func (m *Model) Focus() { m.focused = true }

// Blur restores the full window view.
func (m *Model) Blur() { m.focused = false }

// Selected returns the item under the cursor, if any.
func (m Model) Selected() (Item, bool) {
	if m.day >= len(m.items) || m.item >= len(m.items[m.day]) {
		return Item{}, false
	}
	return m.items[m.day][m.item], true
}

// SelectedDay returns the day bucket under the cursor, if any.
func (m Model) SelectedDay() (timeline.Day, bool) {
	if m.day >= len(m.days) {
		return timeline.Day{}, false
	}
	return m.days[m.day], true
}

func (m *Model) clamp() {
	if m.day >= len(m.items) {
		m.day = len(m.items) - 1
	}
	if m.day < 0 {
		m.day = 0
	}
	if len(m.items) == 0 {
		m.item = 0
		return
	}
	if m.item >= len(m.items[m.day]) {
		m.item = len(m.items[m.day]) - 1
	}
	if m.item < 0 {
		m.item = 0
	}
}

func (m *Model) moveDown() {
	if m.day >= len(m.items) {
		return
	}
	if m.item+1 < len(m.items[m.day]) {
		m.item++
		return
	}
	if m.focused {
		return
	}
	for d := m.day + 1; d < len(m.items); d++ {
		if len(m.items[d]) > 0 {
			m.day = d
			m.item = 0
			return
		}
	}
}

func (m *Model) moveUp() {
	if m.item > 0 {
		m.item--
		return
	}
	if m.focused {
		return
	}
	for d := m.day - 1; d >= 0; d-- {
		if len(m.items[d]) > 0 {
			m.day = d
			m.item = len(m.items[d]) - 1
			return
		}
	}
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Down):
		m.moveDown()
	case key.Matches(keyMsg, m.keys.Up):
		m.moveUp()
	case key.Matches(keyMsg, m.keys.Toggle):
		if item, ok := m.Selected(); ok && item.Kind != KindThought {
			return m, func() tea.Msg { return ToggleMsg{Item: item} }
		}
	case key.Matches(keyMsg, m.keys.Skip):
		if item, ok := m.Selected(); ok && item.Kind == KindHabit {
			return m, func() tea.Msg { return SkipMsg{Item: item} }
		}
	case key.Matches(keyMsg, m.keys.Delete):
		if item, ok := m.Selected(); ok {
			return m, func() tea.Msg { return DeleteMsg{Item: item} }
		}
	case key.Matches(keyMsg, m.keys.LoadMore):
		if !m.focused {
			return m, func() tea.Msg { return LoadMoreMsg{} }
		}
	}
	return m, nil
}

func (m Model) View() string {
	if len(m.days) == 0 {
		return emptyStyle.Render("Nothing here yet. Press 'c' to capture a thought.")
	}

	var b strings.Builder
	for i, day := range m.days {
		if m.focused && i != m.day {
			continue
		}
		m.renderDay(&b, i, day)
	}
	return b.String()
}

func (m Model) renderDay(b *strings.Builder, dayIdx int, day timeline.Day) {
	b.WriteString(headerStyle.Render(day.Label))
	b.WriteString("\n")

	if len(m.items[dayIdx]) == 0 {
		b.WriteString("  " + emptyStyle.Render("nothing for this day") + "\n\n")
		return
	}

	idx := 0
	writeSection := func(name string, n int) {
		if n == 0 {
			return
		}
		b.WriteString("  " + sectionStyle.Render(name) + "\n")
		for j := 0; j < n; j++ {
			item := m.items[dayIdx][idx]
			line := m.renderItem(day, item)
			if dayIdx == m.day && idx == m.item {
				line = selectedStyle.Render(line)
			}
			b.WriteString("    " + line + "\n")
			idx++
		}
	}
	writeSection("Todos", len(day.Todos))
	writeSection("Habits", len(day.Habits))
	writeSection("Thoughts", len(day.Thoughts))
	b.WriteString("\n")
}

func (m Model) renderItem(day timeline.Day, item Item) string {
	switch item.Kind {
	case KindTodo:
		mark := "[ ]"
		if item.Completed {
			mark = "[x]"
		}
		line := fmt.Sprintf("%s %s", mark, item.Title)
		if item.Completed {
			return doneStyle.Render(line)
		}
		return line
	case KindHabit:
		mark := "○"
		if item.Completed {
			mark = "✓"
		} else if item.Skipped {
			mark = "–"
		}
		line := fmt.Sprintf("%s %s", mark, item.Title)
		if item.Completed {
			return doneStyle.Render(line)
		}
		if item.Skipped {
			return skippedStyle.Render(line)
		}
		return line
	default:
		for _, thought := range day.Thoughts {
			if thought.ID == item.ID {
				return fmt.Sprintf("· %s  %s", item.Title,
					sectionStyle.Render(format.DateTime(thought.CreatedAt, m.loc)))
			}
		}
		return "· " + item.Title
	}
}
