package daylist

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jotapp/jot/internal/models"
	"github.com/jotapp/jot/internal/timeline"
)

func buildDays(t *testing.T) []timeline.Day {
	t.Helper()
	today := time.Date(2025, 6, 16, 12, 0, 0, 0, time.UTC)
	content := []models.ContentItem{
		{Kind: models.ContentTodo, Todo: &models.Todo{
			ID: "t1", Title: "first", CreatedAt: "2025-06-16T08:00:00Z",
		}},
		{Kind: models.ContentThought, Thought: &models.Thought{
			ID: "th1", Content: "a note", CreatedAt: "2025-06-18T09:00:00Z",
		}},
	}
	instances := []models.HabitInstance{
		{ID: "i1", HabitID: "h1", DueDate: "2025-06-16",
			Habit: &models.Habit{ID: "h1", Title: "run"}},
	}
	return timeline.Build(timeline.Window(today, 7), content, instances, time.UTC)
}

func keyPress(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestCursorWalksAcrossDayBoundaries(t *testing.T) {
	m := New(time.UTC, 80, 24)
	m.SetDays(buildDays(t))

	item, ok := m.Selected()
	if !ok {
		t.Fatal("no initial selection")
	}
	if item.Kind != KindTodo || item.ID != "t1" {
		t.Fatalf("initial selection = %+v, want todo t1", item)
	}

	m, _ = m.Update(keyPress('j'))
	item, _ = m.Selected()
	if item.Kind != KindHabit || item.ID != "i1" {
		t.Fatalf("after one down = %+v, want habit i1", item)
	}

	// Next selectable row lives two days later; empty day is skipped.
	m, _ = m.Update(keyPress('j'))
	item, _ = m.Selected()
	if item.Kind != KindThought || item.ID != "th1" {
		t.Fatalf("after two downs = %+v, want thought th1", item)
	}

	m, _ = m.Update(keyPress('k'))
	item, _ = m.Selected()
	if item.ID != "i1" {
		t.Fatalf("after up = %+v, want habit i1", item)
	}
}

func TestFocusPinsCursorToOneDay(t *testing.T) {
	m := New(time.UTC, 80, 24)
	m.SetDays(buildDays(t))
	m.Focus()

	m, _ = m.Update(keyPress('j')) // habit, same day
	m, _ = m.Update(keyPress('j')) // would cross into a later day
	item, _ := m.Selected()
	if item.ID != "i1" {
		t.Fatalf("focused cursor left its day: %+v", item)
	}
}

func TestActionKeysEmitMessages(t *testing.T) {
	m := New(time.UTC, 80, 24)
	m.SetDays(buildDays(t))

	m, cmd := m.Update(keyPress('x'))
	if cmd == nil {
		t.Fatal("toggle produced no command")
	}
	if msg, ok := cmd().(ToggleMsg); !ok || msg.Item.ID != "t1" {
		t.Fatalf("toggle message = %+v", cmd())
	}

	m, cmd = m.Update(keyPress('d'))
	if cmd == nil {
		t.Fatal("delete produced no command")
	}
	if msg, ok := cmd().(DeleteMsg); !ok || msg.Item.ID != "t1" {
		t.Fatalf("delete message = %+v", cmd())
	}

	// Skip applies to habits only.
	if _, cmd = m.Update(keyPress('s')); cmd != nil {
		t.Fatalf("skip on a todo emitted %+v", cmd())
	}
}
