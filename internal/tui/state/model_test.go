package state

import (
	"testing"
	"time"

	"github.com/jotapp/jot/internal/cli"
	"github.com/jotapp/jot/internal/models"
	"github.com/jotapp/jot/internal/tui/components/daylist"
	"github.com/jotapp/jot/internal/tui/components/profile"
	"github.com/jotapp/jot/internal/tui/components/thoughtlog"
)

func newTestModel() Model {
	return Model{
		Ctx:        &cli.Context{Location: time.UTC},
		WindowDays: 7,
		DayList:    daylist.New(time.UTC, 80, 24),
		ThoughtLog: thoughtlog.New(time.UTC, 80, 24),
		Profile:    profile.New(time.UTC, 80, 24),
		InFlight:   make(map[OpKey]struct{}),
	}
}

func nowStamp(offset time.Duration) string {
	return time.Now().UTC().Add(offset).Format(time.RFC3339)
}

func todoItem(id, title string, completed bool) models.ContentItem {
	return models.ContentItem{
		Kind: models.ContentTodo,
		Todo: &models.Todo{ID: id, Title: title, Completed: completed, CreatedAt: nowStamp(0)},
	}
}

func thoughtItem(id, content, createdAt string) models.ContentItem {
	return models.ContentItem{
		Kind:    models.ContentThought,
		Thought: &models.Thought{ID: id, Content: content, CreatedAt: createdAt},
	}
}

func TestApplyWindowDropsStaleGeneration(t *testing.T) {
	m := newTestModel()
	m.NextFetch()
	m.NextFetch() // current generation is 2

	stale := WindowLoadedMsg{Seq: 1, Content: []models.ContentItem{todoItem("t1", "old", false)}}
	if m.ApplyWindow(stale) {
		t.Fatal("expected stale window to be dropped")
	}
	if len(m.Content) != 0 {
		t.Fatalf("stale window installed %d items", len(m.Content))
	}
	if !m.Loading {
		t.Fatal("dropping a stale window must not clear the loading flag")
	}

	current := WindowLoadedMsg{Seq: 2, Content: []models.ContentItem{todoItem("t2", "new", false)}}
	if !m.ApplyWindow(current) {
		t.Fatal("expected current window to be applied")
	}
	if m.Loading {
		t.Fatal("applying the current window must clear the loading flag")
	}
	if len(m.Content) != 1 || m.Content[0].Todo.ID != "t2" {
		t.Fatalf("unexpected content after apply: %+v", m.Content)
	}
}

func TestSetTodoCompletedIsReflectedInDays(t *testing.T) {
	m := newTestModel()
	m.Content = []models.ContentItem{todoItem("t1", "write tests", false)}
	m.Rebuild()

	m.SetTodoCompleted("t1", true)

	if !m.Content[0].Todo.Completed {
		t.Fatal("cached todo not marked completed")
	}
	found := false
	for _, day := range m.Days {
		for _, todo := range day.Todos {
			if todo.ID == "t1" {
				found = true
				if !todo.Completed {
					t.Fatal("bucketed todo not marked completed")
				}
			}
		}
	}
	if !found {
		t.Fatal("todo missing from rebuilt days")
	}
}

func TestReplaceInstanceKeepsParentTemplate(t *testing.T) {
	m := newTestModel()
	habit := &models.Habit{ID: "h1", Title: "run"}
	m.Instances = []models.HabitInstance{
		{ID: "i1", HabitID: "h1", DueDate: "2025-06-16", Habit: habit},
	}

	m.ReplaceInstance(models.HabitInstance{ID: "i1", HabitID: "h1", DueDate: "2025-06-16", Completed: true})

	got := m.Instances[0]
	if !got.Completed {
		t.Fatal("completion not applied")
	}
	if got.Habit == nil || got.Habit.Title != "run" {
		t.Fatalf("parent template lost: %+v", got.Habit)
	}
}

func TestRemoveHabitDropsTemplateAndOccurrences(t *testing.T) {
	m := newTestModel()
	m.Content = []models.ContentItem{
		{Kind: models.ContentHabit, Habit: &models.Habit{ID: "h1", Title: "run", CreatedAt: nowStamp(0)}},
		todoItem("t1", "keep me", false),
	}
	m.Instances = []models.HabitInstance{
		{ID: "i1", HabitID: "h1", DueDate: "2025-06-16"},
		{ID: "i2", HabitID: "h1", DueDate: "2025-06-17"},
		{ID: "i3", HabitID: "h2", DueDate: "2025-06-16"},
	}

	m.RemoveHabit("h1")

	if len(m.Content) != 1 || m.Content[0].Todo == nil {
		t.Fatalf("unexpected content after delete: %+v", m.Content)
	}
	if len(m.Instances) != 1 || m.Instances[0].ID != "i3" {
		t.Fatalf("unexpected instances after delete: %+v", m.Instances)
	}
}

func TestExpireToastIgnoresOlderTimer(t *testing.T) {
	m := newTestModel()
	m.ShowToast("first", false)
	m.ShowToast("second", false)

	m.ExpireToast(1)
	if m.Toast == nil || m.Toast.Text != "second" {
		t.Fatalf("older timer dismissed the newer toast: %+v", m.Toast)
	}

	m.ExpireToast(2)
	if m.Toast != nil {
		t.Fatalf("toast not dismissed by its own timer: %+v", m.Toast)
	}
}

func TestThoughtsNewestFirst(t *testing.T) {
	m := newTestModel()
	m.Content = []models.ContentItem{
		thoughtItem("a", "oldest", "2025-06-14T08:00:00Z"),
		thoughtItem("b", "newest", "2025-06-16T08:00:00Z"),
		thoughtItem("c", "middle", "2025-06-15T08:00:00Z"),
		todoItem("t1", "not a thought", false),
	}

	thoughts := m.Thoughts()
	if len(thoughts) != 3 {
		t.Fatalf("got %d thoughts, want 3", len(thoughts))
	}
	want := []string{"b", "c", "a"}
	for i, id := range want {
		if thoughts[i].ID != id {
			t.Fatalf("position %d: got %s, want %s", i, thoughts[i].ID, id)
		}
	}
}

func TestBusyTracksInFlightOps(t *testing.T) {
	m := newTestModel()
	op := OpKey{Kind: OpToggleTodo, ID: "t1"}

	if m.Busy(op) {
		t.Fatal("fresh op reported busy")
	}
	m.StartOp(op)
	if !m.Busy(op) {
		t.Fatal("started op not reported busy")
	}
	if m.Busy(OpKey{Kind: OpToggleTodo, ID: "t2"}) {
		t.Fatal("different entity shares the op key")
	}
	m.FinishOp(op)
	if m.Busy(op) {
		t.Fatal("finished op still busy")
	}
}
