// Package timeline builds the day-bucketed view of a user's content: N
// contiguous calendar days starting at the viewer's "today", each holding
// the todos, habit occurrences, and thoughts whose relevant date lands on
// it. Buckets are ephemeral and rebuilt on every change to the source
// collections or the window size.
package timeline

import (
	"sort"
	"time"

	"github.com/jotapp/jot/internal/constants"
	"github.com/jotapp/jot/internal/logger"
	"github.com/jotapp/jot/internal/models"
)

// Day is one calendar-day bucket.
type Day struct {
	Date     DateKey
	Label    string
	Todos    []models.Todo
	Habits   []models.HabitInstance
	Thoughts []models.Thought
}

// Window generates n contiguous empty buckets starting at the calendar date
// of today. It is a pure function of its inputs: "today" rolls over at
// midnight and n grows on load-more, so callers must regenerate rather than
// cache.
func Window(today time.Time, n int) []Day {
	days := make([]Day, 0, n)
	for i := 0; i < n; i++ {
		d := today.AddDate(0, 0, i)
		days = append(days, Day{
			Date:  DateKey(d.Format(constants.DateFormat)),
			Label: d.Format(constants.DayLabelFormat),
		})
	}
	return days
}

// Span returns the first and last date keys a window of n days starting at
// today will cover, for the habit-instance range request.
func Span(today time.Time, n int) (DateKey, DateKey) {
	if n < 1 {
		n = 1
	}
	start := DateKey(today.Format(constants.DateFormat))
	end := DateKey(today.AddDate(0, 0, n-1).Format(constants.DateFormat))
	return start, end
}

// Build assigns content items and habit instances to the window's buckets
// and sorts each bucket. Items whose relevant date is outside the window are
// silently dropped; items with unparseable timestamps are logged and dropped
// without aborting the pass.
func Build(days []Day, content []models.ContentItem, instances []models.HabitInstance, loc *time.Location) []Day {
	index := make(map[DateKey]int, len(days))
	for i := range days {
		days[i].Todos = nil
		days[i].Habits = nil
		days[i].Thoughts = nil
		index[days[i].Date] = i
	}

	for _, item := range content {
		switch item.Kind {
		case models.ContentTodo:
			key, err := TodoRelevantDate(*item.Todo, loc)
			if err != nil {
				logger.Debug("Dropping todo with bad timestamp", "id", item.Todo.ID, "error", err)
				continue
			}
			if i, ok := index[key]; ok {
				days[i].Todos = append(days[i].Todos, *item.Todo)
			}
		case models.ContentThought:
			key, err := LocalDateKey(item.Thought.CreatedAt, loc)
			if err != nil {
				logger.Debug("Dropping thought with bad timestamp", "id", item.Thought.ID, "error", err)
				continue
			}
			if i, ok := index[key]; ok {
				days[i].Thoughts = append(days[i].Thoughts, *item.Thought)
			}
		}
		// Habit templates in the content feed are not bucketed; their
		// occurrences arrive as instances.
	}

	for _, inst := range instances {
		key, ok := DateOnlyKey(inst.DueDate)
		if !ok {
			k, err := LocalDateKey(inst.DueDate, loc)
			if err != nil {
				logger.Debug("Dropping habit instance with bad due date", "id", inst.ID, "error", err)
				continue
			}
			key = k
		}
		if i, ok := index[key]; ok {
			days[i].Habits = append(days[i].Habits, inst)
		}
	}

	for i := range days {
		sortTodos(days[i].Todos)
		sortHabits(days[i].Habits)
		sortThoughts(days[i].Thoughts)
	}
	return days
}

// TodoRelevantDate returns the calendar date a todo belongs to: the due date
// when set, else the creation date. Date-only values pass through without
// zone conversion.
func TodoRelevantDate(todo models.Todo, loc *time.Location) (DateKey, error) {
	value := todo.CreatedAt
	if todo.DueDate != nil && *todo.DueDate != "" {
		value = *todo.DueDate
	}
	if key, ok := DateOnlyKey(value); ok {
		return key, nil
	}
	return LocalDateKey(value, loc)
}

// sortTodos orders by due instant ascending; undated todos sort after dated
// ones and keep creation order among themselves. Lexicographic comparison is
// valid because ISO-8601 instants order lexicographically.
func sortTodos(todos []models.Todo) {
	sort.SliceStable(todos, func(i, j int) bool {
		a, b := "", ""
		if todos[i].DueDate != nil {
			a = *todos[i].DueDate
		}
		if todos[j].DueDate != nil {
			b = *todos[j].DueDate
		}
		if a == "" && b == "" {
			return todos[i].CreatedAt < todos[j].CreatedAt
		}
		if a == "" {
			return false
		}
		if b == "" {
			return true
		}
		return a < b
	})
}

// sortHabits orders actionable occurrences first: incomplete before
// complete, then parent due time ascending (timed before untimed), then
// parent title as the stable final tie-break.
func sortHabits(instances []models.HabitInstance) {
	dueTime := func(inst models.HabitInstance) string {
		if inst.Habit != nil && inst.Habit.DueTime != nil {
			return *inst.Habit.DueTime
		}
		return ""
	}
	title := func(inst models.HabitInstance) string {
		if inst.Habit != nil {
			return inst.Habit.Title
		}
		return ""
	}
	sort.SliceStable(instances, func(i, j int) bool {
		a, b := instances[i], instances[j]
		if a.Completed != b.Completed {
			return !a.Completed
		}
		at, bt := dueTime(a), dueTime(b)
		if (at == "") != (bt == "") {
			return at != ""
		}
		if at != bt {
			return at < bt
		}
		return title(a) < title(b)
	})
}

// sortThoughts orders newest first.
func sortThoughts(thoughts []models.Thought) {
	sort.SliceStable(thoughts, func(i, j int) bool {
		return thoughts[i].CreatedAt > thoughts[j].CreatedAt
	})
}
