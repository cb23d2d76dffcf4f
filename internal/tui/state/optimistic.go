package state

import "github.com/jotapp/jot/internal/models"

// Optimistic mutations applied before the server confirms. The
// authoritative response replaces them via ReplaceTodo/ReplaceInstance;
// a failure triggers a window refetch, which discards them.

// SetTodoCompleted flips a todo's completion in the cached feed.
func (m *Model) SetTodoCompleted(id string, completed bool) {
	for i, item := range m.Content {
		if item.Kind == models.ContentTodo && item.Todo != nil && item.Todo.ID == id {
			todo := *item.Todo
			todo.Completed = completed
			m.Content[i].Todo = &todo
			break
		}
	}
	m.Rebuild()
}

// SetInstanceCompleted flips a habit occurrence's completion. Completing
// clears a previous skip, matching the server's behavior.
func (m *Model) SetInstanceCompleted(id string, completed bool) {
	for i, inst := range m.Instances {
		if inst.ID == id {
			m.Instances[i].Completed = completed
			if completed {
				m.Instances[i].Skipped = false
			}
			break
		}
	}
	m.Rebuild()
}

// SetInstanceSkipped marks a habit occurrence skipped.
func (m *Model) SetInstanceSkipped(id string) {
	for i, inst := range m.Instances {
		if inst.ID == id {
			m.Instances[i].Skipped = true
			m.Instances[i].Completed = false
			break
		}
	}
	m.Rebuild()
}

// RemoveInstance drops a deleted occurrence from the cache.
func (m *Model) RemoveInstance(id string) {
	kept := m.Instances[:0]
	for _, inst := range m.Instances {
		if inst.ID != id {
			kept = append(kept, inst)
		}
	}
	m.Instances = kept
	m.Rebuild()
}
