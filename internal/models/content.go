package models

import (
	"encoding/json"
	"fmt"
)

// ContentKind tags an item returned by the combined /content listing.
type ContentKind string

const (
	ContentThought ContentKind = "thought"
	ContentTodo    ContentKind = "todo"
	ContentHabit   ContentKind = "habit"
)

// ContentItem is the backend's {type, data} envelope with data decoded into
// the field matching the kind. Exactly one of Thought/Todo/Habit is set.
type ContentItem struct {
	Kind    ContentKind
	Thought *Thought
	Todo    *Todo
	Habit   *Habit
}

// ItemID returns the ID of whichever entity is set.
func (c ContentItem) ItemID() string {
	switch {
	case c.Thought != nil:
		return c.Thought.ID
	case c.Todo != nil:
		return c.Todo.ID
	case c.Habit != nil:
		return c.Habit.ID
	}
	return ""
}

func (c *ContentItem) UnmarshalJSON(b []byte) error {
	var envelope struct {
		Type ContentKind     `json:"type"`
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(b, &envelope); err != nil {
		return err
	}

	c.Kind = envelope.Type
	c.Thought, c.Todo, c.Habit = nil, nil, nil

	switch envelope.Type {
	case ContentThought:
		c.Thought = &Thought{}
		return json.Unmarshal(envelope.Data, c.Thought)
	case ContentTodo:
		c.Todo = &Todo{}
		return json.Unmarshal(envelope.Data, c.Todo)
	case ContentHabit:
		c.Habit = &Habit{}
		return json.Unmarshal(envelope.Data, c.Habit)
	default:
		return fmt.Errorf("unknown content type %q", envelope.Type)
	}
}

func (c ContentItem) MarshalJSON() ([]byte, error) {
	var data any
	switch c.Kind {
	case ContentThought:
		data = c.Thought
	case ContentTodo:
		data = c.Todo
	case ContentHabit:
		data = c.Habit
	default:
		return nil, fmt.Errorf("unknown content type %q", c.Kind)
	}
	return json.Marshal(struct {
		Type ContentKind `json:"type"`
		Data any         `json:"data"`
	}{Type: c.Kind, Data: data})
}
