// Package capture submits free-form text to the backend classifier.
package capture

import (
	"context"
	"fmt"
	"strings"

	"github.com/jotapp/jot/internal/cli"
	"github.com/jotapp/jot/internal/models"
	"github.com/jotapp/jot/internal/validation"
)

type AddCmd struct {
	Text []string `arg:"" help:"What's on your mind. The backend decides whether it's a thought, todo, or habit."`
}

func (c *AddCmd) Run(ctx *cli.Context) error {
	text := strings.TrimSpace(strings.Join(c.Text, " "))
	if err := (validation.ComposeInput{Text: text}).Validate(); err != nil {
		return err
	}

	item, err := ctx.API.Content.Create(context.Background(), text, ctx.TimezoneName())
	if err != nil {
		return err
	}

	switch item.Kind {
	case models.ContentThought:
		fmt.Printf("Saved as a thought: %s\n", item.Thought.Content)
	case models.ContentTodo:
		msg := fmt.Sprintf("Saved as a todo: %s", item.Todo.Title)
		fmt.Println(msg)
		ctx.NotifyDesktop(msg)
	case models.ContentHabit:
		msg := fmt.Sprintf("Saved as a %s habit: %s", item.Habit.Frequency, item.Habit.Title)
		fmt.Println(msg)
		ctx.NotifyDesktop(msg)
	default:
		fmt.Printf("Saved (%s)\n", item.Kind)
	}
	return nil
}
