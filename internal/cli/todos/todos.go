package todos

import (
	"context"
	"fmt"

	"github.com/jotapp/jot/internal/api"
	"github.com/jotapp/jot/internal/cli"
	"github.com/jotapp/jot/internal/format"
	"github.com/jotapp/jot/internal/validation"
)

type ListCmd struct {
	All  bool `short:"a" help:"Include completed todos."`
	Done bool `help:"Show only completed todos."`
}

func (c *ListCmd) Run(ctx *cli.Context) error {
	var completed *bool
	if c.Done {
		v := true
		completed = &v
	} else if !c.All {
		v := false
		completed = &v
	}

	todos, err := ctx.API.Todos.List(context.Background(), completed)
	if err != nil {
		return err
	}
	if len(todos) == 0 {
		fmt.Println("No todos.")
		return nil
	}
	for _, todo := range todos {
		mark := "[ ]"
		if todo.Completed {
			mark = "[x]"
		}
		line := fmt.Sprintf("%s %s  %s", mark, todo.ID, todo.Title)
		if todo.DueDate != nil {
			line += fmt.Sprintf("  (due %s)", format.DateTime(*todo.DueDate, ctx.Location))
		}
		fmt.Println(line)
	}
	return nil
}

type DoneCmd struct {
	ID   string `arg:"" help:"Todo ID to toggle."`
	Undo bool   `help:"Mark as not completed instead."`
}

func (c *DoneCmd) Run(ctx *cli.Context) error {
	todo, err := ctx.API.Todos.SetCompleted(context.Background(), c.ID, !c.Undo)
	if err != nil {
		return err
	}
	if todo.Completed {
		fmt.Printf("Done: %s\n", todo.Title)
		ctx.NotifyDesktop("Todo done: " + todo.Title)
	} else {
		fmt.Printf("Reopened: %s\n", todo.Title)
	}
	return nil
}

type AddCmd struct {
	Title       string `arg:"" help:"Todo title."`
	Description string `short:"d" help:"Optional description."`
	Due         string `help:"Due date (YYYY-MM-DD or RFC 3339)."`
}

func (c *AddCmd) Run(ctx *cli.Context) error {
	input := validation.TodoInput{Title: c.Title, DueDate: c.Due}
	if err := input.Validate(); err != nil {
		return err
	}

	var description, due *string
	if c.Description != "" {
		description = &c.Description
	}
	if c.Due != "" {
		due = &c.Due
	}

	todo, err := ctx.API.Todos.Create(context.Background(), c.Title, description, due)
	if err != nil {
		return err
	}
	fmt.Printf("Added todo %s: %s\n", todo.ID, todo.Title)
	return nil
}

type EditCmd struct {
	ID    string `arg:"" help:"Todo ID to edit."`
	Title string `help:"New title."`
	Due   string `help:"New due date (YYYY-MM-DD or RFC 3339)."`
}

func (c *EditCmd) Run(ctx *cli.Context) error {
	update := api.TodoUpdate{}
	if c.Title != "" {
		input := validation.TodoInput{Title: c.Title, DueDate: c.Due}
		if err := input.Validate(); err != nil {
			return err
		}
		update.Title = &c.Title
	}
	if c.Due != "" {
		update.DueDate = &c.Due
	}
	if update.Title == nil && update.DueDate == nil {
		return fmt.Errorf("nothing to update; pass --title or --due")
	}

	todo, err := ctx.API.Todos.Update(context.Background(), c.ID, update)
	if err != nil {
		return err
	}
	fmt.Printf("Updated todo: %s\n", todo.Title)
	return nil
}

type DeleteCmd struct {
	ID  string `arg:"" help:"Todo ID to delete."`
	Yes bool   `short:"y" help:"Skip the confirmation prompt."`
}

func (c *DeleteCmd) Run(ctx *cli.Context) error {
	todo, err := ctx.API.Todos.Get(context.Background(), c.ID)
	if err != nil {
		return err
	}

	if !c.Yes {
		ok, err := cli.Confirm(fmt.Sprintf("Delete todo %q?", todo.Title))
		if err != nil {
			return err
		}
		if !ok {
			fmt.Println("Cancelled.")
			return nil
		}
	}

	if err := ctx.API.Todos.Delete(context.Background(), c.ID); err != nil {
		return err
	}
	fmt.Printf("Deleted todo: %s\n", todo.Title)
	return nil
}
