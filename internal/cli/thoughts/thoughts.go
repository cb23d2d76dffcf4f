package thoughts

import (
	"context"
	"fmt"

	"github.com/jotapp/jot/internal/cli"
	"github.com/jotapp/jot/internal/format"
)

type ListCmd struct{}

func (c *ListCmd) Run(ctx *cli.Context) error {
	thoughts, err := ctx.API.Thoughts.List(context.Background())
	if err != nil {
		return err
	}
	if len(thoughts) == 0 {
		fmt.Println("No thoughts yet.")
		return nil
	}
	for _, th := range thoughts {
		fmt.Printf("%s  %s  (%s)\n", th.ID, th.Content, format.DateTime(th.CreatedAt, ctx.Location))
	}
	return nil
}

type DeleteCmd struct {
	ID  string `arg:"" help:"Thought ID to delete."`
	Yes bool   `short:"y" help:"Skip the confirmation prompt."`
}

func (c *DeleteCmd) Run(ctx *cli.Context) error {
	thought, err := ctx.API.Thoughts.Get(context.Background(), c.ID)
	if err != nil {
		return err
	}

	if !c.Yes {
		ok, err := cli.Confirm(fmt.Sprintf("Delete thought %q?", thought.Content))
		if err != nil {
			return err
		}
		if !ok {
			fmt.Println("Cancelled.")
			return nil
		}
	}

	if err := ctx.API.Thoughts.Delete(context.Background(), c.ID); err != nil {
		return err
	}
	fmt.Printf("Deleted thought %s\n", c.ID)
	return nil
}

type EditCmd struct {
	ID      string `arg:"" help:"Thought ID to edit."`
	Content string `arg:"" help:"New content."`
}

func (c *EditCmd) Run(ctx *cli.Context) error {
	thought, err := ctx.API.Thoughts.Update(context.Background(), c.ID, c.Content)
	if err != nil {
		return err
	}
	fmt.Printf("Updated thought: %s\n", thought.Content)
	return nil
}
