package habits

import (
	"context"
	"fmt"
	"time"

	"github.com/jotapp/jot/internal/api"
	"github.com/jotapp/jot/internal/cli"
	"github.com/jotapp/jot/internal/format"
	"github.com/jotapp/jot/internal/timeline"
)

type ListCmd struct {
	All bool `short:"a" help:"Include inactive habits."`
}

func (c *ListCmd) Run(ctx *cli.Context) error {
	var active *bool
	if !c.All {
		v := true
		active = &v
	}

	habits, err := ctx.API.Habits.List(context.Background(), active)
	if err != nil {
		return err
	}
	if len(habits) == 0 {
		fmt.Println("No habits.")
		return nil
	}
	for _, habit := range habits {
		line := fmt.Sprintf("%s  %s (%s)", habit.ID, habit.Title, habit.Frequency)
		if habit.DueTime != nil {
			line += " @ " + format.DueTime(*habit.DueTime)
		}
		if !habit.IsActive {
			line += "  [inactive]"
		}
		fmt.Println(line)
	}
	return nil
}

// TodayCmd lists today's scheduled occurrences.
type TodayCmd struct{}

func (c *TodayCmd) Run(ctx *cli.Context) error {
	today := string(timeline.TodayKey(ctx.Location))
	instances, err := ctx.API.Habits.Instances(context.Background(), today, today, nil)
	if err != nil {
		return err
	}
	if len(instances) == 0 {
		fmt.Println("No habits scheduled today.")
		return nil
	}
	for _, inst := range instances {
		title := "(deleted habit)"
		if inst.Habit != nil {
			title = inst.Habit.Title
		}
		mark := "○"
		if inst.Completed {
			mark = "✓"
		} else if inst.Skipped {
			mark = "-"
		}
		fmt.Printf("%s %s  %s\n", mark, inst.ID, title)
	}
	return nil
}

type DoneCmd struct {
	ID   string `arg:"" help:"Habit instance ID to complete."`
	Undo bool   `help:"Mark as not completed instead."`
}

func (c *DoneCmd) Run(ctx *cli.Context) error {
	completed := !c.Undo
	inst, err := ctx.API.Habits.UpdateInstance(context.Background(), c.ID, api.InstanceUpdate{Completed: &completed})
	if err != nil {
		return err
	}
	title := inst.ID
	if inst.Habit != nil {
		title = inst.Habit.Title
	}
	if inst.Completed {
		fmt.Printf("Done: %s\n", title)
		ctx.NotifyDesktop("Habit done: " + title)
	} else {
		fmt.Printf("Reopened: %s\n", title)
	}
	return nil
}

type SkipCmd struct {
	ID string `arg:"" help:"Habit instance ID to skip."`
}

func (c *SkipCmd) Run(ctx *cli.Context) error {
	skipped := true
	inst, err := ctx.API.Habits.UpdateInstance(context.Background(), c.ID, api.InstanceUpdate{Skipped: &skipped})
	if err != nil {
		return err
	}
	title := inst.ID
	if inst.Habit != nil {
		title = inst.Habit.Title
	}
	fmt.Printf("Skipped: %s (%s)\n", title, format.DateOnly(inst.DueDate, time.UTC))
	return nil
}

type DeleteCmd struct {
	ID        string `arg:"" help:"Habit ID to delete."`
	AllFuture bool   `help:"Also delete all future scheduled instances."`
	Yes       bool   `short:"y" help:"Skip the confirmation prompt."`
}

func (c *DeleteCmd) Run(ctx *cli.Context) error {
	habit, err := ctx.API.Habits.Get(context.Background(), c.ID)
	if err != nil {
		return err
	}

	if !c.Yes {
		message := fmt.Sprintf("Delete habit %q?", habit.Title)
		if c.AllFuture {
			message = fmt.Sprintf("Delete habit %q and all its future instances?", habit.Title)
		}
		ok, err := cli.Confirm(message)
		if err != nil {
			return err
		}
		if !ok {
			fmt.Println("Cancelled.")
			return nil
		}
	}

	if err := ctx.API.Habits.Delete(context.Background(), c.ID, c.AllFuture); err != nil {
		return err
	}
	fmt.Printf("Deleted habit: %s\n", habit.Title)
	return nil
}
