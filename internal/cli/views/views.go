// Package views renders the read-only timeline and day surfaces.
package views

import (
	"context"
	"fmt"
	"time"

	"github.com/jotapp/jot/internal/cli"
	"github.com/jotapp/jot/internal/constants"
)

type TimelineCmd struct {
	Days int `short:"n" help:"Number of days to show." default:"7"`
}

func (c *TimelineCmd) Validate() error {
	if c.Days < 1 {
		return fmt.Errorf("days must be at least 1")
	}
	return nil
}

func (c *TimelineCmd) Run(ctx *cli.Context) error {
	days, err := ctx.LoadWindow(context.Background(), c.Days)
	if err != nil {
		return err
	}
	fmt.Print(ctx.RenderWindow(days))
	return nil
}

type DayCmd struct {
	Date string `arg:"" optional:"" help:"Date to show (YYYY-MM-DD), defaults to today."`
}

func (c *DayCmd) Validate() error {
	if c.Date == "" {
		return nil
	}
	if _, err := time.Parse(constants.DateFormat, c.Date); err != nil {
		return fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", c.Date)
	}
	return nil
}

func (c *DayCmd) Run(ctx *cli.Context) error {
	anchor := time.Now().In(ctx.Location)
	if c.Date != "" {
		parsed, err := time.ParseInLocation(constants.DateFormat, c.Date, ctx.Location)
		if err != nil {
			return err
		}
		anchor = parsed
	}

	days, err := ctx.LoadWindowFrom(context.Background(), anchor, 1)
	if err != nil {
		return err
	}
	fmt.Print(ctx.RenderWindow(days))
	return nil
}
