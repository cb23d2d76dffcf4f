// Package auth holds the account commands: login, register, logout,
// password change, and stats. Credentials are validated locally before any
// request is made; passwords are always prompted, never flags.
package auth

import (
	"context"
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/jotapp/jot/internal/cli"
	"github.com/jotapp/jot/internal/format"
	"github.com/jotapp/jot/internal/validation"
)

type LoginCmd struct {
	Email string `arg:"" help:"Account email."`
}

func (c *LoginCmd) Run(ctx *cli.Context) error {
	var password string
	if err := promptPassword("Password", &password); err != nil {
		return err
	}

	input := validation.LoginInput{Email: c.Email, Password: password}
	if err := input.Validate(); err != nil {
		return err
	}

	resp, err := ctx.API.Auth.Login(context.Background(), c.Email, password)
	if err != nil {
		return err
	}

	fmt.Printf("Logged in as %s <%s>\n", resp.User.Name, resp.User.Email)
	return nil
}

type RegisterCmd struct {
	Name  string `arg:"" help:"Display name."`
	Email string `arg:"" help:"Account email."`
}

func (c *RegisterCmd) Run(ctx *cli.Context) error {
	var password, confirm string
	if err := promptPassword("Password", &password); err != nil {
		return err
	}
	if err := promptPassword("Confirm password", &confirm); err != nil {
		return err
	}

	input := validation.RegisterInput{Name: c.Name, Email: c.Email, Password: password, Confirm: confirm}
	if err := input.Validate(); err != nil {
		return err
	}

	resp, err := ctx.API.Auth.Register(context.Background(), c.Name, c.Email, password)
	if err != nil {
		return err
	}

	fmt.Printf("Welcome, %s! You are logged in.\n", format.FirstName(resp.User.Name))
	return nil
}

type LogoutCmd struct{}

func (c *LogoutCmd) Run(ctx *cli.Context) error {
	if err := ctx.API.Auth.Logout(); err != nil {
		return err
	}
	fmt.Println("Logged out.")
	return nil
}

type PasswdCmd struct{}

func (c *PasswdCmd) Run(ctx *cli.Context) error {
	var current, next, confirm string
	if err := promptPassword("Current password", &current); err != nil {
		return err
	}
	if err := promptPassword("New password", &next); err != nil {
		return err
	}
	if err := promptPassword("Confirm new password", &confirm); err != nil {
		return err
	}

	input := validation.ChangePasswordInput{Current: current, New: next, Confirm: confirm}
	if err := input.Validate(); err != nil {
		return err
	}

	if err := ctx.API.Auth.ChangePassword(context.Background(), current, next); err != nil {
		return err
	}
	fmt.Println("Password changed.")
	return nil
}

type StatsCmd struct{}

func (c *StatsCmd) Run(ctx *cli.Context) error {
	stats, err := ctx.API.Auth.Stats(context.Background())
	if err != nil {
		return err
	}

	fmt.Printf("Thoughts:         %d\n", stats.ThoughtsCount)
	fmt.Printf("Todos:            %d (%d done, %.0f%%)\n",
		stats.TodosCount, stats.CompletedTodosCount, stats.CompletionRate*100)
	fmt.Printf("Habits:           %d\n", stats.HabitsCount)
	fmt.Printf("Habit instances:  %d (%d done, %.0f%%)\n",
		stats.HabitInstancesTotal, stats.HabitInstancesCompleted, stats.HabitCompletionRate*100)
	return nil
}

func promptPassword(title string, value *string) error {
	return huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Title(title).
			EchoMode(huh.EchoModePassword).
			Value(value),
	)).Run()
}
