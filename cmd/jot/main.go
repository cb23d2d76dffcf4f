package main

import (
	"github.com/alecthomas/kong"

	"github.com/jotapp/jot/internal/api"
	"github.com/jotapp/jot/internal/cli"
	"github.com/jotapp/jot/internal/cli/auth"
	"github.com/jotapp/jot/internal/cli/capture"
	"github.com/jotapp/jot/internal/cli/habits"
	"github.com/jotapp/jot/internal/cli/system"
	"github.com/jotapp/jot/internal/cli/thoughts"
	"github.com/jotapp/jot/internal/cli/todos"
	"github.com/jotapp/jot/internal/cli/views"
	"github.com/jotapp/jot/internal/config"
	"github.com/jotapp/jot/internal/constants"
	"github.com/jotapp/jot/internal/errors"
	"github.com/jotapp/jot/internal/logger"
	"github.com/jotapp/jot/internal/session"
)

var CLI struct {
	Version kong.VersionFlag
	Debug   bool `help:"Verbose logging to stderr." env:"JOT_DEBUG"`

	Login    auth.LoginCmd    `cmd:"" help:"Sign in and store the session token."`
	Register auth.RegisterCmd `cmd:"" help:"Create an account."`
	Logout   auth.LogoutCmd   `cmd:"" help:"Discard the stored session token."`
	Passwd   auth.PasswdCmd   `cmd:"" help:"Change the account password."`
	Stats    auth.StatsCmd    `cmd:"" help:"Show aggregate counts."`

	Add      capture.AddCmd    `cmd:"" help:"Capture free-form text; the backend decides what it becomes."`
	Timeline views.TimelineCmd `cmd:"" help:"Show the day-bucketed timeline."`
	Day      views.DayCmd      `cmd:"" help:"Show a single day."`

	Thoughts struct {
		List   thoughts.ListCmd   `cmd:"" help:"List every thought, newest first." default:"1"`
		Edit   thoughts.EditCmd   `cmd:"" help:"Edit a thought's text."`
		Delete thoughts.DeleteCmd `cmd:"" help:"Delete a thought."`
	} `cmd:"" help:"Manage thoughts."`

	Todo struct {
		List   todos.ListCmd   `cmd:"" help:"List todos." default:"1"`
		Add    todos.AddCmd    `cmd:"" help:"Add a todo directly."`
		Done   todos.DoneCmd   `cmd:"" help:"Toggle a todo's completion."`
		Edit   todos.EditCmd   `cmd:"" help:"Edit a todo."`
		Delete todos.DeleteCmd `cmd:"" help:"Delete a todo."`
	} `cmd:"" help:"Manage todos."`

	Habit struct {
		List   habits.ListCmd   `cmd:"" help:"List habits." default:"1"`
		Today  habits.TodayCmd  `cmd:"" help:"Show today's scheduled occurrences."`
		Done   habits.DoneCmd   `cmd:"" help:"Toggle a habit occurrence's completion."`
		Skip   habits.SkipCmd   `cmd:"" help:"Skip a habit occurrence."`
		Delete habits.DeleteCmd `cmd:"" help:"Delete a habit."`
	} `cmd:"" help:"Manage habits."`

	Tui    system.TuiCmd    `cmd:"" help:"Launch the interactive TUI." default:"1"`
	Notify system.NotifyCmd `cmd:"" hidden:"" help:"Send a notification (used internally)."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Personal journaling companion: capture anything, jot sorts it out"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{"version": constants.Version},
	)

	cfg, err := config.Load()
	if err != nil {
		errors.Fatal(err)
	}
	if CLI.Debug {
		cfg.Debug = true
	}
	if err := cfg.Validate(); err != nil {
		errors.Fatalf("invalid configuration: %v", err)
	}

	configDir, err := config.Dir()
	if err != nil {
		errors.Fatal(err)
	}
	if err := logger.Init(logger.Config{Debug: cfg.Debug, ConfigDir: configDir}); err != nil {
		errors.Fatal(err)
	}

	loc, err := cfg.Location()
	if err != nil {
		errors.Fatal(err)
	}

	sess := session.New()
	client, err := api.New(cfg.BaseURL, sess)
	if err != nil {
		errors.Fatal(err)
	}

	appCtx := &cli.Context{
		Config:   cfg,
		Location: loc,
		Session:  sess,
		API:      client,
	}

	if err := ctx.Run(appCtx); err != nil {
		errors.Fatal(err)
	}
}
