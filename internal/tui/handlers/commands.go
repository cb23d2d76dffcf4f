package handlers

import (
	"context"
	"errors"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/sync/errgroup"

	"github.com/jotapp/jot/internal/api"
	"github.com/jotapp/jot/internal/cli"
	"github.com/jotapp/jot/internal/models"
	"github.com/jotapp/jot/internal/timeline"
	"github.com/jotapp/jot/internal/tui/state"
)

// Commands are pure: they close over the shared cli.Context and plain
// values, never over the model, so a command started on one update
// cycle cannot mutate a stale model copy on a later one.

func opResult(op state.OpKey, err error, msg tea.Msg) tea.Msg {
	if err == nil {
		return msg
	}
	if errors.Is(err, api.ErrUnauthorized) {
		return state.AuthRequiredMsg{}
	}
	return state.OpFailedMsg{Op: op, Err: err}
}

// FetchWindow loads the content feed and the habit occurrences covering
// the current window. The two fetches run concurrently.
func FetchWindow(appCtx *cli.Context, seq, days int) tea.Cmd {
	return func() tea.Msg {
		today := time.Now().In(appCtx.Location)
		start, end := timeline.Span(today, days)

		var (
			content   []models.ContentItem
			instances []models.HabitInstance
		)
		g, gctx := errgroup.WithContext(context.Background())
		g.Go(func() error {
			var err error
			content, err = appCtx.API.Content.List(gctx)
			return err
		})
		g.Go(func() error {
			var err error
			instances, err = appCtx.API.Habits.Instances(gctx, string(start), string(end), nil)
			return err
		})
		if err := g.Wait(); err != nil {
			if errors.Is(err, api.ErrUnauthorized) {
				return state.AuthRequiredMsg{}
			}
			return state.WindowErrMsg{Seq: seq, Err: err}
		}
		return state.WindowLoadedMsg{Seq: seq, Content: content, Instances: instances}
	}
}

func FetchUser(appCtx *cli.Context) tea.Cmd {
	return func() tea.Msg {
		user, err := appCtx.API.Auth.Me(context.Background())
		return opResult(state.OpKey{}, err, state.UserLoadedMsg{User: user})
	}
}

func FetchStats(appCtx *cli.Context) tea.Cmd {
	return func() tea.Msg {
		stats, err := appCtx.API.Auth.Stats(context.Background())
		return opResult(state.OpKey{}, err, state.StatsLoadedMsg{Stats: stats})
	}
}

func Login(appCtx *cli.Context, email, password string) tea.Cmd {
	return func() tea.Msg {
		resp, err := appCtx.API.Auth.Login(context.Background(), email, password)
		if err != nil {
			return state.OpFailedMsg{Err: err}
		}
		return state.LoggedInMsg{User: &resp.User}
	}
}

func Register(appCtx *cli.Context, name, email, password string) tea.Cmd {
	return func() tea.Msg {
		resp, err := appCtx.API.Auth.Register(context.Background(), name, email, password)
		if err != nil {
			return state.OpFailedMsg{Err: err}
		}
		return state.LoggedInMsg{User: &resp.User}
	}
}

func ChangePassword(appCtx *cli.Context, op state.OpKey, current, newPassword string) tea.Cmd {
	return func() tea.Msg {
		err := appCtx.API.Auth.ChangePassword(context.Background(), current, newPassword)
		return opResult(op, err, state.PasswordChangedMsg{Op: op})
	}
}

// Capture sends free-form text for the backend to classify.
func Capture(appCtx *cli.Context, op state.OpKey, text string) tea.Cmd {
	return func() tea.Msg {
		item, err := appCtx.API.Content.Create(context.Background(), text, appCtx.TimezoneName())
		if err != nil {
			return opResult(op, err, nil)
		}
		return state.CapturedMsg{Item: *item}
	}
}

func ToggleTodo(appCtx *cli.Context, op state.OpKey, id string, completed bool) tea.Cmd {
	return func() tea.Msg {
		todo, err := appCtx.API.Todos.SetCompleted(context.Background(), id, completed)
		if err != nil {
			return opResult(op, err, nil)
		}
		return state.TodoSavedMsg{Op: op, Todo: *todo}
	}
}

func DeleteTodo(appCtx *cli.Context, op state.OpKey, id string) tea.Cmd {
	return func() tea.Msg {
		err := appCtx.API.Todos.Delete(context.Background(), id)
		return opResult(op, err, state.TodoDeletedMsg{Op: op, ID: id})
	}
}

func DeleteThought(appCtx *cli.Context, op state.OpKey, id string) tea.Cmd {
	return func() tea.Msg {
		err := appCtx.API.Thoughts.Delete(context.Background(), id)
		return opResult(op, err, state.ThoughtDeletedMsg{Op: op, ID: id})
	}
}

func ToggleInstance(appCtx *cli.Context, op state.OpKey, id string, completed bool) tea.Cmd {
	return func() tea.Msg {
		inst, err := appCtx.API.Habits.UpdateInstance(context.Background(), id, api.InstanceUpdate{Completed: &completed})
		if err != nil {
			return opResult(op, err, nil)
		}
		return state.InstanceSavedMsg{Op: op, Instance: *inst}
	}
}

func SkipInstance(appCtx *cli.Context, op state.OpKey, id string) tea.Cmd {
	skipped := true
	return func() tea.Msg {
		inst, err := appCtx.API.Habits.UpdateInstance(context.Background(), id, api.InstanceUpdate{Skipped: &skipped})
		if err != nil {
			return opResult(op, err, nil)
		}
		return state.InstanceSavedMsg{Op: op, Instance: *inst}
	}
}

func DeleteHabit(appCtx *cli.Context, op state.OpKey, id string, allFuture bool) tea.Cmd {
	return func() tea.Msg {
		err := appCtx.API.Habits.Delete(context.Background(), id, allFuture)
		return opResult(op, err, state.HabitDeletedMsg{Op: op, ID: id})
	}
}

func DeleteInstance(appCtx *cli.Context, op state.OpKey, id string) tea.Cmd {
	return func() tea.Msg {
		err := appCtx.API.Habits.DeleteInstance(context.Background(), id, false)
		return opResult(op, err, state.InstanceDeletedMsg{Op: op, ID: id})
	}
}

// Notify relays a toast to the desktop tray, best effort.
func Notify(appCtx *cli.Context, text string) tea.Cmd {
	return func() tea.Msg {
		appCtx.NotifyDesktop(text)
		return nil
	}
}
