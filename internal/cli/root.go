package cli

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jotapp/jot/internal/api"
	"github.com/jotapp/jot/internal/config"
	"github.com/jotapp/jot/internal/logger"
	"github.com/jotapp/jot/internal/models"
	"github.com/jotapp/jot/internal/notifier"
	"github.com/jotapp/jot/internal/session"
	"github.com/jotapp/jot/internal/timeline"
)

// Context is shared state passed to every command by kong.
type Context struct {
	Config   config.Config
	Location *time.Location
	Session  *session.Session
	API      *api.Client
}

// TimezoneName returns the IANA name sent alongside captured text so the
// backend resolves relative dates in the viewer's calendar.
func (c *Context) TimezoneName() string {
	if c.Config.Timezone == "" || c.Config.Timezone == "Local" {
		return time.Now().Location().String()
	}
	return c.Config.Timezone
}

// LoadWindow fetches the content feed and the habit instances covering a
// window of days starting today, then builds the day buckets.
func (c *Context) LoadWindow(ctx context.Context, days int) ([]timeline.Day, error) {
	return c.LoadWindowFrom(ctx, time.Now().In(c.Location), days)
}

// LoadWindowFrom is LoadWindow anchored on an arbitrary first day. The two
// fetches are independent and run concurrently.
func (c *Context) LoadWindowFrom(ctx context.Context, today time.Time, days int) ([]timeline.Day, error) {
	today = today.In(c.Location)
	start, end := timeline.Span(today, days)

	var (
		content   []models.ContentItem
		instances []models.HabitInstance
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		content, err = c.API.Content.List(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		instances, err = c.API.Habits.Instances(gctx, string(start), string(end), nil)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return timeline.Build(timeline.Window(today, days), content, instances, c.Location), nil
}

// NotifyDesktop relays a toast through the tray app when it is running.
// Failures are expected (no tray) and only logged.
func (c *Context) NotifyDesktop(text string) {
	if err := notifier.New().Notify(text); err != nil {
		logger.Debug("Desktop notification skipped", "error", err)
	}
}
