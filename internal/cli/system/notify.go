package system

import (
	"strings"
	"time"

	"github.com/jotapp/jot/internal/cli"
	"github.com/jotapp/jot/internal/constants"
	"github.com/jotapp/jot/internal/logger"
	"github.com/jotapp/jot/internal/notifier"
)

// NotifyCmd relays a toast to the tray app. Hidden; used by shell
// integrations and the tray itself.
type NotifyCmd struct {
	Message []string `arg:"" help:"Notification text."`
}

func (c *NotifyCmd) Run(ctx *cli.Context) error {
	text := strings.Join(c.Message, " ")
	n := notifier.New()

	var err error
	for attempt := 0; attempt < constants.NotifyMaxRetries; attempt++ {
		if err = n.Notify(text); err == nil {
			return nil
		}
		time.Sleep(constants.NotifyRetryDelay)
	}
	logger.Warn("Notification delivery failed", "error", err)
	return err
}
