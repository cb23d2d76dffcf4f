package system

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jotapp/jot/internal/cli"
	"github.com/jotapp/jot/internal/tui"
)

type TuiCmd struct{}

func (c *TuiCmd) Run(ctx *cli.Context) error {
	model := tui.New(ctx)
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}
