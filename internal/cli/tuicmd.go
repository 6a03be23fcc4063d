package cli

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/quitlog/quitlog/internal/tui"
)

type TuiCmd struct{}

func (c *TuiCmd) Run(ctx *Context) error {
	if err := ctx.Tracker.Reload(); err != nil {
		return err
	}

	p := tea.NewProgram(tui.NewModel(ctx.Tracker), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
