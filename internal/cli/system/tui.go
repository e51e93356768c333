package system

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/repkit/repkit/internal/cli"
	"github.com/repkit/repkit/internal/tui"
)

type TuiCmd struct{}

func (cmd *TuiCmd) Run(ctx *cli.Context) error {
	model := tui.NewModel(ctx)
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running TUI: %w", err)
	}
	return nil
}
