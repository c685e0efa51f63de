package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/tripboard/internal/instance"
	"github.com/julianstephens/tripboard/internal/logger"
	"github.com/julianstephens/tripboard/internal/tui"
)

type TuiCmd struct{}

func (cmd *TuiCmd) Run(ctx *Context) error {
	all, err := ctx.Trips()
	if err != nil {
		return err
	}

	lock, err := instance.Acquire(ctx.ConfigDir)
	if err != nil {
		return err
	}
	defer func() {
		if err := lock.Release(); err != nil {
			logger.Warn("failed to release lockfile", "error", err)
		}
	}()

	ctx.PerformAutomaticBackup()

	model := tui.NewModel(tui.Options{
		Trips:    all,
		Store:    ctx.Completion(),
		Locale:   ctx.Locale,
		Location: ctx.Location,
		Exporter: ctx.Exporter(""),
		Now:      ctx.Now,
	})

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
