package system

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/campusbuddy/internal/cli"
	"github.com/julianstephens/campusbuddy/internal/lockfile"
	"github.com/julianstephens/campusbuddy/internal/logger"
	"github.com/julianstephens/campusbuddy/internal/tui"
)

type TuiCmd struct{}

func (c *TuiCmd) Run(ctx *cli.Context) error {
	lock, err := lockfile.Acquire(ctx.LockPath())
	if err != nil {
		return fmt.Errorf("cannot start the dashboard: %w", err)
	}
	defer func() {
		if err := lock.Release(); err != nil {
			logger.Warn("Failed to release lock", "error", err)
		}
	}()

	// Perform automatic backup on TUI startup (after successful load)
	ctx.PerformAutomaticBackup()

	p := tea.NewProgram(tui.NewModel(ctx.Dashboard()), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("dashboard exited with an error: %w", err)
	}
	return nil
}
