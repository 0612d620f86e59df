package tui

import (
	"context"
	"errors"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/katalvlaran/pathviz/config"
)

// Run starts the interactive program on the terminal and blocks until the
// user quits or ctx is cancelled. Extra options are passed to bubbletea
// after the defaults (alternate screen, mouse cell motion, ctx).
func Run(ctx context.Context, cfg config.Config, logger *slog.Logger, opts ...tea.ProgramOption) error {
	m, err := New(ctx, cfg, logger)
	if err != nil {
		return err
	}

	all := append([]tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	}, opts...)

	m.log.Info("session started", "rows", cfg.Grid.Rows, "cols", cfg.Grid.Cols)
	final, err := tea.NewProgram(m, all...).Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		err = ctx.Err()
	}
	if fm, ok := final.(Model); ok && fm.started {
		fm.run.cancel()
	}
	m.log.Info("session ended", "error", err)
	return err
}
