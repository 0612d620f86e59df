package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/pathviz/tui"
)

// errNoTerminal is returned when tui is started without a terminal.
var errNoTerminal = errors.New("pathviz: tui needs an interactive terminal; use \"pathviz run\" instead")

func newTUICmd(g *globals) *cobra.Command {
	var (
		logFile    string
		rows, cols int
		delay      time.Duration
	)
	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Edit a grid with the mouse and animate searches on it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !isTerminal(os.Stdout) || !isTerminal(os.Stdin) {
				return errNoTerminal
			}

			cfg := g.cfg
			if cmd.Flags().Changed("rows") {
				cfg.Grid.Rows = rows
			}
			if cmd.Flags().Changed("cols") {
				cfg.Grid.Cols = cols
			}
			if cmd.Flags().Changed("delay") {
				cfg.Search.StepDelay = delay
			}
			if logFile != "" {
				cfg.Log.File = logFile
			}

			// logs must not reach the screen the program draws on
			var logW io.Writer = io.Discard
			if cfg.Log.File != "" {
				f, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
				if err != nil {
					return fmt.Errorf("pathviz: open log file: %w", err)
				}
				defer f.Close()
				logW = f
			}
			logger := newLogger(cfg.Log.Level, cfg.Log.Format, logW)

			return tui.Run(cmd.Context(), cfg, logger)
		},
	}

	f := cmd.Flags()
	f.StringVar(&logFile, "log-file", "", "append logs to this file (default: discard)")
	f.IntVar(&rows, "rows", 0, "grid rows (default from config)")
	f.IntVar(&cols, "cols", 0, "grid columns (default from config)")
	f.DurationVar(&delay, "delay", 0, "pause after every search step")
	return cmd
}

// isTerminal reports whether f is attached to a terminal.
func isTerminal(f *os.File) bool {
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
