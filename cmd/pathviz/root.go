package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/pathviz/config"
)

// globals is the state shared by every subcommand once the root has parsed
// its persistent flags.
type globals struct {
	outW, errW io.Writer

	configPath string
	logLevel   string
	logFormat  string

	cfg config.Config
}

func newRootCmd(outW, errW io.Writer) *cobra.Command {
	g := &globals{outW: outW, errW: errW}

	root := &cobra.Command{
		Use:   "pathviz",
		Short: "Visualize BFS, DFS, DLS, IDS, UCS, Dijkstra, A* and IDA* on a grid",
		Long: `pathviz animates classic graph searches on a 4-connected grid.

Use "pathviz tui" for the interactive editor or "pathviz run" to search a
scripted scenario and print the result.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return g.load(cmd)
		},
	}
	root.SetOut(outW)
	root.SetErr(errW)

	pf := root.PersistentFlags()
	pf.StringVar(&g.configPath, "config", "", "YAML configuration file")
	pf.StringVar(&g.logLevel, "log-level", "", "log level: debug, info, warn, error")
	pf.StringVar(&g.logFormat, "log-format", "", "log format: text or json")

	root.AddCommand(
		newTUICmd(g),
		newRunCmd(g),
		newAlgorithmsCmd(g),
	)
	return root
}

// load reads the configuration file, if any, and applies flag overrides.
func (g *globals) load(cmd *cobra.Command) error {
	cfg := config.Default()
	if g.configPath != "" {
		var err error
		if cfg, err = config.Load(g.configPath); err != nil {
			return err
		}
	}
	if cmd.Flags().Changed("log-level") {
		cfg.Log.Level = g.logLevel
	}
	if cmd.Flags().Changed("log-format") {
		cfg.Log.Format = g.logFormat
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("pathviz: %w", err)
	}
	g.cfg = cfg
	return nil
}
