package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/pathviz/builder"
	"github.com/katalvlaran/pathviz/config"
	"github.com/katalvlaran/pathviz/render"
	"github.com/katalvlaran/pathviz/search"
)

var (
	// errBadCoord is returned for a malformed --start, --end, --barrier or --wall value.
	errBadCoord = errors.New("pathviz: coordinates must be integers separated by commas")
	// errNoEndpoint is returned for a map without 'S' or 'E'.
	errNoEndpoint = errors.New("pathviz: map needs one 'S' and one 'E'")
)

// runFlags are the options of the run command.
type runFlags struct {
	algo      string
	mapPath   string
	rows      int
	cols      int
	start     string
	end       string
	barriers  []string
	walls     []string
	density   float64
	seed      int64
	heuristic string
	limit     int
	maxDepth  int
	plain     bool
	quiet     bool
}

func newRunCmd(g *globals) *cobra.Command {
	var fl runFlags
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Search a scripted grid and print the final frame",
		Long: `run builds a grid from a map file or from flags, runs one search and prints
the explored grid followed by a one-line summary.

Map files use '.' for free cells, '#' for barriers, 'S' for start and 'E'
for end, one row per line.`,
		Example: `  pathviz run --algo bfs --rows 10 --cols 20 --density 0.3 --seed 7
  pathviz run --algo idastar --map maze.txt
  pathviz run --rows 5 --cols 5 --wall 0,2,3,2 --start 0,0 --end 0,4`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return g.runSearch(cmd, fl)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&fl.algo, "algo", "a", "astar", "algorithm name, label or menu number (see \"pathviz algorithms\")")
	f.StringVarP(&fl.mapPath, "map", "m", "", "text map file")
	f.IntVar(&fl.rows, "rows", 0, "grid rows when no map is given (default from config)")
	f.IntVar(&fl.cols, "cols", 0, "grid columns when no map is given (default from config)")
	f.StringVar(&fl.start, "start", "0,0", "start cell as row,col")
	f.StringVar(&fl.end, "end", "", "end cell as row,col (default: bottom-right)")
	f.StringArrayVar(&fl.barriers, "barrier", nil, "barrier cell as row,col (repeatable)")
	f.StringArrayVar(&fl.walls, "wall", nil, "barrier segment as r0,c0,r1,c1 (repeatable)")
	f.Float64Var(&fl.density, "density", 0, "random barrier density in [0,1)")
	f.Int64Var(&fl.seed, "seed", 0, "random barrier seed")
	f.StringVar(&fl.heuristic, "heuristic", "", "A*/IDA* heuristic: manhattan or euclidean")
	f.IntVar(&fl.limit, "limit", 0, "DLS depth limit (default from config)")
	f.IntVar(&fl.maxDepth, "max-depth", 0, "IDS maximum depth (default from config)")
	f.BoolVar(&fl.plain, "plain", false, "print glyphs without colour")
	f.BoolVarP(&fl.quiet, "quiet", "q", false, "print only the summary")
	return cmd
}

func (g *globals) runSearch(cmd *cobra.Command, fl runFlags) error {
	cfg := g.cfg
	flags := cmd.Flags()
	if flags.Changed("rows") {
		cfg.Grid.Rows = fl.rows
	}
	if flags.Changed("cols") {
		cfg.Grid.Cols = fl.cols
	}
	if flags.Changed("heuristic") {
		cfg.Search.Heuristic = fl.heuristic
	}
	if flags.Changed("limit") {
		cfg.Search.DLSLimit = fl.limit
	}
	if flags.Changed("max-depth") {
		cfg.Search.IDSMaxDepth = fl.maxDepth
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("pathviz: %w", err)
	}

	alg, err := parseAlgo(fl.algo)
	if err != nil {
		return err
	}
	sc, err := buildScenario(cfg, fl)
	if err != nil {
		return err
	}
	sc.Grid.UpdateAllNeighbors()

	logger := newLogger(cfg.Log.Level, cfg.Log.Format, g.errW)
	runID := uuid.NewString()
	logger.Info("search started",
		"run_id", runID,
		"algorithm", alg.String(),
		"rows", sc.Grid.Rows(),
		"cols", sc.Grid.Cols(),
	)
	logger.Debug("layout",
		"run_id", runID,
		"regions", len(sc.Grid.Regions()),
		"reachable", sc.Grid.Connected(sc.Start, sc.End),
	)

	res, err := search.Run(cmd.Context(), alg, sc.Grid, sc.Start, sc.End,
		cfg.Params(sc.Start, sc.End),
		search.WithHeuristic(cfg.Heuristic()),
	)
	if err != nil {
		logger.Error("search failed", "run_id", runID, "algorithm", alg.String(), "error", err)
		return err
	}
	logger.Info("search finished",
		"run_id", runID,
		"algorithm", alg.String(),
		"found", res.Found,
		"steps", res.Steps,
		"path_length", res.PathLength,
		"elapsed", res.Elapsed,
	)

	if !fl.quiet {
		palette, err := cfg.ResolvePalette()
		if err != nil {
			return err
		}
		plain := fl.plain || !writerIsTerminal(g.outW)
		r := render.New(palette, render.WithPlain(plain))
		fmt.Fprintln(g.outW, r.Grid(sc.Grid))
		fmt.Fprintln(g.outW)
	}
	_, err = fmt.Fprintln(g.outW, res.String())
	return err
}

// parseAlgo accepts a name, label or 1-based menu number.
func parseAlgo(s string) (search.Algorithm, error) {
	if n, err := strconv.Atoi(s); err == nil {
		algs := search.Algorithms()
		if n >= 1 && n <= len(algs) {
			return algs[n-1], nil
		}
	}
	return search.ParseAlgorithm(s)
}

// buildScenario lays out the grid from the map file or the size flags, then
// applies walls, single barriers and random barriers in that order.
func buildScenario(cfg config.Config, fl runFlags) (*builder.Scenario, error) {
	var (
		sc  *builder.Scenario
		err error
	)
	if fl.mapPath != "" {
		sc, err = loadMap(fl.mapPath)
	} else {
		sc, err = openScenario(cfg, fl)
	}
	if err != nil {
		return nil, err
	}

	for _, w := range fl.walls {
		v, err := parseInts(w, 4)
		if err != nil {
			return nil, fmt.Errorf("--wall %q: %w", w, err)
		}
		if _, err = builder.Wall(sc.Grid, v[0], v[1], v[2], v[3]); err != nil {
			return nil, fmt.Errorf("--wall %q: %w", w, err)
		}
	}
	for _, b := range fl.barriers {
		v, err := parseInts(b, 2)
		if err != nil {
			return nil, fmt.Errorf("--barrier %q: %w", b, err)
		}
		if _, err = builder.Wall(sc.Grid, v[0], v[1], v[0], v[1]); err != nil {
			return nil, fmt.Errorf("--barrier %q: %w", b, err)
		}
	}
	if fl.density > 0 {
		if _, err = builder.RandomBarriers(sc.Grid, fl.density, builder.WithSeed(fl.seed)); err != nil {
			return nil, err
		}
	}
	return sc, nil
}

func loadMap(path string) (*builder.Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("pathviz: read map: %w", err)
	}
	lines := strings.Split(strings.ReplaceAll(string(data), "\r\n", "\n"), "\n")
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	sc, err := builder.FromStrings(lines)
	if err != nil {
		return nil, fmt.Errorf("pathviz: %s: %w", path, err)
	}
	if sc.Start == nil || sc.End == nil {
		return nil, fmt.Errorf("%w: %s", errNoEndpoint, path)
	}
	return sc, nil
}

func openScenario(cfg config.Config, fl runFlags) (*builder.Scenario, error) {
	rows, cols := cfg.Grid.Rows, cfg.Grid.Cols
	start, err := parseInts(fl.start, 2)
	if err != nil {
		return nil, fmt.Errorf("--start %q: %w", fl.start, err)
	}
	end := []int{rows - 1, cols - 1}
	if fl.end != "" {
		if end, err = parseInts(fl.end, 2); err != nil {
			return nil, fmt.Errorf("--end %q: %w", fl.end, err)
		}
	}
	cell := min(cfg.Grid.Width/cols, cfg.Grid.Height/rows)
	return builder.Open(rows, cols,
		[2]int{start[0], start[1]}, [2]int{end[0], end[1]},
		builder.WithCellSize(max(cell, 1)),
	)
}

// parseInts splits "a,b,..." into exactly n integers.
func parseInts(s string, n int) ([]int, error) {
	parts := strings.Split(s, ",")
	if len(parts) != n {
		return nil, fmt.Errorf("%w: want %d values", errBadCoord, n)
	}
	out := make([]int, n)
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("%w: %q", errBadCoord, p)
		}
		out[i] = v
	}
	return out, nil
}

// writerIsTerminal reports whether w is a terminal file.
func writerIsTerminal(w any) bool {
	f, ok := w.(*os.File)
	return ok && isTerminal(f)
}
