// Package config holds the pathviz settings: grid size, search parameters,
// animation speed, colours and logging. Values come from Default, optionally
// overlaid by a YAML file and then by command-line flags.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/pathviz/gridgraph"
	"github.com/katalvlaran/pathviz/render"
	"github.com/katalvlaran/pathviz/search"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid value")

// Config is the complete pathviz configuration.
type Config struct {
	Grid    GridConfig        `yaml:"grid"`
	Search  SearchConfig      `yaml:"search"`
	Palette map[string]string `yaml:"palette,omitempty"`
	Log     LogConfig         `yaml:"log"`
}

// GridConfig sizes the grid. Width and Height are the drawing surface in
// pixels used by headless runs; the terminal UI lays cells out in terminal
// columns instead.
type GridConfig struct {
	Rows   int `yaml:"rows"`
	Cols   int `yaml:"cols"`
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// SearchConfig carries algorithm parameters and animation speed.
type SearchConfig struct {
	DLSLimit    int           `yaml:"dls_limit"`
	IDSMaxDepth int           `yaml:"ids_max_depth"`
	Heuristic   string        `yaml:"heuristic"`
	StepDelay   time.Duration `yaml:"step_delay"`
}

// LogConfig selects the slog handler.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	File   string `yaml:"file,omitempty"`
}

// Default returns a 50×50 grid on an 800×800 surface, DLS and IDS bounds of
// 1000, the Manhattan heuristic, a 5ms step delay and info-level text logs.
func Default() Config {
	return Config{
		Grid: GridConfig{Rows: 50, Cols: 50, Width: 800, Height: 800},
		Search: SearchConfig{
			DLSLimit:    search.DefaultLimit,
			IDSMaxDepth: search.DefaultLimit,
			Heuristic:   "manhattan",
			StepDelay:   5 * time.Millisecond,
		},
		Log: LogConfig{Level: "info", Format: "text"},
	}
}

// Load reads a YAML file over Default. Fields absent from the file keep
// their defaults; unknown fields are an error. The result is validated.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err = dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err = cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate reports the first invalid field.
func (c Config) Validate() error {
	switch {
	case c.Grid.Rows < 1 || c.Grid.Cols < 1:
		return fmt.Errorf("%w: grid %dx%d", ErrInvalid, c.Grid.Rows, c.Grid.Cols)
	case c.Grid.Width < c.Grid.Cols || c.Grid.Height < c.Grid.Rows:
		return fmt.Errorf("%w: surface %dx%d px too small for %dx%d cells",
			ErrInvalid, c.Grid.Width, c.Grid.Height, c.Grid.Cols, c.Grid.Rows)
	case c.Search.DLSLimit < 0:
		return fmt.Errorf("%w: search.dls_limit=%d", ErrInvalid, c.Search.DLSLimit)
	case c.Search.IDSMaxDepth < 0:
		return fmt.Errorf("%w: search.ids_max_depth=%d", ErrInvalid, c.Search.IDSMaxDepth)
	case c.Search.StepDelay < 0:
		return fmt.Errorf("%w: search.step_delay=%s", ErrInvalid, c.Search.StepDelay)
	}
	if _, ok := search.HeuristicByName(c.Search.Heuristic); !ok {
		return fmt.Errorf("%w: search.heuristic=%q", ErrInvalid, c.Search.Heuristic)
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: log.level=%q", ErrInvalid, c.Log.Level)
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("%w: log.format=%q", ErrInvalid, c.Log.Format)
	}
	if _, err := render.DefaultPalette().With(c.Palette); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	return nil
}

// Heuristic resolves Search.Heuristic; Validate guarantees it exists.
func (c Config) Heuristic() search.Heuristic {
	h, ok := search.HeuristicByName(c.Search.Heuristic)
	if !ok {
		return search.Manhattan
	}
	return h
}

// Params builds the search parameters for a start/end pair.
func (c Config) Params(start, end *gridgraph.Cell) search.Params {
	p := search.DefaultParams(start, end)
	p.Limit = c.Search.DLSLimit
	p.MaxDepth = c.Search.IDSMaxDepth
	return p
}

// ResolvePalette applies the colour overrides over the default palette.
func (c Config) ResolvePalette() (render.Palette, error) {
	return render.DefaultPalette().With(c.Palette)
}

// Marshal renders the configuration as YAML.
func (c Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}
