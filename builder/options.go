package builder

import (
	"math/rand"

	"github.com/katalvlaran/pathviz/gridgraph"
)

// DefaultCellSize is the pixel edge of one cell for grids built from maps.
const DefaultCellSize = 16

// builderConfig holds the resolved options of a builder call.
type builderConfig struct {
	cellSize int
	rng      *rand.Rand
	keep     map[*gridgraph.Cell]bool
}

// BuilderOption customizes a builder call.
type BuilderOption func(*builderConfig)

// WithCellSize sets the pixel edge of one cell. Panics if px < 1.
func WithCellSize(px int) BuilderOption {
	if px < 1 {
		panic("builder: WithCellSize(px < 1)")
	}
	return func(c *builderConfig) {
		c.cellSize = px
	}
}

// WithSeed creates a deterministic RNG; seed 0 maps to defaultRNGSeed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rngFromSeed(seed)
	}
}

// WithRand provides an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithKeep protects cells from RandomBarriers in addition to Start and End.
func WithKeep(cells ...*gridgraph.Cell) BuilderOption {
	return func(c *builderConfig) {
		if c.keep == nil {
			c.keep = make(map[*gridgraph.Cell]bool, len(cells))
		}
		for _, cell := range cells {
			if cell != nil {
				c.keep[cell] = true
			}
		}
	}
}

// newConfig applies opts over the defaults.
func newConfig(opts []BuilderOption) builderConfig {
	cfg := builderConfig{cellSize: DefaultCellSize}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = rngFromSeed(0)
	}
	return cfg
}
