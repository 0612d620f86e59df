package search

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/katalvlaran/pathviz/gridgraph"
)

// Algorithm names one of the eight searches.
type Algorithm int

const (
	AlgBFS Algorithm = iota
	AlgDFS
	AlgDLS
	AlgIDS
	AlgUCS
	AlgDijkstra
	AlgAStar
	AlgIDAStar
)

// DefaultLimit is the depth limit used for DLS and the max depth used for IDS.
const DefaultLimit = 1000

var algorithmInfo = [...]struct {
	name, label string
	aliases     []string
}{
	AlgBFS:      {"bfs", "BFS", nil},
	AlgDFS:      {"dfs", "DFS", nil},
	AlgDLS:      {"dls", "DLS", nil},
	AlgIDS:      {"ids", "IDS", nil},
	AlgUCS:      {"ucs", "UCS", nil},
	AlgDijkstra: {"dijkstra", "Dijkstra", nil},
	AlgAStar:    {"astar", "A*", []string{"a*"}},
	AlgIDAStar:  {"idastar", "IDA*", []string{"ida*", "ida"}},
}

// Algorithms lists every algorithm in menu order.
func Algorithms() []Algorithm {
	return []Algorithm{AlgBFS, AlgDFS, AlgAStar, AlgDLS, AlgUCS, AlgDijkstra, AlgIDS, AlgIDAStar}
}

func (a Algorithm) valid() bool {
	return a >= 0 && int(a) < len(algorithmInfo)
}

// String returns the machine name used on the command line ("astar").
func (a Algorithm) String() string {
	if !a.valid() {
		return fmt.Sprintf("algorithm(%d)", int(a))
	}
	return algorithmInfo[a].name
}

// Label returns the display name ("A*").
func (a Algorithm) Label() string {
	if !a.valid() {
		return a.String()
	}
	return algorithmInfo[a].label
}

// ParseAlgorithm resolves a name, label or alias, case-insensitively.
func ParseAlgorithm(s string) (Algorithm, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	for i, info := range algorithmInfo {
		if key == info.name || key == strings.ToLower(info.label) {
			return Algorithm(i), nil
		}
		for _, alias := range info.aliases {
			if key == alias {
				return Algorithm(i), nil
			}
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, s)
}

// Params carries the algorithm-specific arguments.
type Params struct {
	// Limit is the DLS depth limit.
	Limit int
	// MaxDepth bounds the IDS passes (limits 0..MaxDepth-1).
	MaxDepth int
	// InitialThreshold is the first IDA* f bound.
	InitialThreshold float64
}

// DefaultParams returns DLS limit and IDS max depth of DefaultLimit and an
// IDA* initial threshold of Manhattan(start, end).
func DefaultParams(start, end *gridgraph.Cell) Params {
	p := Params{Limit: DefaultLimit, MaxDepth: DefaultLimit}
	if start != nil && end != nil {
		p.InitialThreshold = Manhattan(start, end)
	}
	return p
}

// Result summarises one Run.
type Result struct {
	Algorithm Algorithm
	Found     bool
	// Steps counts OnStep invocations, reconstruction included.
	Steps int
	// PathLength is the number of edges on the reconstructed path.
	PathLength int
	Elapsed    time.Duration
}

// String renders a one-line summary.
func (r Result) String() string {
	if !r.Found {
		return fmt.Sprintf("%s: no path (%d steps, %s)", r.Algorithm.Label(), r.Steps, r.Elapsed.Round(time.Microsecond))
	}
	return fmt.Sprintf("%s: path of %d edges (%d steps, %s)", r.Algorithm.Label(), r.PathLength, r.Steps, r.Elapsed.Round(time.Microsecond))
}

// Run dispatches alg with p and opts, under ctx, and collects a Result.
// Options given after ctx may still override the context.
func Run(ctx context.Context, alg Algorithm, g *gridgraph.Grid, start, end *gridgraph.Cell, p Params, opts ...Option) (Result, error) {
	res := Result{Algorithm: alg}
	if !alg.valid() {
		return res, fmt.Errorf("%w: %d", ErrUnknownAlgorithm, int(alg))
	}

	tr := &trace{}
	all := make([]Option, 0, len(opts)+2)
	all = append(all, WithContext(ctx))
	all = append(all, opts...)
	all = append(all, func(o *Options) { o.trace = tr })

	began := time.Now()
	var (
		found bool
		err   error
	)
	switch alg {
	case AlgBFS:
		found, err = BFS(g, start, end, all...)
	case AlgDFS:
		found, err = DFS(g, start, end, all...)
	case AlgDLS:
		found, err = DLS(g, start, end, p.Limit, all...)
	case AlgIDS:
		found, err = IDS(g, start, end, p.MaxDepth, all...)
	case AlgUCS:
		found, err = UCS(g, start, end, all...)
	case AlgDijkstra:
		found, err = Dijkstra(g, start, end, all...)
	case AlgAStar:
		found, err = AStar(g, start, end, all...)
	case AlgIDAStar:
		found, err = IDAStar(g, start, end, p.InitialThreshold, all...)
	}

	res.Found = found
	res.Steps = tr.steps
	res.PathLength = tr.pathEdges
	res.Elapsed = time.Since(began)
	return res, err
}
