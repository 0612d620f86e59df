// Package search defines options, hooks and sentinel errors for the grid
// search algorithms.
package search

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/pathviz/gridgraph"
)

// Sentinel errors for search execution.
var (
	// ErrNilGrid is returned when a nil grid is passed.
	ErrNilGrid = errors.New("search: grid is nil")

	// ErrNilEndpoint is returned when start or end is nil.
	ErrNilEndpoint = errors.New("search: start or end cell is nil")

	// ErrForeignCell is returned when start or end does not belong to the grid.
	ErrForeignCell = errors.New("search: cell does not belong to grid")

	// ErrOptionViolation is returned for invalid parameters (negative limits,
	// NaN thresholds, nil heuristic).
	ErrOptionViolation = errors.New("search: invalid option supplied")

	// ErrUnknownAlgorithm is returned by ParseAlgorithm and Run for an
	// unrecognised algorithm.
	ErrUnknownAlgorithm = errors.New("search: unknown algorithm")
)

// Heuristic estimates the remaining cost from a to b.
type Heuristic func(a, b *gridgraph.Cell) float64

// Option configures a search via functional arguments.
type Option func(*Options)

// Options holds parameters and hooks shared by every algorithm.
type Options struct {
	// Ctx allows cancellation; polled once per frontier pop.
	Ctx context.Context

	// OnStep is the animation hook; see the package documentation for when
	// it fires. It must return before the search continues.
	OnStep func()

	// Heuristic is used by A* and IDA*. Defaults to Manhattan.
	Heuristic Heuristic

	// trace collects run statistics for Run; nil otherwise.
	trace *trace

	// internal error recorded during option parsing
	err error
}

// trace counts hook invocations and reconstructed path edges.
type trace struct {
	steps     int
	pathEdges int
}

// DefaultOptions returns Options with:
//   - context.Background()
//   - a no-op OnStep
//   - the Manhattan heuristic
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		OnStep:    func() {},
		Heuristic: Manhattan,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnStep registers the animation hook.
func WithOnStep(fn func()) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnStep = fn
		}
	}
}

// WithHeuristic replaces the heuristic used by A* and IDA*.
// A nil heuristic is recorded as ErrOptionViolation.
func WithHeuristic(h Heuristic) Option {
	return func(o *Options) {
		if h == nil {
			o.err = fmt.Errorf("%w: heuristic is nil", ErrOptionViolation)
			return
		}
		o.Heuristic = h
	}
}

// buildOptions applies opts over DefaultOptions and surfaces any recorded error.
func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return o, o.err
	}
	return o, nil
}
