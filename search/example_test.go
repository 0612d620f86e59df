// Package search_test shows how a caller drives the grid searches.
package search_test

import (
	"context"
	"fmt"
	"strings"

	"github.com/katalvlaran/pathviz/builder"
	"github.com/katalvlaran/pathviz/gridgraph"
	"github.com/katalvlaran/pathviz/search"
)

// ExampleBFS finds the shortest way around a wall and prints the path.
func ExampleBFS() {
	sc, _ := builder.FromStrings([]string{
		"S.#..",
		"..#..",
		"....E",
	})

	found, err := search.BFS(sc.Grid, sc.Start, sc.End)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("found:", found)

	glyph := map[gridgraph.State]byte{
		gridgraph.Unvisited: '.', gridgraph.Open: 'o', gridgraph.Closed: 'x',
		gridgraph.Barrier: '#', gridgraph.Start: 'S', gridgraph.End: 'E', gridgraph.Path: '*',
	}
	for _, row := range sc.Grid.Cells() {
		line := make([]byte, 0, len(row))
		for _, c := range row {
			if c.IsPath() || c.IsStart() || c.IsEnd() || c.IsBarrier() {
				line = append(line, glyph[c.State()])
				continue
			}
			line = append(line, ' ')
		}
		fmt.Println(strings.TrimRight(string(line), " "))
	}

	// Output:
	// found: true
	// S #
	// * #
	// ****E
}

// ExampleRun counts hook invocations while A* runs.
func ExampleRun() {
	sc, _ := builder.Open(5, 5, [2]int{0, 0}, [2]int{4, 4})

	frames := 0
	res, err := search.Run(context.Background(), search.AlgAStar, sc.Grid, sc.Start, sc.End,
		search.DefaultParams(sc.Start, sc.End),
		search.WithOnStep(func() { frames++ }),
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Found, res.PathLength, frames == res.Steps)

	// Output:
	// true 8 true
}
