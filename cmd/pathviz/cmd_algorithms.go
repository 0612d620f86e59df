package main

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/pathviz/search"
)

func newAlgorithmsCmd(g *globals) *cobra.Command {
	return &cobra.Command{
		Use:   "algorithms",
		Short: "List the available search algorithms",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			t := table.New().
				Border(lipgloss.NormalBorder()).
				Headers("KEY", "NAME", "LABEL")
			for i, alg := range search.Algorithms() {
				t.Row(strconv.Itoa(i+1), alg.String(), alg.Label())
			}
			_, err := fmt.Fprintln(g.outW, t.Render())
			return err
		},
	}
}
