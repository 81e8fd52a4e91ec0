package cmd

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvcolor/bfs"
	"github.com/katalvlaran/lvcolor/builder"
	"github.com/katalvlaran/lvcolor/coloring"
	"github.com/katalvlaran/lvcolor/graphio"
)

func newInspectCommand(input *Input) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		cfg, err := input.settings(cmd)
		if err != nil {
			return err
		}
		g, name, err := loadGraph(cfg)
		if err != nil {
			return err
		}

		snap := g.Snapshot()
		maxDegree := 0
		for _, id := range snap.VertexIDs() {
			if d := snap.Degree(id); d > maxDegree {
				maxDegree = d
			}
		}
		_, bipartite := bfs.TwoColoring(snap)
		comps, err := bfs.ComponentsContext(cmd.Context(), snap)
		if err != nil {
			return errors.Wrap(err, "counting components")
		}
		diameter, path, err := bfs.Diameter(cmd.Context(), snap)
		if err != nil {
			return errors.Wrap(err, "measuring diameter")
		}

		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "graph:      %s\n", name)
		fmt.Fprintf(w, "vertices:   %d/%d\n", snap.Order(), g.MaxVertices())
		fmt.Fprintf(w, "edges:      %d\n", snap.Size())
		fmt.Fprintf(w, "components: %d\n", len(comps))
		fmt.Fprintf(w, "max degree: %d\n", maxDegree)
		fmt.Fprintf(w, "bipartite:  %t\n", bipartite)
		fmt.Fprintf(w, "diameter:   %d %v\n", diameter, path)

		if input.exportPath == "" {
			return nil
		}
		f, err := os.Create(input.exportPath)
		if err != nil {
			return errors.Wrap(err, "creating export file")
		}
		if err = graphio.WriteGraph(f, g); err != nil {
			f.Close()
			return err
		}
		return errors.Wrap(f.Close(), "closing export file")
	}
}

func newEvaluateCommand(input *Input) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		cfg, err := input.settings(cmd)
		if err != nil {
			return err
		}
		g, _, err := loadGraph(cfg)
		if err != nil {
			return err
		}
		c, err := graphio.LoadColoring(input.coloringPath, nil)
		if err != nil {
			return err
		}

		snap := g.Snapshot()
		ev := coloring.Evaluate(snap, c)

		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "complete:  %t\n", c.Complete(snap))
		fmt.Fprintf(w, "conflicts: %d\n", ev.Conflicts)
		for _, e := range ev.ConflictEdges {
			fmt.Fprintf(w, "conflict:  %d-%d\n", e.A, e.B)
		}
		return nil
	}
}

func listTopologies(cmd *cobra.Command, _ []string) error {
	for _, name := range builder.Topologies() {
		fmt.Fprintln(cmd.OutOrStdout(), name)
	}
	return nil
}
