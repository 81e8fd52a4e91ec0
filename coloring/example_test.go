package coloring_test

import (
	"fmt"

	"github.com/katalvlaran/lvcolor/coloring"
	"github.com/katalvlaran/lvcolor/core"
)

// ExampleEvaluate scores a coloring of a triangle with one clash.
func ExampleEvaluate() {
	s := core.NewSnapshot(
		[]core.VertexID{1, 2, 3},
		[]core.Edge{{Source: 1, Target: 2}, {Source: 2, Target: 3}, {Source: 3, Target: 1}},
	)
	ev := coloring.Evaluate(s, coloring.Coloring{1: coloring.Red, 2: coloring.Blue, 3: coloring.Red})
	fmt.Println("conflicts:", ev.Conflicts)
	fmt.Println("edges:", ev.ConflictEdges)
	// Output:
	// conflicts: 1
	// edges: [{3 1}]
}

// ExampleLasVegas colors a 5-cycle; a vertex of degree two always has a free
// color, so the first attempt succeeds whatever the seed.
func ExampleLasVegas() {
	ids := []core.VertexID{1, 2, 3, 4, 5}
	var edges []core.Edge
	for i, id := range ids {
		edges = append(edges, core.Edge{Source: id, Target: ids[(i+1)%len(ids)]})
	}

	lv, err := coloring.NewLasVegas(core.NewSnapshot(ids, edges), coloring.WithSeed(42))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	res := lv.Run()
	fmt.Println("valid:", res.Valid)
	fmt.Println("attempts:", res.Summary.Attempts)
	fmt.Println("colored:", len(res.Coloring))
	// Output:
	// valid: true
	// attempts: 1
	// colored: 5
}

// ExampleMonteCarlo shows that a zero budget is a valid, immediately
// finished run.
func ExampleMonteCarlo() {
	mc, _ := coloring.NewMonteCarlo(core.NewSnapshot([]core.VertexID{1}, nil), coloring.WithIterations(0))
	step := mc.Step()
	fmt.Println(step.Done, step.Valid, step.Stats.Progress)
	// Output:
	// true false 1
}
