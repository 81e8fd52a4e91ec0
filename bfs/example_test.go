package bfs_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/lvcolor/bfs"
	"github.com/katalvlaran/lvcolor/core"
)

// ExampleBFS finds the shortest hop path across a small grid.
func ExampleBFS() {
	// 1 - 2 - 3
	// |   |   |
	// 4 - 5 - 6
	s := graph(6,
		[2]core.VertexID{1, 2}, [2]core.VertexID{2, 3},
		[2]core.VertexID{4, 5}, [2]core.VertexID{5, 6},
		[2]core.VertexID{1, 4}, [2]core.VertexID{2, 5}, [2]core.VertexID{3, 6},
	)
	res, err := bfs.BFS(s, 1)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	path, _ := res.PathTo(6)
	fmt.Println("order:", res.Order)
	fmt.Println("path to 6:", path)
	// Output:
	// order: [1 2 4 3 5 6]
	// path to 6: [1 2 3 6]
}

// ExampleTwoColoring shows that an even cycle is bipartite and an odd one is not.
func ExampleTwoColoring() {
	square := graph(4, [2]core.VertexID{1, 2}, [2]core.VertexID{2, 3}, [2]core.VertexID{3, 4}, [2]core.VertexID{4, 1})
	triangle := graph(3, [2]core.VertexID{1, 2}, [2]core.VertexID{2, 3}, [2]core.VertexID{3, 1})

	_, ok := bfs.TwoColoring(square)
	fmt.Println("square bipartite:", ok)
	_, ok = bfs.TwoColoring(triangle)
	fmt.Println("triangle bipartite:", ok)
	fmt.Println("components:", len(bfs.Components(triangle)))
	// Output:
	// square bipartite: true
	// triangle bipartite: false
	// components: 1
}

// ExampleDiameter reports the widest hop distance of a 2x3 grid.
func ExampleDiameter() {
	s := graph(6,
		[2]core.VertexID{1, 2}, [2]core.VertexID{2, 3},
		[2]core.VertexID{4, 5}, [2]core.VertexID{5, 6},
		[2]core.VertexID{1, 4}, [2]core.VertexID{2, 5}, [2]core.VertexID{3, 6},
	)
	d, path, err := bfs.Diameter(context.Background(), s)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("diameter:", d, "path:", path)
	// Output:
	// diameter: 3 path: [1 2 3 6]
}
