package graphio_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvcolor/builder"
	"github.com/katalvlaran/lvcolor/coloring"
	"github.com/katalvlaran/lvcolor/core"
	"github.com/katalvlaran/lvcolor/graphio"
)

func TestReadGraph_YAML(t *testing.T) {
	g, err := graphio.ReadGraph(strings.NewReader(`
vertices:
  - {id: 1, x: 0.25, y: 0.75}
  - {id: 2}
  - {id: 5}
edges:
  - [1, 2]
  - [2, 5]
`))
	require.NoError(t, err)
	assert.Equal(t, 3, g.VertexCount())
	assert.Equal(t, 2, g.EdgeCount())
	assert.True(t, g.HasEdge(5, 2))

	v, err := g.Vertex(1)
	require.NoError(t, err)
	assert.Equal(t, 0.25, v.X)
	assert.Equal(t, 0.75, v.Y)

	// Omitted positions come from the circle layout.
	v, err = g.Vertex(2)
	require.NoError(t, err)
	x, y := builder.CircleLayout(1, 3, nil)
	assert.InDelta(t, x, v.X, 1e-12)
	assert.InDelta(t, y, v.Y, 1e-12)
}

func TestReadGraph_JSON(t *testing.T) {
	g, err := graphio.ReadGraph(strings.NewReader(
		`{"vertices": [{"id": 1}, {"id": 2}, {"id": 3}], "edges": [[1, 2], [2, 3], [3, 1]]}`))
	require.NoError(t, err)
	assert.Equal(t, 3, g.EdgeCount())
}

func TestReadGraph_Errors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want error
	}{
		{"empty", "", graphio.ErrFormat},
		{"no vertices", "edges: []\n", graphio.ErrFormat},
		{"unknown key", "vertices: [{id: 1}]\ncolour: red\n", graphio.ErrFormat},
		{"half position", "vertices: [{id: 1, x: 0.5}]\n", graphio.ErrFormat},
		{"duplicate id", "vertices: [{id: 1}, {id: 1}]\n", core.ErrDuplicateVertex},
		{"bad id", "vertices: [{id: 0}]\n", core.ErrBadVertexID},
		{"loop", "vertices: [{id: 1}]\nedges: [[1, 1]]\n", core.ErrLoopNotAllowed},
		{"dangling edge", "vertices: [{id: 1}]\nedges: [[1, 9]]\n", core.ErrVertexNotFound},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := graphio.ReadGraph(strings.NewReader(tc.doc))
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestReadGraph_VertexCap(t *testing.T) {
	_, err := graphio.ReadGraph(strings.NewReader("vertices: [{id: 1}, {id: 2}, {id: 3}]\n"),
		core.WithMaxVertices(2))
	require.ErrorIs(t, err, core.ErrTooManyVertices)
}

// TestWriteGraph_ReadBack preserves topology and positions.
func TestWriteGraph_ReadBack(t *testing.T) {
	g, err := builder.BuildGraph(nil, nil, builder.Wheel(6))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, graphio.WriteGraph(&buf, g))

	back, err := graphio.ReadGraph(&buf)
	require.NoError(t, err)
	assert.Equal(t, g.Edges(), back.Edges())
	assert.Equal(t, g.Vertices(), back.Vertices())
}

func TestLoadGraph(t *testing.T) {
	path := filepath.Join(t.TempDir(), "g.yaml")
	require.NoError(t, os.WriteFile(path, []byte("vertices: [{id: 1}, {id: 2}]\nedges: [[1, 2]]\n"), 0o600))

	g, err := graphio.LoadGraph(path)
	require.NoError(t, err)
	assert.Equal(t, 1, g.EdgeCount())

	_, err = graphio.LoadGraph(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestReadColoring(t *testing.T) {
	c, err := graphio.ReadColoring(strings.NewReader("colors:\n  1: red\n  3: blue\n"), nil)
	require.NoError(t, err)
	assert.Equal(t, coloring.Coloring{1: coloring.Red, 3: coloring.Blue}, c)

	_, err = graphio.ReadColoring(strings.NewReader("colors:\n  1: purple\n"), nil)
	require.ErrorIs(t, err, graphio.ErrFormat)

	c, err = graphio.ReadColoring(strings.NewReader("colors:\n  1: purple\n"),
		coloring.Palette{"purple", "teal"})
	require.NoError(t, err)
	assert.Equal(t, coloring.Color("purple"), c[1])

	c, err = graphio.ReadColoring(strings.NewReader(""), nil)
	require.NoError(t, err)
	assert.Empty(t, c)
}

func TestWriteColoring_SortedAndReadable(t *testing.T) {
	c := coloring.Coloring{3: coloring.Green, 1: coloring.Red, 2: coloring.Blue}

	var buf bytes.Buffer
	require.NoError(t, graphio.WriteColoring(&buf, c))
	assert.Equal(t, "colors:\n  1: red\n  2: blue\n  3: green\n", buf.String())

	back, err := graphio.ReadColoring(&buf, nil)
	require.NoError(t, err)
	assert.Equal(t, c, back)
}
