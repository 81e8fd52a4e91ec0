package core_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvcolor/core"
)

// mustAdd adds n vertices at the origin and returns their IDs.
func mustAdd(t *testing.T, g *core.Graph, n int) []core.VertexID {
	t.Helper()
	ids := make([]core.VertexID, 0, n)
	for i := 0; i < n; i++ {
		id, err := g.AddVertex(0, 0)
		require.NoError(t, err)
		ids = append(ids, id)
	}

	return ids
}

// TestAddVertex_SequentialIDs checks ID assignment, including after removal
// and after explicit inserts.
func TestAddVertex_SequentialIDs(t *testing.T) {
	g := core.NewGraph()
	ids := mustAdd(t, g, 3)
	require.Equal(t, []core.VertexID{1, 2, 3}, ids)

	// Removing a middle vertex does not shift the successor of the last one.
	require.NoError(t, g.RemoveVertex(2))
	id, err := g.AddVertex(0.5, 0.5)
	require.NoError(t, err)
	require.Equal(t, core.VertexID(4), id)

	// An explicit insert that occupies the successor is skipped over.
	require.NoError(t, g.InsertVertex(10, 0, 0))
	require.NoError(t, g.InsertVertex(11, 0, 0))
	require.NoError(t, g.RemoveVertex(11))
	require.NoError(t, g.InsertVertex(20, 0, 0))
	require.NoError(t, g.InsertVertex(9, 0, 0))
	id, err = g.AddVertex(0, 0)
	require.NoError(t, err)
	require.False(t, id == 10 || id == 20 || id == 9, "AddVertex reused an occupied ID %d", id)
}

// TestInsertVertex_Errors covers explicit-ID validation.
func TestInsertVertex_Errors(t *testing.T) {
	g := core.NewGraph(core.WithMaxVertices(2))
	require.ErrorIs(t, g.InsertVertex(0, 0, 0), core.ErrBadVertexID)
	require.ErrorIs(t, g.InsertVertex(-3, 0, 0), core.ErrBadVertexID)
	require.NoError(t, g.InsertVertex(7, 0, 0))
	require.ErrorIs(t, g.InsertVertex(7, 0, 0), core.ErrDuplicateVertex)
	require.NoError(t, g.InsertVertex(8, 0, 0))
	require.ErrorIs(t, g.InsertVertex(9, 0, 0), core.ErrTooManyVertices)
}

// TestAddVertex_Cap enforces the default 150-vertex cap.
func TestAddVertex_Cap(t *testing.T) {
	g := core.NewGraph()
	mustAdd(t, g, core.DefaultMaxVertices)
	_, err := g.AddVertex(0, 0)
	if !errors.Is(err, core.ErrTooManyVertices) {
		t.Fatalf("want ErrTooManyVertices, got %v", err)
	}
	require.Equal(t, core.DefaultMaxVertices, g.VertexCount())
}

// TestAddEdge_Rules verifies loop, duplicate and missing-endpoint rejection.
func TestAddEdge_Rules(t *testing.T) {
	g := core.NewGraph()
	mustAdd(t, g, 3)

	tests := []struct {
		name string
		a, b core.VertexID
		want error
	}{
		{"ok 1-2", 1, 2, nil},
		{"self-loop", 1, 1, core.ErrLoopNotAllowed},
		{"duplicate same direction", 1, 2, core.ErrMultiEdgeNotAllowed},
		{"duplicate reverse direction", 2, 1, core.ErrMultiEdgeNotAllowed},
		{"missing endpoint", 1, 99, core.ErrVertexNotFound},
		{"ok 3-2", 3, 2, nil},
	}
	for _, tc := range tests {
		err := g.AddEdge(tc.a, tc.b, core.DefaultEdgeWeight)
		if tc.want == nil {
			require.NoError(t, err, tc.name)
			continue
		}
		require.ErrorIs(t, err, tc.want, tc.name)
	}
	require.Equal(t, 2, g.EdgeCount())
	require.True(t, g.HasEdge(2, 1))
	require.True(t, g.HasEdge(2, 3))
	require.False(t, g.HasEdge(1, 3))
}

// TestRemoveEdge_EitherDirection removes an edge using reversed endpoints.
func TestRemoveEdge_EitherDirection(t *testing.T) {
	g := core.NewGraph()
	mustAdd(t, g, 3)
	require.NoError(t, g.AddEdge(1, 2, 1))
	require.NoError(t, g.AddEdge(2, 3, 1))

	require.NoError(t, g.RemoveEdge(2, 1))
	require.False(t, g.HasEdge(1, 2))
	require.ErrorIs(t, g.RemoveEdge(1, 2), core.ErrEdgeNotFound)
	require.Equal(t, []core.Edge{{Source: 2, Target: 3, Weight: 1}}, g.Edges())
}

// TestRemoveVertex_DropsIncidentEdges keeps non-incident edges in order.
func TestRemoveVertex_DropsIncidentEdges(t *testing.T) {
	g := core.NewGraph()
	mustAdd(t, g, 4)
	require.NoError(t, g.AddEdge(1, 2, 1))
	require.NoError(t, g.AddEdge(2, 3, 1))
	require.NoError(t, g.AddEdge(3, 4, 1))
	require.NoError(t, g.AddEdge(4, 1, 1))

	require.NoError(t, g.RemoveVertex(2))
	require.ErrorIs(t, g.RemoveVertex(2), core.ErrVertexNotFound)

	require.Equal(t, []core.Edge{
		{Source: 3, Target: 4, Weight: 1},
		{Source: 4, Target: 1, Weight: 1},
	}, g.Edges())
	nbrs, err := g.NeighborIDs(3)
	require.NoError(t, err)
	require.Equal(t, []core.VertexID{4}, nbrs)
	_, err = g.NeighborIDs(2)
	require.ErrorIs(t, err, core.ErrVertexNotFound)
}

// TestRevision_StructuralOnly checks which operations advance the revision.
func TestRevision_StructuralOnly(t *testing.T) {
	g := core.NewGraph()
	r0 := g.Revision()

	mustAdd(t, g, 2)
	r1 := g.Revision()
	require.Greater(t, r1, r0)

	require.NoError(t, g.MoveVertex(1, 0.3, 0.7))
	g.ApplyColoring(map[core.VertexID]string{1: "red"})
	require.Equal(t, r1, g.Revision(), "moves and colors are not structural")

	require.NoError(t, g.AddEdge(1, 2, 1))
	r2 := g.Revision()
	require.Greater(t, r2, r1)

	g.Reset()
	require.Greater(t, g.Revision(), r2)
	require.Zero(t, g.VertexCount())
	require.Zero(t, g.EdgeCount())
}

// TestApplyColoring_ClearsMissing verifies the paint semantics.
func TestApplyColoring_ClearsMissing(t *testing.T) {
	g := core.NewGraph()
	mustAdd(t, g, 3)

	n := g.ApplyColoring(map[core.VertexID]string{1: "blue", 2: "red", 42: "green"})
	require.Equal(t, 2, n)
	require.Equal(t, map[core.VertexID]string{1: "blue", 2: "red"}, g.Colors())

	g.ApplyColoring(map[core.VertexID]string{3: "green"})
	require.Equal(t, map[core.VertexID]string{3: "green"}, g.Colors())

	v, err := g.Vertex(1)
	require.NoError(t, err)
	require.Empty(t, v.Color)

	g.ClearColors()
	require.Empty(t, g.Colors())
	require.Zero(t, g.Stats().Colored)
}

// TestMoveVertex updates positions and rejects unknown IDs.
func TestMoveVertex(t *testing.T) {
	g := core.NewGraph()
	mustAdd(t, g, 1)
	require.NoError(t, g.MoveVertex(1, 0.25, 0.75))
	v, err := g.Vertex(1)
	require.NoError(t, err)
	require.Equal(t, 0.25, v.X)
	require.Equal(t, 0.75, v.Y)
	require.ErrorIs(t, g.MoveVertex(5, 0, 0), core.ErrVertexNotFound)
	_, err = g.Vertex(5)
	require.ErrorIs(t, err, core.ErrVertexNotFound)
}
