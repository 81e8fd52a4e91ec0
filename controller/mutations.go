package controller

import (
	"fmt"
	"time"

	"github.com/katalvlaran/lvcolor/builder"
	"github.com/katalvlaran/lvcolor/coloring"
	"github.com/katalvlaran/lvcolor/core"
)

// Graph edits made through the session. A successful structural edit
// discards the current run; a failed one leaves it untouched.

// AddVertex adds a vertex at (x, y).
func (s *Session) AddVertex(x, y float64) (core.VertexID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, err := s.graph.AddVertex(x, y)
	if err != nil {
		return 0, err
	}
	s.discardLocked(ReasonGraphChanged)

	return id, nil
}

// RemoveVertex removes a vertex and its incident edges.
func (s *Session) RemoveVertex(id core.VertexID) error {
	return s.mutate(func(g *core.Graph) error { return g.RemoveVertex(id) })
}

// AddEdge connects a and b with the default weight.
func (s *Session) AddEdge(a, b core.VertexID) error {
	return s.mutate(func(g *core.Graph) error { return g.AddEdge(a, b, core.DefaultEdgeWeight) })
}

// RemoveEdge disconnects a and b.
func (s *Session) RemoveEdge(a, b core.VertexID) error {
	return s.mutate(func(g *core.Graph) error { return g.RemoveEdge(a, b) })
}

// Reset empties the graph.
func (s *Session) Reset() {
	_ = s.mutate(func(g *core.Graph) error {
		g.Reset()
		return nil
	})
}

// MoveVertex repositions a vertex. Positions are not structural, so the run
// continues.
func (s *Session) MoveVertex(id core.VertexID, x, y float64) error {
	return s.graph.MoveVertex(id, x, y)
}

// GenerateRandom replaces the graph with a random connected graph of n
// vertices (see builder.RandomConnected) placed uniformly in the unit square.
// The graph and the run are left untouched if the build fails.
//
// Errors:
//   - ErrRandomSize unless minRandom ≤ n ≤ the graph's vertex cap.
func (s *Session) GenerateRandom(n int) error {
	lo, hi := s.cfg.minRandom, s.graph.MaxVertices()
	if n < lo || n > hi {
		return fmt.Errorf("GenerateRandom(%d): want [%d,%d]: %w", n, lo, hi, ErrRandomSize)
	}

	err := s.replaceGraph(func(seed int64, scratch *core.Graph) error {
		return builder.BuildInto(scratch,
			[]builder.BuilderOption{builder.WithSeed(seed), builder.WithLayout(builder.RandomLayout)},
			builder.RandomConnected(n),
		)
	})
	if err != nil {
		return fmt.Errorf("GenerateRandom(%d): %w", n, err)
	}

	return nil
}

// replaceGraph runs build on an empty graph with the session's vertex cap and,
// only if it succeeds, discards the run and copies the result into s.graph.
func (s *Session) replaceGraph(build func(seed int64, scratch *core.Graph) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.builds++
	seed := time.Now().UnixNano()
	if s.cfg.seeded {
		seed = coloring.DeriveSeed(s.cfg.seed, randomGraphStream|s.builds)
	}

	scratch := core.NewGraph(core.WithMaxVertices(s.graph.MaxVertices()))
	if err := build(seed, scratch); err != nil {
		return err
	}

	s.discardLocked(ReasonGraphChanged)
	s.graph.Reset()
	for _, v := range scratch.Vertices() {
		if err := s.graph.InsertVertex(v.ID, v.X, v.Y); err != nil {
			return err
		}
	}
	for _, e := range scratch.Edges() {
		if err := s.graph.AddEdge(e.Source, e.Target, e.Weight); err != nil {
			return err
		}
	}

	return nil
}

// mutate applies a structural edit and discards the run on success.
func (s *Session) mutate(edit func(g *core.Graph) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := edit(s.graph); err != nil {
		return err
	}
	s.discardLocked(ReasonGraphChanged)

	return nil
}
