// Package bfs provides breadth-first search over a core.Snapshot,
// returning unweighted shortest-path distances, parent links, and visit order.
package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/lvcolor/core"
)

// queueItem pairs a vertex ID with its BFS depth.
type queueItem struct {
	id    core.VertexID
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	snap    *core.Snapshot
	ctx     context.Context
	queue   []queueItem
	visited map[core.VertexID]bool
	res     *BFSResult
}

// BFS runs breadth-first search on s starting from startID.
// Returns ErrGraphNil or ErrStartVertexNotFound for invalid input and the
// context error on cancellation; the partial result is returned alongside it.
//
// Complexity: O(V+E).
func BFS(s *core.Snapshot, startID core.VertexID, opts ...Option) (*BFSResult, error) {
	if s == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if !s.Has(startID) {
		return nil, fmt.Errorf("BFS(%d): %w", startID, ErrStartVertexNotFound)
	}

	n := s.Order()
	w := &walker{
		snap:    s,
		ctx:     o.Ctx,
		queue:   make([]queueItem, 0, n),
		visited: make(map[core.VertexID]bool, n),
		res: &BFSResult{
			Order:  make([]core.VertexID, 0, n),
			Depth:  make(map[core.VertexID]int, n),
			Parent: make(map[core.VertexID]core.VertexID, n),
		},
	}

	w.enqueue(startID, 0, nil)

	return w.res, w.loop()
}

// enqueue marks id visited at depth d, records its parent, and adds it to the queue.
func (w *walker) enqueue(id core.VertexID, d int, parent *core.VertexID) {
	w.visited[id] = true
	w.res.Depth[id] = d
	if parent != nil {
		w.res.Parent[id] = *parent
	}
	w.queue = append(w.queue, queueItem{id: id, depth: d})
}

// loop processes the queue until empty or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]
		w.res.Order = append(w.res.Order, item.id)
		w.enqueueNeighbors(item)
	}

	return nil
}

// enqueueNeighbors enqueues each unseen neighbor in ascending ID order.
func (w *walker) enqueueNeighbors(item queueItem) {
	for _, nbr := range w.snap.Neighbors(item.id) {
		if w.visited[nbr] {
			continue
		}
		parent := item.id
		w.enqueue(nbr, item.depth+1, &parent)
	}
}
