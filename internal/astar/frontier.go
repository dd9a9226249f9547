package astar

import (
	"container/heap"

	"github.com/vovakirdan/tui-astar/internal/grid"
)

// frontierItem is one queued cell.
type frontierItem struct {
	cell  grid.Coord
	f     int
	seq   uint64 // insertion order, breaks f ties FIFO
	index int    // position in the heap
}

// frontierHeap implements heap.Interface ordered by (f, seq).
type frontierHeap []*frontierItem

func (h frontierHeap) Len() int { return len(h) }
func (h frontierHeap) Less(i, j int) bool {
	if h[i].f != h[j].f {
		return h[i].f < h[j].f
	}
	return h[i].seq < h[j].seq
}
func (h frontierHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}

func (h *frontierHeap) Push(x any) {
	item := x.(*frontierItem)
	item.index = len(*h)
	*h = append(*h, item)
}

func (h *frontierHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	item.index = -1
	*h = old[:n-1]
	return item
}

// Frontier is the open set: a min-priority queue of cells keyed by
// (f-score, insertion order) with O(1) membership tests.
type Frontier struct {
	items   frontierHeap
	queued  map[grid.Coord]*frontierItem
	counter uint64
}

// NewFrontier creates an empty frontier.
func NewFrontier() *Frontier {
	return &Frontier{
		queued: make(map[grid.Coord]*frontierItem),
	}
}

// Push queues a cell with priority f. Each push takes the next insertion
// number, so among equal f the earliest push pops first.
func (q *Frontier) Push(c grid.Coord, f int) {
	q.counter++
	item := &frontierItem{cell: c, f: f, seq: q.counter}
	heap.Push(&q.items, item)
	q.queued[c] = item
}

// PopMin removes and returns the cell with the smallest (f, insertion order).
func (q *Frontier) PopMin() (grid.Coord, error) {
	if len(q.items) == 0 {
		return grid.Coord{}, ErrEmptyFrontier
	}
	item := heap.Pop(&q.items).(*frontierItem)
	if q.queued[item.cell] == item {
		delete(q.queued, item.cell)
	}
	return item.cell, nil
}

// Update lowers the priority of an already queued cell in place. The entry
// keeps its original insertion number. It reports false if the cell is not
// queued or f is not an improvement.
func (q *Frontier) Update(c grid.Coord, f int) bool {
	item, ok := q.queued[c]
	if !ok || f >= item.f {
		return false
	}
	item.f = f
	heap.Fix(&q.items, item.index)
	return true
}

// Priority returns the f-score a queued cell currently carries in the queue.
func (q *Frontier) Priority(c grid.Coord) (int, bool) {
	item, ok := q.queued[c]
	if !ok {
		return 0, false
	}
	return item.f, true
}

// Contains reports whether the cell is currently queued.
func (q *Frontier) Contains(c grid.Coord) bool {
	_, ok := q.queued[c]
	return ok
}

// Len returns the number of queued entries.
func (q *Frontier) Len() int {
	return len(q.items)
}

// IsEmpty reports whether nothing is queued.
func (q *Frontier) IsEmpty() bool {
	return len(q.items) == 0
}

// Cells returns the queued cells in no particular order.
func (q *Frontier) Cells() []grid.Coord {
	out := make([]grid.Coord, 0, len(q.items))
	for _, item := range q.items {
		out = append(out, item.cell)
	}
	return out
}
