package game

import (
	"github.com/gammazero/deque"
	"github.com/they4kman/gosweep/util/collections"
)

type NeighborGetter func(*Cell) []*Cell

// Visitor is called once per dequeued cell, and reports whether the cell was
// newly revealed
type Visitor func(*Cell) bool

// flood performs a breadth-first traversal from cell. Neighbors of a visited
// cell are only enqueued when the visit revealed it and it has no adjacent
// mines. The visited set is the sole guard against enqueueing a cell twice.
func flood(cell *Cell, visit Visitor, getNeighbors NeighborGetter) {
	visited := collections.NewSet(cell)
	queue := deque.New[*Cell]()
	queue.PushBack(cell)

	for queue.Len() > 0 {
		current := queue.PopFront()

		if !visit(current) || current.adjacentMines != 0 {
			continue
		}

		for _, neighbor := range getNeighbors(current) {
			if visited.Contains(neighbor) {
				continue
			}
			visited.Add(neighbor)
			queue.PushBack(neighbor)
		}
	}
}
