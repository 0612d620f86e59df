package search

import (
	"container/heap"

	"github.com/katalvlaran/pathviz/gridgraph"
)

// pqItem is one frontier entry keyed by (priority, seq). seq is strictly
// increasing per search, so it alone breaks ties and cells are never compared.
type pqItem struct {
	priority float64
	seq      uint64
	cell     *gridgraph.Cell
}

// cellPQ is a min-heap of *pqItem ordered by priority, then seq.
type cellPQ []*pqItem

// Len returns the number of items in the heap.
func (pq cellPQ) Len() int { return len(pq) }

// Less orders by priority, falling back to insertion order.
func (pq cellPQ) Less(i, j int) bool {
	if pq[i].priority != pq[j].priority {
		return pq[i].priority < pq[j].priority
	}
	return pq[i].seq < pq[j].seq
}

// Swap swaps two elements in the heap.
func (pq cellPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds x, which must be a *pqItem. Called by heap.Push.
func (pq *cellPQ) Push(x interface{}) { *pq = append(*pq, x.(*pqItem)) }

// Pop removes and returns the last element. Called by heap.Pop.
func (pq *cellPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}

// frontier wraps cellPQ with the insertion counter.
type frontier struct {
	pq  cellPQ
	seq uint64
}

// push inserts c with the given priority and the next sequence number.
func (f *frontier) push(priority float64, c *gridgraph.Cell) {
	heap.Push(&f.pq, &pqItem{priority: priority, seq: f.seq, cell: c})
	f.seq++
}

// pop removes the entry with the lowest (priority, seq).
func (f *frontier) pop() *gridgraph.Cell {
	return heap.Pop(&f.pq).(*pqItem).cell
}

// size returns the number of queued entries.
func (f *frontier) size() int { return f.pq.Len() }
