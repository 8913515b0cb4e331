// SPDX-License-Identifier: MIT

package dijkstra

import (
	"container/heap"
	"math"

	"github.com/katalvlaran/metroline/core"
)

// infinity marks a tentative distance that has not been reached yet.
const infinity = math.MaxInt64

// nodeItem is one vertex in the priority queue. index is maintained by
// Swap so the item can be fixed in place after its distance drops.
type nodeItem struct {
	v     core.VertexHandle
	dist  int64
	index int
}

// nodePQ is an indexed min-heap of *nodeItem ordered by dist.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool { return pq[i].dist < pq[j].dist }

func (pq nodePQ) Swap(i, j int) {
	pq[i], pq[j] = pq[j], pq[i]
	pq[i].index = i
	pq[j].index = j
}

// Push adds x, which must be a *nodeItem.
func (pq *nodePQ) Push(x any) {
	item := x.(*nodeItem)
	item.index = len(*pq)
	*pq = append(*pq, item)
}

// Pop removes the last element; heap.Pop has already moved the minimum there.
func (pq *nodePQ) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	item.index = -1
	*pq = old[:n-1]

	return item
}

// decrease lowers item's key to dist and restores heap order.
func (pq *nodePQ) decrease(item *nodeItem, dist int64) {
	item.dist = dist
	heap.Fix(pq, item.index)
}
