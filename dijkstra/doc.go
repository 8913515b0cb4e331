// Package dijkstra implements Dijkstra's shortest-path algorithm on a
// core.Graph whose edges carry travel times.
//
// Dijkstra computes the minimum-time path from a single source to every
// reachable vertex. Line changes (edges weighted core.LineBreak) are
// charged a fixed transfer penalty, DefaultTransferPenalty unless
// overridden with WithTransferPenalty.
//
// Implementation:
//
//   - All vertices are seeded into an indexed min-heap, the source at 0 and
//     the rest at +∞. Each entry tracks its heap position, so an improved
//     distance is applied with heap.Fix (true decrease-key) instead of
//     pushing duplicates.
//   - Popping an entry still at +∞ ends the search; nothing left in the
//     heap is reachable. Infinity never takes part in arithmetic.
//   - All edges are scanned once up front; a negative weight other than
//     core.LineBreak fails fast with ErrNegativeWeight.
//   - WithStopAt (used by ShortestPath) ends the search as soon as the
//     target is finalized.
//
// Ties between equal-distance vertices are broken by heap order and are
// not part of the contract.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V)
//
// Errors:
//
//   - ErrGraphNil        graph pointer is nil
//   - ErrBadPenalty      transfer penalty < 0
//   - ErrNegativeWeight  negative weight other than core.LineBreak
//   - ErrNoPath          target unreachable from source
//   - ErrNotSettled      PathTo on a vertex an early-stopped tree never finalized
//   - core.ErrInvalidHandle (wrapped) for a foreign or removed source/target
//
// Example usage:
//
//	p, err := dijkstra.ShortestPath(g, from, to)
//	if errors.Is(err, dijkstra.ErrNoPath) {
//	    // unreachable
//	}
//	fmt.Println(p.Time, len(p.Vertices))
package dijkstra
