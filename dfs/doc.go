// Package dfs implements depth-first traversal on a core.Graph and the
// line-discovery query built on it.
//
// What:
//
//   - DFS: explores as far as possible along each outgoing edge before
//     backtracking, recording discovery order, depth and parents. Supports:
//   - Pre-order hook (WithOnVisit)
//   - Cancellation via context.Context (WithContext)
//   - Depth limiting (WithMaxDepth)
//   - Edge filtering (WithEdgeFilter)
//   - Line: DFS restricted to same-line connections, i.e. edges whose
//     weight is not core.LineBreak. The result is the set of stations of
//     one metro line, start first.
//
// Why:
//
//   - A transit file marks line changes with the weight -1. Following only
//     the other edges from a station enumerates exactly its line, which is
//     what a line closure removes.
//
// Recursion depth equals the longest same-line chain. Goroutine stacks grow
// on demand, so realistic networks never hit a depth limit; an explicit
// stack would visit the same set.
//
// Complexity:
//
//   - DFS, Line: Time O(V + E log d), Memory O(V)
//
// Errors:
//
//   - ErrGraphNil             graph pointer is nil
//   - ErrStartVertexNotFound  start handle not live in the graph (wraps core.ErrInvalidHandle)
//   - context.Canceled        DFS canceled via context
//   - hook errors             propagated from OnVisit
package dfs
