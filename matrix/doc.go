// SPDX-License-Identifier: MIT
//
// Package matrix holds the all-pairs travel-time table used by the planner.
//
// A Table is a dense N×N row-major int64 matrix where At(i, j) is the
// minimum travel time from location i to location j, Inf when j cannot be
// reached from i, and 0 on the diagonal.
//
// Two interchangeable engines fill it:
//
//   - Dijkstra (default): one dijkstra.Dijkstra run per source location,
//     O(N·(V+E) log V). Sources are independent, so WithParallelism fans them
//     out over an errgroup with a bounded number of goroutines.
//   - FloydWarshall: the classical O(N³) in-place dense closure with a fixed
//     k → i → j loop order.
//
// Both produce identical distances. WithRoutes additionally keeps one
// predecessor vector per source so Route(i, j) can list the concrete
// locations of a shortest route.
//
// A Table is immutable once AllPairs returns it.
package matrix
