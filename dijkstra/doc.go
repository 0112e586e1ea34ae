// Package dijkstra is the single-source shortest-path engine over a
// core.Graph of locations with non-negative travel times.
//
// Overview:
//
//   - Dijkstra computes the minimum travel time from one source location to
//     every other location in O((V + E) log V) time.
//   - The frontier is a min-heap keyed by best known distance. A location is
//     final once popped; stale heap entries are discarded on pop
//     (lazy decrease-key).
//   - Unreachable locations report Inf.
//
// Options:
//
//   - Source(i):              starting location (required).
//   - WithReturnPath():       also return the predecessor vector for route rebuilding.
//   - WithMaxDistance(x):     stop exploring beyond distance x.
//   - WithInfEdgeThreshold(t): edges with weight ≥ t are treated as closed roads.
//
// Errors (sentinel):
//
//   - ErrEmptySource      if Source was never set.
//   - ErrNilGraph         if the graph pointer is nil.
//   - ErrSourceOutOfRange if the source index is not a location of the graph.
//   - ErrBadMaxDistance / ErrBadInfThreshold (via panic) from the option constructors.
//
// Negative weights never reach this package: core.Graph rejects them on insert.
//
// Example:
//
//	dist, prev, err := dijkstra.Dijkstra(g, dijkstra.Source(0), dijkstra.WithReturnPath())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	route := dijkstra.Route(prev, 0, 3)
package dijkstra
