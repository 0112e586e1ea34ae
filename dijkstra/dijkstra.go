package dijkstra

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/dayplan/core"
)

// Dijkstra computes shortest travel times from Options.Source to every
// location of g.
//
// Returns:
//
//   - dist: dist[v] is the minimum total weight of a directed path source→v,
//     Inf if v is unreachable (or beyond MaxDistance).
//   - prev: predecessor vector if ReturnPath=true (nil otherwise);
//     prev[v] == u means the best path to v ends with the edge u→v,
//     -1 for the source and for unreachable locations.
//   - err:  non-nil only for invalid inputs.
//
// Preconditions and validation (in order):
//  1. Source must be set (ErrEmptySource).
//  2. g must be non-nil (ErrNilGraph).
//  3. Source must be a location of g (ErrSourceOutOfRange).
func Dijkstra(g *core.Graph, opts ...Option) ([]int64, []int, error) {
	cfg := DefaultOptions(noSource)
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.Source == noSource {
		return nil, nil, ErrEmptySource
	}
	if g == nil {
		return nil, nil, ErrNilGraph
	}
	if !g.HasLocation(cfg.Source) {
		return nil, nil, fmt.Errorf("%w: source=%d n=%d", ErrSourceOutOfRange, cfg.Source, g.Order())
	}

	n := g.Order()
	r := &runner{
		g:       g,
		options: cfg,
		dist:    make([]int64, n),
		prev:    make([]int, n),
		visited: make([]bool, n),
		pq:      make(nodePQ, 0, n),
	}

	r.init()
	if err := r.process(); err != nil {
		return nil, nil, err
	}

	if !cfg.ReturnPath {
		return r.dist, nil, nil
	}

	return r.dist, r.prev, nil
}

// Route rebuilds the location sequence from→…→to out of a predecessor
// vector produced with WithReturnPath and Source(from). It returns nil when
// to is unreachable.
func Route(prev []int, from, to int) []int {
	if from < 0 || from >= len(prev) || to < 0 || to >= len(prev) {
		return nil
	}
	if from == to {
		return []int{from}
	}
	if prev[to] < 0 {
		return nil
	}

	var rev []int
	// a simple path never has more than len(prev) locations
	for v, steps := to, 0; v != -1 && steps <= len(prev); v, steps = prev[v], steps+1 {
		rev = append(rev, v)
		if v == from {
			break
		}
	}
	if rev[len(rev)-1] != from {
		return nil
	}

	route := make([]int, len(rev))
	for i := range rev {
		route[i] = rev[len(rev)-1-i]
	}

	return route
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *core.Graph // read-only within Dijkstra
	options Options
	dist    []int64 // best known distance from Source
	prev    []int   // predecessor on the best known path
	visited []bool  // distance finalized
	pq      nodePQ
}

// init sets every distance to Inf, clears predecessors and pushes Source=0.
func (r *runner) init() {
	for v := range r.dist {
		r.dist[v] = Inf
		r.prev[v] = -1
	}
	r.dist[r.options.Source] = 0

	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{id: r.options.Source, dist: 0})
}

// process repeatedly extracts the closest unfinished location and relaxes
// its outgoing edges, until the heap is empty or the closest entry lies
// beyond MaxDistance.
func (r *runner) process() error {
	var item *nodeItem
	for r.pq.Len() > 0 {
		item = heap.Pop(&r.pq).(*nodeItem)

		// Stale entry: a shorter distance was already finalized.
		if r.visited[item.id] || item.dist > r.dist[item.id] {
			continue
		}
		if item.dist > r.options.MaxDistance {
			break
		}

		r.visited[item.id] = true
		if err := r.relax(item.id); err != nil {
			return err
		}
	}

	return nil
}

// relax tries to improve the distance of every out-neighbor of u.
// Assumes r.dist[u] is final.
func (r *runner) relax(u int) error {
	neighbors, err := r.g.Neighbors(u)
	if err != nil {
		return fmt.Errorf("dijkstra: failed to get neighbors of %d: %w", u, err)
	}

	var newDist int64
	for _, e := range neighbors {
		if e.Weight >= r.options.InfEdgeThreshold {
			continue
		}
		// saturate instead of overflowing on huge weights
		if e.Weight > Inf-r.dist[u] {
			continue
		}
		newDist = r.dist[u] + e.Weight
		if newDist > r.options.MaxDistance {
			continue
		}
		// strict: equal distances keep the first predecessor found
		if newDist >= r.dist[e.To] {
			continue
		}

		r.dist[e.To] = newDist
		r.prev[e.To] = u
		heap.Push(&r.pq, &nodeItem{id: e.To, dist: newDist})
	}

	return nil
}

// nodeItem is a heap entry: a location and a distance it was reached with.
type nodeItem struct {
	id   int
	dist int64
}

// nodePQ is a min-heap of *nodeItem ordered by dist ascending.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int            { return len(pq) }
func (pq nodePQ) Less(i, j int) bool  { return pq[i].dist < pq[j].dist }
func (pq nodePQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
