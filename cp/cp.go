package cp

import "github.com/leiserson/retime/circuit"

// Run computes Δ(v), the longest path delay ending at v through g's
// zero-weight-edge subgraph, for every vertex of g, and reports the clock
// period Φ(G) = max_v Δ(v).
//
// mode is accepted for call-site documentation purposes only (see Mode); the
// returned Result always carries both Phi and Delta.
func Run(g *circuit.Graph, mode Mode) (Result, error) {
	if g == nil {
		return Result{}, ErrNilGraph
	}

	order, err := topoSortZeroSubgraph(g)
	if err != nil {
		return Result{}, err
	}

	delta := make(map[string]int64, len(order))
	var phi int64
	for _, v := range order {
		best := int64(0)
		for _, e := range g.InEdges(v) {
			if e.Weight != 0 {
				continue
			}
			if du, ok := delta[e.From]; ok && du > best {
				best = du
			}
		}
		delta[v] = g.Delay(v) + best
		if delta[v] > phi {
			phi = delta[v]
		}
	}

	return Result{Phi: phi, Delta: delta}, nil
}

// topoSortZeroSubgraph returns the vertices of g in a topological order of
// the zero-weight-edge subgraph, via Kahn's algorithm. Source vertices (no
// zero-weight in-edge) come first, in ascending key order among themselves
// for determinism.
func topoSortZeroSubgraph(g *circuit.Graph) ([]string, error) {
	vertices := g.Vertices()
	indeg := make(map[string]int, len(vertices))
	zeroOut := make(map[string][]string, len(vertices))
	for _, v := range vertices {
		indeg[v] = 0
	}
	for _, e := range g.Edges() {
		if e.Weight == 0 {
			zeroOut[e.From] = append(zeroOut[e.From], e.To)
			indeg[e.To]++
		}
	}

	queue := make([]string, 0, len(vertices))
	for _, v := range vertices {
		if indeg[v] == 0 {
			queue = append(queue, v)
		}
	}

	order := make([]string, 0, len(vertices))
	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]
		order = append(order, v)
		for _, w := range zeroOut[v] {
			indeg[w]--
			if indeg[w] == 0 {
				queue = append(queue, w)
			}
		}
	}

	if len(order) != len(vertices) {
		return nil, ErrInternalCycle
	}
	return order, nil
}
