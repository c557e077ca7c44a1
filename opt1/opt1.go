package opt1

import (
	"github.com/leiserson/retime/circuit"
	"github.com/leiserson/retime/retiming"
	"github.com/leiserson/retime/search"
	"github.com/leiserson/retime/wd"
)

// Feasible reports whether some retiming of g achieves clock period c, given
// g's precomputed W and D matrices.
//
// H has one node per vertex of g plus a super-source ν0. Edge families:
//   - legality: for every edge (u,v) of g, an H edge v->u of weight w(u,v),
//     encoding r(u) - r(v) <= w(u,v).
//   - period: for every pair (u,v) with D(u,v) > c, an H edge v->u of weight
//     W(u,v) - 1, encoding r(u) - r(v) <= W(u,v) - 1.
//   - ν0 -> v, weight 0, for every v.
//
// r(v) = dist(ν0, v) after Bellman-Ford from ν0. A negative cycle in H means
// no such r exists.
func Feasible(g *circuit.Graph, c int64, w, d *wd.Matrix) (map[string]int64, bool) {
	vertices := g.Vertices()
	index := make(map[string]int, len(vertices))
	for i, v := range vertices {
		index[v] = i
	}
	superSource := len(vertices)

	edges := make([]constraintEdge, 0, g.NumEdges()+len(vertices)*len(vertices)+len(vertices))
	for _, e := range g.Edges() {
		edges = append(edges, constraintEdge{from: index[e.To], to: index[e.From], weight: e.Weight})
	}
	for _, u := range vertices {
		for _, v := range vertices {
			dv, ok := d.At(u, v)
			if !ok || dv == wd.Unreachable || dv <= c {
				continue
			}
			wv, ok := w.At(u, v)
			if !ok {
				continue
			}
			edges = append(edges, constraintEdge{from: index[v], to: index[u], weight: wv - 1})
		}
	}
	for _, v := range vertices {
		edges = append(edges, constraintEdge{from: superSource, to: index[v], weight: 0})
	}

	dist, ok := bellmanFord(len(vertices)+1, superSource, edges)
	if !ok {
		return nil, false
	}

	r := make(map[string]int64, len(vertices))
	for i, v := range vertices {
		r[v] = dist[i]
	}
	return r, true
}

// Solve finds the minimum feasible clock period of g and a retiming that
// achieves it, binary-searching over the candidate periods implied by g's D
// matrix with Feasible as the oracle.
func Solve(g *circuit.Graph) (*circuit.Graph, int64, error) {
	if g == nil {
		return nil, 0, ErrNilGraph
	}

	w, d, err := wd.Compute(g)
	if err != nil {
		return nil, 0, err
	}

	r, phi, err := search.Run(d.Values(), func(c int64) (map[string]int64, bool) {
		return Feasible(g, c, w, d)
	})
	if err != nil {
		return nil, 0, err
	}
	if r == nil {
		return nil, 0, ErrInfeasible
	}

	return retiming.Apply(g, r), phi, nil
}
