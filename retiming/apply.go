package retiming

import "github.com/leiserson/retime/circuit"

// Apply returns G_r: the same graph as g with every edge (u,v) reweighted to
// w(u,v) + r(v) - r(u). Vertices absent from r are treated as r(v) = 0.
//
// Apply(g, zero) is the identity for the all-zero retiming.
func Apply(g *circuit.Graph, r map[string]int64) *circuit.Graph {
	edges := g.Edges()
	weights := make([]int64, len(edges))
	for i, e := range edges {
		weights[i] = e.Weight + r[e.To] - r[e.From]
	}
	return g.Reweight(weights)
}
