package circuit

// Reweight returns a new Graph with the same vertices, delays, and edge
// identities as g, but with edge i's weight replaced by newWeights[i] (in
// g.Edges() order). newWeights must have exactly g.NumEdges() entries.
//
// Unlike Build, Reweight performs no validation: it exists for the retiming
// applier, which applies any retiming r as given without a legality check
// and so can produce negative weights for an illegal r. Callers that
// need a validated result should re-run Build, or check legality themselves
// (w(u,v) + r(v) - r(u) >= 0 for every edge).
func (g *Graph) Reweight(newWeights []int64) *Graph {
	if len(newWeights) != len(g.edges) {
		panic("circuit: Reweight called with mismatched weight count")
	}

	edges := make([]Edge, len(g.edges))
	for i, e := range g.edges {
		e.Weight = newWeights[i]
		edges[i] = e
	}

	return &Graph{
		vertices: g.vertices,
		delay:    g.delay,
		edges:    edges,
		outIdx:   g.outIdx,
		inIdx:    g.inIdx,
	}
}
