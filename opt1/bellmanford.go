package opt1

import (
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/path"
	"gonum.org/v1/gonum/graph/simple"
)

// constraintEdge is a single directed edge of the constraint graph H.
type constraintEdge struct {
	from, to int
	weight   int64
}

// bellmanFord computes shortest-path distances from source over n nodes
// (indices 0..n-1) given edges, via gonum's Bellman-Ford-Moore shortest-path
// tree, which reports false if source can reach a negative-weight cycle.
//
// H's integer vertex indices are used directly as gonum node IDs. Parallel
// edges between the same ordered pair keep only the minimum weight. A
// self-loop is a cycle on its own: a negative one makes the result false, a
// non-negative one constrains nothing and is dropped.
func bellmanFord(n int, source int, edges []constraintEdge) ([]int64, bool) {
	g := simple.NewWeightedDirectedGraph(0, 0)

	nodes := make([]graph.Node, n)
	for i := range nodes {
		nodes[i] = simple.Node(int64(i))
		g.AddNode(nodes[i])
	}
	for _, e := range edges {
		if e.from == e.to {
			if e.weight < 0 {
				return nil, false
			}
			continue
		}
		if cur := g.WeightedEdge(int64(e.from), int64(e.to)); cur != nil && cur.Weight() <= float64(e.weight) {
			continue
		}
		g.SetWeightedEdge(g.NewWeightedEdge(nodes[e.from], nodes[e.to], float64(e.weight)))
	}

	shortest, ok := path.BellmanFordFrom(nodes[source], g)
	if !ok {
		return nil, false
	}

	dist := make([]int64, n)
	for i := range dist {
		dist[i] = int64(shortest.WeightTo(int64(i)))
	}
	return dist, true
}
