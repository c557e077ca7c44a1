// Package opt1 solves retiming by constraint-graph shortest paths: given a
// target clock period c, build a constraint graph H over V ∪ {ν0} encoding
// the legality and period inequalities as edge weights, run Bellman-Ford
// from ν0, and read r(v) off as dist(ν0, v). A negative cycle in H means no
// retiming achieves period c.
//
// H's vertices are addressed by integer index (g.Vertices()' position, plus
// one extra slot for ν0), not by circuit vertex key — so there is no need to
// reserve a sentinel string key for the super-source, and no risk of it
// colliding with a real (possibly empty-string) vertex key.
package opt1
