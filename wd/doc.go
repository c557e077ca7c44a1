// Package wd computes the W and D matrices of a circuit.Graph: for every
// ordered pair (u, v), W(u,v) is the minimum register count over any u->v
// path and D(u,v) is the maximum accumulated delay over any u->v path that
// achieves that minimum register count.
//
// Both are obtained from a single shortest-path computation per source
// vertex, rather than two independent sweeps (one by weight, one by tail
// delay) combined after the fact — that approach silently assumes the two
// sweeps' shortest-path trees coincide, which they need not.
//
// The per-edge priority is the pair (w(u,v), zeroRank(v)), where zeroRank is
// a single topological rank of the zero-weight subgraph of g (acyclic by
// W2), computed once up front. zeroRank increases strictly along every
// zero-weight edge, so the pair is non-decreasing along every edge of g —
// unlike using the running tail-delay sum itself as the tie-break, which can
// decrease along a zero-weight edge and would make Dijkstra's greedy
// finalization unsound. Tail delay is tracked separately as a max-relaxed
// quantity, maximized correctly because zeroRank ordering guarantees every
// same-register predecessor of a vertex is finalized before that vertex is.
//
// Complexity: O(V * (E + V log V)).
package wd
