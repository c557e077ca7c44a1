// Package cp computes the clock period of a circuit.Graph and the per-vertex
// delta values it is derived from.
//
// The zero-weight subgraph G'_0 (edges with w(u,v)=0) is acyclic whenever the
// graph satisfies W2 (no zero-total-weight cycle) — circuit.Build enforces
// W2 by default, so this is a precondition, not something cp re-validates
// defensively beyond detecting it and reporting ErrInternalCycle.
//
// Delta is propagated over G'_0 in topological order:
//
//	Δ(v) = d(v) + max(Δ(u) : (u,v) in G'_0, or 0 if v has no zero-weight
//	       predecessor)
//
// The clock period Φ(G) is max_v Δ(v).
package cp
