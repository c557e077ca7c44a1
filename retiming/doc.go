// Package retiming applies a retiming r: V -> Z to a circuit.Graph,
// producing G_r with edge weights w_r(u,v) = w(u,v) + r(v) - r(u).
//
// Apply performs no legality check (w_r >= 0 for every edge) — callers that
// need a legal result (opt1, opt2, the binary-search driver) validate via the
// retiming engine that produced r; Apply itself is a pure structural
// transform, mirroring the original's compute_retimed_graph.
package retiming
