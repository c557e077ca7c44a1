// Package circuit defines the Graph, Vertex and Edge types used throughout
// the retiming engine, and the validation that turns raw (vertices, edges,
// delays, weights) input into an immutable circuit.
//
// A circuit.Graph models a synchronous sequential circuit as a directed
// multigraph: vertices are combinational functional elements carrying a
// non-negative propagation delay d(v), edges are interconnects carrying a
// non-negative integer register count w(e). Parallel edges are tolerated —
// each keeps its own ID and weight; nothing merges or sums them.
//
// Construction validates:
//
//   - len(vertices) == len(delays); every edge has a non-negative weight.
//   - every delay and weight is >= 0.
//   - at least one edge has weight > 0.
//   - (optional, default on) no directed cycle has total weight 0 — the W2
//     condition from Leiserson & Saxe. Because weights are non-negative, a
//     cycle's total weight is zero iff every edge on it has weight zero, so
//     this reduces to "the zero-weight subgraph is acyclic" and is checked
//     in O(V+E) rather than by enumerating simple cycles.
//
// Graph is immutable after Build returns: no method mutates vertices, edges,
// delays or weights. All iteration (Vertices, Edges, OutEdges, InEdges) is in
// ascending-key order so that WD, CP, OPT1 and OPT2 are deterministic.
package circuit
