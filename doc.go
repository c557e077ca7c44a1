// Package retime implements the Leiserson-Saxe retiming algorithms for
// synchronous sequential circuits: moving registers across combinational
// logic without changing circuit behavior, to minimize the clock period.
//
// A circuit is a directed multigraph: vertices are combinational elements
// with a non-negative propagation delay, edges are interconnects carrying a
// non-negative integer register count. Every directed cycle must carry
// strictly positive total weight (the W2 condition) — otherwise the circuit
// has a combinational loop and is not a legal input.
//
// Subpackages, one concern each:
//
//	circuit/   — the graph model: construction, validation, iteration.
//	wd/        — W/D matrices: minimum register count and maximum delay
//	             between every pair of vertices.
//	cp/        — clock period and per-vertex delta values via topological
//	             propagation over the zero-weight subgraph.
//	retiming/  — applies a retiming r: V -> Z to produce G_r.
//	opt1/      — retiming via constraint-graph shortest paths (Bellman-Ford).
//	opt2/      — retiming via FEAS, iterative relaxation.
//	search/    — the binary-search driver shared by opt1 and opt2.
//	gen/       — random circuit generation for property testing.
//	render/    — circuit visualization.
//	profile/   — time and memory profiling helpers.
//
// cmd/retime is the command-line entry point.
package retime
