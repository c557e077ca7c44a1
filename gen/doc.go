// Package gen generates random circuit.Graph instances for property testing.
//
// Random follows an Erdős–Rényi-like model over n vertices with independent
// edge probability p, then assigns delays and weights and hands the draw to
// circuit.Build. A draw that violates W2 (a zero-weight cycle) is
// resampled, mirroring the original RetimingGraphRandom's
// positive_cycle_check-gated retry: with WeightPositive every edge carries
// weight 1, so W2 can only fail for a 0-length cycle (impossible once at
// least one edge exists), but WeightRandom can draw an all-zero cycle and
// must retry.
package gen
