// Package opt2 solves retiming by FEAS, the iterative relaxation algorithm:
// starting from r ≡ 0, run |V|-1 rounds; each round computes Δ over G_r via
// cp and increments r(v) for every v with Δ(v) > c.
//
// The final feasibility check must recompute G_r from the r produced by the
// last round before calling cp again — reusing the G_r built inside the
// loop's last iteration checks a retiming that is one round stale and can
// report a graph feasible when it no longer is (or vice versa). This
// package always rebuilds G_r from the final r before the terminal check.
package opt2
