package opt2

import (
	"github.com/leiserson/retime/circuit"
	"github.com/leiserson/retime/cp"
	"github.com/leiserson/retime/retiming"
	"github.com/leiserson/retime/search"
	"github.com/leiserson/retime/wd"
)

// Feasible runs FEAS: |V|-1 rounds of computing Δ over G_r and bumping every
// v with Δ(v) > c, then one final feasibility check against a G_r rebuilt
// from the post-loop r. The rebuild matters: checking feasibility against
// the G_r built during the loop's last iteration would test a retiming one
// round stale, which can report a graph feasible when it no longer is, or
// vice versa.
func Feasible(g *circuit.Graph, c int64) (map[string]int64, bool) {
	vertices := g.Vertices()
	r := make(map[string]int64, len(vertices))
	for _, v := range vertices {
		r[v] = 0
	}

	for i := 0; i < len(vertices)-1; i++ {
		gr := retiming.Apply(g, r)
		result, err := cp.Run(gr, cp.ModeDelta)
		if err != nil {
			return nil, false
		}
		for _, v := range vertices {
			if result.Delta[v] > c {
				r[v]++
			}
		}
	}

	grFinal := retiming.Apply(g, r)
	result, err := cp.Run(grFinal, cp.ModeClockPeriod)
	if err != nil {
		return nil, false
	}
	if result.Phi <= c {
		return r, true
	}
	return nil, false
}

// Solve finds the minimum feasible clock period of g and a retiming that
// achieves it, binary-searching over the candidate periods implied by g's D
// matrix with Feasible as the oracle.
func Solve(g *circuit.Graph) (*circuit.Graph, int64, error) {
	if g == nil {
		return nil, 0, ErrNilGraph
	}

	_, d, err := wd.Compute(g)
	if err != nil {
		return nil, 0, err
	}

	r, phi, err := search.Run(d.Values(), func(c int64) (map[string]int64, bool) {
		return Feasible(g, c)
	})
	if err != nil {
		return nil, 0, err
	}
	if r == nil {
		return nil, 0, ErrInfeasible
	}

	return retiming.Apply(g, r), phi, nil
}
