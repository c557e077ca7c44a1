package retime_test

import (
	"math/rand"
	"testing"

	"github.com/leiserson/retime/cp"
	"github.com/leiserson/retime/gen"
	"github.com/leiserson/retime/opt1"
	"github.com/leiserson/retime/opt2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRandomRoundTrip is scenario S6: for random graphs of several sizes,
// opt1 and opt2 must agree on the optimal clock period, both must return
// legal retimings, and CP on each result must equal that period.
func TestRandomRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for _, n := range []int{10, 20, 50} {
		g, err := gen.Random(n, 0.2, gen.WeightRandom, rng, gen.WithMaxWeight(3), gen.WithMaxDelay(10))
		require.NoError(t, err)

		gr1, phi1, err := opt1.Solve(g)
		require.NoError(t, err)

		gr2, phi2, err := opt2.Solve(g)
		require.NoError(t, err)

		assert.Equal(t, phi1, phi2, "opt1/opt2 disagree on Phi* for n=%d", n)

		r1, err := cp.Run(gr1, cp.ModeClockPeriod)
		require.NoError(t, err)
		assert.Equal(t, phi1, r1.Phi, "CP(G_r1) != Phi* for n=%d", n)

		r2, err := cp.Run(gr2, cp.ModeClockPeriod)
		require.NoError(t, err)
		assert.Equal(t, phi2, r2.Phi, "CP(G_r2) != Phi* for n=%d", n)

		for _, e := range gr1.Edges() {
			assert.GreaterOrEqual(t, e.Weight, int64(0), "illegal retiming from opt1 for n=%d", n)
		}
		for _, e := range gr2.Edges() {
			assert.GreaterOrEqual(t, e.Weight, int64(0), "illegal retiming from opt2 for n=%d", n)
		}
	}
}
