package cp_test

import (
	"testing"

	"github.com/leiserson/retime/circuit"
	"github.com/leiserson/retime/cp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func s1Graph(t *testing.T) *circuit.Graph {
	t.Helper()
	vertices := []string{"0", "1", "2", "3", "4", "5", "6", "7"}
	delays := []int64{0, 3, 3, 3, 3, 7, 7, 7}
	edges := []circuit.EdgeSpec{
		{From: "0", To: "1", Weight: 1},
		{From: "1", To: "2", Weight: 1},
		{From: "1", To: "7", Weight: 0},
		{From: "2", To: "3", Weight: 1},
		{From: "2", To: "6", Weight: 0},
		{From: "3", To: "4", Weight: 1},
		{From: "3", To: "5", Weight: 0},
		{From: "4", To: "5", Weight: 0},
		{From: "5", To: "6", Weight: 0},
		{From: "6", To: "7", Weight: 0},
		{From: "7", To: "0", Weight: 0},
	}
	g, err := circuit.Build(vertices, delays, edges)
	require.NoError(t, err)
	return g
}

func s2Graph(t *testing.T) *circuit.Graph {
	t.Helper()
	vertices := []string{"0", "1", "2", "3"}
	delays := []int64{0, 3, 3, 7}
	edges := []circuit.EdgeSpec{
		{From: "0", To: "1", Weight: 2},
		{From: "1", To: "2", Weight: 0},
		{From: "1", To: "3", Weight: 0},
		{From: "2", To: "3", Weight: 0},
		{From: "3", To: "0", Weight: 0},
	}
	g, err := circuit.Build(vertices, delays, edges)
	require.NoError(t, err)
	return g
}

func TestRun_EightNodeCorrelator(t *testing.T) {
	result, err := cp.Run(s1Graph(t), cp.ModeClockPeriod)
	require.NoError(t, err)

	want := map[string]int64{"0": 24, "1": 3, "2": 3, "3": 3, "4": 3, "5": 10, "6": 17, "7": 24}
	for v, d := range want {
		assert.Equal(t, d, result.Delta[v], "Delta(%s)", v)
	}
	assert.EqualValues(t, 24, result.Phi)
}

func TestRun_FourNodeDiamond(t *testing.T) {
	result, err := cp.Run(s2Graph(t), cp.ModeDelta)
	require.NoError(t, err)

	want := map[string]int64{"0": 13, "1": 3, "2": 6, "3": 13}
	for v, d := range want {
		assert.Equal(t, d, result.Delta[v], "Delta(%s)", v)
	}
	assert.EqualValues(t, 13, result.Phi)
}

func TestRun_NilGraph(t *testing.T) {
	_, err := cp.Run(nil, cp.ModeClockPeriod)
	assert.ErrorIs(t, err, cp.ErrNilGraph)
}

func TestRun_DeltaAtLeastDelay(t *testing.T) {
	g := s1Graph(t)
	result, err := cp.Run(g, cp.ModeClockPeriod)
	require.NoError(t, err)
	for _, v := range g.Vertices() {
		assert.GreaterOrEqual(t, result.Delta[v], g.Delay(v))
	}
	assert.GreaterOrEqual(t, result.Phi, maxDelay(g))
}

func maxDelay(g *circuit.Graph) int64 {
	var m int64
	for _, v := range g.Vertices() {
		if d := g.Delay(v); d > m {
			m = d
		}
	}
	return m
}
