package circuit_test

import (
	"errors"
	"testing"

	"github.com/leiserson/retime/circuit"
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

func TestBuild_EightNodeCorrelator(t *testing.T) {
	g := s1Graph(t)
	assert.Equal(t, 8, g.NumVertices())
	assert.Equal(t, 11, g.NumEdges())
	assert.Equal(t, []string{"0", "1", "2", "3", "4", "5", "6", "7"}, g.Vertices())
	assert.EqualValues(t, 7, g.Delay("7"))
	assert.True(t, g.HasVertex("0"))
	assert.False(t, g.HasVertex("8"))
}

func TestBuild_LengthMismatch(t *testing.T) {
	_, err := circuit.Build([]string{"a", "b"}, []int64{0}, nil)
	assert.ErrorIs(t, err, circuit.ErrLengthMismatch)
}

func TestBuild_NegativeDelay(t *testing.T) {
	_, err := circuit.Build([]string{"a"}, []int64{-1}, []circuit.EdgeSpec{{From: "a", To: "a", Weight: 1}})
	assert.ErrorIs(t, err, circuit.ErrNegativeDelay)
}

func TestBuild_NegativeWeight(t *testing.T) {
	_, err := circuit.Build([]string{"a", "b"}, []int64{0, 0}, []circuit.EdgeSpec{{From: "a", To: "b", Weight: -1}})
	assert.ErrorIs(t, err, circuit.ErrNegativeWeight)
}

func TestBuild_NoRegisters(t *testing.T) {
	_, err := circuit.Build([]string{"a", "b"}, []int64{0, 0}, []circuit.EdgeSpec{{From: "a", To: "b", Weight: 0}})
	assert.ErrorIs(t, err, circuit.ErrNoRegisters)
}

func TestBuild_UnknownVertex(t *testing.T) {
	_, err := circuit.Build([]string{"a"}, []int64{0}, []circuit.EdgeSpec{{From: "a", To: "b", Weight: 1}})
	assert.ErrorIs(t, err, circuit.ErrUnknownVertex)
}

func TestBuild_ZeroWeightCycleDetected(t *testing.T) {
	_, err := circuit.Build(
		[]string{"a", "b", "c"},
		[]int64{0, 0, 0},
		[]circuit.EdgeSpec{
			{From: "a", To: "b", Weight: 0},
			{From: "b", To: "c", Weight: 0},
			{From: "c", To: "a", Weight: 1}, // closes the cycle, but weight>0 so no W2 issue yet
		},
	)
	require.NoError(t, err)

	_, err = circuit.Build(
		[]string{"a", "b", "c"},
		[]int64{0, 0, 0},
		[]circuit.EdgeSpec{
			{From: "a", To: "b", Weight: 0},
			{From: "b", To: "c", Weight: 0},
			{From: "c", To: "a", Weight: 0},
			{From: "a", To: "b", Weight: 1}, // needed so ErrNoRegisters doesn't mask the cycle check
		},
	)
	assert.True(t, errors.Is(err, circuit.ErrZeroWeightCycle))
}

func TestBuild_CheckZeroCyclesDisabled(t *testing.T) {
	_, err := circuit.Build(
		[]string{"a", "b", "c"},
		[]int64{0, 0, 0},
		[]circuit.EdgeSpec{
			{From: "a", To: "b", Weight: 0},
			{From: "b", To: "c", Weight: 0},
			{From: "c", To: "a", Weight: 0},
			{From: "a", To: "b", Weight: 1},
		},
		circuit.WithCheckZeroCycles(false),
	)
	require.NoError(t, err)
}

func TestGraph_OutInEdges(t *testing.T) {
	g := s1Graph(t)
	out := g.OutEdges("1")
	require.Len(t, out, 2)
	assert.Equal(t, "2", out[0].To)
	assert.Equal(t, "7", out[1].To)

	in := g.InEdges("5")
	require.Len(t, in, 2)
	assert.Equal(t, "3", in[0].From)
	assert.Equal(t, "4", in[1].From)
}

func TestGraph_MultiEdgesTolerated(t *testing.T) {
	g, err := circuit.Build(
		[]string{"a", "b"},
		[]int64{0, 0},
		[]circuit.EdgeSpec{
			{From: "a", To: "b", Weight: 1},
			{From: "a", To: "b", Weight: 2},
		},
	)
	require.NoError(t, err)
	assert.Equal(t, 2, g.NumEdges())
	out := g.OutEdges("a")
	require.Len(t, out, 2)
	assert.NotEqual(t, out[0].ID, out[1].ID)
}
