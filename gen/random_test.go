package gen_test

import (
	"math/rand"
	"testing"

	"github.com/leiserson/retime/gen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRandom_PositiveWeightsBuildsCleanly(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	g, err := gen.Random(10, 0.3, gen.WeightPositive, rng)
	require.NoError(t, err)
	assert.Equal(t, 10, g.NumVertices())
	assert.Greater(t, g.NumEdges(), 0)
}

func TestRandom_RandomWeightsBuildsCleanly(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	g, err := gen.Random(20, 0.25, gen.WeightRandom, rng, gen.WithMaxWeight(3), gen.WithMaxDelay(5))
	require.NoError(t, err)
	assert.Equal(t, 20, g.NumVertices())
}

func TestRandom_InvalidN(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	_, err := gen.Random(0, 0.5, gen.WeightPositive, rng)
	assert.ErrorIs(t, err, gen.ErrTooFewVertices)
}

func TestRandom_InvalidProbability(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	_, err := gen.Random(5, 1.5, gen.WeightPositive, rng)
	assert.ErrorIs(t, err, gen.ErrInvalidProbability)
}

func TestRandom_NilRand(t *testing.T) {
	_, err := gen.Random(5, 0.5, gen.WeightPositive, nil)
	assert.ErrorIs(t, err, gen.ErrNeedRandSource)
}
