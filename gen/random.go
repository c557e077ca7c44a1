package gen

import (
	"fmt"
	"math/rand"
	"strconv"

	"github.com/leiserson/retime/circuit"
)

const methodRandom = "Random"

// Random draws an Erdős–Rényi-like circuit.Graph: n vertices "0".."n-1",
// each ordered pair (i,j) with i != j gets an edge independently with
// probability p, and delays/weights are assigned per mode. Draws that
// violate W2 are resampled up to the configured retry budget.
func Random(n int, p float64, mode WeightMode, rng *rand.Rand, opts ...Option) (*circuit.Graph, error) {
	if n < 1 {
		return nil, fmt.Errorf("%s: n=%d: %w", methodRandom, n, ErrTooFewVertices)
	}
	if p < 0 || p > 1 {
		return nil, fmt.Errorf("%s: p=%g: %w", methodRandom, p, ErrInvalidProbability)
	}
	if rng == nil {
		return nil, fmt.Errorf("%s: %w", methodRandom, ErrNeedRandSource)
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	vertices := make([]string, n)
	for i := range vertices {
		vertices[i] = strconv.Itoa(i)
	}

	var buildOpts []circuit.Option
	if cfg.removeClockwiseEdges {
		buildOpts = append(buildOpts, circuit.WithRemoveClockwiseEdges(true))
	}

	for attempt := 0; attempt < cfg.maxRetries; attempt++ {
		delays := drawDelays(vertices, cfg, rng)
		edges := drawEdges(vertices, p, mode, cfg, rng)

		g, err := circuit.Build(vertices, delays, edges, buildOpts...)
		if err == nil {
			return g, nil
		}
		if err != circuit.ErrZeroWeightCycle && err != circuit.ErrNoRegisters {
			return nil, err
		}
	}

	return nil, fmt.Errorf("%s: %w", methodRandom, ErrExhausted)
}

// drawDelays assigns vertex 0 (the conventional "head" vertex) delay 0,
// matching the original's np.insert(delay, 0, 0); every other vertex gets a
// delay drawn from [0, maxDelay).
func drawDelays(vertices []string, cfg config, rng *rand.Rand) []int64 {
	delays := make([]int64, len(vertices))
	for i := range vertices {
		if i == 0 {
			continue
		}
		delays[i] = rng.Int63n(cfg.maxDelay)
	}
	return delays
}

// drawEdges performs one Bernoulli trial per ordered pair (i,j), i != j, in
// stable i-then-j order for determinism given a fixed rng stream.
func drawEdges(vertices []string, p float64, mode WeightMode, cfg config, rng *rand.Rand) []circuit.EdgeSpec {
	var edges []circuit.EdgeSpec
	for i, u := range vertices {
		for j, v := range vertices {
			if i == j {
				continue
			}
			if rng.Float64() > p {
				continue
			}
			edges = append(edges, circuit.EdgeSpec{From: u, To: v, Weight: drawWeight(mode, cfg, rng)})
		}
	}
	return edges
}

func drawWeight(mode WeightMode, cfg config, rng *rand.Rand) int64 {
	switch mode {
	case WeightRandom:
		if cfg.maxWeight <= 0 {
			return 0
		}
		return rng.Int63n(cfg.maxWeight)
	default: // WeightPositive
		return 1
	}
}
