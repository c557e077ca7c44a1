package gen

import "errors"

var (
	// ErrTooFewVertices indicates n < 1.
	ErrTooFewVertices = errors.New("gen: n < 1")

	// ErrInvalidProbability indicates p is outside [0,1].
	ErrInvalidProbability = errors.New("gen: edge probability not in [0,1]")

	// ErrNeedRandSource indicates a nil *rand.Rand was supplied.
	ErrNeedRandSource = errors.New("gen: rng is required")

	// ErrExhausted indicates no draw satisfying W2 was found within the
	// configured retry budget.
	ErrExhausted = errors.New("gen: exhausted retries without a W2-valid draw")
)
