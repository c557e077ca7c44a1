package circuit

import "errors"

// Sentinel errors returned by Build and by the zero-cycle checker. Each is
// independent; wrap with fmt.Errorf("%w: ...") for context at the call site
// and match with errors.Is. Do not expect a shared base sentinel — match the
// specific error you care about.
var (
	// ErrLengthMismatch indicates vertices and delays disagree in length.
	ErrLengthMismatch = errors.New("circuit: length mismatch")

	// ErrNegativeDelay indicates a vertex delay d(v) < 0.
	ErrNegativeDelay = errors.New("circuit: negative delay")

	// ErrNegativeWeight indicates an edge weight w(e) < 0.
	ErrNegativeWeight = errors.New("circuit: negative weight")

	// ErrNoRegisters indicates no edge in the graph has weight > 0.
	ErrNoRegisters = errors.New("circuit: no edge has a positive weight")

	// ErrZeroWeightCycle indicates a directed cycle with total weight 0 (W2 violation).
	ErrZeroWeightCycle = errors.New("circuit: zero-weight cycle detected")

	// ErrUnknownVertex indicates an edge references a vertex absent from the vertex list.
	ErrUnknownVertex = errors.New("circuit: edge references unknown vertex")

	// ErrNoVertices indicates the vertex set is empty.
	ErrNoVertices = errors.New("circuit: graph has no vertices")
)
