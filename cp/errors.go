package cp

import "errors"

// Sentinel errors for package cp. Returned directly; wrap with
// fmt.Errorf("%w: ...") at call sites that need extra context, match with
// errors.Is.

var (
	// ErrNilGraph indicates a nil *circuit.Graph was passed to Run.
	ErrNilGraph = errors.New("cp: graph is nil")

	// ErrInternalCycle indicates the zero-weight subgraph of g contains a
	// cycle, which circuit.Build's W2 check should already have rejected.
	ErrInternalCycle = errors.New("cp: internal: zero-weight subgraph has a cycle")
)
