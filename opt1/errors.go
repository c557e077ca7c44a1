package opt1

import "errors"

var (
	// ErrNilGraph indicates a nil *circuit.Graph was passed in.
	ErrNilGraph = errors.New("opt1: graph is nil")

	// ErrInfeasible indicates no retiming achieves the requested period —
	// the constraint graph has a negative-weight cycle. Returned by Solve;
	// Feasible reports the same condition via its bool return instead.
	ErrInfeasible = errors.New("opt1: no retiming achieves the requested period")
)
