package opt2

import "errors"

var (
	// ErrNilGraph indicates a nil *circuit.Graph was passed in.
	ErrNilGraph = errors.New("opt2: graph is nil")

	// ErrInfeasible indicates FEAS did not converge to period c within
	// |V|-1 rounds.
	ErrInfeasible = errors.New("opt2: no retiming achieves the requested period")
)
