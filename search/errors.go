package search

import "errors"

var (
	// ErrInvalidInput indicates an empty candidate set was passed to Run.
	ErrInvalidInput = errors.New("search: empty candidate set")

	// ErrInfeasible indicates the oracle rejected every candidate, including
	// the largest — callers normally never see this, since the largest
	// candidate (the graph's own current period) is always feasible.
	ErrInfeasible = errors.New("search: no candidate period is feasible")
)
