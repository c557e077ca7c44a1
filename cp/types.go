package cp

// Mode selects what Run reports: the scalar clock period, or the full
// per-vertex delta map it is derived from.
type Mode int

const (
	// ModeClockPeriod reports only Phi in Result; Delta is still populated
	// since it falls out of the same traversal at no extra cost.
	ModeClockPeriod Mode = iota
	// ModeDelta is identical to ModeClockPeriod — both fields are always
	// computed together — kept as a distinct value so callers can document
	// intent at the call site, matching the original's
	// mode="clock_period"|"delta" parameter.
	ModeDelta
)

// Result is the outcome of Run: the clock period and the per-vertex delta
// values it was computed from.
type Result struct {
	Phi   int64
	Delta map[string]int64
}
