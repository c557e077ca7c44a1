// Package search implements the binary-search driver shared by opt1 and
// opt2: given the sorted set of distinct candidate clock periods and a
// feasibility oracle, find the smallest feasible period and the retiming
// that achieves it.
//
// The oracle is assumed monotonic: if it succeeds at c, it succeeds at every
// c' >= c among the candidates. Run exploits this with a left-biased binary
// search, caching each oracle call by candidate index so no candidate
// period is evaluated twice — mirroring the original's dict-based
// per-index memoization in _opt1_binary_search/_opt2_binary_search.
package search
