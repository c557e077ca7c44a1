package search

import "sort"

// Oracle reports whether clock period c is achievable, returning a retiming
// if so.
type Oracle func(c int64) (r map[string]int64, ok bool)

// Run binary-searches candidates for the smallest c for which oracle
// succeeds, and returns the retiming that achieved it.
//
// candidates need not be sorted or deduplicated; Run does both.
func Run(candidates []int64, oracle Oracle) (map[string]int64, int64, error) {
	if len(candidates) == 0 {
		return nil, 0, ErrInvalidInput
	}

	sorted := sortedUnique(candidates)

	type cached struct {
		r  map[string]int64
		ok bool
	}
	cache := make(map[int]cached, len(sorted))
	eval := func(i int) cached {
		if c, ok := cache[i]; ok {
			return c
		}
		r, ok := oracle(sorted[i])
		c := cached{r: r, ok: ok}
		cache[i] = c
		return c
	}

	lo, hi, best := 0, len(sorted)-1, -1
	for lo <= hi {
		mid := lo + (hi-lo)/2
		if eval(mid).ok {
			best = mid
			hi = mid - 1
		} else {
			lo = mid + 1
		}
	}

	if best == -1 {
		return nil, 0, ErrInfeasible
	}
	res := eval(best)
	return res.r, sorted[best], nil
}

func sortedUnique(values []int64) []int64 {
	cp := append([]int64(nil), values...)
	sort.Slice(cp, func(i, j int) bool { return cp[i] < cp[j] })
	out := cp[:0]
	for i, v := range cp {
		if i == 0 || v != out[len(out)-1] {
			out = append(out, v)
		}
	}
	return out
}
