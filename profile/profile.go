package profile

import (
	"runtime"
	"time"
)

// Time runs f once and returns how long it took, mirroring the original's
// time_random_opt1/opt2/wd (start := time(); f(); return time() - start).
func Time(f func()) time.Duration {
	start := time.Now()
	f()
	return time.Since(start)
}

// Peak runs f once and returns the total number of heap bytes allocated
// during the call: the growth of runtime.MemStats.TotalAlloc between a
// snapshot before and one after f.
//
// TotalAlloc is cumulative, so memory allocated and freed entirely within f
// is counted too. The result is not a peak or resident-set figure: it does
// not report the largest amount of memory live at any one moment.
func Peak(f func()) uint64 {
	runtime.GC()
	var before runtime.MemStats
	runtime.ReadMemStats(&before)

	f()

	var after runtime.MemStats
	runtime.ReadMemStats(&after)

	if after.TotalAlloc <= before.TotalAlloc {
		return 0
	}
	return after.TotalAlloc - before.TotalAlloc
}
