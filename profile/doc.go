// Package profile provides thin time and memory profiling helpers: run a
// function, measure a delta, return it.
package profile
