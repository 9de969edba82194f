// Package temporal derives time facts from a caller-supplied clock: which
// weekday it is, which schedule slot is running, and how far away a due
// date is.
//
// Nothing here reads the wall clock. Callers pass "now", which is refreshed
// by the scheduler on a fixed interval.
package temporal
