package model

import (
	"sync/atomic"
	"time"
)

var lastID atomic.Int64

// NewID returns a millisecond timestamp id. Ids are strictly increasing
// within the process even when called twice in the same millisecond.
func NewID(now time.Time) int64 {
	candidate := now.UnixMilli()
	for {
		last := lastID.Load()
		next := candidate
		if next <= last {
			next = last + 1
		}
		if lastID.CompareAndSwap(last, next) {
			return next
		}
	}
}
