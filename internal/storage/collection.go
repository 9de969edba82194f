package storage

import (
	"time"

	"github.com/manav03panchal/studinest/internal/model"
)

// Reloader is implemented by every repository; Reload re-reads its slice
// from the medium without writing.
type Reloader interface {
	Reload()
}

// Repo is the part of every repository the runtime drives generically.
type Repo interface {
	Reloader
	LastWriteErr() error
}

// indexOf returns the position of id in items, or -1.
func indexOf[T model.Identified](items []T, id int64) int {
	for i, item := range items {
		if item.GetID() == id {
			return i
		}
	}
	return -1
}

// clone returns a copy of items that shares no backing array.
func clone[T any](items []T) []T {
	if items == nil {
		return nil
	}
	out := make([]T, len(items))
	copy(out, items)
	return out
}

// appended returns a copy of items with v added at the end.
func appended[T any](items []T, v T) []T {
	out := make([]T, 0, len(items)+1)
	out = append(out, items...)
	return append(out, v)
}

// replaceAt returns a copy of items with position i set to v.
func replaceAt[T any](items []T, i int, v T) []T {
	out := clone(items)
	out[i] = v
	return out
}

// removeAt returns a copy of items without position i.
func removeAt[T any](items []T, i int) []T {
	out := make([]T, 0, len(items)-1)
	out = append(out, items[:i]...)
	return append(out, items[i+1:]...)
}

// nextID returns a timestamp id not already used in items.
func nextID[T model.Identified](items []T, now time.Time) int64 {
	id := model.NewID(now)
	for indexOf(items, id) >= 0 {
		id = model.NewID(now)
	}
	return id
}
