package storage

import (
	"time"

	"github.com/manav03panchal/studinest/internal/parser"
)

// Reviver turns the raw string found under a field into a richer value.
// It reports false and returns raw when the string cannot be revived.
type Reviver func(raw string) (any, bool)

// Revivers maps a field name to its reviver. The field is matched at any
// depth of a stored value.
type Revivers map[string]Reviver

// DueDateField is the assignment field holding a calendar date.
const DueDateField = "dueDate"

// DefaultRevivers returns the revival table used by the Store.
func DefaultRevivers(now func() time.Time) Revivers {
	return Revivers{
		DueDateField: DateReviver(now),
	}
}

// DateReviver revives ISO-8601 date strings. Anything else, including
// impossible days and natural language such as "tomorrow", is kept as the
// original string. now only supplies the location for zoneless layouts.
func DateReviver(now func() time.Time) Reviver {
	return func(raw string) (any, bool) {
		t, err := parser.ParseISODate(raw, now().Location())
		if err != nil {
			return raw, false
		}
		// encoding/json cannot write years outside 0..9999
		if t.Year() < 0 || t.Year() > 9999 {
			return raw, false
		}
		return t, true
	}
}

// Apply walks a decoded JSON tree and revives every string value whose
// field name has a reviver. Maps are modified in place. report, if not
// nil, is called once per revival attempt.
func (r Revivers) Apply(node any, report func(field string, ok bool)) any {
	switch n := node.(type) {
	case map[string]any:
		for k, v := range n {
			if fn, ok := r[k]; ok {
				if s, isString := v.(string); isString {
					revived, ok := fn(s)
					if report != nil {
						report(k, ok)
					}
					n[k] = revived
					continue
				}
			}
			n[k] = r.Apply(v, report)
		}
	case []any:
		for i, v := range n {
			n[i] = r.Apply(v, report)
		}
	}
	return node
}
