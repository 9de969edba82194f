// Package metrics provides observability hooks for the persistent store.
//
// Components receive a Recorder through dependency injection. NoopRecorder is
// the default; PrometheusRecorder collects counters into a registry that the
// metrics command can print.
package metrics

// ReadOutcome enumerates how a store read resolved.
type ReadOutcome string

const (
	ReadHit     ReadOutcome = "hit"
	ReadMiss    ReadOutcome = "miss"
	ReadCorrupt ReadOutcome = "corrupt"
	ReadError   ReadOutcome = "error"
)

// Recorder defines observability hooks for store operations.
type Recorder interface {
	IncRead(key string, outcome ReadOutcome)
	IncWrite(key string, ok bool)
	IncRevival(field string, ok bool)
	ObserveWriteSize(key string, bytes int)
}

// NoopRecorder is a Recorder that does nothing (default when metrics not configured).
type NoopRecorder struct{}

func (NoopRecorder) IncRead(string, ReadOutcome)   {}
func (NoopRecorder) IncWrite(string, bool)         {}
func (NoopRecorder) IncRevival(string, bool)       {}
func (NoopRecorder) ObserveWriteSize(string, int)  {}
