package metrics

import (
	"testing"

	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrometheusRecorder(t *testing.T) {
	reg := prom.NewRegistry()
	pr := NewPrometheusRecorder(reg)

	pr.IncRead("studinest-assignments", ReadHit)
	pr.IncRead("studinest-assignments", ReadHit)
	pr.IncRead("studinest-theme", ReadCorrupt)
	pr.IncWrite("studinest-theme", true)
	pr.IncRevival("dueDate", false)
	pr.ObserveWriteSize("studinest-theme", 7)

	samples, err := pr.Counters()
	require.NoError(t, err)

	values := make(map[string]float64)
	for _, s := range samples {
		values[s.Name+"{"+s.LabelString()+"}"] = s.Value
	}

	assert.Equal(t, 2.0, values["studinest_store_reads_total{key=studinest-assignments,outcome=hit}"])
	assert.Equal(t, 1.0, values["studinest_store_reads_total{key=studinest-theme,outcome=corrupt}"])
	assert.Equal(t, 1.0, values["studinest_store_writes_total{key=studinest-theme,result=success}"])
	assert.Equal(t, 1.0, values["studinest_store_revivals_total{field=dueDate,result=failure}"])
	assert.Same(t, reg, pr.Registry())
}

func TestPrometheusRecorderNilRegistry(t *testing.T) {
	pr := NewPrometheusRecorder(nil)
	assert.NotNil(t, pr.Registry())

	samples, err := pr.Counters()
	require.NoError(t, err)
	assert.Empty(t, samples)
}

func TestNoopRecorder(t *testing.T) {
	var r Recorder = NoopRecorder{}
	assert.NotPanics(t, func() {
		r.IncRead("k", ReadMiss)
		r.IncWrite("k", false)
		r.IncRevival("dueDate", true)
		r.ObserveWriteSize("k", 10)
	})
}
