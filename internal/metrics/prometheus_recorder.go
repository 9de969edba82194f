package metrics

import (
	"sort"
	"strings"

	prom "github.com/prometheus/client_golang/prometheus"
)

// PrometheusRecorder implements Recorder using Prometheus metrics.
type PrometheusRecorder struct {
	registry  *prom.Registry
	reads     *prom.CounterVec
	writes    *prom.CounterVec
	revivals  *prom.CounterVec
	writeSize *prom.HistogramVec
}

// NewPrometheusRecorder constructs and registers store metrics on reg.
// A nil reg gets a fresh registry.
func NewPrometheusRecorder(reg *prom.Registry) *PrometheusRecorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	pr := &PrometheusRecorder{
		registry: reg,
		reads: prom.NewCounterVec(prom.CounterOpts{
			Namespace: "studinest",
			Name:      "store_reads_total",
			Help:      "Store reads by key and outcome",
		}, []string{"key", "outcome"}),
		writes: prom.NewCounterVec(prom.CounterOpts{
			Namespace: "studinest",
			Name:      "store_writes_total",
			Help:      "Store writes by key and result",
		}, []string{"key", "result"}),
		revivals: prom.NewCounterVec(prom.CounterOpts{
			Namespace: "studinest",
			Name:      "store_revivals_total",
			Help:      "Field revivals during reads by field and result",
		}, []string{"field", "result"}),
		writeSize: prom.NewHistogramVec(prom.HistogramOpts{
			Namespace: "studinest",
			Name:      "store_write_bytes",
			Help:      "Serialized size of written values",
			Buckets:   prom.ExponentialBuckets(64, 4, 6),
		}, []string{"key"}),
	}
	reg.MustRegister(pr.reads, pr.writes, pr.revivals, pr.writeSize)
	return pr
}

func resultLabel(ok bool) string {
	if ok {
		return "success"
	}
	return "failure"
}

// IncRead counts a read.
func (p *PrometheusRecorder) IncRead(key string, outcome ReadOutcome) {
	p.reads.WithLabelValues(key, string(outcome)).Inc()
}

// IncWrite counts a write.
func (p *PrometheusRecorder) IncWrite(key string, ok bool) {
	p.writes.WithLabelValues(key, resultLabel(ok)).Inc()
}

// IncRevival counts a field revival attempt.
func (p *PrometheusRecorder) IncRevival(field string, ok bool) {
	p.revivals.WithLabelValues(field, resultLabel(ok)).Inc()
}

// ObserveWriteSize records the serialized size of a written value.
func (p *PrometheusRecorder) ObserveWriteSize(key string, bytes int) {
	p.writeSize.WithLabelValues(key).Observe(float64(bytes))
}

// Registry returns the underlying registry.
func (p *PrometheusRecorder) Registry() *prom.Registry {
	return p.registry
}

// Sample is one counter series flattened for display.
type Sample struct {
	Name   string            `json:"name"`
	Labels map[string]string `json:"labels"`
	Value  float64           `json:"value"`
}

// LabelString renders labels as k=v pairs sorted by key.
func (s Sample) LabelString() string {
	keys := make([]string, 0, len(s.Labels))
	for k := range s.Labels {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+"="+s.Labels[k])
	}
	return strings.Join(parts, ",")
}

// Counters gathers every counter series from the registry.
func (p *PrometheusRecorder) Counters() ([]Sample, error) {
	families, err := p.registry.Gather()
	if err != nil {
		return nil, err
	}

	var samples []Sample
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			if m.GetCounter() == nil {
				continue
			}
			labels := make(map[string]string, len(m.GetLabel()))
			for _, lp := range m.GetLabel() {
				labels[lp.GetName()] = lp.GetValue()
			}
			samples = append(samples, Sample{
				Name:   mf.GetName(),
				Labels: labels,
				Value:  m.GetCounter().GetValue(),
			})
		}
	}
	return samples, nil
}
