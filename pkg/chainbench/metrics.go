package chainbench

import (
	"context"
	"io"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"go.llib.dev/frameless/pkg/errorkit"
)

const metricNamespace = "chainbench"

const ErrMetricsExport errorkit.Error = "failed to export metrics"

var caseLabels = []string{"variant", "workload", "size"}

// Metrics is a Recorder that keeps the results in a dedicated prometheus registry.
type Metrics struct {
	registry   *prometheus.Registry
	throughput *prometheus.GaugeVec
	opDuration *prometheus.HistogramVec
	cases      *prometheus.CounterVec
}

var _ Recorder = (*Metrics)(nil)

func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		throughput: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: metricNamespace,
			Name:      "throughput_ops_per_second",
			Help:      "Elements handled per second in the last run of a case.",
		}, caseLabels),
		opDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: metricNamespace,
			Name:      "op_duration_seconds",
			Help:      "Average time spent on a single element.",
			Buckets:   prometheus.ExponentialBuckets(1e-9, 4, 12),
		}, caseLabels),
		cases: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricNamespace,
			Name:      "cases_total",
			Help:      "Total number of finished benchmark cases.",
		}, []string{"variant", "workload"}),
	}
	m.registry.MustRegister(m.throughput, m.opDuration, m.cases)
	return m
}

func (m *Metrics) Record(_ context.Context, r Result) error {
	labels := prometheus.Labels{
		"variant":  string(r.Variant),
		"workload": string(r.Workload),
		"size":     strconv.Itoa(r.Size),
	}
	m.throughput.With(labels).Set(r.Throughput)
	m.opDuration.With(labels).Observe(r.PerOp.Seconds())
	m.cases.WithLabelValues(string(r.Variant), string(r.Workload)).Inc()
	return nil
}

func (m *Metrics) Gatherer() prometheus.Gatherer {
	return m.registry
}

// WriteText writes the metrics in the prometheus text exposition format.
func (m *Metrics) WriteText(w io.Writer) error {
	families, err := m.registry.Gather()
	if err != nil {
		return err
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return ErrMetricsExport.Wrap(err)
		}
	}
	return nil
}
