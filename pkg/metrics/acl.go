package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	aclSubsystem = "acl"

	opLabelKey     = "op"
	statusLabelKey = "status"
)

type aclMetrics struct {
	opCounter  *prometheus.CounterVec
	opDuration *prometheus.HistogramVec
	entries    *prometheus.HistogramVec
}

func newACLMetrics() aclMetrics {
	return aclMetrics{
		opCounter: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: aclSubsystem,
			Name:      "operations_total",
			Help:      "Number of ACL attribute operations by result",
		}, []string{opLabelKey, statusLabelKey}),

		opDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: aclSubsystem,
			Name:      "operation_time",
			Help:      "ACL attribute operations handling time",
			Buckets:   prometheus.ExponentialBuckets(0.00001, 4, 10),
		}, []string{opLabelKey}),

		entries: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: aclSubsystem,
			Name:      "entries",
			Help:      "Number of entries in successfully read or written ACLs",
			Buckets:   []float64{1, 2, 4, 8, 16, 32, 64, 128, 256, 1024},
		}, []string{opLabelKey}),
	}
}

func (m aclMetrics) register(r prometheus.Registerer) error {
	for _, c := range []prometheus.Collector{m.opCounter, m.opDuration, m.entries} {
		if err := r.Register(c); err != nil {
			return err
		}
	}
	return nil
}

// AddACLOperation counts the operation and observes its duration.
func (m aclMetrics) AddACLOperation(op string, status string, d time.Duration) {
	m.opCounter.With(prometheus.Labels{opLabelKey: op, statusLabelKey: status}).Inc()
	m.opDuration.With(prometheus.Labels{opLabelKey: op}).Observe(d.Seconds())
}

// AddACLEntries observes the size of the ACL handled by the operation.
func (m aclMetrics) AddACLEntries(op string, n int) {
	m.entries.With(prometheus.Labels{opLabelKey: op}).Observe(float64(n))
}
