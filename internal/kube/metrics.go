package kube

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Operation results recorded by Metrics.
const (
	resultSuccess = "success"
	resultAbsent  = "absent"
	resultError   = "error"
)

// Metrics counts API operations by operation, kind and result.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	operations *prometheus.CounterVec
}

// NewMetrics creates the operation counters and registers them with reg
// when reg is not nil.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "kubelift",
			Name:      "operations_total",
			Help:      "Kubernetes API operations issued, partitioned by operation, kind and result.",
		}, []string{"operation", "kind", "result"}),
	}
	if reg != nil {
		reg.MustRegister(m.operations)
	}
	return m
}

func (m *Metrics) observe(op, kind string, err error) {
	if m == nil {
		return
	}
	result := resultSuccess
	if err != nil {
		result = resultError
		if op == "get" && IsAbsent(err) {
			result = resultAbsent
		}
	}
	m.operations.WithLabelValues(op, kind, result).Inc()
}
