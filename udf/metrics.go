package udf

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics counts calls into user-defined functions.  A nil *Metrics
// records nothing.
type Metrics struct {
	calls         *prometheus.CounterVec
	failures      *prometheus.CounterVec
	constructions *prometheus.CounterVec
	duration      *prometheus.HistogramVec
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		calls: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "frame_udf_calls_total",
			Help: "Number of calls to user-defined functions.",
		}, []string{"udf"}),
		failures: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "frame_udf_failures_total",
			Help: "Number of failed initializations and calls of user-defined functions.",
		}, []string{"udf", "op"}),
		constructions: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "frame_udf_constructions_total",
			Help: "Number of stateful user-defined function instances constructed.",
		}, []string{"udf"}),
		duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "frame_udf_call_duration_seconds",
			Help:    "Time spent in calls to user-defined functions.",
			Buckets: prometheus.ExponentialBuckets(0.0001, 4, 10),
		}, []string{"udf"}),
	}
}

func (m *Metrics) observeInit(name string, err error) {
	if m == nil {
		return
	}
	m.constructions.WithLabelValues(name).Inc()
	if err != nil {
		m.failures.WithLabelValues(name, string(OpInitialize)).Inc()
	}
}

func (m *Metrics) observeCall(name string, d time.Duration, err error) {
	if m == nil {
		return
	}
	m.calls.WithLabelValues(name).Inc()
	m.duration.WithLabelValues(name).Observe(d.Seconds())
	if err != nil {
		m.failures.WithLabelValues(name, string(OpInvoke)).Inc()
	}
}
