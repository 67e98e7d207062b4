// Package metrics exposes Prometheus collectors for edit-session saves and AI assist calls.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"resumeapi/internal/assist"
	"resumeapi/internal/autosave"
)

// Collectors implements autosave.Observer and assist.Observer.
type Collectors struct {
	saveTotal    *prometheus.CounterVec
	saveDuration *prometheus.HistogramVec
	assistTotal  *prometheus.CounterVec
	assistDur    *prometheus.HistogramVec
}

var (
	_ autosave.Observer = (*Collectors)(nil)
	_ assist.Observer   = (*Collectors)(nil)
)

func NewCollectors(reg prometheus.Registerer) (*Collectors, error) {
	c := &Collectors{
		saveTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "autosave_writes_total",
				Help: "Resume writes issued by edit sessions, by trigger and result.",
			},
			[]string{"trigger", "result"},
		),
		saveDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "autosave_write_duration_seconds",
				Help:    "Duration of resume writes issued by edit sessions.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"trigger"},
		),
		assistTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "assist_calls_total",
				Help: "AI assist calls, by operation and result. Failed calls were answered with a fallback.",
			},
			[]string{"operation", "result"},
		),
		assistDur: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "assist_call_duration_seconds",
				Help:    "Duration of AI assist provider calls.",
				Buckets: []float64{0.1, 0.25, 0.5, 1, 2, 5, 10, 30},
			},
			[]string{"operation"},
		),
	}

	for _, col := range []prometheus.Collector{c.saveTotal, c.saveDuration, c.assistTotal, c.assistDur} {
		if err := reg.Register(col); err != nil {
			return nil, err
		}
	}
	return c, nil
}

func (c *Collectors) ObserveSave(trigger autosave.Trigger, d time.Duration, err error) {
	c.saveTotal.WithLabelValues(string(trigger), result(err)).Inc()
	c.saveDuration.WithLabelValues(string(trigger)).Observe(d.Seconds())
}

func (c *Collectors) ObserveAssist(op assist.Operation, d time.Duration, err error) {
	c.assistTotal.WithLabelValues(string(op), result(err)).Inc()
	c.assistDur.WithLabelValues(string(op)).Observe(d.Seconds())
}

// RegisterSessionGauge exports the number of open edit sessions as reported by count.
func RegisterSessionGauge(reg prometheus.Registerer, count func() int) error {
	return reg.Register(prometheus.NewGaugeFunc(
		prometheus.GaugeOpts{
			Name: "edit_sessions_open",
			Help: "Number of open edit sessions.",
		},
		func() float64 { return float64(count()) },
	))
}

func result(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}
