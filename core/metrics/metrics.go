// Package metrics counts what a sync run did, in Prometheus format.
//
// Each Recorder owns its registry so a run can be written out as a
// node-exporter textfile once it finishes.
package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Recorder collects the counters of sync runs.
type Recorder struct {
	registry *prometheus.Registry
	entities *prometheus.CounterVec
	runs     *prometheus.CounterVec
	duration prometheus.Gauge
}

// New creates a Recorder with a fresh registry.
func New() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		entities: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "civic_sync",
				Name:      "entities_total",
				Help:      "Entities handled by the sync, by type and action.",
			},
			[]string{"type", "action"},
		),
		runs: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "civic_sync",
				Name:      "runs_total",
				Help:      "Sync runs by outcome.",
			},
			[]string{"outcome"},
		),
		duration: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "civic_sync",
			Name:      "last_run_duration_seconds",
			Help:      "Duration of the last sync run.",
		}),
	}
	r.registry.MustRegister(r.entities, r.runs, r.duration)
	return r
}

// Entities adds n to the counter of (type, action). Zero is recorded too so
// every series exists after a run.
func (r *Recorder) Entities(typ, action string, n int) {
	r.entities.WithLabelValues(typ, action).Add(float64(n))
}

// Run records the outcome (committed, dry_run, cancelled, failed) and duration of a run.
func (r *Recorder) Run(outcome string, d time.Duration) {
	r.runs.WithLabelValues(outcome).Inc()
	r.duration.Set(d.Seconds())
}

// Registry exposes the underlying registry.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// WriteTextfile writes every metric to path atomically.
func (r *Recorder) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, r.registry); err != nil {
		return fmt.Errorf("failed to write metrics textfile: %w", err)
	}
	return nil
}
