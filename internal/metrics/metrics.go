// Package metrics records pairing runs as Prometheus metrics and writes them
// for the node-exporter textfile collector.
package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"pairup/internal/fileutil"
	"pairup/internal/pairing"
)

// Recorder implements pairing.Observer on a private registry.
type Recorder struct {
	registry *prometheus.Registry

	attempts *prometheus.CounterVec
	kept     *prometheus.CounterVec
	pairs    prometheus.Gauge
	singles  prometheus.Gauge
	requests prometheus.Gauge
	perfect  prometheus.Gauge
	duration prometheus.Histogram
	lastRun  prometheus.Gauge
}

var _ pairing.Observer = (*Recorder)(nil)

// NewRecorder registers every pairup metric on a fresh registry.
func NewRecorder() *Recorder {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)
	return &Recorder{
		registry: reg,
		attempts: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "pairup_attempts_total",
				Help: "Matching attempts run, by ordering",
			},
			[]string{"algorithm"},
		),
		kept: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "pairup_attempts_kept_total",
				Help: "Attempts that replaced the best result so far, by ordering",
			},
			[]string{"algorithm"},
		),
		pairs: factory.NewGauge(prometheus.GaugeOpts{
			Name: "pairup_pairs",
			Help: "Pairs in the selected result",
		}),
		singles: factory.NewGauge(prometheus.GaugeOpts{
			Name: "pairup_singles",
			Help: "Members left with open requests in the selected result",
		}),
		requests: factory.NewGauge(prometheus.GaugeOpts{
			Name: "pairup_requests",
			Help: "Total requests across all members",
		}),
		perfect: factory.NewGauge(prometheus.GaugeOpts{
			Name: "pairup_perfect_match",
			Help: "1 when every request was satisfied",
		}),
		duration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "pairup_selection_duration_seconds",
			Help:    "Time spent selecting the best result",
			Buckets: prometheus.ExponentialBuckets(0.0001, 4, 8),
		}),
		lastRun: factory.NewGauge(prometheus.GaugeOpts{
			Name: "pairup_last_run_timestamp_seconds",
			Help: "Unix time of the last completed selection",
		}),
	}
}

// Registry exposes the underlying registry.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// AttemptFinished counts one matching attempt.
func (r *Recorder) AttemptFinished(result *pairing.Result, kept bool) {
	r.attempts.WithLabelValues(result.Algorithm).Inc()
	if kept {
		r.kept.WithLabelValues(result.Algorithm).Inc()
	}
}

// SelectionFinished records the selected result.
func (r *Recorder) SelectionFinished(best *pairing.Result, _ int, elapsed time.Duration) {
	r.pairs.Set(float64(len(best.Pairs)))
	r.singles.Set(float64(len(best.Singles)))
	r.requests.Set(float64(best.TotalRequests))
	if best.Perfect() {
		r.perfect.Set(1)
	} else {
		r.perfect.Set(0)
	}
	r.duration.Observe(elapsed.Seconds())
	r.lastRun.SetToCurrentTime()
}

// WriteTextfile writes the registry in text exposition format to path.
func (r *Recorder) WriteTextfile(path string) error {
	if err := fileutil.EnsureParent(path); err != nil {
		return fmt.Errorf("create metrics directory: %w", err)
	}
	if err := prometheus.WriteToTextfile(path, r.registry); err != nil {
		return fmt.Errorf("write metrics textfile: %w", err)
	}
	return nil
}
