// Package metrics exposes pipeline counters on a private prometheus registry.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector records pipeline runs and session counts.
type Collector struct {
	registry       *prometheus.Registry
	pipelineRuns   *prometheus.CounterVec
	pipelineTime   *prometheus.HistogramVec
	staleResponses *prometheus.CounterVec
	activeSessions prometheus.Gauge
}

// NewCollector creates a new Collector with its own registry.
func NewCollector() *Collector {
	registry := prometheus.NewRegistry()

	pipelineRuns := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "purna_pipeline_runs_total",
			Help: "Pipeline runs by outcome (ok, error)",
		},
		[]string{"pipeline", "outcome"},
	)

	pipelineTime := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "purna_pipeline_duration_seconds",
			Help:    "Time taken by a pipeline run including the remote call",
			Buckets: prometheus.ExponentialBuckets(0.05, 2, 10),
		},
		[]string{"pipeline"},
	)

	staleResponses := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "purna_stale_responses_total",
			Help: "Session pipeline results discarded because a newer request was issued",
		},
		[]string{"pipeline"},
	)

	activeSessions := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "purna_sessions_active",
		Help: "Planning sessions currently held in memory",
	})

	registry.MustRegister(pipelineRuns, pipelineTime, staleResponses, activeSessions)

	return &Collector{
		registry:       registry,
		pipelineRuns:   pipelineRuns,
		pipelineTime:   pipelineTime,
		staleResponses: staleResponses,
		activeSessions: activeSessions,
	}
}

// ObservePipeline records one run of pipeline.
func (c *Collector) ObservePipeline(pipeline, outcome string, elapsed time.Duration) {
	c.pipelineRuns.WithLabelValues(pipeline, outcome).Inc()
	c.pipelineTime.WithLabelValues(pipeline).Observe(elapsed.Seconds())
}

// ObserveStale records one discarded session pipeline result. The run itself
// was already recorded by ObservePipeline.
func (c *Collector) ObserveStale(pipeline string) {
	c.staleResponses.WithLabelValues(pipeline).Inc()
}

// SetActiveSessions reports the number of live sessions.
func (c *Collector) SetActiveSessions(n int) {
	c.activeSessions.Set(float64(n))
}

// Handler serves the registry in the prometheus text format.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{Registry: c.registry})
}
