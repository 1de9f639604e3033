// Package metrics exposes Prometheus instruments for the selection engine
// and the HTTP host.
package metrics

import (
	"context"
	"net/http"
	"time"

	"github.com/aretw0/wilayah/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Load results.
const (
	ResultSuccess = "success"
	ResultFailure = "failure"
)

// Metrics groups the collectors registered on one registry.
type Metrics struct {
	SelectionChanges *prometheus.CounterVec
	Resets           prometheus.Counter
	DatasetLoads     *prometheus.CounterVec
	DatasetRegions   *prometheus.GaugeVec
	RequestDuration  *prometheus.HistogramVec

	gatherer prometheus.Gatherer
}

// New creates the collectors and registers them on reg.
// A nil reg uses a fresh registry.
func New(reg *prometheus.Registry) *Metrics {
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	m := &Metrics{
		SelectionChanges: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "wilayah_selection_changes_total",
			Help: "Selection operations applied, by level",
		}, []string{"level"}),
		Resets: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "wilayah_resets_total",
			Help: "Selection resets",
		}),
		DatasetLoads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "wilayah_dataset_loads_total",
			Help: "Dataset load attempts, by result",
		}, []string{"result"}),
		DatasetRegions: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "wilayah_dataset_regions",
			Help: "Records in the loaded dataset, by level",
		}, []string{"level"}),
		RequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "wilayah_request_duration_seconds",
			Help:    "HTTP request duration, by route",
			Buckets: prometheus.DefBuckets,
		}, []string{"route"}),
		gatherer: reg,
	}
	reg.MustRegister(m.SelectionChanges, m.Resets, m.DatasetLoads, m.DatasetRegions, m.RequestDuration)
	return m
}

// Hooks returns lifecycle hooks that feed the counters. Existing hooks in
// next are still called.
func (m *Metrics) Hooks(next domain.LifecycleHooks) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnSelectionChange: func(ctx context.Context, e *domain.SelectionEvent) {
			m.SelectionChanges.WithLabelValues(string(e.Level)).Inc()
			if next.OnSelectionChange != nil {
				next.OnSelectionChange(ctx, e)
			}
		},
		OnReset: func(ctx context.Context, e *domain.SelectionEvent) {
			m.Resets.Inc()
			if next.OnReset != nil {
				next.OnReset(ctx, e)
			}
		},
		OnDatasetLoaded: func(ctx context.Context, e *domain.DatasetEvent) {
			m.DatasetLoads.WithLabelValues(ResultSuccess).Inc()
			m.DatasetRegions.WithLabelValues(string(domain.LevelProvince)).Set(float64(e.Stats.Provinces))
			m.DatasetRegions.WithLabelValues(string(domain.LevelRegency)).Set(float64(e.Stats.Regencies))
			m.DatasetRegions.WithLabelValues(string(domain.LevelDistrict)).Set(float64(e.Stats.Districts))
			if next.OnDatasetLoaded != nil {
				next.OnDatasetLoaded(ctx, e)
			}
		},
		OnDatasetError: func(ctx context.Context, err error) {
			m.DatasetLoads.WithLabelValues(ResultFailure).Inc()
			if next.OnDatasetError != nil {
				next.OnDatasetError(ctx, err)
			}
		},
	}
}

// ObserveRequest records the duration of one request on route.
func (m *Metrics) ObserveRequest(route string, d time.Duration) {
	m.RequestDuration.WithLabelValues(route).Observe(d.Seconds())
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}
