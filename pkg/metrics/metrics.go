// Package metrics provides Prometheus instrumentation for golazy cursors.
package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// DefaultNamespace is the metric namespace used when none is configured.
const DefaultNamespace = "golazy"

// Registry holds all metric instances for instrumented cursors. Every metric
// carries a cursor_name label.
type Registry struct {
	CursorAdvances *prometheus.CounterVec
	CursorItems    *prometheus.CounterVec
	CursorDone     *prometheus.CounterVec
	CursorErrors   *prometheus.CounterVec
	PullDuration   *prometheus.HistogramVec
}

var (
	defaultOnce     sync.Once
	defaultRegistry *Registry
)

// Default returns the registry bound to prometheus.DefaultRegisterer,
// creating it on first use.
func Default() *Registry {
	defaultOnce.Do(func() {
		defaultRegistry = NewRegistry(prometheus.DefaultRegisterer)
	})
	return defaultRegistry
}

// NewRegistry creates a new metrics registry with the given Prometheus registerer.
func NewRegistry(reg prometheus.Registerer) *Registry {
	return newRegistry(reg, DefaultNamespace, nil)
}

// NewRegistryWithConfig creates a registry from cfg. It returns nil when
// cfg.Enabled is false; instrumenting with a nil registry is a no-op.
func NewRegistryWithConfig(cfg Config) *Registry {
	if !cfg.Enabled {
		return nil
	}
	reg := cfg.Registry
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	namespace := cfg.Namespace
	if namespace == "" {
		namespace = DefaultNamespace
	}
	return newRegistry(reg, namespace, cfg.Labels)
}

func newRegistry(reg prometheus.Registerer, namespace string, labels prometheus.Labels) *Registry {
	factory := promauto.With(reg)
	names := []string{"cursor_name"}

	return &Registry{
		CursorAdvances: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace:   namespace,
				Subsystem:   "cursor",
				Name:        "advances_total",
				Help:        "Total number of Next calls on instrumented cursors",
				ConstLabels: labels,
			},
			names,
		),

		CursorItems: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace:   namespace,
				Subsystem:   "cursor",
				Name:        "items_total",
				Help:        "Total number of values produced by instrumented cursors",
				ConstLabels: labels,
			},
			names,
		),

		CursorDone: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace:   namespace,
				Subsystem:   "cursor",
				Name:        "done_total",
				Help:        "Total number of Next calls that reported done",
				ConstLabels: labels,
			},
			names,
		),

		CursorErrors: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace:   namespace,
				Subsystem:   "cursor",
				Name:        "errors_total",
				Help:        "Total number of Next calls that failed",
				ConstLabels: labels,
			},
			names,
		),

		PullDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace:   namespace,
				Subsystem:   "cursor",
				Name:        "pull_duration_seconds",
				Help:        "Time spent in Next, including upstream pulls",
				Buckets:     prometheus.ExponentialBuckets(1e-7, 10, 8),
				ConstLabels: labels,
			},
			names,
		),
	}
}
