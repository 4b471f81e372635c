// Package metrics provides Prometheus instrumentation for golazy cursors.
//
// A Registry groups the counters and histogram that observe.Instrument
// updates on every pull. Each metric is labelled with the cursor_name given
// to the instrumented cursor.
//
// # Available Metrics
//
//   - golazy_cursor_advances_total: Next calls
//   - golazy_cursor_items_total: values produced
//   - golazy_cursor_done_total: Next calls that reported done
//   - golazy_cursor_errors_total: Next calls that failed
//   - golazy_cursor_pull_duration_seconds: time spent in Next
//
// # Custom Registry
//
// Use a custom Prometheus registry for isolation:
//
//	registry := prometheus.NewRegistry()
//	reg := metrics.NewRegistryWithConfig(metrics.Config{
//		Enabled:   true,
//		Registry:  registry,
//		Namespace: "myapp",
//	})
//
//	c := observe.Instrument(lazy.RangeTo(1000), "ids", reg)
//
// Then expose metrics via HTTP:
//
//	http.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
//
// # Performance
//
// Label values are resolved once when a cursor is instrumented, so a pull
// costs a few atomic adds and a clock read.
package metrics
