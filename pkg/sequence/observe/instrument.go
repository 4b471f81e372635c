package observe

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/vnykmshr/golazy/pkg/metrics"
	"github.com/vnykmshr/golazy/pkg/sequence/lazy"
)

// instrumentSource records every pull of its upstream.
type instrumentSource[T any] struct {
	src      *lazy.Cursor[T]
	advances prometheus.Counter
	items    prometheus.Counter
	done     prometheus.Counter
	errors   prometheus.Counter
	duration prometheus.Observer
}

// Instrument passes seq through unchanged while recording each Next call in
// reg under the given cursor name. A nil reg returns the coerced sequence
// without instrumentation.
func Instrument[T any](seq lazy.Sequence[T], name string, reg *metrics.Registry) *lazy.Cursor[T] {
	if reg == nil {
		return lazy.Iter(seq)
	}
	return lazy.New[T](&instrumentSource[T]{
		src:      lazy.Iter(seq),
		advances: reg.CursorAdvances.WithLabelValues(name),
		items:    reg.CursorItems.WithLabelValues(name),
		done:     reg.CursorDone.WithLabelValues(name),
		errors:   reg.CursorErrors.WithLabelValues(name),
		duration: reg.PullDuration.WithLabelValues(name),
	})
}

func (s *instrumentSource[T]) Next() (T, bool, error) {
	start := time.Now()
	v, ok, err := s.src.Next()
	s.duration.Observe(time.Since(start).Seconds())
	s.advances.Inc()

	switch {
	case err != nil:
		s.errors.Inc()
	case ok:
		s.items.Inc()
	default:
		s.done.Inc()
	}
	return v, ok, err
}
